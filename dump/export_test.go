package dump

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/octree"
	"github.com/hupe1980/octree/blobstore"
	"github.com/hupe1980/octree/resource"
)

func newTree(t *testing.T) *octree.Octree {
	t.Helper()
	tree, err := octree.New(octree.NewBounds(0, 0, 0, 100, 100, 100), 4)
	require.NoError(t, err)
	for i := range 500 {
		f := float32(i%100) + 0.25
		tree.Insert(f, float32((i*7)%100), float32((i*13)%100), uint32(i))
	}
	return tree
}

// failingStore rejects writes of blobs whose name has the given suffix.
type failingStore struct {
	*blobstore.MemoryStore
	suffix string
}

func (s *failingStore) Put(ctx context.Context, name string, data []byte) error {
	if strings.HasSuffix(name, s.suffix) {
		return errors.New("disk full")
	}
	return s.MemoryStore.Put(ctx, name, data)
}

func TestExportLoad(t *testing.T) {
	tree := newTree(t)
	ctx := context.Background()

	for _, c := range codecs {
		t.Run(c.String(), func(t *testing.T) {
			store := blobstore.NewMemoryStore()
			exporter := NewExporter(store, func(o *Options) {
				o.Compression = c
			})

			res, err := exporter.Export(ctx, tree, "scene")
			require.NoError(t, err)
			assert.Equal(t, tree.Len(), res.Points)
			assert.Equal(t, len(tree.AllNodeAABBs())/6, res.Nodes)
			assert.Equal(t, 4*(len(tree.AllNodeAABBs())+len(tree.AllPoints())+tree.Len()), res.RawBytes)
			assert.Positive(t, res.Bytes)

			names, err := store.List(ctx, "scene/")
			require.NoError(t, err)
			assert.Equal(t, []string{"scene/ids.octd", "scene/nodes.octd", "scene/points.octd"}, names)

			snap, err := Load(ctx, store, "scene")
			require.NoError(t, err)
			assert.Equal(t, tree.AllNodeAABBs(), snap.NodeBounds)
			assert.Equal(t, tree.AllPoints(), snap.Points)
			assert.Equal(t, tree.AllPointIDs(), snap.IDs)
			assert.Equal(t, tree.Bounds(), snap.NodeBoundsAt(0))
			assert.Equal(t, tree.Len(), snap.PointCount())
		})
	}
}

func TestSnapshotAccessors(t *testing.T) {
	tree, err := octree.New(octree.NewBounds(0, 0, 0, 10, 10, 10), 2)
	require.NoError(t, err)
	tree.Insert(1, 2, 3, 42)

	snap := Capture(tree)
	require.NoError(t, snap.Validate())
	assert.Equal(t, 1, snap.NodeCount())
	assert.Equal(t, octree.Point{X: 1, Y: 2, Z: 3, ID: 42}, snap.PointAt(0))

	snap.IDs = append(snap.IDs, 7)
	assert.ErrorIs(t, snap.Validate(), ErrCorrupt)

	_, err = NewExporter(blobstore.NewMemoryStore()).ExportSnapshot(context.Background(), snap, "bad")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	_, err := NewExporter(store).Export(ctx, newTree(t), "scene")
	require.NoError(t, err)

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(ctx, store, "nope")
		assert.True(t, errors.Is(err, blobstore.ErrNotFound))
	})

	t.Run("Corrupted", func(t *testing.T) {
		frame, err := blobstore.ReadAll(ctx, store, "scene/points.octd")
		require.NoError(t, err)
		frame[len(frame)-1] ^= 0xff
		require.NoError(t, store.Put(ctx, "broken/points.octd", frame))
		for _, blob := range []string{NodesBlob, IDsBlob} {
			data, err := blobstore.ReadAll(ctx, store, BlobName("scene", blob))
			require.NoError(t, err)
			require.NoError(t, store.Put(ctx, BlobName("broken", blob), data))
		}

		_, err = Load(ctx, store, "broken")
		assert.ErrorIs(t, err, ErrChecksumMismatch)
		assert.Contains(t, err.Error(), "broken/points.octd")
	})

	t.Run("SwappedBlobs", func(t *testing.T) {
		for from, to := range map[string]string{NodesBlob: PointsBlob, PointsBlob: NodesBlob, IDsBlob: IDsBlob} {
			data, err := blobstore.ReadAll(ctx, store, BlobName("scene", from))
			require.NoError(t, err)
			require.NoError(t, store.Put(ctx, BlobName("swapped", to), data))
		}

		_, err := Load(ctx, store, "swapped")
		var ke *KindError
		assert.True(t, errors.As(err, &ke))
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	_, err := NewExporter(store).Export(ctx, newTree(t), "scene")
	require.NoError(t, err)

	require.NoError(t, Remove(ctx, store, "scene"))
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestExportWithController(t *testing.T) {
	ctx := context.Background()
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:     1 << 20,
		MaxConcurrentUploads: 1,
		BandwidthBytesPerSec: 1 << 30,
	})
	store := blobstore.NewMemoryStore()

	exporter := NewExporter(store, func(o *Options) {
		o.Controller = rc
		o.Concurrency = 0
	})
	_, err := exporter.Export(ctx, newTree(t), "scene")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rc.MemoryUsage())

	snap, err := Load(ctx, store, "scene")
	require.NoError(t, err)
	assert.Equal(t, 500, snap.PointCount())
}

func TestExportFailures(t *testing.T) {
	tree := newTree(t)

	t.Run("StoreError", func(t *testing.T) {
		store := &failingStore{MemoryStore: blobstore.NewMemoryStore(), suffix: IDsBlob}
		_, err := NewExporter(store).Export(context.Background(), tree, "scene")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scene/ids.octd")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewExporter(blobstore.NewMemoryStore()).Export(ctx, tree, "scene")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestExportLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := octree.NewLogger(slog.NewTextHandler(&buf, nil))

	exporter := NewExporter(blobstore.NewMemoryStore(), func(o *Options) {
		o.Logger = logger
	})
	_, err := exporter.Export(context.Background(), newTree(t), "scene")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "dump exported")
	assert.Contains(t, buf.String(), "name=scene")
	assert.Contains(t, buf.String(), "compression=zstd")
}
