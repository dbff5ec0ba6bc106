package dump

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/octree"
	"github.com/hupe1980/octree/blobstore"
	"github.com/hupe1980/octree/resource"
)

// Options configures an Exporter.
type Options struct {
	// Compression is the codec tried for every frame.
	// Default: CompressionZSTD
	Compression Compression

	// Concurrency is the number of frames encoded and uploaded in parallel.
	// Values <= 0 upload all frames at once.
	// Default: 3
	Concurrency int

	// Controller shares memory, upload slots and bandwidth with other
	// exports. Nil means unlimited.
	Controller *resource.Controller

	// Logger receives one record per export.
	// Default: octree.NoopLogger()
	Logger *octree.Logger
}

// DefaultOptions contains the default configuration for an Exporter.
var DefaultOptions = Options{
	Compression: CompressionZSTD,
	Concurrency: 3,
}

// Result describes a finished export.
type Result struct {
	Nodes    int
	Points   int
	RawBytes int // frame payload bytes before compression
	Bytes    int // frame bytes written to the store
}

// Exporter writes tree dumps to a blob store.
type Exporter struct {
	store blobstore.BlobStore
	opts  Options
}

// NewExporter creates an Exporter writing to store.
func NewExporter(store blobstore.BlobStore, optFns ...func(o *Options)) *Exporter {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = octree.NoopLogger()
	}
	return &Exporter{store: store, opts: opts}
}

// Export captures tree and writes it as dump name. Like every read, it must
// not overlap with writers of tree.
func (e *Exporter) Export(ctx context.Context, tree *octree.Octree, name string) (*Result, error) {
	return e.ExportSnapshot(ctx, Capture(tree), name)
}

// ExportSnapshot writes s as dump name.
func (e *Exporter) ExportSnapshot(ctx context.Context, s *Snapshot, name string) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{Nodes: s.NodeCount(), Points: s.PointCount()}

	type job struct {
		blob   string
		encode func() ([]byte, error)
		raw    int
	}
	jobs := [...]job{
		{NodesBlob, func() ([]byte, error) { return EncodeFloats(KindNodeBounds, s.NodeBounds, e.opts.Compression) }, 4 * len(s.NodeBounds)},
		{PointsBlob, func() ([]byte, error) { return EncodeFloats(KindPointCoords, s.Points, e.opts.Compression) }, 4 * len(s.Points)},
		{IDsBlob, func() ([]byte, error) { return EncodeUint32s(KindPointIDs, s.IDs, e.opts.Compression) }, 4 * len(s.IDs)},
	}
	var written [len(jobs)]int

	g, gctx := errgroup.WithContext(ctx)
	if e.opts.Concurrency > 0 {
		g.SetLimit(e.opts.Concurrency)
	}

	for i, j := range jobs {
		res.RawBytes += j.raw
		g.Go(func() error {
			n, err := e.write(gctx, BlobName(name, j.blob), j.encode)
			if err != nil {
				return fmt.Errorf("export %s: %w", BlobName(name, j.blob), err)
			}
			written[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.opts.Logger.ErrorContext(ctx, "dump export failed",
			"name", name,
			"error", err,
		)
		return nil, err
	}

	for _, n := range written {
		res.Bytes += n
	}

	e.opts.Logger.InfoContext(ctx, "dump exported",
		"name", name,
		"nodes", res.Nodes,
		"points", res.Points,
		"raw_bytes", res.RawBytes,
		"bytes", res.Bytes,
		"compression", e.opts.Compression.String(),
		"duration", time.Since(start),
	)
	return res, nil
}

func (e *Exporter) write(ctx context.Context, blob string, encode func() ([]byte, error)) (int, error) {
	frame, err := encode()
	if err != nil {
		return 0, err
	}

	rc := e.opts.Controller
	size := int64(len(frame))
	if err := rc.AcquireMemory(ctx, size); err != nil {
		return 0, err
	}
	defer rc.ReleaseMemory(size)

	if err := rc.AcquireUpload(ctx); err != nil {
		return 0, err
	}
	defer rc.ReleaseUpload()

	if err := rc.AcquireIO(ctx, len(frame)); err != nil {
		return 0, err
	}

	if err := e.store.Put(ctx, blob, frame); err != nil {
		return 0, err
	}
	return len(frame), nil
}
