package dump

import (
	"context"
	"fmt"
	"path"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/octree"
	"github.com/hupe1980/octree/blobstore"
)

// Blob names inside a dump.
const (
	NodesBlob  = "nodes.octd"
	PointsBlob = "points.octd"
	IDsBlob    = "ids.octd"
)

var blobNames = [...]string{NodesBlob, PointsBlob, IDsBlob}

// Snapshot holds the flat diagnostic arrays of one tree.
type Snapshot struct {
	NodeBounds []float32 // six per node, pre-order
	Points     []float32 // three per point, aligned with IDs
	IDs        []uint32
}

// Capture copies the diagnostic arrays out of tree. Like every read it must
// not overlap with writers.
func Capture(tree *octree.Octree) *Snapshot {
	return &Snapshot{
		NodeBounds: tree.AllNodeAABBs(),
		Points:     tree.AllPoints(),
		IDs:        tree.AllPointIDs(),
	}
}

// NodeCount returns the number of nodes in s.
func (s *Snapshot) NodeCount() int {
	return len(s.NodeBounds) / 6
}

// PointCount returns the number of points in s.
func (s *Snapshot) PointCount() int {
	return len(s.IDs)
}

// NodeBoundsAt returns the bounds of node i.
func (s *Snapshot) NodeBoundsAt(i int) octree.Bounds {
	b := s.NodeBounds[6*i : 6*i+6]
	return octree.NewBounds(b[0], b[1], b[2], b[3], b[4], b[5])
}

// PointAt returns point i with its id.
func (s *Snapshot) PointAt(i int) octree.Point {
	p := s.Points[3*i : 3*i+3]
	return octree.Point{X: p[0], Y: p[1], Z: p[2], ID: s.IDs[i]}
}

// Validate checks that the arrays have consistent lengths.
func (s *Snapshot) Validate() error {
	if len(s.NodeBounds)%6 != 0 {
		return fmt.Errorf("%w: %d node floats is not a multiple of 6", ErrCorrupt, len(s.NodeBounds))
	}
	if len(s.Points) != 3*len(s.IDs) {
		return fmt.Errorf("%w: %d point floats for %d ids", ErrCorrupt, len(s.Points), len(s.IDs))
	}
	return nil
}

// BlobName returns the store name of one blob of dump name.
func BlobName(name, blob string) string {
	return path.Join(name, blob)
}

// Load reads dump name from store. The three blobs are fetched in parallel.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*Snapshot, error) {
	var frames [len(blobNames)][]byte

	g, gctx := errgroup.WithContext(ctx)
	for i, blob := range blobNames {
		g.Go(func() error {
			data, err := blobstore.ReadAll(gctx, store, BlobName(name, blob))
			if err != nil {
				return fmt.Errorf("load %s: %w", BlobName(name, blob), err)
			}
			frames[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Snapshot{}
	var err error
	if s.NodeBounds, err = DecodeFloats(frames[0], KindNodeBounds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", BlobName(name, NodesBlob), err)
	}
	if s.Points, err = DecodeFloats(frames[1], KindPointCoords); err != nil {
		return nil, fmt.Errorf("decode %s: %w", BlobName(name, PointsBlob), err)
	}
	if s.IDs, err = DecodeUint32s(frames[2]); err != nil {
		return nil, fmt.Errorf("decode %s: %w", BlobName(name, IDsBlob), err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return s, nil
}

// Remove deletes every blob of dump name.
func Remove(ctx context.Context, store blobstore.BlobStore, name string) error {
	for _, blob := range blobNames {
		if err := store.Delete(ctx, BlobName(name, blob)); err != nil {
			return fmt.Errorf("remove %s: %w", BlobName(name, blob), err)
		}
	}
	return nil
}
