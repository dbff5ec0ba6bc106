package arena

import (
	"errors"
	"math"
)

// ErrSlabFull is returned when an allocation would exceed MaxItems.
var ErrSlabFull = errors.New("arena: slab is full")

// MaxItems is the number of slots addressable with a uint32 index.
const MaxItems = math.MaxUint32

// Stats tracks slab usage.
type Stats struct {
	Items       uint64 // Current: slots in use
	Capacity    uint64 // Current: slots reserved by the backing slice
	TotalAllocs uint64 // Historical: Alloc calls since creation
	Resets      uint64 // Historical: Reset calls since creation
}

// Slab is a typed allocator that returns contiguous runs of slots.
type Slab[T any] struct {
	items       []T
	totalAllocs uint64
	resets      uint64
}

// NewSlab creates a slab with room for capacity slots before it grows.
func NewSlab[T any](capacity int) *Slab[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Slab[T]{items: make([]T, 0, capacity)}
}

// Alloc reserves n zeroed slots and returns the index of the first one.
func (s *Slab[T]) Alloc(n int) (uint32, error) {
	if n <= 0 {
		return 0, errors.New("arena: allocation size must be positive")
	}
	first := len(s.items)
	if uint64(first)+uint64(n) > MaxItems {
		return 0, ErrSlabFull
	}

	var zero T
	for range n {
		s.items = append(s.items, zero)
	}
	s.totalAllocs++
	return uint32(first), nil
}

// At returns a pointer to slot i.
// The pointer is invalidated by the next Alloc.
func (s *Slab[T]) At(i uint32) *T {
	return &s.items[i]
}

// Len returns the number of slots in use.
func (s *Slab[T]) Len() int {
	return len(s.items)
}

// Reset releases every slot while keeping the backing storage.
// Slots are zeroed first so nothing they referenced stays reachable.
func (s *Slab[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
	s.resets++
}

// Stats returns a snapshot of slab usage.
func (s *Slab[T]) Stats() Stats {
	return Stats{
		Items:       uint64(len(s.items)),
		Capacity:    uint64(cap(s.items)),
		TotalAllocs: s.totalAllocs,
		Resets:      s.resets,
	}
}
