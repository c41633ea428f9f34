package alloc

import (
	"github.com/pkg/errors"

	"github.com/outofforest/pchase/types"
)

// NewHeapAllocator creates allocator taking arenas from the Go heap.
func NewHeapAllocator() HeapAllocator {
	return HeapAllocator{}
}

// HeapAllocator allocates arenas on the Go heap.
type HeapAllocator struct{}

// Allocate allocates arena.
func (ha HeapAllocator) Allocate(numOfNodes uint64) (*Arena, func(), error) {
	if numOfNodes == 0 {
		return nil, nil, errors.WithStack(ErrEmptyArena)
	}
	return NewArena(make([]types.Node, numOfNodes)), func() {}, nil
}

// NewLimitedAllocator creates allocator refusing requests larger than maxNodes.
func NewLimitedAllocator(parent Allocator, maxNodes uint64) *LimitedAllocator {
	return &LimitedAllocator{
		parent:   parent,
		maxNodes: maxNodes,
	}
}

// LimitedAllocator simulates targets with small amount of memory.
type LimitedAllocator struct {
	parent   Allocator
	maxNodes uint64

	inUse     uint64
	highWater uint64
}

// Allocate allocates arena if it fits into the limit.
func (la *LimitedAllocator) Allocate(numOfNodes uint64) (*Arena, func(), error) {
	if la.inUse+numOfNodes > la.maxNodes {
		return nil, nil, errors.Wrapf(ErrOutOfMemory, "requested %d nodes, %d of %d in use",
			numOfNodes, la.inUse, la.maxNodes)
	}

	arena, deallocFunc, err := la.parent.Allocate(numOfNodes)
	if err != nil {
		return nil, nil, err
	}

	la.inUse += numOfNodes
	if la.inUse > la.highWater {
		la.highWater = la.inUse
	}

	var released bool
	return arena, func() {
		if released {
			return
		}
		released = true
		la.inUse -= numOfNodes
		deallocFunc()
	}, nil
}

// InUse returns number of nodes currently allocated.
func (la *LimitedAllocator) InUse() uint64 {
	return la.inUse
}

// HighWater returns the largest number of nodes allocated at the same time.
func (la *LimitedAllocator) HighWater() uint64 {
	return la.highWater
}
