package alloc

import (
	"github.com/pkg/errors"

	"github.com/outofforest/pchase/types"
)

var (
	// ErrEmptyArena is returned if arena of zero nodes is requested.
	ErrEmptyArena = errors.New("arena must contain at least one node")

	// ErrOutOfMemory is returned if allocator can't provide requested number of nodes.
	ErrOutOfMemory = errors.New("out of memory")
)

// Allocator allocates backing arenas for chains.
type Allocator interface {
	// Allocate returns arena of numOfNodes contiguous nodes and the function releasing it.
	Allocate(numOfNodes uint64) (*Arena, func(), error)
}

// NewArena wraps contiguous slice of nodes.
func NewArena(nodes []types.Node) *Arena {
	return &Arena{
		nodes: nodes,
	}
}

// Arena is the contiguous block of index-addressed nodes.
type Arena struct {
	nodes []types.Node
}

// Len returns number of nodes in the arena.
func (a *Arena) Len() uint64 {
	return uint64(len(a.nodes))
}

// Contains tells if address points to the node inside the arena.
func (a *Arena) Contains(address types.NodeAddress) bool {
	return uint64(address) < uint64(len(a.nodes))
}

// Node returns node stored under the address.
func (a *Arena) Node(address types.NodeAddress) *types.Node {
	return &a.nodes[address]
}

// Nodes returns all the nodes of the arena.
func (a *Arena) Nodes() []types.Node {
	return a.nodes
}

// Reset unlinks all the nodes.
func (a *Arena) Reset() {
	for i := range a.nodes {
		a.nodes[i].Next = types.Sentinel
	}
}
