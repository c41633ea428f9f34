package chain

import (
	"github.com/cespare/xxhash"
	"github.com/pkg/errors"

	"github.com/outofforest/pchase/alloc"
	"github.com/outofforest/pchase/params"
	"github.com/outofforest/pchase/types"
	"github.com/outofforest/photon"
)

var (
	// ErrArenaTooSmall is returned if arena can't hold all the links of the chain.
	ErrArenaTooSmall = errors.New("arena is too small")

	// ErrCycle is returned if chain does not reach the sentinel.
	ErrCycle = errors.New("chain contains a cycle")

	// ErrOutOfBounds is returned if chain links to the node outside the arena.
	ErrOutOfBounds = errors.New("chain points outside the arena")
)

// Build links every linksPerLine-th node of the arena into the chain and returns its root.
// counter is incremented once per linked line. Only linked nodes are written.
func Build(arena *alloc.Arena, p params.Params, counter *uint64) (types.NodeAddress, error) {
	if p.LinesPerChain == 0 {
		return types.Sentinel, errors.WithStack(params.ErrZeroSize)
	}
	if arena.Len() < p.LinksPerChain {
		return types.Sentinel, errors.Wrapf(ErrArenaTooSmall, "arena holds %d nodes, chain requires %d",
			arena.Len(), p.LinksPerChain)
	}

	root := types.Sentinel
	prev := types.Sentinel
	for i := range p.LinesPerChain {
		link := types.NodeAddress(i * p.LinksPerLine)
		if i == 0 {
			root = link
		} else {
			arena.Node(prev).Next = link
		}
		prev = link
		*counter++
	}
	arena.Node(prev).Next = types.Sentinel

	return root, nil
}

// Traverse chases the chain iterations times and returns the number of dereferenced links.
func Traverse(arena *alloc.Arena, root types.NodeAddress, iterations uint64) uint64 {
	nodes := arena.Nodes()

	var visits uint64
	for range iterations {
		for cur := root; cur != types.Sentinel; visits++ {
			cur = nodes[cur].Next
		}
	}
	return visits
}

// Walk follows the chain once and returns its length, checking that it terminates within limit+1 steps.
func Walk(arena *alloc.Arena, root types.NodeAddress, limit uint64) (uint64, error) {
	var length uint64
	for cur := root; cur != types.Sentinel; length++ {
		if length > limit {
			return length, errors.Wrapf(ErrCycle, "chain is longer than %d links", limit)
		}
		if !arena.Contains(cur) {
			return length, errors.Wrapf(ErrOutOfBounds, "link %d points to node %d, arena holds %d nodes",
				length, cur, arena.Len())
		}
		cur = arena.Node(cur).Next
	}
	return length, nil
}

// Digest returns the hash of the address sequence visited by the chain.
func Digest(arena *alloc.Arena, root types.NodeAddress) uint64 {
	d := xxhash.New()
	cur := root
	for range arena.Len() {
		if !arena.Contains(cur) {
			break
		}
		_, _ = d.Write(photon.NewFromValue(&cur).B)
		cur = arena.Node(cur).Next
	}
	return d.Sum64()
}
