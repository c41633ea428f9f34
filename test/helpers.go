package test

import (
	"github.com/stretchr/testify/require"

	"github.com/outofforest/pchase/alloc"
	"github.com/outofforest/pchase/chain"
	"github.com/outofforest/pchase/params"
	"github.com/outofforest/pchase/types"
)

// BuildChain allocates arena on the heap and builds chain for the configuration.
func BuildChain(requireT *require.Assertions, lineSize, pageSize uint64) (*alloc.Arena, types.NodeAddress, params.Params) {
	p, err := params.Derive(types.ChainSize, lineSize, pageSize, types.NodeSize)
	requireT.NoError(err)

	arena, _, err := alloc.NewHeapAllocator().Allocate(p.LinksPerChain)
	requireT.NoError(err)

	var counter uint64
	root, err := chain.Build(arena, p, &counter)
	requireT.NoError(err)

	return arena, root, p
}

// CollectChainAddresses collects addresses of the nodes linked into the chain.
func CollectChainAddresses(arena *alloc.Arena, root types.NodeAddress) []types.NodeAddress {
	addresses := []types.NodeAddress{}
	for cur := root; cur != types.Sentinel && arena.Contains(cur); cur = arena.Node(cur).Next {
		addresses = append(addresses, cur)
	}
	return addresses
}
