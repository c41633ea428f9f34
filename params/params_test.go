package params_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/pchase/params"
	"github.com/outofforest/pchase/types"
)

func TestDeriveGrid(t *testing.T) {
	requireT := require.New(t)

	for _, lineSize := range types.LineSizes {
		for _, pageSize := range types.PageSizes {
			p, err := params.Derive(types.ChainSize, lineSize, pageSize, types.NodeSize)
			requireT.NoError(err)

			requireT.EqualValues(types.ChainSize, p.PagesPerChain*pageSize)
			requireT.Equal(p.LinesPerPage*p.PagesPerChain, p.LinesPerChain)
			requireT.Equal(p.LinesPerChain*p.LinksPerLine, p.LinksPerChain)
			requireT.NotZero(p.LinksPerChain)
			requireT.Equal(lineSize, p.LineSize)
			requireT.Equal(pageSize, p.PageSize)
		}
	}
}

func TestDeriveExample(t *testing.T) {
	requireT := require.New(t)

	p, err := params.Derive(8192, 32, 4096, 4)
	requireT.NoError(err)
	requireT.Equal(params.Params{
		ChainSize:     8192,
		LineSize:      32,
		PageSize:      4096,
		NodeSize:      4,
		PagesPerChain: 2,
		LinesPerPage:  128,
		LinesPerChain: 256,
		LinksPerLine:  8,
		LinksPerChain: 2048,
	}, p)
}

func TestDeriveLineEqualToNode(t *testing.T) {
	requireT := require.New(t)

	p, err := params.Derive(types.ChainSize, 8, 512, 8)
	requireT.NoError(err)
	requireT.EqualValues(1, p.LinksPerLine)
	requireT.Equal(p.LinesPerChain, p.LinksPerChain)
}

func TestDeriveDegenerate(t *testing.T) {
	tests := []struct {
		name      string
		chainSize uint64
		lineSize  uint64
		pageSize  uint64
		nodeSz    uint64
		reason    error
	}{
		{name: "zero line", chainSize: 8192, lineSize: 0, pageSize: 512, nodeSz: 8, reason: params.ErrZeroSize},
		{name: "zero node", chainSize: 8192, lineSize: 8, pageSize: 512, nodeSz: 0, reason: params.ErrZeroSize},
		{name: "line below node", chainSize: 8192, lineSize: 4, pageSize: 512, nodeSz: 8,
			reason: params.ErrLineSmallerThanNode},
		{name: "page below line", chainSize: 8192, lineSize: 128, pageSize: 64, nodeSz: 8,
			reason: params.ErrPageSmallerThanLine},
		{name: "page not line multiple", chainSize: 8192, lineSize: 48, pageSize: 512, nodeSz: 8,
			reason: params.ErrPageNotLineMultiple},
		{name: "chain below page", chainSize: 1024, lineSize: 8, pageSize: 2048, nodeSz: 8,
			reason: params.ErrChainSmallerThanPage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)

			_, err := params.Derive(tc.chainSize, tc.lineSize, tc.pageSize, tc.nodeSz)
			requireT.ErrorIs(err, tc.reason)

			var dErr *params.DegenerateError
			requireT.True(errors.As(err, &dErr))
			requireT.Equal(tc.lineSize, dErr.LineSize)
			requireT.Equal(tc.pageSize, dErr.PageSize)
		})
	}
}
