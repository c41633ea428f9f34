package params

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrZeroSize is returned if any of the sizes is zero.
	ErrZeroSize = errors.New("size must be positive")

	// ErrLineSmallerThanNode is returned if line can't hold a single node.
	ErrLineSmallerThanNode = errors.New("line is smaller than node")

	// ErrPageSmallerThanLine is returned if page can't hold a single line.
	ErrPageSmallerThanLine = errors.New("page is smaller than line")

	// ErrPageNotLineMultiple is returned if page is not a multiple of line.
	ErrPageNotLineMultiple = errors.New("page is not a multiple of line")

	// ErrChainSmallerThanPage is returned if chain can't hold a single page.
	ErrChainSmallerThanPage = errors.New("chain is smaller than page")
)

// DegenerateError reports configuration which can't produce valid chain.
type DegenerateError struct {
	ChainSize uint64
	LineSize  uint64
	PageSize  uint64
	NodeSize  uint64
	Reason    error
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("degenerate configuration (chain: %d, line: %d, page: %d, node: %d): %s",
		e.ChainSize, e.LineSize, e.PageSize, e.NodeSize, e.Reason)
}

// Unwrap returns the reason.
func (e *DegenerateError) Unwrap() error {
	return e.Reason
}

// Params stores parameters of one configuration.
type Params struct {
	ChainSize uint64
	LineSize  uint64
	PageSize  uint64
	NodeSize  uint64

	PagesPerChain uint64
	LinesPerPage  uint64
	LinesPerChain uint64
	LinksPerLine  uint64
	LinksPerChain uint64
}

// Derive computes parameters of the chain for one configuration.
func Derive(chainSize, lineSize, pageSize, nodeSize uint64) (Params, error) {
	if err := validate(chainSize, lineSize, pageSize, nodeSize); err != nil {
		return Params{}, errors.WithStack(&DegenerateError{
			ChainSize: chainSize,
			LineSize:  lineSize,
			PageSize:  pageSize,
			NodeSize:  nodeSize,
			Reason:    err,
		})
	}

	p := Params{
		ChainSize:     chainSize,
		LineSize:      lineSize,
		PageSize:      pageSize,
		NodeSize:      nodeSize,
		PagesPerChain: chainSize / pageSize,
		LinesPerPage:  pageSize / lineSize,
		LinksPerLine:  lineSize / nodeSize,
	}
	p.LinesPerChain = p.LinesPerPage * p.PagesPerChain
	p.LinksPerChain = p.LinesPerChain * p.LinksPerLine

	return p, nil
}

func validate(chainSize, lineSize, pageSize, nodeSize uint64) error {
	switch {
	case chainSize == 0 || lineSize == 0 || pageSize == 0 || nodeSize == 0:
		return ErrZeroSize
	case lineSize < nodeSize:
		return ErrLineSmallerThanNode
	case pageSize < lineSize:
		return ErrPageSmallerThanLine
	case pageSize%lineSize != 0:
		return ErrPageNotLineMultiple
	case chainSize < pageSize:
		return ErrChainSmallerThanPage
	}
	return nil
}
