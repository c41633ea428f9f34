package types

import (
	"math"
	"unsafe"
)

const (
	// ChainSize is the number of bytes covered by the chain.
	ChainSize = 8192

	// NumOfIterations is the number of times the chain is traversed per configuration.
	NumOfIterations = 100

	// Sentinel marks the end of the chain.
	Sentinel NodeAddress = math.MaxUint64

	// NodeSize is the number of bytes taken by node.
	NodeSize = uint64(unsafe.Sizeof(Node{}))
)

var (
	// LineSizes are the line strides visited by the sweep, in bytes.
	LineSizes = []uint64{8, 16, 32, 64, 128}

	// PageSizes are the page strides visited by the sweep, in bytes.
	PageSizes = []uint64{512, 1024, 2048, 4096, 8192}
)

type (
	// NodeAddress is the index of a node inside an arena.
	NodeAddress uint64

	// Tick is the value read from the clock.
	Tick uint64
)

// Node is the single link of the chain.
type Node struct {
	Next NodeAddress
}
