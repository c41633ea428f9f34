package alloc

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/outofforest/pchase/types"
	"github.com/outofforest/photon"
)

// DefaultConfig is the default configuration of mmap allocator.
var DefaultConfig = Config{
	Alignment: 4096,
}

// Config stores configuration of mmap allocator.
type Config struct {
	// Alignment is the required alignment of the first node, in bytes.
	Alignment uint64

	// UseHugePages maps arena using hugepages.
	UseHugePages bool
}

// NewMmapAllocator creates allocator mapping anonymous memory for every arena.
func NewMmapAllocator(config Config) *MmapAllocator {
	if config.Alignment == 0 {
		config.Alignment = DefaultConfig.Alignment
	}
	return &MmapAllocator{
		config: config,
	}
}

// MmapAllocator allocates arenas outside of the Go heap so the garbage collector never touches them.
type MmapAllocator struct {
	config Config
}

// Allocate allocates arena.
func (ma *MmapAllocator) Allocate(numOfNodes uint64) (*Arena, func(), error) {
	if numOfNodes == 0 {
		return nil, nil, errors.WithStack(ErrEmptyArena)
	}

	opts := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS | unix.MAP_POPULATE
	if ma.config.UseHugePages {
		// When using huge pages, the size must be a multiple of the hugepage size. Otherwise, munmap fails.
		opts |= unix.MAP_HUGETLB
	}

	alignment := uintptr(ma.config.Alignment)
	allocatedSize := uintptr(numOfNodes*types.NodeSize) + alignment
	dataP, err := unix.MmapPtr(-1, 0, nil, allocatedSize, unix.PROT_READ|unix.PROT_WRITE, opts)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "mapping %d nodes failed", numOfNodes)
	}

	dataPOrig := dataP
	dataP = unsafe.Add(dataP, (uintptr(dataP)+alignment-1)/alignment*alignment-uintptr(dataP))

	return NewArena(photon.SliceFromPointer[types.Node](dataP, int(numOfNodes))), func() {
		// munmap requires the size rounded up to the page size used by the mapping. For hugepages there is no
		// function returning it, but only 2MB and 1GB are possible, so both are tried.
		if ma.config.UseHugePages {
			if err := unmap(dataPOrig, allocatedSize, 2*1024*1024); err == nil {
				return
			}
			if err := unmap(dataPOrig, allocatedSize, 1024*1024*1024); err == nil {
				return
			}
		}

		_ = unmap(dataPOrig, allocatedSize, uintptr(os.Getpagesize()))
	}, nil
}

func unmap(ptr unsafe.Pointer, size, pageSize uintptr) error {
	return unix.MunmapPtr(ptr, (size+pageSize-1)/pageSize*pageSize)
}
