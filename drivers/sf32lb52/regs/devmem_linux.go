//go:build linux && !tinygo

package regs

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
)

const DevMemPath = "/dev/mem"

// DevMem maps the register blocks through /dev/mem, for targets whose
// physical address space is reachable from a Linux host (FPGA prototypes,
// co-processor setups with a shared bus).
type DevMem struct {
	maps map[uint32]mmap.MMap // block base -> window
}

// OpenDevMem maps every block in Blocks() from path (normally DevMemPath).
func OpenDevMem(path string) (*DevMem, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d := &DevMem{maps: make(map[uint32]mmap.MMap)}
	for _, base := range Blocks() {
		m, err := mmap.MapRegion(f, BlockSize, mmap.RDWR, 0, int64(base))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("map block %08X: %w", base, err)
		}
		d.maps[base] = m
	}
	return d, nil
}

func (d *DevMem) word(addr uint32) *uint32 {
	base := addr &^ (BlockSize - 1)
	m, ok := d.maps[base]
	if !ok {
		panic("regs: address outside mapped blocks")
	}
	return (*uint32)(unsafe.Pointer(&m[addr-base]))
}

func (d *DevMem) Read32(addr uint32) uint32 { return atomic.LoadUint32(d.word(addr)) }

func (d *DevMem) Write32(addr uint32, v uint32) { atomic.StoreUint32(d.word(addr), v) }

// Close unmaps all windows.
func (d *DevMem) Close() error {
	var first error
	for base, m := range d.maps {
		if err := m.Unmap(); err != nil && first == nil {
			first = err
		}
		delete(d.maps, base)
	}
	return first
}
