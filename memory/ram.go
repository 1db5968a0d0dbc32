package memory

import (
	"encoding/binary"
	"fmt"
)

const (
	// physical addresses are 29 bits, P1..P4 mirror the same space
	areaMask = 0x1FFFFFFF

	sqWindowMask = 0xFC000000
	sqWindow     = 0xE0000000

	// SQSize - store queue size in bytes
	SQSize = 32
)

// RAM is flat, little endian memory mirrored over the whole physical
// address space. Accesses to the store queue window go to the two SQ
// buffers instead.
type RAM struct {
	data []byte
	mask uint32
	sq   [2][SQSize]byte
}

// New returns memory of size bytes, size has to be a power of 2
func New(size int) (*RAM, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("memory size %d is not a power of 2", size)
	}
	return &RAM{data: make([]byte, size), mask: uint32(size - 1)}, nil
}

// Size returns memory size in bytes
func (r *RAM) Size() int { return len(r.data) }

func (r *RAM) slice(addr, n uint32) []byte {
	if addr&sqWindowMask == sqWindow {
		q := (addr >> 5) & 1
		off := addr & (SQSize - 1)
		return r.sq[q][off : off+n]
	}
	off := addr & areaMask & r.mask
	return r.data[off : off+n]
}

// Read8 returns a byte at the physical address
func (r *RAM) Read8(addr uint32) uint8 { return r.slice(addr, 1)[0] }

// Read16 returns 16 bit word at the physical address
func (r *RAM) Read16(addr uint32) uint16 { return binary.LittleEndian.Uint16(r.slice(addr, 2)) }

// Read32 returns 32 bit word at the physical address
func (r *RAM) Read32(addr uint32) uint32 { return binary.LittleEndian.Uint32(r.slice(addr, 4)) }

// Read64 returns 64 bit word at the physical address
func (r *RAM) Read64(addr uint32) uint64 { return binary.LittleEndian.Uint64(r.slice(addr, 8)) }

// Write8 stores a byte at the physical address
func (r *RAM) Write8(addr uint32, data uint8) { r.slice(addr, 1)[0] = data }

// Write16 stores 16 bit word at the physical address
func (r *RAM) Write16(addr uint32, data uint16) {
	binary.LittleEndian.PutUint16(r.slice(addr, 2), data)
}

// Write32 stores 32 bit word at the physical address
func (r *RAM) Write32(addr uint32, data uint32) {
	binary.LittleEndian.PutUint32(r.slice(addr, 4), data)
}

// Write64 stores 64 bit word at the physical address
func (r *RAM) Write64(addr uint32, data uint64) {
	binary.LittleEndian.PutUint64(r.slice(addr, 8), data)
}

// FlushStoreQueue copies store queue (0 or 1) to the physical address,
// 32 byte aligned
func (r *RAM) FlushStoreQueue(q int, dest uint32) {
	off := dest & areaMask & r.mask &^ (SQSize - 1)
	copy(r.data[off:off+SQSize], r.sq[q&1][:])
}

// Reset clears memory and store queues
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
	r.sq = [2][SQSize]byte{}
}
