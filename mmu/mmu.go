package mmu

import (
	"io"
	"log"

	"sh4/ccn"
	"sh4/sr"
)

// MMU related functionality - translating virtual to physical addresses.
//
// The MMU is not safe for concurrent use. TLB entries may be written by the
// owner between translations, followed by SyncUTLB.
type MMU struct {
	// Unified TLB, written by privileged code, only read here
	UTLB [UTLBSize]Entry

	// Instruction TLB, filled from the UTLB on instruction fetch misses
	ITLB [ITLBSize]Entry

	// Store queue remap table, one physical base per 1MB SQ window.
	// Used in fast (non full) mode only.
	sqRemap [64]uint32

	// Control registers and status register shared with the CPU.
	Regs *ccn.Registers
	SR   *sr.SR

	// LastAccess keeps the translation type of the last raised exception
	LastAccess Access

	memory  Memory
	handler ExceptionHandler
	full    bool
	log     *log.Logger
	flush   func()
}

// New returns an MMU working on the given CPU registers and memory.
func New(cfg Config, regs *ccn.Registers, status *sr.SR, memory Memory, handler ExceptionHandler) *MMU {
	m := &MMU{
		Regs:    regs,
		SR:      status,
		memory:  memory,
		handler: handler,
		full:    cfg.Full,
		log:     cfg.Logger,
		flush:   cfg.Flush,
	}
	if m.log == nil {
		m.log = log.New(io.Discard, "", 0)
	}
	return m
}

// Full reports whether full MMU emulation is enabled
func (m *MMU) Full() bool { return m.full }

// Reset invalidates both TLBs and clears the store queue remap table
func (m *MMU) Reset() {
	m.UTLB = [UTLBSize]Entry{}
	m.ITLB = [ITLBSize]Entry{}
	m.sqRemap = [64]uint32{}
	m.LastAccess = Read
}

// StoreQueueRemap returns the remap table entry for a 1MB SQ window
func (m *MMU) StoreQueueRemap(window int) uint32 {
	return m.sqRemap[window&0x3F]
}

// advanceURC steps the UTLB replace counter, wrapping at URB
func (m *MMU) advanceURC() {
	mmucr := &m.Regs.MMUCR
	urc := (mmucr.URC() + 1) & 0x3F
	if urc == mmucr.URB() {
		urc = 0
	}
	mmucr.SetURC(urc)
}

// Lookup does a full UTLB search for va.
// Returns the matching entry index and the physical address on a single
// hit, FaultTLBMiss when nothing matches and FaultTLBMultiHit when more
// than one entry does. The replace counter is stepped in any case.
func (m *MMU) Lookup(va uint32) (int, uint32, Fault) {
	m.advanceURC()

	asid := m.Regs.PTEH.ASID()
	privileged := m.SR.IsPrivileged()
	sv := m.Regs.MMUCR.SV()

	entry, hits := 0, 0
	var pa uint32
	for i := range m.UTLB {
		if Match(va, m.UTLB[i], asid, privileged, sv) {
			entry = i
			hits++
			pa = m.UTLB[i].Translate(va)
		}
	}

	switch hits {
	case 0:
		return 0, 0, FaultTLBMiss
	case 1:
		return entry, pa, FaultNone
	}
	return 0, 0, FaultTLBMultiHit
}
