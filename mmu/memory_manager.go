package mmu

import (
	"log"

	"sh4/interrupts"
)

// Memory is the flat physical memory the MMU hands resolved
// addresses to. The MMU never touches backing storage itself.
type Memory interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Read64(addr uint32) uint64

	Write8(addr uint32, data uint8)
	Write16(addr uint32, data uint16)
	Write32(addr uint32, data uint32)
	Write64(addr uint32, data uint64)
}

// ExceptionHandler delivers exceptions raised by the MMU.
// RaiseException is expected not to return (the reference system
// unwinds with panic). If it does return the access is abandoned
// and the accessor returns zero.
type ExceptionHandler interface {
	// SavedPC returns the PC of the instruction doing the access
	SavedPC() uint32

	RaiseException(ex interrupts.Exception)
}

// Config selects how the MMU is emulated.
type Config struct {
	// Full enables full MMU emulation. Without it the core only keeps
	// the 1MB store queue remap table up to date and flushes store
	// queues through it.
	Full bool

	// Logger receives TLB sync and multi-hit messages. Nil discards them.
	Logger *log.Logger

	// Flush is called when a TLB change may have invalidated addresses
	// translated earlier (recompiled code blocks and such)
	Flush func()
}
