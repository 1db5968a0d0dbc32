package interrupts

import "fmt"

/**
 * Separate package exists mainly in order to avoid cyclic imports
 * between the mmu and whatever ends up delivering the exceptions.
 */

// Exception type - used to signal an exception raised by the MMU.
// Event goes to EXPEVT, Vector is the offset from VBR the handler
// starts at, Address is the faulting virtual address (copied to TEA)
// and PC the program counter that will be saved to SPC.
type Exception struct {
	Event   uint32
	Vector  uint32
	Address uint32
	PC      uint32
	Msg     string
}

func (e Exception) Error() string {
	return fmt.Sprintf("exception %#03x (vector %#x) at %#08x, pc %#08x: %s",
		e.Event, e.Vector, e.Address, e.PC, e.Msg)
}

/********************************
 * vector offsets from VBR:
 ********************************/

// VecGeneral - general exceptions
const VecGeneral = 0x100

// VecTLBMiss - UTLB miss exceptions
const VecTLBMiss = 0x400

/********************************
 * exception event codes (EXPEVT):
 ********************************/

// EvtReadTLBMiss - data read or instruction fetch TLB miss
const EvtReadTLBMiss = 0x040

// EvtWriteTLBMiss - data write TLB miss
const EvtWriteTLBMiss = 0x060

// EvtFirstWrite - initial page write
const EvtFirstWrite = 0x080

// EvtReadProtection - data read protection violation
const EvtReadProtection = 0x0A0

// EvtExecProtection - instruction TLB protection violation
const EvtExecProtection = 0x0A0

// EvtWriteProtection - data write protection violation
const EvtWriteProtection = 0x0C0

// EvtReadAddressError - data read or instruction fetch address error
const EvtReadAddressError = 0x0E0

// EvtWriteAddressError - data write address error
const EvtWriteAddressError = 0x100

// EvtTLBMultiHit - reported by hardware as a reset, never delivered here
const EvtTLBMultiHit = 0x140
