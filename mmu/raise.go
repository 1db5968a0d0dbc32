package mmu

import (
	"fmt"

	"sh4/interrupts"
)

// Raise converts a fault into an SH4 exception and hands it to the
// exception handler. TEA and PTEH.VPN are loaded with the faulting
// address first. Multi-hits are only logged: the hardware resets on
// them and there's nothing a guest handler could do.
func (m *MMU) Raise(fault Fault, address uint32, access Access) {
	m.Regs.TEA = address
	m.Regs.PTEH.SetVPN(address >> 10)
	m.LastAccess = access

	ex := interrupts.Exception{
		Address: address,
		Vector:  interrupts.VecGeneral,
		Msg:     fmt.Sprintf("%s on %s", fault, access),
	}

	switch fault {
	case FaultTLBMiss:
		ex.Vector = interrupts.VecTLBMiss
		if access == Write {
			ex.Event = interrupts.EvtWriteTLBMiss
		} else {
			ex.Event = interrupts.EvtReadTLBMiss
		}

	case FaultTLBMultiHit:
		m.log.Printf("TLB multi-hit on %s at %#08x\n", access, address)
		return

	case FaultProtected:
		switch access {
		case Write:
			ex.Event = interrupts.EvtWriteProtection
		case Read:
			ex.Event = interrupts.EvtReadProtection
		default:
			panic(fmt.Sprintf("mmu: PROTECTED raised for %s at %#08x", access, address))
		}

	case FaultFirstWrite:
		if access != Write {
			panic(fmt.Sprintf("mmu: FIRSTWRITE raised for %s at %#08x", access, address))
		}
		ex.Event = interrupts.EvtFirstWrite

	case FaultBadAddr:
		if access == Write {
			ex.Event = interrupts.EvtWriteAddressError
		} else {
			ex.Event = interrupts.EvtReadAddressError
		}

	case FaultExecProt:
		if access != Fetch {
			panic(fmt.Sprintf("mmu: EXECPROT raised for %s at %#08x", access, address))
		}
		ex.Event = interrupts.EvtExecProtection

	default:
		panic(fmt.Sprintf("mmu: raise called with %s at %#08x", fault, address))
	}

	ex.PC = m.handler.SavedPC()
	m.handler.RaiseException(ex)
}
