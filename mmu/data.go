package mmu

// checkProtection applies PR and the dirty bit to a hit.
// PR bit 1 clear -> privileged only, PR bit 0 clear -> read only.
// Writes to clean pages raise first write so the OS can set D.
func checkProtection(e Entry, access Access, privileged bool) Fault {
	if !privileged && !e.UserAccessible() {
		return FaultProtected
	}
	if access == Write {
		if !e.Writable() {
			return FaultProtected
		}
		if !e.Data.D() {
			return FaultFirstWrite
		}
	}
	return FaultNone
}

// TranslateData translates a data read or write address.
func (m *MMU) TranslateData(va uint32, access Access) (uint32, Fault) {
	if access == Fetch {
		panic("mmu: instruction fetch translated as data access")
	}

	// SQ writes are not translated, only the write backs are
	if inStoreQueue(va) {
		if _, fault := m.TranslateStoreQueue(va, access); fault != FaultNone {
			return 0, fault
		}
		return va, FaultNone
	}

	privileged := m.SR.IsPrivileged()

	// kernel space from user mode and not SQ -> error
	if !privileged && va&kernelBit != 0 {
		return 0, FaultBadAddr
	}

	if privileged && va&regionMask == identityWindow {
		return va, FaultNone
	}

	if !m.Regs.MMUCR.AT() || identityRegion(va) {
		return va, FaultNone
	}

	index, pa, fault := m.Lookup(va)
	if fault != FaultNone {
		return 0, fault
	}
	if fault = checkProtection(m.UTLB[index], access, privileged); fault != FaultNone {
		return 0, fault
	}
	return pa, FaultNone
}

// TranslateStoreQueue translates a store queue address to the physical
// address the queue is written back to, 32 byte aligned.
func (m *MMU) TranslateStoreQueue(va uint32, access Access) (uint32, Fault) {
	privileged := m.SR.IsPrivileged()
	mmucr := m.Regs.MMUCR

	if va&3 != 0 || (mmucr.SQMD() && !privileged) {
		return 0, FaultBadAddr
	}

	if !mmucr.AT() {
		return m.qacrAddress(va), FaultNone
	}

	index, pa, fault := m.Lookup(va)
	if fault != FaultNone {
		return 0, fault
	}
	if fault = checkProtection(m.UTLB[index], access, privileged); fault != FaultNone {
		return 0, fault
	}
	return pa &^ 31, FaultNone
}

// qacrAddress is the SQ translation with AT off: bit 5 selects
// QACR0/QACR1, which supply address bits 28..26
func (m *MMU) qacrAddress(va uint32) uint32 {
	qacr := m.Regs.QACR[(va>>5)&1]
	return qacr.Base() | va&0x03FFFFE0
}

// TranslateSQW returns the destination of a store queue write back.
// Faults are raised. In fast mode the remap table filled by SyncUTLB
// is used, which assumes 1MB pages.
func (m *MMU) TranslateSQW(va uint32) (uint32, bool) {
	if !m.full {
		return m.sqRemap[(va>>20)&0x3F] | va&0xFFFE0, true
	}

	pa, fault := m.TranslateStoreQueue(va, Read)
	if fault != FaultNone {
		m.Raise(fault, va, Read)
		return 0, false
	}
	return pa, true
}
