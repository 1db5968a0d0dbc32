package mmu

import "fmt"

// LRUI update masks, per ITLB entry. Using entry e does
// LRUI = LRUI & itlbLRUAnd[e] | itlbLRUOr[e]
var itlbLRUOr = [ITLBSize]uint32{
	0x00, // 000xxx
	0x20, // 1xx00x
	0x14, // x1x1x0
	0x0B, // xx1x11
}

var itlbLRUAnd = [ITLBSize]uint32{
	0x07, // 000xxx
	0x39, // 1xx00x
	0x3E, // x1x1x0
	0x3F, // xx1x11
}

// itlbLRUUse maps every LRUI state to the entry to replace, -1 if the
// state can't be produced by the update masks.
var itlbLRUUse = buildLRUTable()

func buildLRUTable() [64]int {
	var table [64]int
	for i := range table {
		table[i] = -1
	}
	for e := 0; e < ITLBSize; e++ {
		key := ^itlbLRUAnd[e] & 0x3F
		mask := key | itlbLRUOr[e]
		for i := uint32(0); i < 64; i++ {
			if i&mask == key {
				if table[i] != -1 {
					panic(fmt.Sprintf("mmu: LRUI state %#02x claimed by ITLB entries %d and %d", i, table[i], e))
				}
				table[i] = e
			}
		}
	}
	return table
}

// lruVictim returns the ITLB entry to replace for LRUI state
func lruVictim(lrui uint32) int {
	victim := itlbLRUUse[lrui&0x3F]
	if victim < 0 {
		panic(fmt.Sprintf("mmu: unreachable LRUI state %#02x", lrui))
	}
	return victim
}

// matchITLB does the associative ITLB check
func (m *MMU) matchITLB(va uint32) (int, uint32, Fault) {
	asid := m.Regs.PTEH.ASID()
	privileged := m.SR.IsPrivileged()
	sv := m.Regs.MMUCR.SV()

	entry, hits := 0, 0
	var pa uint32
	for i := range m.ITLB {
		if Match(va, m.ITLB[i], asid, privileged, sv) {
			entry = i
			hits++
			pa = m.ITLB[i].Translate(va)
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

// TranslateInstruction translates an instruction fetch address.
// ITLB misses are filled from the UTLB, replacing the least recently
// used ITLB entry.
func (m *MMU) TranslateInstruction(va uint32) (uint32, Fault) {
	privileged := m.SR.IsPrivileged()

	// store queues can't be executed from
	if !privileged && va&kernelBit != 0 && va >= StoreQueueBase {
		return 0, FaultBadAddr
	}

	if !m.Regs.MMUCR.AT() || identityRegion(va) {
		return va, FaultNone
	}

	entry, pa, fault := m.matchITLB(va)
	if fault == FaultTLBMiss {
		var index int
		index, _, fault = m.Lookup(va)
		if fault != FaultNone {
			return 0, fault
		}

		entry = lruVictim(m.Regs.MMUCR.LRUI())
		m.ITLB[entry] = m.UTLB[index]
		m.syncITLB(entry)

		var retry int
		retry, pa, fault = m.matchITLB(va)
		if fault != FaultNone || retry != entry {
			panic(fmt.Sprintf("mmu: ITLB entry %d loaded from UTLB %d doesn't match %#08x (%v)",
				entry, index, va, fault))
		}
	} else if fault != FaultNone {
		return 0, fault
	}

	mmucr := &m.Regs.MMUCR
	mmucr.SetLRUI(mmucr.LRUI()&itlbLRUAnd[entry] | itlbLRUOr[entry])

	if !privileged && !m.ITLB[entry].UserAccessible() {
		return 0, FaultProtected
	}
	return pa, FaultNone
}
