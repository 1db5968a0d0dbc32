package mmu

import "sh4/ccn"

// sqVPN - store queue window as a VPN
const (
	sqVPN     = StoreQueueBase >> 10
	sqVPNMask = regionMask >> 10
)

func (m *MMU) flushTranslations() {
	if m.flush != nil {
		m.flush()
	}
}

// SyncUTLB has to be called after UTLB entry index was written.
// Returns false when addresses translated before may no longer be
// valid, the Flush hook has been called then.
func (m *MMU) SyncUTLB(index int) bool {
	e := m.UTLB[index]
	if !e.Data.V() {
		return true
	}

	// upper bits are always known [0xE0/E1/E2/E3]
	if e.Address.VPN()&sqVPNMask == sqVPN {
		if !m.full {
			window := (e.Address.VPN() >> 10) & 0x3F
			m.sqRemap[window] = e.Data.PageAddress()
			m.log.Printf("SQ remap %d : %#08x to %#08x\n",
				index, e.Address.PageAddress(), e.Data.PageAddress())
		}
		return true
	}

	if m.full {
		m.flushTranslations()
		return false
	}

	m.log.Printf("MEM remap %d : %#08x to %#08x\n",
		index, e.Address.PageAddress(), e.Data.PageAddress())
	return true
}

// syncITLB is called after ITLB entry index was loaded from the UTLB
func (m *MMU) syncITLB(index int) {
	e := m.ITLB[index]
	m.log.Printf("ITLB remap %d : %#08x to %#08x\n",
		index, e.Address.PageAddress(), e.Data.PageAddress())
}

// WriteUTLB stores an entry and syncs it
func (m *MMU) WriteUTLB(index int, e Entry) bool {
	m.UTLB[index] = e
	return m.SyncUTLB(index)
}

// LoadTLB implements LDTLB: PTEH and PTEL are copied to the UTLB
// entry selected by MMUCR.URC
func (m *MMU) LoadTLB() bool {
	index := int(m.Regs.MMUCR.URC())
	return m.WriteUTLB(index, Entry{Address: m.Regs.PTEH, Data: m.Regs.PTEL})
}

// InvalidateAll clears V in every UTLB and ITLB entry (MMUCR.TI).
// TI always reads back as 0.
func (m *MMU) InvalidateAll() {
	for i := range m.UTLB {
		m.UTLB[i].Data.SetV(false)
	}
	for i := range m.ITLB {
		m.ITLB[i].Data.SetV(false)
	}
	m.Regs.MMUCR.SetTI(false)
	m.flushTranslations()
}

// WriteMMUCR stores a new MMUCR value, handling the TI bit
func (m *MMU) WriteMMUCR(v ccn.MMUCR) {
	m.Regs.MMUCR = v
	if v.TI() {
		m.InvalidateAll()
	}
}
