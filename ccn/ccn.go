package ccn

/*
Cache and MMU control registers of the SH4 (CCN block).

Only the registers the MMU core reads or updates are modelled here. Writes
coming from privileged code are decoded elsewhere, the types below just give
named access to the bit fields.

PTEH  31..10 VPN | 7..0 ASID
PTEL  28..10 PPN | 8 V | 7 SZ1 | 6..5 PR | 4 SZ0 | 3 C | 2 D | 1 SH | 0 WT
MMUCR 31..26 LRUI | 23..18 URB | 15..10 URC | 9 SQMD | 8 SV | 2 TI | 0 AT
QACR  4..2 AREA
*/

const (
	vpnMask  = 0xFFFFFC00
	asidMask = 0xFF

	ppnMask = 0x1FFFFC00
	vBit    = 1 << 8
	sz1Bit  = 1 << 7
	prShift = 5
	prMask  = 3 << prShift
	sz0Bit  = 1 << 4
	cBit    = 1 << 3
	dBit    = 1 << 2
	shBit   = 1 << 1
	wtBit   = 1

	lruiShift = 26
	urbShift  = 18
	urcShift  = 10
	field6    = 0x3F
	sqmdBit   = 1 << 9
	svBit     = 1 << 8
	tiBit     = 1 << 2
	atBit     = 1

	areaShift = 2
	areaMask  = 7 << areaShift
)

// PTEH - page table entry high: virtual page number and ASID
type PTEH uint32

// VPN returns the virtual page number (address bits 31..10, in 1KB units)
func (p PTEH) VPN() uint32 { return uint32(p) >> 10 }

// ASID returns the address space identifier
func (p PTEH) ASID() uint32 { return uint32(p) & asidMask }

// PageAddress returns the VPN as an address, low 10 bits clear
func (p PTEH) PageAddress() uint32 { return uint32(p) & vpnMask }

// SetVPN replaces the VPN, the ASID is kept
func (p *PTEH) SetVPN(vpn uint32) {
	*p = PTEH((vpn<<10)&vpnMask | uint32(*p)&asidMask)
}

// SetASID replaces the ASID
func (p *PTEH) SetASID(asid uint32) {
	*p = PTEH(uint32(*p)&^asidMask | asid&asidMask)
}

// NewPTEH builds a PTEH out of VPN (1KB units) and ASID
func NewPTEH(vpn, asid uint32) PTEH {
	var p PTEH
	p.SetVPN(vpn)
	p.SetASID(asid)
	return p
}

// PTEL - page table entry low: physical page and page attributes
type PTEL uint32

// PPN returns the physical page number (address bits 28..10, in 1KB units)
func (p PTEL) PPN() uint32 { return (uint32(p) & ppnMask) >> 10 }

// PageAddress returns the physical page as an address
func (p PTEL) PageAddress() uint32 { return uint32(p) & ppnMask }

// V - entry valid
func (p PTEL) V() bool { return uint32(p)&vBit != 0 }

// SZ returns the page size index SZ1*2+SZ0
func (p PTEL) SZ() uint32 {
	var sz uint32
	if uint32(p)&sz1Bit != 0 {
		sz = 2
	}
	if uint32(p)&sz0Bit != 0 {
		sz++
	}
	return sz
}

// PR returns the 2 bit protection key:
// bit 1 set -> accessible from user mode, bit 0 set -> writable
func (p PTEL) PR() uint32 { return (uint32(p) & prMask) >> prShift }

// C - cacheable
func (p PTEL) C() bool { return uint32(p)&cBit != 0 }

// D - dirty
func (p PTEL) D() bool { return uint32(p)&dBit != 0 }

// SH - shared, ASID is ignored when matching
func (p PTEL) SH() bool { return uint32(p)&shBit != 0 }

// WT - write through
func (p PTEL) WT() bool { return uint32(p)&wtBit != 0 }

// SetV sets or clears the valid bit
func (p *PTEL) SetV(v bool) { p.set(vBit, v) }

// SetD sets or clears the dirty bit
func (p *PTEL) SetD(d bool) { p.set(dBit, d) }

func (p *PTEL) set(bit uint32, status bool) {
	if status {
		*p |= PTEL(bit)
	} else {
		*p &^= PTEL(bit)
	}
}

// Page attributes used by NewPTEL
type Attr struct {
	Valid, Dirty, Shared, Cacheable, WriteThrough bool
	Size                                          uint32 // SZ1*2+SZ0
	PR                                            uint32
}

// NewPTEL builds a PTEL out of PPN (1KB units) and attributes
func NewPTEL(ppn uint32, a Attr) PTEL {
	p := PTEL((ppn << 10) & ppnMask)
	p.set(vBit, a.Valid)
	p.set(dBit, a.Dirty)
	p.set(shBit, a.Shared)
	p.set(cBit, a.Cacheable)
	p.set(wtBit, a.WriteThrough)
	p.set(sz1Bit, a.Size&2 != 0)
	p.set(sz0Bit, a.Size&1 != 0)
	p |= PTEL((a.PR << prShift) & prMask)
	return p
}

// MMUCR - MMU control register
type MMUCR uint32

// AT - address translation enabled
func (m MMUCR) AT() bool { return uint32(m)&atBit != 0 }

// SV - single virtual mode, no ASID check in privileged mode
func (m MMUCR) SV() bool { return uint32(m)&svBit != 0 }

// SQMD - store queues accessible from privileged mode only
func (m MMUCR) SQMD() bool { return uint32(m)&sqmdBit != 0 }

// TI - TLB invalidate request
func (m MMUCR) TI() bool { return uint32(m)&tiBit != 0 }

// URC - UTLB replace counter
func (m MMUCR) URC() uint32 { return (uint32(m) >> urcShift) & field6 }

// URB - UTLB replace boundary
func (m MMUCR) URB() uint32 { return (uint32(m) >> urbShift) & field6 }

// LRUI - ITLB LRU state
func (m MMUCR) LRUI() uint32 { return (uint32(m) >> lruiShift) & field6 }

// SetURC replaces the replace counter
func (m *MMUCR) SetURC(v uint32) { m.setField(urcShift, v) }

// SetURB replaces the replace boundary
func (m *MMUCR) SetURB(v uint32) { m.setField(urbShift, v) }

// SetLRUI replaces the ITLB LRU state
func (m *MMUCR) SetLRUI(v uint32) { m.setField(lruiShift, v) }

// SetAT enables or disables address translation
func (m *MMUCR) SetAT(on bool) { m.set(atBit, on) }

// SetSV sets single virtual mode
func (m *MMUCR) SetSV(on bool) { m.set(svBit, on) }

// SetSQMD sets store queue privileged-only mode
func (m *MMUCR) SetSQMD(on bool) { m.set(sqmdBit, on) }

// SetTI sets or clears the invalidate request
func (m *MMUCR) SetTI(on bool) { m.set(tiBit, on) }

func (m *MMUCR) setField(shift uint, v uint32) {
	*m = MMUCR(uint32(*m)&^(field6<<shift) | (v&field6)<<shift)
}

func (m *MMUCR) set(bit uint32, status bool) {
	if status {
		*m |= MMUCR(bit)
	} else {
		*m &^= MMUCR(bit)
	}
}

// QACR - store queue address control register
type QACR uint32

// Area returns physical address bits 28..26 used by the queue
func (q QACR) Area() uint32 { return (uint32(q) & areaMask) >> areaShift }

// Base returns the physical base address the queue flushes to
// when address translation is off
func (q QACR) Base() uint32 { return q.Area() << 26 }

// Registers groups CCN registers the MMU works with.
type Registers struct {
	PTEH  PTEH
	PTEL  PTEL
	MMUCR MMUCR

	// TEA - TLB exception address
	TEA uint32

	// EXPEVT - exception event register
	EXPEVT uint32

	// QACR0 and QACR1
	QACR [2]QACR
}

// Reset puts registers to their power-on values
func (r *Registers) Reset() {
	*r = Registers{}
}
