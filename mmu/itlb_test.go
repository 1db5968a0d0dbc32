package mmu

import (
	"testing"

	"sh4/ccn"
)

func TestLRUTable(t *testing.T) {
	populated := 0
	perEntry := [ITLBSize]int{}
	for state, e := range itlbLRUUse {
		if e < 0 {
			continue
		}
		populated++
		perEntry[e]++

		// using the victim must lead to a state with another victim
		next := uint32(state)&itlbLRUAnd[e] | itlbLRUOr[e]
		if itlbLRUUse[next] == e {
			t.Errorf("state %#02x: entry %d is still the victim after use", state, e)
		}
	}
	if populated != 32 {
		t.Errorf("populated states = %d, want 32", populated)
	}
	for e, n := range perEntry {
		if n != 8 {
			t.Errorf("entry %d is victim for %d states, want 8", e, n)
		}
	}

	known := []struct {
		state uint32
		want  int
	}{
		{0x38, 0},
		{0x3F, 0},
		{0x06, 1},
		{0x07, 1},
		{0x01, 2},
		{0x21, 2},
		{0x00, 3},
		{0x0B, 2},
	}
	for _, k := range known {
		if got := lruVictim(k.state); got != k.want {
			t.Errorf("lruVictim(%#02x) = %d, want %d", k.state, got, k.want)
		}
	}
}

func TestLRUVictimUnreachable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for state 0x02")
		}
	}()
	lruVictim(0x02)
}

// itlbTestMMU returns a privileged MMU with AT set and six 4KB pages in
// the UTLB, virtual page i at 0x00400000 + i*4K mapped 1:1 to 0x01000000
// + i*4K.
func itlbTestMMU() *MMU {
	m := newTestMMU(Config{Full: true}, nil, nil)
	m.Regs.MMUCR.SetAT(true)
	privileged(m)
	for i := uint32(0); i < 6; i++ {
		m.UTLB[10+i] = page(0x1000+i*4, 0, 0x4000+i*4, rwDirty4K)
	}
	return m
}

func pageVA(i uint32) uint32 { return 0x00400000 + i*0x1000 }

func TestMMU_TranslateInstructionFillOrder(t *testing.T) {
	m := itlbTestMMU()

	wantSlot := []int{3, 2, 1, 0}
	for i, slot := range wantSlot {
		va := pageVA(uint32(i)) + 0x42
		pa, fault := m.TranslateInstruction(va)
		if fault != FaultNone {
			t.Fatalf("fetch %#08x: %v", va, fault)
		}
		if want := 0x01000042 + uint32(i)*0x1000; pa != want {
			t.Errorf("fetch %#08x = %#08x, want %#08x", va, pa, want)
		}
		if m.ITLB[slot] != m.UTLB[10+i] {
			t.Errorf("page %d not loaded into ITLB slot %d", i, slot)
		}
	}
	if lrui := m.Regs.MMUCR.LRUI(); lrui != 0 {
		t.Errorf("LRUI after filling = %#02x, want 0", lrui)
	}

	// page 4 evicts page 0, then page 5 evicts page 1
	if _, fault := m.TranslateInstruction(pageVA(4)); fault != FaultNone {
		t.Fatalf("fetch page 4: %v", fault)
	}
	if m.ITLB[3] != m.UTLB[14] {
		t.Errorf("page 4 not loaded into ITLB slot 3")
	}
	if _, fault := m.TranslateInstruction(pageVA(5)); fault != FaultNone {
		t.Fatalf("fetch page 5: %v", fault)
	}
	if m.ITLB[2] != m.UTLB[15] {
		t.Errorf("page 5 not loaded into ITLB slot 2")
	}
	// pages 2 and 3 are still cached
	if m.ITLB[1] != m.UTLB[12] || m.ITLB[0] != m.UTLB[13] {
		t.Errorf("pages 2 and 3 were evicted: %v", m.ITLB)
	}
}

func TestMMU_TranslateInstructionLRUSequence(t *testing.T) {
	m := itlbTestMMU()
	for i := uint32(0); i < 4; i++ {
		m.TranslateInstruction(pageVA(i))
	}
	// slots 3..0 now hold pages 0..3, touch the slots 0, 1, 2, 3 in order
	for _, i := range []uint32{3, 2, 1, 0} {
		m.TranslateInstruction(pageVA(i))
	}
	if lrui := m.Regs.MMUCR.LRUI(); lrui != 0x3F {
		t.Fatalf("LRUI = %#02x, want 0x3F", lrui)
	}
	if v := lruVictim(m.Regs.MMUCR.LRUI()); v != 0 {
		t.Errorf("victim = %d, want 0", v)
	}

	m.TranslateInstruction(pageVA(3)) // slot 0
	if lrui := m.Regs.MMUCR.LRUI(); lrui != 0x07 {
		t.Errorf("LRUI = %#02x, want 0x07", lrui)
	}
	m.TranslateInstruction(pageVA(2)) // slot 1
	if lrui := m.Regs.MMUCR.LRUI(); lrui != 0x21 {
		t.Errorf("LRUI = %#02x, want 0x21", lrui)
	}
	if v := lruVictim(m.Regs.MMUCR.LRUI()); v != 2 {
		t.Errorf("victim = %d, want 2", v)
	}
}

func TestMMU_TranslateInstructionHitKeepsURC(t *testing.T) {
	m := itlbTestMMU()

	m.TranslateInstruction(pageVA(0))
	urc := m.Regs.MMUCR.URC()
	if urc != 1 {
		t.Errorf("URC after a miss = %d, want 1", urc)
	}

	for n := 0; n < 3; n++ {
		if _, fault := m.TranslateInstruction(pageVA(0) + uint32(n)*2); fault != FaultNone {
			t.Fatalf("hit: %v", fault)
		}
	}
	if got := m.Regs.MMUCR.URC(); got != urc {
		t.Errorf("URC after hits = %d, want %d", got, urc)
	}
}

func TestMMU_TranslateInstructionFaults(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *MMU)
		va    uint32
		want  Fault
	}{
		{"UTLB miss", func(m *MMU) {}, 0x00800000, FaultTLBMiss},
		{"UTLB multi-hit", func(m *MMU) {
			m.UTLB[40] = page(0x1000, 0, 0x8000, rwDirty4K)
		}, pageVA(0), FaultTLBMultiHit},
		{"ITLB multi-hit", func(m *MMU) {
			m.ITLB[0] = m.UTLB[10]
			m.ITLB[1] = m.UTLB[10]
		}, pageVA(0), FaultTLBMultiHit},
		{"user fetch of privileged page", func(m *MMU) {
			m.UTLB[10] = page(0x1000, 0, 0x4000, ccn.Attr{Valid: true, Size: 1, PR: 1})
			user(m)
		}, pageVA(0), FaultProtected},
		{"user fetch from store queue", func(m *MMU) {
			user(m)
		}, 0xE0000000, FaultBadAddr},
		{"user fetch from P4", func(m *MMU) {
			user(m)
		}, 0xFF000000, FaultBadAddr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := itlbTestMMU()
			tt.setup(m)
			itlb := m.ITLB
			pa, fault := m.TranslateInstruction(tt.va)
			if fault != tt.want || pa != 0 {
				t.Errorf("TranslateInstruction(%#08x) = %#08x, %v, want 0, %v", tt.va, pa, fault, tt.want)
			}
			if tt.want != FaultProtected && m.ITLB != itlb {
				t.Errorf("ITLB changed on %v", fault)
			}
		})
	}
}

func TestMMU_TranslateInstructionUserPage(t *testing.T) {
	m := itlbTestMMU()
	user(m)
	pa, fault := m.TranslateInstruction(pageVA(1) + 0x10)
	if fault != FaultNone || pa != 0x01001010 {
		t.Errorf("user fetch = %#08x, %v", pa, fault)
	}
}
