package mmu

// data translates a data access of the given size. Unaligned accesses
// fault before any translation. Faults are raised, ok is false then and
// memory must not be touched.
func (m *MMU) data(addr, size uint32, access Access) (uint32, bool) {
	if addr&(size-1) != 0 {
		m.Raise(FaultBadAddr, addr, access)
		return 0, false
	}
	pa, fault := m.TranslateData(addr, access)
	if fault != FaultNone {
		m.Raise(fault, addr, access)
		return 0, false
	}
	return pa, true
}

// ReadMem8 reads a byte through the MMU
func (m *MMU) ReadMem8(addr uint32) uint8 {
	pa, ok := m.data(addr, 1, Read)
	if !ok {
		return 0
	}
	return m.memory.Read8(pa)
}

// ReadMem16 reads a 16 bit word through the MMU
func (m *MMU) ReadMem16(addr uint32) uint16 {
	pa, ok := m.data(addr, 2, Read)
	if !ok {
		return 0
	}
	return m.memory.Read16(pa)
}

// ReadMem32 reads a 32 bit long word through the MMU
func (m *MMU) ReadMem32(addr uint32) uint32 {
	pa, ok := m.data(addr, 4, Read)
	if !ok {
		return 0
	}
	return m.memory.Read32(pa)
}

// ReadMem64 reads 64 bits through the MMU
func (m *MMU) ReadMem64(addr uint32) uint64 {
	pa, ok := m.data(addr, 8, Read)
	if !ok {
		return 0
	}
	return m.memory.Read64(pa)
}

// WriteMem8 writes a byte through the MMU
func (m *MMU) WriteMem8(addr uint32, data uint8) {
	if pa, ok := m.data(addr, 1, Write); ok {
		m.memory.Write8(pa, data)
	}
}

// WriteMem16 writes a 16 bit word through the MMU
func (m *MMU) WriteMem16(addr uint32, data uint16) {
	if pa, ok := m.data(addr, 2, Write); ok {
		m.memory.Write16(pa, data)
	}
}

// WriteMem32 writes a 32 bit long word through the MMU
func (m *MMU) WriteMem32(addr uint32, data uint32) {
	if pa, ok := m.data(addr, 4, Write); ok {
		m.memory.Write32(pa, data)
	}
}

// WriteMem64 writes 64 bits through the MMU
func (m *MMU) WriteMem64(addr uint32, data uint64) {
	if pa, ok := m.data(addr, 8, Write); ok {
		m.memory.Write64(pa, data)
	}
}

// IReadMem16 fetches an instruction through the ITLB.
// A protection violation on fetch is an instruction TLB protection
// violation, raised as EXECPROT.
func (m *MMU) IReadMem16(addr uint32) uint16 {
	if addr&1 != 0 {
		m.Raise(FaultBadAddr, addr, Fetch)
		return 0
	}
	pa, fault := m.TranslateInstruction(addr)
	if fault == FaultProtected {
		fault = FaultExecProt
	}
	if fault != FaultNone {
		m.Raise(fault, addr, Fetch)
		return 0
	}
	return m.memory.Read16(pa)
}
