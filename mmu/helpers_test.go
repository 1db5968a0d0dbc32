package mmu

import (
	"sh4/ccn"
	"sh4/sr"
)

func newTestMMU(cfg Config, memory Memory, handler ExceptionHandler) *MMU {
	return New(cfg, &ccn.Registers{}, new(sr.SR), memory, handler)
}

// page builds an entry out of VPN/PPN in 1KB units
func page(vpn, asid, ppn uint32, a ccn.Attr) Entry {
	return Entry{Address: ccn.NewPTEH(vpn, asid), Data: ccn.NewPTEL(ppn, a)}
}

var (
	rwDirty4K = ccn.Attr{Valid: true, Dirty: true, Size: 1, PR: 3}
	rwClean4K = ccn.Attr{Valid: true, Size: 1, PR: 3}
)

func privileged(m *MMU) { m.SR.SetMD(sr.PrivilegedMode) }
func user(m *MMU) { m.SR.SetMD(sr.UserMode) }
