package mmu

import "sh4/ccn"

// TLB sizes
const (
	UTLBSize = 64
	ITLBSize = 4
)

// address space layout
const (
	// kernelBit set -> P1..P4, not accessible from user mode
	kernelBit = 0x80000000

	// regionMask selects 64MB windows
	regionMask = 0xFC000000

	// StoreQueueBase is the start of the store queue window (64MB)
	StoreQueueBase = 0xE0000000

	// identityWindow is accessed without translation in privileged mode
	identityWindow = 0x7C000000
)

// page masks by SZ1*2+SZ0
var pageMask = [4]uint32{
	0xFFFFFC00, // 1KB page
	0xFFFFF000, // 4KB page
	0xFFFF0000, // 64KB page
	0xFFF00000, // 1MB page
}

// identity mapped areas by the top 3 address bits:
// P0/U0 and P3 are translated, P1, P2 and P4 are not
var fixedArea = [8]bool{
	false, false, false, false, // P0/U0
	true,  // P1
	true,  // P2
	false, // P3
	true,  // P4
}

func identityRegion(va uint32) bool { return fixedArea[va>>29] }

func inStoreQueue(va uint32) bool { return va&regionMask == StoreQueueBase }

// Entry is a single UTLB or ITLB entry
type Entry struct {
	Address ccn.PTEH
	Data    ccn.PTEL
}

// Mask returns the page mask for the entry size
func (e Entry) Mask() uint32 { return pageMask[e.Data.SZ()] }

// PageSize returns page size in bytes
func (e Entry) PageSize() uint32 { return ^e.Mask() + 1 }

// Translate maps va through the entry: PPN for the page bits,
// va for the offset bits. Does not check if the entry matches.
func (e Entry) Translate(va uint32) uint32 {
	mask := e.Mask()
	return e.Data.PageAddress()&mask | va&^mask
}

// UserAccessible is true when PR allows user mode access
func (e Entry) UserAccessible() bool { return e.Data.PR()&2 != 0 }

// Writable is true when PR allows writes
func (e Entry) Writable() bool { return e.Data.PR()&1 != 0 }

// Match reports whether entry e covers va.
// asid is the current PTEH.ASID, singleVirtual is MMUCR.SV. Shared pages,
// and any page in privileged mode with SV set, match regardless of ASID.
func Match(va uint32, e Entry, asid uint32, privileged, singleVirtual bool) bool {
	if !e.Data.V() {
		return false
	}
	mask := e.Mask()
	if e.Address.PageAddress()&mask != va&mask {
		return false
	}
	if e.Data.SH() || (privileged && singleVirtual) {
		return true
	}
	return e.Address.ASID() == asid
}
