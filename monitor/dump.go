package monitor

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"sh4/mmu"
)

var (
	validEntry   = color.New(color.FgGreen).SprintfFunc()
	invalidEntry = color.New(color.FgHiBlack).SprintfFunc()
	heading      = color.New(color.Bold).SprintFunc()
)

var sizeNames = [4]string{"1K", "4K", "64K", "1M"}

// entryFlags renders V, D, SH, C and WT, '-' for cleared bits
func entryFlags(e mmu.Entry) string {
	flags := []byte("-----")
	d := e.Data
	for i, set := range []bool{d.V(), d.D(), d.SH(), d.C(), d.WT()} {
		if set {
			flags[i] = "VDSCW"[i]
		}
	}
	return string(flags)
}

func formatEntry(i int, e mmu.Entry) string {
	line := fmt.Sprintf("%2d %08x asid %02x -> %08x %-3s pr %d %s", i,
		e.Address.PageAddress(), e.Address.ASID(), e.Data.PageAddress(),
		sizeNames[e.Data.SZ()], e.Data.PR(), entryFlags(e))
	if e.Data.V() {
		return validEntry("%s", line)
	}
	return invalidEntry("%s", line)
}

func dumpEntries(w io.Writer, title string, entries []mmu.Entry, all bool) {
	fmt.Fprintln(w, heading(title))
	for i, e := range entries {
		if all || e.Data.V() {
			fmt.Fprintln(w, formatEntry(i, e))
		}
	}
}

// DumpUTLB writes the UTLB, only valid entries unless all is set
func (m *Monitor) DumpUTLB(w io.Writer, all bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dumpEntries(w, "UTLB", m.sys.MMU.UTLB[:], all)
}

// DumpITLB writes all four ITLB entries and the LRU state
func (m *Monitor) DumpITLB(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dumpEntries(w, "ITLB", m.sys.MMU.ITLB[:], true)
	fmt.Fprintf(w, "LRUI %06b\n", m.sys.Regs.MMUCR.LRUI())
}

// DumpRegisters writes the processor and MMU control registers
func (m *Monitor) DumpRegisters(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mmucr := m.sys.Regs.MMUCR
	fmt.Fprintln(w, m.sys.DumpRegisters())
	fmt.Fprintf(w, "AT %v SV %v SQMD %v URC %d URB %d exceptions %d\n",
		mmucr.AT(), mmucr.SV(), mmucr.SQMD(), mmucr.URC(), mmucr.URB(), m.sys.Exceptions)
}
