package monitor

import (
	"fmt"
	"sync"

	"sh4/ccn"
	"sh4/console"
	"sh4/interrupts"
	"sh4/mmu"
	"sh4/system"
)

// Monitor executes TLB scripts on a system. The script, the TLB dumps and
// the HTTP inspector all go through the same lock.
type Monitor struct {
	mu  sync.Mutex
	sys *system.System
	out console.Console

	script []Command
	next   int
	trace  *trace
}

// New returns a monitor writing command results to out
func New(sys *system.System, out console.Console) *Monitor {
	return &Monitor{sys: sys, out: out, trace: newTrace()}
}

// Load replaces the current script
func (m *Monitor) Load(cmds []Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = cmds
	m.next = 0
	m.trace = newTrace()
}

// RunID identifies the loaded script run
func (m *Monitor) RunID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trace.run.String()
}

// Pages returns access counters of every page the script touched,
// lowest address first
func (m *Monitor) Pages() []PageStat {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trace.stats()
}

// Done reports whether every loaded command has been executed
func (m *Monitor) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next >= len(m.script)
}

// Step executes the next script command. Returns false when the script
// is finished.
func (m *Monitor) Step() (bool, error) {
	m.mu.Lock()
	if m.next >= len(m.script) {
		m.mu.Unlock()
		return false, nil
	}
	cmd := m.script[m.next]
	m.next++
	m.mu.Unlock()

	res, err := m.Exec(cmd)
	if err != nil {
		return false, err
	}
	if err := m.out.WriteConsole(res); err != nil {
		return false, err
	}
	return true, nil
}

// Run executes the whole loaded script
func (m *Monitor) Run() error {
	for {
		more, err := m.Step()
		if err != nil || !more {
			return err
		}
	}
}

// Exec executes a single command and returns its result line
func (m *Monitor) Exec(cmd Command) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sys := m.sys
	regs := &sys.Regs
	arg := func(i int) uint32 { return uint32(cmd.Args[i]) }

	switch cmd.Name {
	case "utlb":
		index := int(arg(0))
		e := mmu.Entry{Address: ccn.PTEH(arg(1)), Data: ccn.PTEL(arg(2))}
		ok := sys.MMU.WriteUTLB(index, e)
		return fmt.Sprintf("utlb[%d] = %08x %08x sync %v", index, arg(1), arg(2), ok), nil

	case "ldtlb":
		index := regs.MMUCR.URC()
		ok := sys.MMU.LoadTLB()
		return fmt.Sprintf("ldtlb utlb[%d] = %08x %08x sync %v", index, uint32(regs.PTEH), uint32(regs.PTEL), ok), nil

	case "pteh":
		regs.PTEH = ccn.PTEH(arg(0))
		return fmt.Sprintf("pteh = %08x", arg(0)), nil

	case "ptel":
		regs.PTEL = ccn.PTEL(arg(0))
		return fmt.Sprintf("ptel = %08x", arg(0)), nil

	case "mmucr":
		sys.MMU.WriteMMUCR(ccn.MMUCR(arg(0)))
		return fmt.Sprintf("mmucr = %08x", uint32(regs.MMUCR)), nil

	case "qacr":
		regs.QACR[arg(0)] = ccn.QACR(arg(1))
		return fmt.Sprintf("qacr%d = %08x", arg(0), arg(1)), nil

	case "md":
		sys.SR.SetMD(arg(0))
		return fmt.Sprintf("sr = %08x %s", sys.SR.Get(), sys.SR.GetFlags()), nil

	case "vbr":
		sys.VBR = arg(0)
		return fmt.Sprintf("vbr = %08x", arg(0)), nil

	case "invalidate":
		sys.MMU.InvalidateAll()
		return "tlb invalidated", nil

	case "reset":
		sys.Reset()
		return "reset", nil

	case "rte":
		sys.Return()
		return fmt.Sprintf("rte pc = %08x sr = %08x %s", sys.PC, sys.SR.Get(), sys.SR.GetFlags()), nil

	case "r8", "r16", "r32", "r64":
		return m.read(cmd.Name, arg(0)), nil

	case "w8", "w16", "w32", "w64":
		return m.write(cmd.Name, arg(0), cmd.Args[1]), nil

	case "fetch":
		sys.PC = arg(0)
		opcode, ex := sys.Fetch()
		m.trace.record(arg(0), mmu.Fetch, ex != nil)
		if ex != nil {
			return exception(cmd.Name, arg(0), ex), nil
		}
		return fmt.Sprintf("fetch %08x = %04x", arg(0), opcode), nil

	case "sqw":
		var dest uint32
		var ok bool
		ex := sys.Run(func() { dest, ok = sys.MMU.TranslateSQW(arg(0)) })
		if ex != nil {
			return exception(cmd.Name, arg(0), ex), nil
		}
		if !ok {
			return fmt.Sprintf("sqw %08x not translated", arg(0)), nil
		}
		return fmt.Sprintf("sqw %08x -> %08x", arg(0), dest), nil

	case "pref":
		if ex := sys.Pref(arg(0)); ex != nil {
			return exception(cmd.Name, arg(0), ex), nil
		}
		return fmt.Sprintf("pref %08x", arg(0)), nil
	}
	return "", fmt.Errorf("line %d: unknown command %q", cmd.Line, cmd.Name)
}

func (m *Monitor) read(name string, addr uint32) string {
	mem := m.sys.MMU
	var v uint64
	var digits int
	ex := m.sys.Run(func() {
		switch name {
		case "r8":
			v, digits = uint64(mem.ReadMem8(addr)), 2
		case "r16":
			v, digits = uint64(mem.ReadMem16(addr)), 4
		case "r32":
			v, digits = uint64(mem.ReadMem32(addr)), 8
		case "r64":
			v, digits = mem.ReadMem64(addr), 16
		}
	})
	m.trace.record(addr, mmu.Read, ex != nil)
	if ex != nil {
		return exception(name, addr, ex)
	}
	return fmt.Sprintf("%s %08x = %0*x", name, addr, digits, v)
}

func (m *Monitor) write(name string, addr uint32, v uint64) string {
	mem := m.sys.MMU
	ex := m.sys.Run(func() {
		switch name {
		case "w8":
			mem.WriteMem8(addr, uint8(v))
		case "w16":
			mem.WriteMem16(addr, uint16(v))
		case "w32":
			mem.WriteMem32(addr, uint32(v))
		case "w64":
			mem.WriteMem64(addr, v)
		}
	})
	m.trace.record(addr, mmu.Write, ex != nil)
	if ex != nil {
		return exception(name, addr, ex)
	}
	return fmt.Sprintf("%s %08x <- %x", name, addr, v)
}

func exception(name string, addr uint32, ex *interrupts.Exception) string {
	return fmt.Sprintf("%s %08x: exception %03x vector %03x pc %08x", name, addr, ex.Event, ex.Vector, ex.PC)
}
