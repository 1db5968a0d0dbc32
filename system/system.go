package system

import (
	"fmt"
	"io"
	"log"

	"sh4/ccn"
	"sh4/interrupts"
	"sh4/memory"
	"sh4/mmu"
	"sh4/sr"
)

// ResetPC - execution starts here after power on reset
const ResetPC = 0xA0000000

// HistorySize is the number of exceptions kept in History
const HistorySize = 16

// System definition: the bits of the SH4 the MMU needs around it.
// It delivers exceptions the MMU raises the way the CPU would.
type System struct {
	MMU    *mmu.MMU
	Memory *memory.RAM
	Regs   ccn.Registers
	SR     sr.SR

	// PC of the instruction being executed
	PC uint32

	// exception state
	VBR uint32
	SPC uint32
	SSR uint32

	// Exceptions counts delivered exceptions
	Exceptions int

	// History keeps the last delivered exceptions
	History *History

	log *log.Logger
}

// New initializes the emulated system with memSize bytes of RAM
func New(cfg mmu.Config, memSize int, logger *log.Logger) (*System, error) {
	ram, err := memory.New(memSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sys := &System{Memory: ram, History: NewHistory(HistorySize), log: logger}
	if cfg.Logger == nil {
		cfg.Logger = logger
	}
	sys.MMU = mmu.New(cfg, &sys.Regs, &sys.SR, ram, sys)
	sys.Reset()
	return sys, nil
}

// Reset puts the system into power on reset state
func (sys *System) Reset() {
	sys.Regs.Reset()
	sys.SR.Set(sr.ResetValue)
	sys.MMU.Reset()
	sys.Memory.Reset()
	sys.PC = ResetPC
	sys.VBR = 0
	sys.SPC = 0
	sys.SSR = 0
	sys.Exceptions = 0
	sys.History.Clear()
}

// SavedPC is the PC saved to SPC when an exception is raised
func (sys *System) SavedPC() uint32 {
	return sys.PC
}

// RaiseException unwinds the current access. Run recovers it.
func (sys *System) RaiseException(ex interrupts.Exception) {
	panic(ex)
}

// Run executes op, delivering any exception raised during it.
// Returns the exception, nil if op completed.
func (sys *System) Run(op func()) (raised *interrupts.Exception) {
	defer func() {
		t := recover()
		switch t := t.(type) {
		case interrupts.Exception:
			sys.log.Printf("EXCEPTION %#03x at %#08x: %s\n", t.Event, t.Address, t.Msg)
			sys.trap(t)
			raised = &t
		case nil:
			// ignore
		default:
			panic(t)
		}
	}()

	op()
	return nil
}

// trap enters the exception handler:
//  1. save PC and SR to SPC and SSR
//  2. EXPEVT gets the event code
//  3. SR.MD, SR.RB and SR.BL are set
//  4. execution continues at VBR + vector offset
func (sys *System) trap(ex interrupts.Exception) {
	if sys.SR.BL() {
		// exception while blocked, on real hardware it's a reset
		sys.log.Printf("exception %#03x with SR.BL set\n", ex.Event)
	}
	sys.SPC = ex.PC
	sys.SSR = sys.SR.Get()
	sys.Regs.EXPEVT = ex.Event

	sys.SR.SetMD(sr.PrivilegedMode)
	sys.SR.SetRB(true)
	sys.SR.SetBL(true)

	sys.PC = sys.VBR + ex.Vector
	sys.Exceptions++
	sys.History.Add(ex)
}

// Return is RTE: restores SR and PC after an exception handler
func (sys *System) Return() {
	sys.SR.Set(sys.SSR)
	sys.PC = sys.SPC
}

// Fetch reads the instruction at PC and steps PC
func (sys *System) Fetch() (opcode uint16, raised *interrupts.Exception) {
	raised = sys.Run(func() {
		opcode = sys.MMU.IReadMem16(sys.PC)
		sys.PC += 2
	})
	return opcode, raised
}

// Pref is the PREF instruction on a store queue address: the queue
// selected by bit 5 is written back to its translated address.
// Other addresses are ignored (cache prefetch).
func (sys *System) Pref(addr uint32) (raised *interrupts.Exception) {
	if addr&0xFC000000 != mmu.StoreQueueBase {
		return nil
	}
	return sys.Run(func() {
		dest, ok := sys.MMU.TranslateSQW(addr)
		if !ok {
			return
		}
		sys.Memory.FlushStoreQueue(int(addr>>5)&1, dest)
	})
}

// DumpRegisters writes processor state relevant to the MMU
func (sys *System) DumpRegisters() string {
	return fmt.Sprintf("PC %08x SR %08x %s SPC %08x EXPEVT %03x TEA %08x PTEH %08x MMUCR %08x",
		sys.PC, sys.SR.Get(), sys.SR.GetFlags(), sys.SPC, sys.Regs.EXPEVT,
		sys.Regs.TEA, uint32(sys.Regs.PTEH), uint32(sys.Regs.MMUCR))
}
