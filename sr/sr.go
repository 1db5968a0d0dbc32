package sr

/**
SH4 status register package
*/

// status register layout. Values here are bits, not the
// powers of 2
const tFlag = 0
const sFlag = 1
const qFlag = 8
const mFlag = 9
const fdFlag = 15
const blFlag = 28
const rbFlag = 29
const mdFlag = 30

// imask occupies bits 4..7
const imaskShift = 4
const imaskMask = 0xf << imaskShift

// UserMode - processor mode
const UserMode = 0

// PrivilegedMode - processor mode
const PrivilegedMode = 1

// ResetValue is the SR content after a power-on reset:
// MD=1, RB=1, BL=1, IMASK=0xf
const ResetValue = 0x700000f0

// SR keeps processor status register
type SR uint32

// Get returns current status register
func (sr *SR) Get() uint32 {
	return uint32(*sr)
}

// Set SR value
func (sr *SR) Set(v uint32) {
	*sr = SR(v)
}

// MD returns 1 for privileged and 0 for user mode
func (sr *SR) MD() uint32 {
	return uint32(*sr>>mdFlag) & 1
}

// IsPrivileged is true when MD is set
func (sr *SR) IsPrivileged() bool {
	return sr.MD() == PrivilegedMode
}

// SetMD switches between user (0) and privileged (1) mode
func (sr *SR) SetMD(m uint32) {
	sr.setFlag(mdFlag, m != 0)
}

// RB returns register bank select flag
func (sr *SR) RB() bool {
	return sr.getFlag(rbFlag)
}

// SetRB sets register bank flag
func (sr *SR) SetRB(status bool) {
	sr.setFlag(rbFlag, status)
}

// BL returns the exception/interrupt block flag
func (sr *SR) BL() bool {
	return sr.getFlag(blFlag)
}

// SetBL sets the block flag
func (sr *SR) SetBL(status bool) {
	sr.setFlag(blFlag, status)
}

// FD returns the FPU disable flag
func (sr *SR) FD() bool {
	return sr.getFlag(fdFlag)
}

// SetFD sets the FPU disable flag
func (sr *SR) SetFD(status bool) {
	sr.setFlag(fdFlag, status)
}

// M returns M flag
func (sr *SR) M() bool {
	return sr.getFlag(mFlag)
}

// Q returns Q flag
func (sr *SR) Q() bool {
	return sr.getFlag(qFlag)
}

// S returns S flag
func (sr *SR) S() bool {
	return sr.getFlag(sFlag)
}

// T returns T flag
func (sr *SR) T() bool {
	return sr.getFlag(tFlag)
}

// SetT sets processor T flag
func (sr *SR) SetT(status bool) {
	sr.setFlag(tFlag, status)
}

// IMask - interrupt mask level
func (sr *SR) IMask() uint32 {
	return (uint32(*sr) & imaskMask) >> imaskShift
}

// SetIMask sets the interrupt mask level
func (sr *SR) SetIMask(level uint32) {
	*sr = (*sr &^ imaskMask) | SR((level<<imaskShift)&imaskMask)
}

// generic get flag function
func (sr *SR) getFlag(flag uint) bool {
	return (*sr & (1 << flag)) > 0
}

// generic set flag function
func (sr *SR) setFlag(flag uint, status bool) {
	if status {
		*sr |= 1 << flag
	} else {
		*sr &^= 1 << flag
	}
}

// GetFlags returns set flags
func (sr *SR) GetFlags() string {
	var flags string
	if sr.IsPrivileged() {
		flags = "P"
	} else {
		flags = "U"
	}
	if sr.RB() {
		flags += "R"
	} else {
		flags += " "
	}
	if sr.BL() {
		flags += "B"
	} else {
		flags += " "
	}
	if sr.T() {
		flags += "T"
	} else {
		flags += " "
	}
	return "[" + flags + "]"
}
