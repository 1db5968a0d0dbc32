package mmu

// Fault is the result of a translation
type Fault int

// translation results
const (
	FaultNone Fault = iota
	FaultTLBMiss
	FaultTLBMultiHit
	FaultProtected
	FaultFirstWrite
	FaultBadAddr
	FaultExecProt
)

var faultNames = [...]string{
	FaultNone:        "NONE",
	FaultTLBMiss:     "TLB_MISS",
	FaultTLBMultiHit: "TLB_MULTIHIT",
	FaultProtected:   "PROTECTED",
	FaultFirstWrite:  "FIRSTWRITE",
	FaultBadAddr:     "BADADDR",
	FaultExecProt:    "EXECPROT",
}

func (f Fault) String() string {
	if f < 0 || int(f) >= len(faultNames) {
		return "UNKNOWN"
	}
	return faultNames[f]
}

// Access is the translation type
type Access int

// translation types
const (
	Read Access = iota
	Write
	Fetch
)

func (a Access) String() string {
	switch a {
	case Read:
		return "read"
	case Write:
		return "write"
	case Fetch:
		return "fetch"
	}
	return "unknown"
}
