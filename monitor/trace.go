package monitor

import (
	"github.com/google/btree"
	"github.com/rs/xid"

	"sh4/mmu"
)

// PageStat counts script accesses to one 1KB virtual page
type PageStat struct {
	Page    uint32 `json:"page"`
	Reads   int    `json:"reads"`
	Writes  int    `json:"writes"`
	Fetches int    `json:"fetches"`
	Faults  int    `json:"faults"`
}

// Less orders pages by virtual address
func (p *PageStat) Less(than btree.Item) bool {
	return p.Page < than.(*PageStat).Page
}

// trace records accesses per page, in address order. Every loaded script
// starts a new trace with its own run id.
type trace struct {
	run   xid.ID
	pages *btree.BTree
}

func newTrace() *trace {
	return &trace{run: xid.New(), pages: btree.New(4)}
}

func (t *trace) record(va uint32, access mmu.Access, faulted bool) {
	key := &PageStat{Page: va &^ 0x3FF}
	p, ok := t.pages.Get(key).(*PageStat)
	if !ok {
		p = key
		t.pages.ReplaceOrInsert(p)
	}
	switch access {
	case mmu.Read:
		p.Reads++
	case mmu.Write:
		p.Writes++
	case mmu.Fetch:
		p.Fetches++
	}
	if faulted {
		p.Faults++
	}
}

// stats returns a copy of the page counters, lowest address first
func (t *trace) stats() []PageStat {
	stats := make([]PageStat, 0, t.pages.Len())
	t.pages.Ascend(func(i btree.Item) bool {
		stats = append(stats, *i.(*PageStat))
		return true
	})
	return stats
}
