package monitor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"sh4/mmu"
)

type entryJSON struct {
	Index        int    `json:"index"`
	VPN          uint32 `json:"vpn"`
	ASID         uint32 `json:"asid"`
	PPN          uint32 `json:"ppn"`
	Size         string `json:"size"`
	PR           uint32 `json:"pr"`
	Valid        bool   `json:"valid"`
	Dirty        bool   `json:"dirty"`
	Shared       bool   `json:"shared"`
	Cacheable    bool   `json:"cacheable"`
	WriteThrough bool   `json:"write_through"`
}

type mmucrJSON struct {
	Value uint32 `json:"value"`
	AT    bool   `json:"at"`
	SV    bool   `json:"sv"`
	SQMD  bool   `json:"sqmd"`
	URC   uint32 `json:"urc"`
	URB   uint32 `json:"urb"`
	LRUI  uint32 `json:"lrui"`
}

type pagesJSON struct {
	Run   string     `json:"run"`
	Pages []PageStat `json:"pages"`
}

type exceptionJSON struct {
	Event   uint32 `json:"event"`
	Vector  uint32 `json:"vector"`
	Address uint32 `json:"address"`
	PC      uint32 `json:"pc"`
	Msg     string `json:"msg"`
}

type translationJSON struct {
	VA    uint32 `json:"va"`
	PA    uint32 `json:"pa"`
	Fault string `json:"fault"`
}

func toJSON(i int, e mmu.Entry) entryJSON {
	d := e.Data
	return entryJSON{
		Index:        i,
		VPN:          e.Address.VPN(),
		ASID:         e.Address.ASID(),
		PPN:          d.PPN(),
		Size:         sizeNames[d.SZ()],
		PR:           d.PR(),
		Valid:        d.V(),
		Dirty:        d.D(),
		Shared:       d.SH(),
		Cacheable:    d.C(),
		WriteThrough: d.WT(),
	}
}

// Handler returns the HTTP inspector:
//
//	GET /utlb                     valid UTLB entries (?all=1 for every entry)
//	GET /itlb                     ITLB entries
//	GET /mmucr                    decoded MMUCR
//	GET /pages                    pages accessed by the current script
//	GET /exceptions               last delivered exceptions, oldest first
//	GET /translate/{kind}/{addr}  translate without raising, kind is read, write, fetch or sq
//
// Translations go through the real engines, so they step URC and may
// fill the ITLB like the access would.
func (m *Monitor) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/utlb", m.handleUTLB).Methods(http.MethodGet)
	r.HandleFunc("/itlb", m.handleITLB).Methods(http.MethodGet)
	r.HandleFunc("/mmucr", m.handleMMUCR).Methods(http.MethodGet)
	r.HandleFunc("/pages", m.handlePages).Methods(http.MethodGet)
	r.HandleFunc("/exceptions", m.handleExceptions).Methods(http.MethodGet)
	r.HandleFunc("/translate/{kind}/{addr}", m.handleTranslate).Methods(http.MethodGet)
	return r
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (m *Monitor) handleUTLB(w http.ResponseWriter, r *http.Request) {
	all := r.URL.Query().Get("all") != ""

	m.mu.Lock()
	entries := []entryJSON{}
	for i, e := range m.sys.MMU.UTLB {
		if all || e.Data.V() {
			entries = append(entries, toJSON(i, e))
		}
	}
	m.mu.Unlock()

	writeJSON(w, entries)
}

func (m *Monitor) handleITLB(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	entries := make([]entryJSON, 0, mmu.ITLBSize)
	for i, e := range m.sys.MMU.ITLB {
		entries = append(entries, toJSON(i, e))
	}
	m.mu.Unlock()

	writeJSON(w, entries)
}

func (m *Monitor) handleMMUCR(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	v := m.sys.Regs.MMUCR
	m.mu.Unlock()

	writeJSON(w, mmucrJSON{
		Value: uint32(v),
		AT:    v.AT(),
		SV:    v.SV(),
		SQMD:  v.SQMD(),
		URC:   v.URC(),
		URB:   v.URB(),
		LRUI:  v.LRUI(),
	})
}

func (m *Monitor) handlePages(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	resp := pagesJSON{Run: m.trace.run.String(), Pages: m.trace.stats()}
	m.mu.Unlock()

	writeJSON(w, resp)
}

func (m *Monitor) handleExceptions(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	history := m.sys.History.Items()
	m.mu.Unlock()

	resp := make([]exceptionJSON, 0, len(history))
	for _, ex := range history {
		resp = append(resp, exceptionJSON{
			Event:   ex.Event,
			Vector:  ex.Vector,
			Address: ex.Address,
			PC:      ex.PC,
			Msg:     ex.Msg,
		})
	}
	writeJSON(w, resp)
}

func (m *Monitor) handleTranslate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	addr, err := strconv.ParseUint(vars["addr"], 0, 32)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	va := uint32(addr)

	m.mu.Lock()
	defer m.mu.Unlock()
	core := m.sys.MMU

	var pa uint32
	var fault mmu.Fault
	switch vars["kind"] {
	case "read":
		pa, fault = core.TranslateData(va, mmu.Read)
	case "write":
		pa, fault = core.TranslateData(va, mmu.Write)
	case "fetch":
		pa, fault = core.TranslateInstruction(va)
	case "sq":
		pa, fault = core.TranslateStoreQueue(va, mmu.Write)
	default:
		http.Error(w, "unknown translation "+vars["kind"], http.StatusBadRequest)
		return
	}
	writeJSON(w, translationJSON{VA: va, PA: pa, Fault: fault.String()})
}
