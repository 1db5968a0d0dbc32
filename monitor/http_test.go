package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func get(t *testing.T, srv *httptest.Server, path string, v interface{}) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatal(err)
		}
	}
	return resp.StatusCode
}

func TestHandler_TLB(t *testing.T) {
	m, _ := newMonitor(t)
	runScript(t, m, "pteh 5\nmmucr 0x1\nutlb 7 0x00400005 0x00800174\nfetch 0x00400000\n")
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	var utlb []entryJSON
	if code := get(t, srv, "/utlb", &utlb); code != http.StatusOK {
		t.Fatalf("/utlb: %d", code)
	}
	if len(utlb) != 1 {
		t.Fatalf("/utlb returned %d entries, want 1", len(utlb))
	}
	want := entryJSON{Index: 7, VPN: 0x1000, ASID: 5, PPN: 0x2000, Size: "4K", PR: 3, Valid: true, Dirty: true}
	if utlb[0] != want {
		t.Errorf("/utlb = %+v, want %+v", utlb[0], want)
	}

	var all []entryJSON
	get(t, srv, "/utlb?all=1", &all)
	if len(all) != 64 {
		t.Errorf("/utlb?all=1 returned %d entries", len(all))
	}

	var itlb []entryJSON
	get(t, srv, "/itlb", &itlb)
	if len(itlb) != 4 || !itlb[3].Valid || itlb[3].VPN != 0x1000 {
		t.Errorf("/itlb = %+v", itlb)
	}

	var mmucr mmucrJSON
	get(t, srv, "/mmucr", &mmucr)
	if !mmucr.AT || mmucr.LRUI != 0x0B || mmucr.URC != 1 {
		t.Errorf("/mmucr = %+v", mmucr)
	}
}

func TestHandler_Translate(t *testing.T) {
	m, _ := newMonitor(t)
	runScript(t, m, "pteh 5\nmmucr 0x1\nutlb 0 0x00400005 0x00800174\nutlb 1 0x00401005 0x00801170\n")
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	tests := []struct {
		path      string
		wantCode  int
		wantPA    uint32
		wantFault string
	}{
		{"/translate/read/0x00400123", http.StatusOK, 0x00800123, "NONE"},
		{"/translate/write/0x00400123", http.StatusOK, 0x00800123, "NONE"},
		{"/translate/write/0x00401000", http.StatusOK, 0, "FIRSTWRITE"},
		{"/translate/read/0x00500000", http.StatusOK, 0, "TLB_MISS"},
		{"/translate/fetch/0x00400010", http.StatusOK, 0x00800010, "NONE"},
		{"/translate/sq/0xe0000000", http.StatusOK, 0, "TLB_MISS"},
		{"/translate/read/0x8c000000", http.StatusOK, 0x8C000000, "NONE"},
		{"/translate/jump/0x0", http.StatusBadRequest, 0, ""},
		{"/translate/read/zzz", http.StatusBadRequest, 0, ""},
		{"/translate/read", http.StatusNotFound, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got translationJSON
			code := get(t, srv, tt.path, &got)
			if code != tt.wantCode {
				t.Fatalf("status = %d, want %d", code, tt.wantCode)
			}
			if code != http.StatusOK {
				return
			}
			if got.PA != tt.wantPA || got.Fault != tt.wantFault {
				t.Errorf("got %#08x %s, want %#08x %s", got.PA, got.Fault, tt.wantPA, tt.wantFault)
			}
		})
	}
}

func TestHandler_Exceptions(t *testing.T) {
	m, _ := newMonitor(t)
	runScript(t, m, "mmucr 0x1\nr32 0x00400000\nw16 0x00400001 1\n")
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	var got []exceptionJSON
	if code := get(t, srv, "/exceptions", &got); code != http.StatusOK {
		t.Fatalf("/exceptions: %d", code)
	}
	if len(got) != 2 {
		t.Fatalf("/exceptions = %+v", got)
	}
	if got[0].Event != 0x040 || got[0].Vector != 0x400 || got[0].Address != 0x00400000 {
		t.Errorf("first exception = %+v", got[0])
	}
	if got[1].Event != 0x100 || got[1].Vector != 0x100 || got[1].Msg != "BADADDR on write" {
		t.Errorf("second exception = %+v", got[1])
	}
}
