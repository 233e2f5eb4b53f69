package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordorate/internal/rating"
)

func TestRouterReturnsServiceUnavailableBeforeFirstReport(t *testing.T) {
	snap := &Snapshot{}
	srv := httptest.NewServer(Router(snap))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/report")
	if err != nil {
		t.Fatalf("GET /api/report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestRouterServesStoredReport(t *testing.T) {
	snap := &Snapshot{}
	snap.Store(&rating.Report{
		WhiteAdv: 15,
		Competitors: []rating.CompetitorReport{
			{Index: 0, Name: "Alice", Rating: 1600},
		},
	})
	srv := httptest.NewServer(Router(snap))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/report")
	if err != nil {
		t.Fatalf("GET /api/report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got rating.Report
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.WhiteAdv != 15 || len(got.Competitors) != 1 || got.Competitors[0].Name != "Alice" {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestRouterCompetitorLookup(t *testing.T) {
	snap := &Snapshot{}
	snap.Store(&rating.Report{
		Competitors: []rating.CompetitorReport{
			{Index: 0, Name: "Alice", Rating: 1600},
			{Index: 1, Name: "Bob", Rating: 1500},
		},
	})
	srv := httptest.NewServer(Router(snap))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/report/competitor/Bob")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	resp2, err := http.Get(srv.URL + "/api/report/competitor/Nobody")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp2.StatusCode)
	}
}
