package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sdw5180/catch-calc/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := &server{loader: config.NewLoader("")}
	ts := httptest.NewServer(s.router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: status %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestHandleCatch(t *testing.T) {
	ts := newTestServer(t)

	var resp cellResp
	getJSON(t, ts.URL+"/v1/catch?level=1&throw=EXCELLENT", http.StatusOK, &resp)
	if resp.Probability < 0.30 || resp.Probability > 0.31 {
		t.Fatalf("probability = %v, want ~0.305", resp.Probability)
	}
	if resp.ExpectedAttempts < 3 || resp.ExpectedAttempts > 3.5 {
		t.Fatalf("expected attempts = %v, want ~3.28", resp.ExpectedAttempts)
	}
	if resp.AttemptsForConfidence < 12 || resp.AttemptsForConfidence > 13 {
		t.Fatalf("attempts for confidence = %v, want ~12.66", resp.AttemptsForConfidence)
	}
	if resp.UsedBaseRateFallback {
		t.Fatal("fallback must not trigger")
	}

	var errBody errResp
	getJSON(t, ts.URL+"/v1/catch?level=99&throw=EXCELLENT", http.StatusBadRequest, &errBody)
	if errBody.Err == "" {
		t.Fatal("unknown level must report an error")
	}
	getJSON(t, ts.URL+"/v1/catch?level=1", http.StatusBadRequest, &errBody)
	if errBody.Err == "" {
		t.Fatal("missing throw must report an error")
	}
}

func TestHandleCatchOverrides(t *testing.T) {
	ts := newTestServer(t)

	var base, boosted cellResp
	getJSON(t, ts.URL+"/v1/catch?level=10&throw=GREAT", http.StatusOK, &base)
	getJSON(t, ts.URL+"/v1/catch?level=10&throw=GREAT&encounter=2", http.StatusOK, &boosted)
	if boosted.Probability <= base.Probability {
		t.Fatalf("research encounter override must raise probability: %v vs %v",
			boosted.Probability, base.Probability)
	}

	var errBody errResp
	getJSON(t, ts.URL+"/v1/catch?level=10&throw=GREAT&base_rate=2", http.StatusBadRequest, &errBody)
	if errBody.Err == "" {
		t.Fatal("out-of-range override must fail validation")
	}
}

func TestHandleTable(t *testing.T) {
	ts := newTestServer(t)

	var tbl struct {
		Species string `json:"species"`
		Rows    []struct {
			Level string `json:"level"`
			Cells []struct {
				Probability float64 `json:"probability"`
			} `json:"cells"`
		} `json:"rows"`
	}
	getJSON(t, ts.URL+"/v1/table", http.StatusOK, &tbl)
	if tbl.Species != "Galarian Bird" || len(tbl.Rows) != 4 {
		t.Fatalf("table = %+v", tbl)
	}
	if len(tbl.Rows[0].Cells) != 4 {
		t.Fatalf("cells = %d, want 4", len(tbl.Rows[0].Cells))
	}
}

func TestHandleSimulate(t *testing.T) {
	ts := newTestServer(t)

	var resp simulateResp
	getJSON(t, ts.URL+"/v1/simulate?level=1&throw=EXCELLENT&trials=5000&seed=42", http.StatusOK, &resp)
	if resp.Trials != 5000 {
		t.Fatalf("trials = %d", resp.Trials)
	}
	// mean throws should hover near 1/p ~ 3.28
	if resp.Stats.Mean < 2.8 || resp.Stats.Mean > 3.8 {
		t.Fatalf("simulated mean = %v, want ~3.28", resp.Stats.Mean)
	}

	var errBody errResp
	getJSON(t, ts.URL+"/v1/simulate?level=1&throw=EXCELLENT&trials=0", http.StatusBadRequest, &errBody)
	if errBody.Err == "" {
		t.Fatal("trials=0 must report an error")
	}
}

func TestHandleSimulateBudget(t *testing.T) {
	ts := newTestServer(t)

	// a near-zero base_rate override must hit the throw budget and get a
	// 400, not occupy the handler for ~1/p iterations per trial
	var errBody errResp
	getJSON(t, ts.URL+"/v1/simulate?level=1&throw=NONE&base_rate=1e-12&trials=1000000&seed=1",
		http.StatusBadRequest, &errBody)
	if errBody.Err == "" {
		t.Fatal("tiny base_rate must report a budget error")
	}
}

func TestHandlePlan(t *testing.T) {
	ts := newTestServer(t)

	var resp planResp
	getJSON(t, ts.URL+"/v1/plan?level=1&throw=EXCELLENT", http.StatusOK, &resp)
	// ~12.66 throws for 99% at level 1 excellent
	if resp.Throws != 13 || resp.Balls != 13 || resp.Berries != 13 {
		t.Fatalf("plan sizing = %+v", resp)
	}
	if resp.Plan.TotalBalls < resp.Balls {
		t.Fatalf("bundle plan short on balls: %+v", resp.Plan)
	}
	if resp.Plan.TotalCoins != 150 {
		t.Fatalf("total coins = %d, want one 20-ball bundle at 150", resp.Plan.TotalCoins)
	}
}

func TestHandlePlanCapped(t *testing.T) {
	ts := newTestServer(t)

	// a near-zero base_rate pushes the needed throws into the hundreds of
	// millions; the handler must reject instead of sizing DP tables to it
	var errBody errResp
	getJSON(t, ts.URL+"/v1/plan?level=1&throw=NONE&base_rate=1e-9", http.StatusBadRequest, &errBody)
	if errBody.Err == "" {
		t.Fatal("oversized plan must report an error")
	}
}
