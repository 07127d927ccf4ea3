// Command server exposes the catch-rate computations over HTTP. Every
// endpoint accepts the same query overrides (base_rate, confidence, ball,
// berry, curve, medal, encounter) on top of the configured constants.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sdw5180/catch-calc/internal/catch"
	"github.com/sdw5180/catch-calc/internal/config"
	"github.com/sdw5180/catch-calc/internal/shop"
)

type cellResp struct {
	Species               string  `json:"species"`
	Level                 string  `json:"level"`
	Tier                  string  `json:"tier"`
	Probability           float64 `json:"probability"`
	ExpectedAttempts      float64 `json:"expected_attempts"`
	AttemptsForConfidence float64 `json:"attempts_for_confidence"`
	TargetConfidence      float64 `json:"target_confidence"`
	UsedBaseRateFallback  bool    `json:"used_base_rate_fallback,omitempty"`
}

type simulateResp struct {
	Species     string      `json:"species"`
	Level       string      `json:"level"`
	Tier        string      `json:"tier"`
	Probability float64     `json:"probability"`
	Trials      int         `json:"trials"`
	Stats       catch.Stats `json:"stats"`
}

type planResp struct {
	Species          string    `json:"species"`
	Level            string    `json:"level"`
	Tier             string    `json:"tier"`
	TargetConfidence float64   `json:"target_confidence"`
	Throws           int       `json:"throws"`
	Balls            int       `json:"balls"`
	Berries          int       `json:"berries"`
	Plan             shop.Plan `json:"plan"`
}

type errResp struct {
	Err string `json:"err"`
}

type server struct {
	loader *config.Loader
}

func parseFloat(r *http.Request, key string) (float64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errResp{Err: msg})
}

// overridesFromQuery collects the optional constant overrides shared by
// every endpoint.
func overridesFromQuery(r *http.Request) (config.Overrides, string) {
	var o config.Overrides
	for _, f := range []struct {
		dst **float64
		key string
	}{
		{&o.BaseRate, "base_rate"},
		{&o.TargetConfidence, "confidence"},
		{&o.Ball, "ball"},
		{&o.Berry, "berry"},
		{&o.Curve, "curve"},
		{&o.Medal, "medal"},
		{&o.Encounter, "encounter"},
	} {
		v, ok, msg := parseFloat(r, f.key)
		if msg != "" {
			return config.Overrides{}, msg
		}
		if ok {
			val := v
			*f.dst = &val
		}
	}
	return o, ""
}

// resolveCell resolves params plus the (level, throw) pair named in the
// query and computes the cell's capture probability.
func (s *server) resolveCell(r *http.Request) (catch.Params, string, catch.ThrowTier, float64, string) {
	o, msg := overridesFromQuery(r)
	if msg != "" {
		return catch.Params{}, "", "", 0, msg
	}
	_, params, err := s.loader.Resolve(r.URL.Query().Get("species"), o)
	if err != nil {
		return catch.Params{}, "", "", 0, err.Error()
	}

	level := r.URL.Query().Get("level")
	if level == "" {
		return catch.Params{}, "", "", 0, "missing param level"
	}
	cpm, ok := params.LevelCPM(level)
	if !ok {
		return catch.Params{}, "", "", 0, "unknown level " + level
	}

	tier := catch.ThrowTier(r.URL.Query().Get("throw"))
	if tier == "" {
		return catch.Params{}, "", "", 0, "missing param throw"
	}
	mult, ok := params.ThrowMultiplier(tier)
	if !ok {
		return catch.Params{}, "", "", 0, "unknown throw tier " + string(tier)
	}

	p, err := catch.CaptureProbability(params.BaseRate, cpm, params.Multipliers.Modifier(mult))
	if err != nil {
		return catch.Params{}, "", "", 0, "level " + level + " " + string(tier) + ": " + err.Error()
	}
	return params, level, tier, p, ""
}

func (s *server) handleTable(w http.ResponseWriter, r *http.Request) {
	o, msg := overridesFromQuery(r)
	if msg != "" {
		badRequest(w, msg)
		return
	}
	_, params, err := s.loader.Resolve(r.URL.Query().Get("species"), o)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	table, err := catch.ComputeTable(params)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *server) handleCatch(w http.ResponseWriter, r *http.Request) {
	params, level, tier, p, msg := s.resolveCell(r)
	if msg != "" {
		badRequest(w, msg)
		return
	}
	avg, err := catch.ExpectedAttempts(p)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	n, fallback, err := catch.AttemptsForConfidence(p, params.TargetConfidence, params.BaseRate)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cellResp{
		Species:               params.Species,
		Level:                 level,
		Tier:                  string(tier),
		Probability:           p,
		ExpectedAttempts:      avg,
		AttemptsForConfidence: n,
		TargetConfidence:      params.TargetConfidence,
		UsedBaseRateFallback:  fallback,
	})
}

func (s *server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	params, level, tier, p, msg := s.resolveCell(r)
	if msg != "" {
		badRequest(w, msg)
		return
	}
	trials, ok, msg := parseInt(r, "trials")
	if msg != "" {
		badRequest(w, msg)
		return
	}
	if !ok {
		trials = 10000
	}
	if trials <= 0 || trials > 1000000 {
		badRequest(w, "trials must be in 1..1000000")
		return
	}
	var rng catch.Source
	if seed, ok, msg := parseInt(r, "seed"); msg != "" {
		badRequest(w, msg)
		return
	} else if ok {
		rng = catch.NewSeededSource(uint64(seed))
	}
	stats, err := catch.RunMonteCarlo(p, trials, rng)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, simulateResp{
		Species:     params.Species,
		Level:       level,
		Tier:        string(tier),
		Probability: p,
		Trials:      trials,
		Stats:       stats,
	})
}

func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	params, level, tier, p, msg := s.resolveCell(r)
	if msg != "" {
		badRequest(w, msg)
		return
	}
	n, _, err := catch.AttemptsForConfidence(p, params.TargetConfidence, params.BaseRate)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	throws := int(math.Ceil(n))
	balls, berries := shop.DefaultConsumables().ItemsForThrows(throws)
	if balls > shop.MaxPlanBalls {
		badRequest(w, fmt.Sprintf("plan needs %d balls, above the %d limit", balls, shop.MaxPlanBalls))
		return
	}
	writeJSON(w, http.StatusOK, planResp{
		Species:          params.Species,
		Level:            level,
		Tier:             string(tier),
		TargetConfidence: params.TargetConfidence,
		Throws:           throws,
		Balls:            balls,
		Berries:          berries,
		Plan:             shop.MinCoinsForBalls(shop.DefaultCatalog(), balls),
	})
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))
	r.Get("/v1/table", s.handleTable)
	r.Get("/v1/catch", s.handleCatch)
	r.Get("/v1/simulate", s.handleSimulate)
	r.Get("/v1/plan", s.handlePlan)
	return r
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configDir := flag.String("config", "", "config directory (optional)")
	flag.Parse()

	s := &server{loader: config.NewLoader(*configDir)}

	if *configDir != "" {
		paths := config.Paths{BaseDir: *configDir}
		watcher := config.NewFileWatcher(
			[]string{paths.DefaultPath()},
			2*time.Second,
			func(path string) {
				log.Printf("config %s changed, reloading", path)
				s.loader.Invalidate()
			},
		)
		watcher.Start()
		defer watcher.Stop()
	}

	log.Printf("listening on %s ...", *addr)
	log.Fatal(http.ListenAndServe(*addr, s.router()))
}
