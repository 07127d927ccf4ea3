package catch

import (
	"errors"
	"fmt"
)

var ErrNoData = errors.New("params hold no levels or throw tiers")

// Cell is one (level, tier) evaluation. A cell that tripped a domain
// error carries the message in Err and zeroes elsewhere; it is never
// populated with NaN or Inf.
type Cell struct {
	Tier             ThrowTier `json:"tier"`
	Probability      float64   `json:"probability"`
	ExpectedAttempts float64   `json:"expected_attempts"`
	Err              string    `json:"err,omitempty"`
}

// Row is one level's evaluations across every tier, plus the
// attempts-for-confidence figures under the best and worst tiers.
type Row struct {
	Level string  `json:"level"`
	CPM   float64 `json:"cpm"`
	Cells []Cell  `json:"cells"`

	BestTier             ThrowTier `json:"best_tier"`
	BestTierAttempts     float64   `json:"best_tier_attempts"`
	WorstTier            ThrowTier `json:"worst_tier"`
	WorstTierAttempts    float64   `json:"worst_tier_attempts"`
	ConfidenceErr        string    `json:"confidence_err,omitempty"`
	UsedBaseRateFallback bool      `json:"used_base_rate_fallback,omitempty"`
}

// Table is the fully evaluated level x tier grid.
type Table struct {
	Species          string      `json:"species"`
	BaseRate         float64     `json:"base_rate"`
	TargetConfidence float64     `json:"target_confidence"`
	Tiers            []ThrowTier `json:"tiers"`
	Rows             []Row       `json:"rows"`
	Assumptions      []string    `json:"assumptions,omitempty"`
	Notes            string      `json:"notes,omitempty"`
}

// ComputeTable walks the level x tier grid once and derives every figure
// the formatter and the API serve. Cells that hit a domain error are
// recorded with the offending (level, tier) pair and skipped; the rest of
// the table still renders. Params.Throws is ordered worst to best, so the
// first tier is the "worst" column and the last the "best".
func ComputeTable(p Params) (*Table, error) {
	if len(p.Levels) == 0 || len(p.Throws) == 0 {
		return nil, ErrNoData
	}

	t := &Table{
		Species:          p.Species,
		BaseRate:         p.BaseRate,
		TargetConfidence: p.TargetConfidence,
		Assumptions:      p.Assumptions,
		Notes:            p.Notes,
	}
	for _, th := range p.Throws {
		t.Tiers = append(t.Tiers, th.Tier)
	}

	worst := p.Throws[0]
	best := p.Throws[len(p.Throws)-1]

	for _, lvl := range p.Levels {
		row := Row{Level: lvl.Name, CPM: lvl.CPM, BestTier: best.Tier, WorstTier: worst.Tier}
		var bestP, worstP float64
		var gridErr error

		for _, th := range p.Throws {
			cell := Cell{Tier: th.Tier}
			prob, err := CaptureProbability(p.BaseRate, lvl.CPM, p.Multipliers.Modifier(th.Multiplier))
			if err == nil {
				cell.Probability = prob
				cell.ExpectedAttempts, err = ExpectedAttempts(prob)
			}
			if err != nil {
				cell.Probability = 0
				cell.ExpectedAttempts = 0
				cell.Err = fmt.Sprintf("level %s %s: %v", lvl.Name, th.Tier, err)
				gridErr = err
			}
			if th.Tier == best.Tier {
				bestP = cell.Probability
			}
			if th.Tier == worst.Tier {
				worstP = cell.Probability
			}
			row.Cells = append(row.Cells, cell)
		}

		if gridErr != nil {
			row.ConfidenceErr = fmt.Sprintf("level %s: %v", lvl.Name, gridErr)
		} else {
			bn, bfb, berr := AttemptsForConfidence(bestP, p.TargetConfidence, p.BaseRate)
			wn, wfb, werr := AttemptsForConfidence(worstP, p.TargetConfidence, p.BaseRate)
			if berr != nil || werr != nil {
				err := berr
				if err == nil {
					err = werr
				}
				row.ConfidenceErr = fmt.Sprintf("level %s: %v", lvl.Name, err)
			} else {
				row.BestTierAttempts = bn
				row.WorstTierAttempts = wn
				row.UsedBaseRateFallback = bfb || wfb
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
