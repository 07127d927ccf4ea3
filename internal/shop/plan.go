package shop

import "sort"

// MaxPlanBalls bounds the planner's target: the DP tables are linear in
// the target, so an unchecked request-derived count could allocate
// without limit. No realistic throw plan comes anywhere near it.
const MaxPlanBalls = 100_000

// MinCoinsForBalls finds the minimum-coin combination of bundles granting
// at least targetBalls. Unbounded quantities per bundle; slight overshoot
// is allowed when a larger bundle is cheaper than topping up exactly.
// Targets outside (0, MaxPlanBalls] yield an empty plan.
func MinCoinsForBalls(cat Catalog, targetBalls int) Plan {
	if targetBalls <= 0 || targetBalls > MaxPlanBalls || len(cat.Bundles) == 0 {
		return Plan{Currency: cat.Currency}
	}

	type eff struct {
		idx   int
		balls int
		price int
	}
	var effs []eff
	maxBalls := 0
	for i, b := range cat.Bundles {
		n := b.Balls + b.BonusBalls
		if n <= 0 || b.PriceCoins <= 0 {
			continue
		}
		effs = append(effs, eff{idx: i, balls: n, price: b.PriceCoins})
		if n > maxBalls {
			maxBalls = n
		}
	}
	if maxBalls == 0 {
		return Plan{Currency: cat.Currency}
	}

	// DP over ball counts up to target + largest bundle, so overshooting
	// with one big bundle stays reachable.
	limit := targetBalls + maxBalls
	const inf = int(^uint(0) >> 1)
	dp := make([]int, limit+1)   // min coins to reach exactly n balls
	pick := make([]int, limit+1) // chosen eff index
	prev := make([]int, limit+1) // previous n
	for n := range dp {
		dp[n] = inf
		pick[n] = -1
		prev[n] = -1
	}
	dp[0] = 0

	for n := 0; n <= limit; n++ {
		if dp[n] == inf {
			continue
		}
		for i, e := range effs {
			nn := n + e.balls
			if nn > limit {
				nn = limit
			}
			cost := dp[n] + e.price
			if cost < dp[nn] {
				dp[nn] = cost
				pick[nn] = i
				prev[nn] = n
			}
		}
	}

	// cheapest n >= target
	bestN, bestCost := targetBalls, dp[targetBalls]
	for n := targetBalls; n <= limit; n++ {
		if dp[n] < bestCost {
			bestN, bestCost = n, dp[n]
		}
	}
	if bestCost == inf {
		return Plan{Currency: cat.Currency}
	}

	// reconstruct quantities per bundle
	counts := make(map[int]int) // eff index -> qty
	for n := bestN; n > 0 && pick[n] != -1; n = prev[n] {
		counts[pick[n]]++
	}

	plan := Plan{Currency: cat.Currency}
	idxs := make([]int, 0, len(counts))
	for i := range counts {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs) // deterministic line-item order
	for _, i := range idxs {
		e := effs[i]
		b := cat.Bundles[e.idx]
		qty := counts[i]
		sub := e.price * qty
		plan.Purchases = append(plan.Purchases, Purchase{
			BundleID:  b.ID,
			Name:      b.Name,
			Qty:       qty,
			UnitCoins: e.price,
			UnitBalls: e.balls,
			Subtotal:  sub,
		})
		plan.TotalCoins += sub
		plan.TotalBalls += e.balls * qty
	}
	return plan
}
