package shop

// Bundle models a purchasable ball bundle in the in-game shop.
type Bundle struct {
	ID         string `json:"id"`   // SKU id, e.g. "ub200"
	Name       string `json:"name"` // display name
	Balls      int    `json:"balls"`
	BonusBalls int    `json:"bonus_balls,omitempty"` // promo extras, if any
	PriceCoins int    `json:"price_coins"`
}

// Catalog is a shop catalog priced in the in-game currency.
type Catalog struct {
	Currency string   `json:"currency"` // e.g. "PokéCoins"
	Bundles  []Bundle `json:"bundles"`
}

// Plan summarizes a purchase plan.
type Plan struct {
	Purchases  []Purchase `json:"purchases"`
	TotalCoins int        `json:"total_coins"`
	TotalBalls int        `json:"total_balls"`
	Currency   string     `json:"currency"`
}

// Purchase is one line item in the plan.
type Purchase struct {
	BundleID  string `json:"bundle_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitCoins int    `json:"unit_coins"`
	UnitBalls int    `json:"unit_balls"`
	Subtotal  int    `json:"subtotal"`
}

// DefaultCatalog returns the standing Ultra Ball bundles.
func DefaultCatalog() Catalog {
	return Catalog{
		Currency: "PokéCoins",
		Bundles: []Bundle{
			{ID: "ub20", Name: "20 Ultra Balls", Balls: 20, PriceCoins: 150},
			{ID: "ub100", Name: "100 Ultra Balls", Balls: 100, PriceCoins: 600},
			{ID: "ub200", Name: "200 Ultra Balls", Balls: 200, PriceCoins: 1000},
		},
	}
}
