package shop

// Consumables defines what a single throw burns.
type Consumables struct {
	BallsPerThrow   int
	BerriesPerThrow int
}

// DefaultConsumables matches the assumed loadout: one ball and one
// re-fed Golden Razz per throw.
func DefaultConsumables() Consumables {
	return Consumables{BallsPerThrow: 1, BerriesPerThrow: 1}
}

// ItemsForThrows returns how many balls and berries n throws consume.
func (c Consumables) ItemsForThrows(n int) (balls, berries int) {
	if n <= 0 {
		return 0, 0
	}
	return n * c.BallsPerThrow, n * c.BerriesPerThrow
}
