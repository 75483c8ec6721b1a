// Package strategy holds the closed catalog of price transforms and the
// resolver that maps wire identifiers onto them. The catalog never grows at
// runtime; unknown identifiers are an explicit failure, never a default.
package strategy

import (
	"math"

	"dispatch-lab/errors"
)

// Strategy is a pure price transform. No side effects, deterministic.
type Strategy func(price int) int

const (
	FlatPercentage  = "flat-percentage"
	TieredThreshold = "tiered-threshold"
)

// tier is one discount step of the tiered strategy.
type tier struct {
	threshold int
	discount  int
}

// Scanned highest-first: the discount of the highest threshold <= price wins.
var tiers = []tier{
	{threshold: 300, discount: 40},
	{threshold: 200, discount: 25},
	{threshold: 150, discount: 15},
	{threshold: 100, discount: 5},
}

var catalog = map[string]Strategy{
	FlatPercentage:  flatPercentage,
	TieredThreshold: tieredThreshold,
}

// aliases map the numeric identifiers of the line protocol onto catalog names.
var aliases = map[string]string{
	"1": FlatPercentage,
	"2": TieredThreshold,
}

// Resolve returns the strategy registered under id. Both catalog names and
// their numeric wire aliases are accepted. Anything else fails with
// ErrUnknownStrategy; there is no fallback transform.
func Resolve(id string) (Strategy, error) {
	if name, ok := aliases[id]; ok {
		id = name
	}
	s, ok := catalog[id]
	if !ok {
		return nil, errors.ErrUnknownStrategy
	}
	return s, nil
}

// flatPercentage keeps 90% of the price, rounding half-up.
func flatPercentage(price int) int {
	return int(math.Floor(float64(price)*0.9 + 0.5))
}

func tieredThreshold(price int) int {
	for _, t := range tiers {
		if price >= t.threshold {
			return price - t.discount
		}
	}
	return price
}
