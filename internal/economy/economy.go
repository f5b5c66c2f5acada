// Package economy holds the mutable resource record of a run and the cost
// scaling policy applied to it.
package economy

import (
	"fmt"
	"math"
	"math/bits"

	"blutton/internal/config"
)

// costCeiling is 2^64, the first float64 that no longer fits in a uint64.
const costCeiling = 1 << 64

// State is owned by the frame driver and handed to each rule by pointer.
type State struct {
	ClickCount uint64
	ClickPower uint64

	ProducerCount  uint64
	ProducerPower  uint64
	ProducerPeriod float64

	ClickPowerCost     uint64
	ProducerCountCost  uint64
	ProducerPowerCost  uint64
	ProducerPeriodCost uint64

	// Policy, copied from the balance at start of run.
	ClickPowerCostExponent float64
	CostMultiplier         uint64
	PeriodFloor            float64
	PeriodStep             float64
}

func New(b config.Balance) *State {
	return &State{
		ClickCount:     b.StartingClicks,
		ClickPower:     b.ClickPower,
		ProducerPower:  b.ProducerPower,
		ProducerPeriod: b.ProducerPeriod,

		ClickPowerCost:     b.ClickPowerCost,
		ProducerCountCost:  b.ProducerCountCost,
		ProducerPowerCost:  b.ProducerPowerCost,
		ProducerPeriodCost: b.ProducerPeriodCost,

		ClickPowerCostExponent: b.ClickPowerCostExponent,
		CostMultiplier:         b.CostMultiplier,
		PeriodFloor:            b.PeriodFloor,
		PeriodStep:             b.PeriodStep,
	}
}

func (s *State) CanAfford(cost uint64) bool {
	return s.ClickCount >= cost
}

// Spend deducts cost from the click count. Callers gate on CanAfford; a
// deduction that would underflow is a broken invariant and panics.
func (s *State) Spend(cost uint64) {
	if cost > s.ClickCount {
		panic(fmt.Sprintf("economy: spend %d exceeds click count %d", cost, s.ClickCount))
	}
	s.ClickCount -= cost
}

// Earn adds amount to the click count. A sum past the uint64 range panics
// instead of wrapping.
func (s *State) Earn(amount uint64) {
	sum, carry := bits.Add64(s.ClickCount, amount, 0)
	if carry != 0 {
		panic(fmt.Sprintf("economy: earn %d overflows click count %d", amount, s.ClickCount))
	}
	s.ClickCount = sum
}

func (s *State) PeriodAtFloor() bool {
	return s.ProducerPeriod <= s.PeriodFloor
}

// ClickPowerCostFor prices the next click power upgrade from the power just
// bought: ceil(power^exponent) in double precision. A price that does not fit
// in a uint64 panics.
func (s *State) ClickPowerCostFor(power uint64) uint64 {
	c := math.Ceil(math.Pow(float64(power), s.ClickPowerCostExponent))
	if !(c < costCeiling) {
		panic(fmt.Sprintf("economy: click power cost for power %d out of range (%g)", power, c))
	}
	return uint64(c)
}

// Scaled multiplies cost by the cost multiplier and panics on overflow.
func (s *State) Scaled(cost uint64) uint64 {
	hi, lo := bits.Mul64(cost, s.CostMultiplier)
	if hi != 0 {
		panic(fmt.Sprintf("economy: cost %d scaled by %d overflows", cost, s.CostMultiplier))
	}
	return lo
}
