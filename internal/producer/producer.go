// Package producer advances the passive producers once per frame.
package producer

import (
	"blutton/internal/economy"
	"blutton/internal/entity"
)

// Tick adds dt to every producer timer and pays out those that reached the
// current period. A payout resets the timer to zero, so any time past the
// period is dropped and a long frame yields at most one payout per producer.
// Returns the number of payouts.
func Tick(s *economy.State, reg *entity.Registry, dt float64) int {
	// Negative and NaN frames count as no time.
	if !(dt > 0) {
		dt = 0
	}

	payouts := 0
	for _, p := range reg.Producers() {
		p.Timer += dt

		if p.Timer >= s.ProducerPeriod {
			p.Timer = 0
			s.Earn(s.ProducerPower)
			payouts++
		}
	}
	return payouts
}
