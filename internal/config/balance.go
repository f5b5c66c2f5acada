package config

import (
	"errors"
	"fmt"
)

// Balance holds the start-of-run values and the cost policy of the economy.
type Balance struct {
	// Starting stats
	StartingClicks uint64  `yaml:"starting_clicks"`
	ClickPower     uint64  `yaml:"click_power"`
	ProducerPower  uint64  `yaml:"producer_power"`
	ProducerPeriod float64 `yaml:"producer_period"`

	// Starting costs
	ClickPowerCost     uint64 `yaml:"click_power_cost"`
	ProducerCountCost  uint64 `yaml:"producer_count_cost"`
	ProducerPowerCost  uint64 `yaml:"producer_power_cost"`
	ProducerPeriodCost uint64 `yaml:"producer_period_cost"`

	// Cost scaling
	ClickPowerCostExponent float64 `yaml:"click_power_cost_exponent"`
	CostMultiplier         uint64  `yaml:"cost_multiplier"`

	// Producer period upgrade
	PeriodFloor float64 `yaml:"period_floor"`
	PeriodStep  float64 `yaml:"period_step"`

	// Layout
	ButtonRadius  float64 `yaml:"button_radius"`
	StationSize   float64 `yaml:"station_size"`
	StationMargin float64 `yaml:"station_margin"`
}

// Default returns the shipped balance. These numbers are game policy.
func Default() Balance {
	return Balance{
		StartingClicks: 0,
		ClickPower:     1,
		ProducerPower:  1,
		ProducerPeriod: 10.0,

		ClickPowerCost:     10,
		ProducerCountCost:  50,
		ProducerPowerCost:  250,
		ProducerPeriodCost: 150,

		ClickPowerCostExponent: 4.5,
		CostMultiplier:         2,

		PeriodFloor: 3.0,
		PeriodStep:  0.5,

		ButtonRadius:  100.0,
		StationSize:   150.0,
		StationMargin: 10.0,
	}
}

var ErrInvalidBalance = errors.New("invalid balance")

func (b Balance) Validate() error {
	switch {
	case b.ClickPower < 1:
		return fmt.Errorf("%w: click_power must be at least 1", ErrInvalidBalance)
	case b.ProducerPower < 1:
		return fmt.Errorf("%w: producer_power must be at least 1", ErrInvalidBalance)
	case b.ProducerPeriod <= 0:
		return fmt.Errorf("%w: producer_period must be positive", ErrInvalidBalance)
	case b.PeriodFloor <= 0:
		return fmt.Errorf("%w: period_floor must be positive", ErrInvalidBalance)
	case b.PeriodStep <= 0:
		return fmt.Errorf("%w: period_step must be positive", ErrInvalidBalance)
	case b.CostMultiplier < 1:
		return fmt.Errorf("%w: cost_multiplier must be at least 1", ErrInvalidBalance)
	case b.ClickPowerCostExponent <= 0:
		return fmt.Errorf("%w: click_power_cost_exponent must be positive", ErrInvalidBalance)
	case b.ButtonRadius <= 0:
		return fmt.Errorf("%w: button_radius must be positive", ErrInvalidBalance)
	case b.StationSize <= 0:
		return fmt.Errorf("%w: station_size must be positive", ErrInvalidBalance)
	case b.StationMargin < 0:
		return fmt.Errorf("%w: station_margin must not be negative", ErrInvalidBalance)
	}
	return nil
}
