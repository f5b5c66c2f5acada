// Package rules turns a frame's input into economy changes: the main button
// click and the four upgrade purchases.
package rules

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"blutton/internal/config"
	"blutton/internal/economy"
	"blutton/internal/entity"
)

type Input struct {
	Pointer     rl.Vector2
	PressedEdge bool
}

// Outcome records which rules fired during one Apply.
type Outcome struct {
	Clicked   bool
	Purchased []entity.Kind
	Spawned   []*entity.ProducerActor
}

type purchase struct {
	cost    func(s *economy.State) uint64
	blocked func(s *economy.State) bool
	apply   func(s *economy.State, reg *entity.Registry, out *Outcome)
}

var purchases = map[entity.Kind]purchase{
	entity.ClickPowerUpgrade: {
		cost: func(s *economy.State) uint64 { return s.ClickPowerCost },
		apply: func(s *economy.State, _ *entity.Registry, _ *Outcome) {
			s.ClickPower++
			s.ClickPowerCost = s.ClickPowerCostFor(s.ClickPower)
		},
	},
	entity.ProducerCountUpgrade: {
		cost: func(s *economy.State) uint64 { return s.ProducerCountCost },
		apply: func(s *economy.State, reg *entity.Registry, out *Outcome) {
			s.ProducerCount++
			s.ProducerCountCost = s.Scaled(s.ProducerCountCost)
			out.Spawned = append(out.Spawned, reg.SpawnProducer())
		},
	},
	entity.ProducerPowerUpgrade: {
		cost: func(s *economy.State) uint64 { return s.ProducerPowerCost },
		apply: func(s *economy.State, _ *entity.Registry, _ *Outcome) {
			s.ProducerPower++
			s.ProducerPowerCost = s.Scaled(s.ProducerPowerCost)
		},
	},
	entity.ProducerPeriodUpgrade: {
		cost:    func(s *economy.State) uint64 { return s.ProducerPeriodCost },
		blocked: func(s *economy.State) bool { return s.PeriodAtFloor() },
		apply: func(s *economy.State, _ *entity.Registry, _ *Outcome) {
			s.ProducerPeriod = math.Max(s.ProducerPeriod-s.PeriodStep, s.PeriodFloor)
			s.ProducerPeriodCost = s.Scaled(s.ProducerPeriodCost)
		},
	},
}

// Order is the fixed evaluation order of the upgrade purchases within a frame.
var Order = entity.Upgrades

type Rules struct {
	ButtonRadius float32
	StationSize  float32
}

func New(b config.Balance) *Rules {
	return &Rules{
		ButtonRadius: float32(b.ButtonRadius),
		StationSize:  float32(b.StationSize),
	}
}

// Click adds the click power to the count when the press lands inside the main button.
func (r *Rules) Click(s *economy.State, reg *entity.Registry, in Input) bool {
	if !in.PressedEdge {
		return false
	}
	for _, pos := range reg.PositionsOf(entity.MainButton) {
		if r.OnButton(pos, in.Pointer) {
			s.Earn(s.ClickPower)
			return true
		}
	}
	return false
}

// Purchase runs the upgrade rule for kind. Any failed precondition leaves the
// state untouched.
func (r *Rules) Purchase(kind entity.Kind, s *economy.State, reg *entity.Registry, in Input) bool {
	return r.purchase(kind, s, reg, in, &Outcome{})
}

func (r *Rules) purchase(kind entity.Kind, s *economy.State, reg *entity.Registry, in Input, out *Outcome) bool {
	p, ok := purchases[kind]
	if !ok || !in.PressedEdge {
		return false
	}
	if p.blocked != nil && p.blocked(s) {
		return false
	}
	cost := p.cost(s)
	if !s.CanAfford(cost) {
		return false
	}

	for _, pos := range reg.PositionsOf(kind) {
		if !rl.CheckCollisionPointRec(in.Pointer, r.StationRegion(pos)) {
			continue
		}
		s.Spend(cost)
		p.apply(s, reg, out)
		out.Purchased = append(out.Purchased, kind)
		return true
	}
	return false
}

// Apply runs the main button rule and then every purchase in Order. Each rule
// sees the click count left by the ones before it.
func (r *Rules) Apply(s *economy.State, reg *entity.Registry, in Input) Outcome {
	var out Outcome
	out.Clicked = r.Click(s, reg, in)
	for _, kind := range Order {
		r.purchase(kind, s, reg, in, &out)
	}
	return out
}

// OnButton reports whether ptr is strictly inside the main button centred at
// pos. A pointer exactly on the rim misses.
func (r *Rules) OnButton(pos, ptr rl.Vector2) bool {
	return rl.Vector2Distance(ptr, pos) < r.ButtonRadius
}

// StationRegion is the square a station at pos occupies. Hits are half-open:
// the left and top edges are inside, the right and bottom edges are not.
func (r *Rules) StationRegion(pos rl.Vector2) rl.Rectangle {
	return rl.NewRectangle(pos.X, pos.Y, r.StationSize, r.StationSize)
}
