// Package game drives one run: it owns the economy and the registry and
// advances both once per frame in a fixed order.
package game

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"blutton/internal/config"
	"blutton/internal/economy"
	"blutton/internal/entity"
	"blutton/internal/producer"
	"blutton/internal/rules"
)

type Input = rules.Input

type Viewport struct {
	Width  float32
	Height float32
}

func (v Viewport) Center() rl.Vector2 {
	return rl.Vector2Scale(rl.NewVector2(v.Width, v.Height), 0.5)
}

// Game is not safe for concurrent use. The caller's loop calls RunFrame once
// per rendered frame and draws the returned snapshot.
type Game struct {
	RunID string

	balance  config.Balance
	state    *economy.State
	registry *entity.Registry
	rules    *rules.Rules
	last     Events
}

func New(b config.Balance, vp Viewport) (*Game, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		RunID:    uuid.NewString(),
		balance:  b,
		state:    economy.New(b),
		registry: entity.NewRegistry(),
		rules:    rules.New(b),
	}

	if err := g.registry.SpawnSingleton(entity.MainButton, vp.Center()); err != nil {
		return nil, fmt.Errorf("button setup: %w", err)
	}
	for i, kind := range entity.Upgrades {
		if err := g.registry.SpawnSingleton(kind, g.stationPosition(i)); err != nil {
			return nil, fmt.Errorf("upgrades setup: %w", err)
		}
	}
	return g, nil
}

func (g *Game) stationPosition(i int) rl.Vector2 {
	m := float32(g.balance.StationMargin)
	size := float32(g.balance.StationSize)
	return rl.NewVector2(m, m+(size+m)*float32(i))
}

// RunFrame advances the run by one frame: main button click, the upgrade
// purchases in rules.Order, producer timers, then the button is recentred on
// the viewport.
func (g *Game) RunFrame(in Input, dt float64, vp Viewport) Snapshot {
	out := g.rules.Apply(g.state, g.registry, in)
	payouts := producer.Tick(g.state, g.registry, dt)

	// Only fails if the button was never spawned, which New rules out.
	_ = g.registry.Reposition(entity.MainButton, vp.Center())

	g.last = Events{
		Clicked:   out.Clicked,
		Purchased: out.Purchased,
		Payouts:   payouts,
	}
	for _, p := range out.Spawned {
		g.last.Spawned = append(g.last.Spawned, p.ID)
	}
	return g.Snapshot()
}

func (g *Game) Snapshot() Snapshot {
	s := g.state

	snap := Snapshot{
		Button: ButtonView{
			Radius:     float32(g.balance.ButtonRadius),
			ClickCount: s.ClickCount,
		},
		Stations:  make([]StationView, 0, len(entity.Upgrades)),
		Producers: g.registry.ProducerCount(),
		Events:    g.last,
	}
	if ps := g.registry.PositionsOf(entity.MainButton); len(ps) > 0 {
		snap.Button.Position = ps[0]
	}

	for _, kind := range entity.Upgrades {
		view := StationView{
			Kind: kind,
			Name: kind.Name(),
			Size: float32(g.balance.StationSize),
		}
		if ps := g.registry.PositionsOf(kind); len(ps) > 0 {
			view.Position = ps[0]
		}

		switch kind {
		case entity.ClickPowerUpgrade:
			view.Value = strconv.FormatUint(s.ClickPower, 10)
			view.Cost = s.ClickPowerCost
		case entity.ProducerCountUpgrade:
			view.Value = strconv.FormatUint(s.ProducerCount, 10)
			view.Cost = s.ProducerCountCost
		case entity.ProducerPowerUpgrade:
			view.Value = strconv.FormatUint(s.ProducerPower, 10)
			view.Cost = s.ProducerPowerCost
		case entity.ProducerPeriodUpgrade:
			view.Value = formatPeriod(s.ProducerPeriod)
			view.Cost = s.ProducerPeriodCost
			view.Maxed = s.PeriodAtFloor()
		}
		snap.Stations = append(snap.Stations, view)
	}
	return snap
}

// State returns a copy of the economy for inspection.
func (g *Game) State() economy.State {
	return *g.state
}
