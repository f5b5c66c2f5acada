package rules

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blutton/internal/config"
	"blutton/internal/economy"
	"blutton/internal/entity"
)

var buttonPos = rl.NewVector2(400, 400)

// stationPos mirrors the start-of-run column layout.
func stationPos(i int) rl.Vector2 {
	return rl.NewVector2(10, 10+(150+10)*float32(i))
}

func stationCenter(kind entity.Kind) rl.Vector2 {
	for i, k := range entity.Upgrades {
		if k == kind {
			return rl.Vector2Add(stationPos(i), rl.NewVector2(75, 75))
		}
	}
	panic("not an upgrade")
}

func newWorld(t *testing.T) (*Rules, *economy.State, *entity.Registry) {
	t.Helper()
	b := config.Default()
	reg := entity.NewRegistry()
	require.NoError(t, reg.SpawnSingleton(entity.MainButton, buttonPos))
	for i, k := range entity.Upgrades {
		require.NoError(t, reg.SpawnSingleton(k, stationPos(i)))
	}
	return New(b), economy.New(b), reg
}

func press(p rl.Vector2) Input {
	return Input{Pointer: p, PressedEdge: true}
}

func TestClickInsideButton(t *testing.T) {
	r, s, reg := newWorld(t)

	assert.True(t, r.Click(s, reg, press(buttonPos)))
	assert.Equal(t, uint64(1), s.ClickCount)
}

func TestClickUsesClickPower(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickPower = 7

	r.Click(s, reg, press(rl.Vector2Add(buttonPos, rl.NewVector2(50, 50))))
	assert.Equal(t, uint64(7), s.ClickCount)
}

func TestClickNeedsEdgeAndHit(t *testing.T) {
	r, s, reg := newWorld(t)

	assert.False(t, r.Click(s, reg, Input{Pointer: buttonPos, PressedEdge: false}))
	assert.False(t, r.Click(s, reg, press(rl.Vector2Add(buttonPos, rl.NewVector2(100, 0)))))
	assert.Equal(t, uint64(0), s.ClickCount)
}

func TestButtonHitIsStrict(t *testing.T) {
	r := New(config.Default())

	cases := map[string]struct {
		ptr  rl.Vector2
		want bool
	}{
		"centre":       {rl.NewVector2(400, 400), true},
		"just inside":  {rl.NewVector2(499.5, 400), true},
		"diagonal":     {rl.NewVector2(470, 470), true},
		"on the rim":   {rl.NewVector2(500, 400), false},
		"rim from top": {rl.NewVector2(400, 300), false},
		"outside":      {rl.NewVector2(480, 480), false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.OnButton(buttonPos, tc.ptr))
		})
	}
}

func TestStationHitIsHalfOpen(t *testing.T) {
	r := New(config.Default())
	region := r.StationRegion(stationPos(0))

	cases := map[string]struct {
		ptr  rl.Vector2
		want bool
	}{
		"top-left corner":     {rl.NewVector2(10, 10), true},
		"inside":              {rl.NewVector2(85, 85), true},
		"near bottom-right":   {rl.NewVector2(159.5, 159.5), true},
		"right edge":          {rl.NewVector2(160, 50), false},
		"bottom edge":         {rl.NewVector2(50, 160), false},
		"left of the station": {rl.NewVector2(9.5, 50), false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, rl.CheckCollisionPointRec(tc.ptr, region))
		})
	}
}

func TestClickPowerPurchase(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 10

	assert.True(t, r.Purchase(entity.ClickPowerUpgrade, s, reg, press(stationCenter(entity.ClickPowerUpgrade))))

	assert.Equal(t, uint64(0), s.ClickCount)
	assert.Equal(t, uint64(2), s.ClickPower)
	assert.Equal(t, uint64(23), s.ClickPowerCost)
}

func TestClickPowerCostTracksNewPower(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 10 + 23 + 141
	in := press(stationCenter(entity.ClickPowerUpgrade))

	for range 3 {
		require.True(t, r.Purchase(entity.ClickPowerUpgrade, s, reg, in))
	}
	assert.Equal(t, uint64(0), s.ClickCount)
	assert.Equal(t, uint64(4), s.ClickPower)
	assert.Equal(t, uint64(512), s.ClickPowerCost)
}

func TestProducerCountPurchaseSpawnsProducer(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 150
	in := press(stationCenter(entity.ProducerCountUpgrade))

	require.True(t, r.Purchase(entity.ProducerCountUpgrade, s, reg, in))
	require.True(t, r.Purchase(entity.ProducerCountUpgrade, s, reg, in))

	assert.Equal(t, uint64(0), s.ClickCount)
	assert.Equal(t, uint64(2), s.ProducerCount)
	assert.Equal(t, uint64(200), s.ProducerCountCost)
	assert.Equal(t, 2, reg.ProducerCount())
	for _, p := range reg.Producers() {
		assert.Zero(t, p.Timer)
	}
}

func TestProducerPowerPurchase(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 300

	require.True(t, r.Purchase(entity.ProducerPowerUpgrade, s, reg, press(stationCenter(entity.ProducerPowerUpgrade))))

	assert.Equal(t, uint64(50), s.ClickCount)
	assert.Equal(t, uint64(2), s.ProducerPower)
	assert.Equal(t, uint64(500), s.ProducerPowerCost)
}

func TestProducerPeriodPurchaseStopsAtFloor(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 1 << 40
	in := press(stationCenter(entity.ProducerPeriodUpgrade))

	bought := 0
	for r.Purchase(entity.ProducerPeriodUpgrade, s, reg, in) {
		bought++
		require.Less(t, bought, 100)
	}

	assert.Equal(t, 14, bought, "10.0 down to 3.0 in 0.5 steps")
	assert.Equal(t, 3.0, s.ProducerPeriod)
	assert.Equal(t, uint64(150)<<14, s.ProducerPeriodCost)
	assert.True(t, s.PeriodAtFloor())
}

func TestScaledCostOverflowPanics(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 1 << 63
	s.ProducerPowerCost = 1 << 63

	assert.Panics(t, func() {
		r.Purchase(entity.ProducerPowerUpgrade, s, reg, press(stationCenter(entity.ProducerPowerUpgrade)))
	})
	assert.NotZero(t, s.ProducerPowerCost, "the cost never wraps to zero")
}

func TestClickOverflowPanics(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = math.MaxUint64

	assert.Panics(t, func() { r.Click(s, reg, press(buttonPos)) })
	assert.Equal(t, uint64(math.MaxUint64), s.ClickCount)
}

func TestProducerPeriodBlockedAtFloorIsInert(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ProducerPeriod = 3.0
	s.ClickCount = 1_000_000
	before := *s
	in := press(stationCenter(entity.ProducerPeriodUpgrade))

	for range 10 {
		assert.False(t, r.Purchase(entity.ProducerPeriodUpgrade, s, reg, in))
	}
	assert.Equal(t, before, *s)
}

func TestUnaffordablePurchaseIsIdempotent(t *testing.T) {
	for _, kind := range Order {
		t.Run(kind.Name(), func(t *testing.T) {
			r, s, reg := newWorld(t)
			s.ClickCount = 9
			before := *s

			for range 5 {
				assert.False(t, r.Purchase(kind, s, reg, press(stationCenter(kind))))
			}
			assert.Equal(t, before, *s)
			assert.Zero(t, reg.ProducerCount())
		})
	}
}

func TestPurchaseNeedsEdgeAndHit(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 1000
	before := *s

	held := Input{Pointer: stationCenter(entity.ClickPowerUpgrade), PressedEdge: false}
	assert.False(t, r.Purchase(entity.ClickPowerUpgrade, s, reg, held))

	// Pointer on the Clicker station does not buy Power.
	assert.False(t, r.Purchase(entity.ClickPowerUpgrade, s, reg, press(stationCenter(entity.ProducerCountUpgrade))))

	assert.Equal(t, before, *s)
}

func TestPurchaseUnknownKind(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 1000
	assert.False(t, r.Purchase(entity.MainButton, s, reg, press(buttonPos)))
	assert.False(t, r.Purchase(entity.Producer, s, reg, press(buttonPos)))
}

func TestApplyOrdersPurchasesOnSharedCount(t *testing.T) {
	b := config.Default()
	reg := entity.NewRegistry()
	require.NoError(t, reg.SpawnSingleton(entity.MainButton, buttonPos))
	overlap := rl.NewVector2(10, 10)
	for _, k := range entity.Upgrades {
		require.NoError(t, reg.SpawnSingleton(k, overlap))
	}
	r := New(b)
	s := economy.New(b)
	s.ClickCount = 10 + 50

	out := r.Apply(s, reg, press(rl.NewVector2(20, 20)))

	assert.False(t, out.Clicked)
	assert.Equal(t, []entity.Kind{entity.ClickPowerUpgrade, entity.ProducerCountUpgrade}, out.Purchased)
	assert.Len(t, out.Spawned, 1)
	assert.Equal(t, uint64(0), s.ClickCount)
	assert.Equal(t, uint64(2), s.ClickPower)
	assert.Equal(t, uint64(1), s.ProducerCount)
}

func TestApplyLaterRuleSeesEarlierDeduction(t *testing.T) {
	b := config.Default()
	reg := entity.NewRegistry()
	require.NoError(t, reg.SpawnSingleton(entity.MainButton, buttonPos))
	for _, k := range entity.Upgrades {
		require.NoError(t, reg.SpawnSingleton(k, rl.NewVector2(10, 10)))
	}
	r := New(b)
	s := economy.New(b)
	s.ClickCount = 55

	out := r.Apply(s, reg, press(rl.NewVector2(20, 20)))

	assert.Equal(t, []entity.Kind{entity.ClickPowerUpgrade}, out.Purchased)
	assert.Equal(t, uint64(45), s.ClickCount)
	assert.Equal(t, uint64(0), s.ProducerCount)
}

func TestApplyClickFundsSameFramePurchase(t *testing.T) {
	b := config.Default()
	reg := entity.NewRegistry()
	require.NoError(t, reg.SpawnSingleton(entity.MainButton, rl.NewVector2(85, 85)))
	for i, k := range entity.Upgrades {
		require.NoError(t, reg.SpawnSingleton(k, stationPos(i)))
	}
	r := New(b)
	s := economy.New(b)
	s.ClickCount = 9

	out := r.Apply(s, reg, press(rl.NewVector2(85, 85)))

	assert.True(t, out.Clicked)
	assert.Equal(t, []entity.Kind{entity.ClickPowerUpgrade}, out.Purchased)
	assert.Equal(t, uint64(0), s.ClickCount)
	assert.Equal(t, uint64(2), s.ClickPower)
}

func TestApplyWithoutPressDoesNothing(t *testing.T) {
	r, s, reg := newWorld(t)
	s.ClickCount = 1000
	before := *s

	out := r.Apply(s, reg, Input{Pointer: stationCenter(entity.ClickPowerUpgrade)})

	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, before, *s)
}
