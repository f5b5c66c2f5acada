package game

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"blutton/internal/entity"
)

const MaxedLabel = "MAX"

// Snapshot is the settled end-of-frame state a presentation layer draws.
type Snapshot struct {
	Button    ButtonView
	Stations  []StationView
	Producers int
	Events    Events
}

type ButtonView struct {
	Position   rl.Vector2
	Radius     float32
	ClickCount uint64
}

type StationView struct {
	Kind     entity.Kind
	Name     string
	Position rl.Vector2
	Size     float32
	Value    string
	Cost     uint64
	Maxed    bool
}

func (v StationView) CostLabel() string {
	if v.Maxed {
		return MaxedLabel
	}
	return strconv.FormatUint(v.Cost, 10)
}

func (v StationView) Bounds() rl.Rectangle {
	return rl.NewRectangle(v.Position.X, v.Position.Y, v.Size, v.Size)
}

// Events is what happened during the frame that produced a snapshot.
type Events struct {
	Clicked   bool
	Purchased []entity.Kind
	Spawned   []string
	Payouts   int
}

func (e Events) Empty() bool {
	return !e.Clicked && len(e.Purchased) == 0 && e.Payouts == 0
}

func formatPeriod(period float64) string {
	return strconv.FormatFloat(period, 'f', -1, 64)
}
