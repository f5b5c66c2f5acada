package main

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"blutton/internal/game"
)

const (
	COUNTER_FONT_SIZE = 64
	STATION_FONT_SIZE = 32
)

func formatCount(n uint64) string {
	if n > math.MaxInt64 {
		return strconv.FormatUint(n, 10)
	}
	return humanize.Comma(int64(n))
}

func drawCentered(text string, centerX, centerY float32, fontSize int32, color rl.Color) {
	width := float32(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(centerX-width/2), int32(centerY-float32(fontSize)/2), fontSize, color)
}

func drawButton(b game.ButtonView) {
	rl.DrawCircleV(b.Position, b.Radius, rl.Red)
	drawCentered(formatCount(b.ClickCount), b.Position.X, b.Position.Y, COUNTER_FONT_SIZE, rl.White)
}

func drawStation(s game.StationView) {
	rect := s.Bounds()
	rl.DrawRectangleRec(rect, rl.Red)

	gui.Label(rl.NewRectangle(rect.X+8, rect.Y+4, rect.Width-16, STATION_FONT_SIZE), s.Name)

	midX := rect.X + rect.Width/2
	midY := rect.Y + rect.Height/2
	drawCentered(s.Value, midX, midY+10, STATION_FONT_SIZE, rl.White)
	drawCentered(s.CostLabel(), midX, midY+10+STATION_FONT_SIZE+10, STATION_FONT_SIZE, rl.White)
}

func draw(snap game.Snapshot) {
	if rl.WindowShouldClose() {
		return
	}
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)

	drawButton(snap.Button)
	for _, s := range snap.Stations {
		drawStation(s)
	}

	rl.EndDrawing()
}
