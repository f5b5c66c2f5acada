package main

import (
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"blutton/internal/config"
	"blutton/internal/game"
	"blutton/internal/logger"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging)

	g, err := game.New(cfg.Balance, game.Viewport{
		Width:  float32(cfg.Window.Width),
		Height: float32(cfg.Window.Height),
	})
	if err != nil {
		slog.Error("Failed to set up run", "error", err)
		os.Exit(1)
	}
	log := slog.With("component", "game", "run_id", g.RunID)

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	rl.SetTargetFPS(cfg.Window.TargetFPS)
	defer rl.CloseWindow()

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 32)

	log.Info("Run started",
		"window_width", cfg.Window.Width,
		"window_height", cfg.Window.Height,
		"producer_period", cfg.Balance.ProducerPeriod,
	)

	for !rl.WindowShouldClose() {
		delta := rl.GetFrameTime()
		snap := g.RunFrame(sampleInput(), float64(delta), viewport())
		logEvents(log, snap)
		draw(snap)
	}

	log.Info("Run ended", "click_count", g.State().ClickCount, "producers", g.Snapshot().Producers)
}

func sampleInput() game.Input {
	return game.Input{
		Pointer:     rl.GetMousePosition(),
		PressedEdge: rl.IsMouseButtonPressed(rl.MouseLeftButton),
	}
}

func viewport() game.Viewport {
	return game.Viewport{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
}

func logEvents(log *slog.Logger, snap game.Snapshot) {
	if snap.Events.Empty() {
		return
	}
	for _, kind := range snap.Events.Purchased {
		log.Info("Upgrade purchased",
			"kind", kind.Name(),
			"click_count", snap.Button.ClickCount,
		)
	}
	for _, id := range snap.Events.Spawned {
		log.Debug("Producer spawned", "producer_id", id, "producers", snap.Producers)
	}
	if snap.Events.Payouts > 0 {
		log.Debug("Producer payout", "payouts", snap.Events.Payouts, "click_count", snap.Button.ClickCount)
	}
}
