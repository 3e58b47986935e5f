package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"crossing/internal/game"
	"crossing/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	seedFlag := flag.Uint64("seed", 0, "spawn RNG seed (0 = CROSSING_SEED env or clock)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := sim.Default()
	if *configPath != "" {
		var err error
		cfg, err = sim.Load(*configPath)
		if err != nil {
			slog.Error("load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		if s := os.Getenv("CROSSING_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				seed = v
			}
		}
	}

	slog.Info("starting crossing",
		"seed", seed,
		"world", [2]float64{cfg.Geometry.WorldWidth, cfg.Geometry.WorldHeight},
		"green_ms", cfg.Lights.GreenMs,
		"yellow_ms", cfg.Lights.YellowMs,
	)

	if err := game.Run(cfg, seed); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
