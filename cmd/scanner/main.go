package main

import (
	"flag"
	"log"
	"os"

	"VolScan/internal/di"
	"VolScan/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s interval=%s z_threshold=%.2f",
		cfg.Environment, cfg.Scanner.Interval, cfg.Scanner.ZThreshold)

	app, err := di.InitializeScanner(cfg)
	if err != nil {
		log.Fatalf("scanner initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("scanner error: %v", err)
		os.Exit(1)
	}
}
