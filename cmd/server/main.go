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

	log.Printf("env=%s port=%d", cfg.Environment, cfg.Server.Port)

	app, err := di.InitializeServer(cfg)
	if err != nil {
		log.Fatalf("server initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}
