package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"askme/internal/config"
	"askme/internal/service"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/askme/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	svc, err := service.FromConfig(cfg)
	if err != nil {
		log.Fatalf("assemble service: %v", err)
	}

	n, summary, err := svc.BuildIndex(context.Background())
	if err != nil {
		log.Fatalf("index build failed: %v", err)
	}

	fmt.Printf("indexed %d chunks from %s into %s\n", n, cfg.Docs.Dir, cfg.Index.Path)
	if summary != "" {
		fmt.Printf("corpus summary: %s\n", summary)
	}
}
