package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"askme/internal/config"
	"askme/internal/service"
	"askme/internal/tui"
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
	if err := svc.LoadIndex(); err != nil {
		log.Fatalf("load index (run askme-index to build it): %v", err)
	}

	m := tui.New(svc, svc.Summary())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
