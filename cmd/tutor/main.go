package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cuimedina/Cybersecurity-Tutor/internal/analysis"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/bank"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/config"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/exam"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/logging"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/mode"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/provider"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/tui"
	"github.com/cuimedina/Cybersecurity-Tutor/internal/tutor"
)

const version = "1.0.0"

func main() {
	modelFlag := flag.String("model", "", "Gemini model name (overrides config)")
	initFlag := flag.Bool("init", false, "Write a starter config file and exit")
	versionFlag := flag.Bool("version", false, "Print version")
	noSeedFlag := flag.Bool("no-seed", false, "Start with an empty knowledge bank")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("tutor %s\n", version)
		os.Exit(0)
	}

	if *initFlag {
		path, err := config.WriteDefault()
		if err != nil {
			fatal("Failed to write config: %v", err)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("%v", err)
	}
	if *modelFlag != "" {
		cfg.Model = *modelFlag
	}

	log, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		fatal("Failed to open log file: %v", err)
	}
	defer log.Sync()

	prov := provider.NewGoogle(cfg.APIKey, cfg.Model)

	store := bank.NewStore(log)
	store.SetSizeLimit(cfg.MaxUploadBytes())
	if cfg.SeedMaterials && !*noSeedFlag {
		store.Seed()
	}

	modes := mode.NewController()
	dialog := tutor.NewManager(store, prov, modes, log)
	engine := analysis.NewEngine(prov, log)
	examGen := exam.NewGenerator(prov, log)

	ctx := context.Background()
	model := tui.NewModel(ctx, store, dialog, engine, examGen, modes, prov.Name(), prov.Model(), log)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fatal("TUI error: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
