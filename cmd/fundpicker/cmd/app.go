package cmd

import (
	"fmt"
	"os"

	"FundPicker/internal/catalog"
	"FundPicker/internal/config"
	"FundPicker/internal/logger"
	"FundPicker/internal/model"
	"FundPicker/internal/notifier"
	"FundPicker/internal/strategy"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// app is the wiring shared by every subcommand.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	catalog []model.Fund
	engine  *strategy.Engine
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}, os.Stderr)
	logger.SetGlobalLogger(log)
	if err := cfg.Validate(); err != nil {
		return nil, log, fmt.Errorf("config validation: %w", err)
	}
	return cfg, log, nil
}

// openSource returns the configured catalog source and a func releasing it.
func openSource(cfg *config.Config, log zerolog.Logger) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return catalog.NewFileSource(cfg.Catalog.Path), func() {}, nil
	case config.SourceSQLite:
		store, err := catalog.OpenSQLite(cfg.Database.SQLitePath, log)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}
	return catalog.NewBuiltinSource(), func() {}, nil
}

func newClassifier(cfg *config.Config) (*strategy.Classifier, error) {
	mapping, err := cfg.RiskCategories()
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return strategy.DefaultClassifier(), nil
	}
	return strategy.NewClassifier(mapping)
}

func bootstrap() (*app, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	src, release, err := openSource(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer release()

	funds, err := catalog.Load(src, log)
	if err != nil {
		return nil, err
	}
	classifier, err := newClassifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("risk mapping: %w", err)
	}
	return &app{
		cfg:     cfg,
		log:     log,
		catalog: funds,
		engine:  strategy.NewEngine(classifier, log),
	}, nil
}

// terminalOut renders Markdown with glamour when out is an interactive terminal.
func terminalOut(out *os.File) (*notifier.TerminalNotifier, error) {
	fd := int(out.Fd())
	styled := !noStyle && term.IsTerminal(fd)
	width := 0
	if styled {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	return notifier.NewTerminalNotifier(out, styled, width)
}
