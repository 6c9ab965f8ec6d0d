package main

import (
	"github.com/charmbracelet/log"

	"github.com/Zuo-Peng/elapsed/internal/config"
	"github.com/Zuo-Peng/elapsed/internal/logging"
	"github.com/Zuo-Peng/elapsed/internal/refresh"
)

// env is what every command needs: config, a logger and the logger's closer.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	close  func() error
}

func loadEnv(cfgPath string, quiet bool) (*env, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logger, closeFn, err := logging.New(cfg.LogLevel, cfg.LogFile, quiet)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}
	return &env{cfg: cfg, logger: logger, close: closeFn}, nil
}

func (e *env) refreshOptions() refresh.Options {
	style := e.cfg.Style()
	return refresh.Options{
		Interval: e.cfg.Interval.Duration,
		Debounce: e.cfg.Debounce.Duration,
		Future:   e.cfg.FuturePolicy(),
		Style:    &style,
		Logger:   e.logger,
	}
}
