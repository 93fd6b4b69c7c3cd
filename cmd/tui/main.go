package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/SathFenrir/lockroi/internal/config"
	"github.com/SathFenrir/lockroi/internal/logger"
	"github.com/SathFenrir/lockroi/internal/table"
	"github.com/SathFenrir/lockroi/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.LogFile = cfg.LogFile
	logCfg.Development = cfg.DebugLogging

	appLogger, err := logger.New(logCfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	startLog := appLogger.WithOperation("startup")

	cache := table.NewCache(table.NewLoader(cfg.TableHasHeader, appLogger.Logger), appLogger.Logger)
	tbl, err := cache.Get(cfg.TablePath)
	if err != nil {
		appLogger.LogError("Failed to load multiplier table", err)
		os.Exit(1)
	}

	calc, err := cfg.Calculator()
	if err != nil {
		appLogger.LogError("Invalid reward configuration", err)
		os.Exit(1)
	}

	startLog.Info("Starting lock-up ROI calculator",
		zap.String("table", cfg.TablePath),
		zap.Int("rows", tbl.Len()),
		zap.String("convention", cfg.RewardConvention))

	program := tea.NewProgram(
		ui.NewModel(cfg, tbl, cache, calc, appLogger.Logger),
		tea.WithAltScreen(),
	)

	go func() {
		if _, err := program.Run(); err != nil {
			appLogger.Error("TUI application failed", zap.Error(err))
		}
		stop()
	}()

	<-rootCtx.Done()

	appLogger.Info("Shutting down calculator")
	program.Quit()
}
