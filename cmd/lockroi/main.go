package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SathFenrir/lockroi/internal/config"
	"github.com/SathFenrir/lockroi/internal/export"
	"github.com/SathFenrir/lockroi/internal/logger"
	"github.com/SathFenrir/lockroi/internal/roi"
	"github.com/SathFenrir/lockroi/internal/table"
	"github.com/SathFenrir/lockroi/internal/ui"
)

var configPath string

// session bundles everything a subcommand needs after startup.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	cache  *table.Cache
	tbl    *table.Table
	calc   *roi.Calculator
}

// newSession loads config, logging, and the multiplier table. A table load
// failure is fatal here: there is nothing to do without the table.
func newSession() (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.CreatePrettyLogger(cfg.DebugLogging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cache := table.NewCache(table.NewLoader(cfg.TableHasHeader, appLogger), appLogger)
	tbl, err := cache.Get(cfg.TablePath)
	if err != nil {
		return nil, err
	}

	calc, err := cfg.Calculator()
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: appLogger, cache: cache, tbl: tbl, calc: calc}, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lockroi",
		Short:         "Compare holding a token against locking it for day-based multiplier rewards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.json", "path to config file")

	rootCmd.AddCommand(newQuoteCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newTUICmd())
	return rootCmd
}

func newQuoteCmd() *cobra.Command {
	var (
		token1 float64
		token2 float64
		day    int
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a one-shot holding-vs-locking comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("token1") {
				token1 = s.cfg.Token1.Default
			}
			if !cmd.Flags().Changed("token2") {
				token2 = s.cfg.Token2.Default
			}
			if !cmd.Flags().Changed("day") {
				day = s.tbl.ClampDay(s.cfg.DefaultDay)
			}

			row, err := s.tbl.FindRow(day)
			if err != nil {
				if errors.Is(err, table.ErrDayNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "No matching row found for day=%d (table covers %d..%d)\n",
						day, s.tbl.MinDay(), s.tbl.MaxDay())
					return nil
				}
				return err
			}

			result := s.calc.Calculate(token1, token2, row.Multiplier)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Token 1 Price:       $%.2f\n", token1)
			fmt.Fprintf(out, "Token 2 Price:       $%.2f\n", token2)
			fmt.Fprintf(out, "Chosen Day (Locked): %d\n", day)
			fmt.Fprintf(out, "Day's Multiplier:    %.6f\n", row.Multiplier)
			fmt.Fprintf(out, "Holding Value:       $%.2f\n", result.HoldingValue)
			fmt.Fprintf(out, "Locking Value:       $%.2f\n", result.LockingValue)
			fmt.Fprintf(out, "ROI (Lock / Hold):   %.2f\n", result.Ratio)
			fmt.Fprintf(out, "Result: %s\n", result.Verdict())
			return nil
		},
	}

	cmd.Flags().Float64Var(&token1, "token1", 0, "token 1 price in dollars")
	cmd.Flags().Float64Var(&token2, "token2", 0, "token 2 price in dollars")
	cmd.Flags().IntVar(&day, "day", 0, "lock-up duration in days")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		format string
		outDir string
		token1 float64
		token2 float64
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full ROI comparison curve to CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("token1") {
				token1 = s.cfg.Token1.Default
			}
			if !cmd.Flags().Changed("token2") {
				token2 = s.cfg.Token2.Default
			}

			exporter := export.NewCurveExporter(s.logger)
			path, err := exporter.ExportCurve(s.tbl, s.calc, export.Options{
				Format:      export.Format(format),
				OutputDir:   outDir,
				Token1Price: token1,
				Token2Price: token2,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&outDir, "out", "exports", "output directory")
	cmd.Flags().Float64Var(&token1, "token1", 0, "token 1 price in dollars")
	cmd.Flags().Float64Var(&token2, "token2", 0, "token 2 price in dollars")
	return cmd
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}

			program := tea.NewProgram(
				ui.NewModel(s.cfg, s.tbl, s.cache, s.calc, s.logger),
				tea.WithAltScreen(),
			)
			_, err = program.Run()
			return err
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Println("Error:", err)
		os.Exit(1)
	}
}
