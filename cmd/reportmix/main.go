// Package main provides the reportmix CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gauthierbraillon/reportmix/internal/cleaner"
	"github.com/gauthierbraillon/reportmix/internal/config"
	"github.com/gauthierbraillon/reportmix/internal/display"
	"github.com/gauthierbraillon/reportmix/internal/input"
	"github.com/gauthierbraillon/reportmix/internal/logging"
	"github.com/gauthierbraillon/reportmix/internal/social"
	"github.com/gauthierbraillon/reportmix/internal/timestamp"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// resolveVersion prefers the ldflags version and falls back to the module
// version recorded by go install.
func resolveVersion(ldflagsVersion string, info *debug.BuildInfo) string {
	if ldflagsVersion != "dev" && ldflagsVersion != "" {
		return ldflagsVersion
	}
	if info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}

// app holds what every pipeline command needs.
type app struct {
	cfg     *config.Config
	log     *logrus.Entry
	norm    *timestamp.Normalizer
	decoder *input.Decoder
}

// loadApp reads configuration and builds the logger and normalizer.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewWithService(cfg.Log, cmd.ErrOrStderr(), "reportmix")
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     logger,
		norm:    timestamp.New(loc),
		decoder: input.NewDecoder(),
	}, nil
}

func (a *app) newCleaner(parallel bool) *cleaner.Cleaner {
	return cleaner.New(
		cleaner.WithLogger(a.log),
		cleaner.WithNormalizer(a.norm),
		cleaner.WithParallel(parallel || a.cfg.Pipeline.Parallel),
	)
}

func (a *app) newFormatter() *display.TerminalFormatter {
	useColors := a.cfg.Output.Colors && !color.NoColor
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColors = false
	}
	return display.NewTerminalFormatter(display.WithColors(useColors))
}

// dateRangeFlags returns the --start/--end range, nil when neither is set.
func dateRangeFlags(start, end string) (*social.DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, errors.New("--start and --end must be used together")
	}

	dr := &social.DateRange{StartDate: start, EndDate: end}
	if err := input.NewValidator().Validate(dr); err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}
	return dr, nil
}

// newRootCmd creates the root command for reportmix CLI.
func newRootCmd() *cobra.Command {
	info, _ := debug.ReadBuildInfo()

	rootCmd := &cobra.Command{
		Use:          "reportmix",
		Short:        "Clean and combine social media scraper results",
		Long:         "Reportmix turns raw Instagram, LinkedIn, Facebook, Twitter and TikTok scraper results into one engagement report.",
		Version:      resolveVersion(version, info),
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate("reportmix version {{.Version}}\n")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is $REPORTMIX_CONFIG_DIR/reportmix.yaml)")

	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newRecleanCmd())
	rootCmd.AddCommand(newFeedCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
