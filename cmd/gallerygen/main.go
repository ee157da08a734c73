package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-gallerygen/pkg/config"
	"github.com/goliatone/go-gallerygen/pkg/prompt"
)

// app carries the state shared by the subcommands.
type app struct {
	verbose    bool
	configPath string

	logger *zap.Logger
	driver prompt.Driver

	// newLogger is replaced in tests.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{newLogger: productionLogger}
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gallerygen",
		Short: "Generate a static HTML photo gallery from an image manifest",
		Long: `gallerygen reads a manifest of images (CSV, YAML or JSON) and writes a
static gallery: either a single index.html (flat layout) or an index of
thumbnails linking to one page per image (detail layout).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultFile, "config file path")

	root.AddCommand(a.buildCommand(), a.initCommand(), a.renderCommand())
	return root
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newApp().rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
