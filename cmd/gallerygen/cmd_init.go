package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-gallerygen/pkg/config"
	"github.com/goliatone/go-gallerygen/pkg/prompt"
	"github.com/goliatone/go-gallerygen/pkg/renderers/plain"
	"github.com/goliatone/go-gallerygen/pkg/renderers/vanilla"
)

func (a *app) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update the config file interactively",
		Long: `Asks for each build setting, offering the values of an existing config
file as defaults, and writes the answers back to --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.Load(a.configPath)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			options := []prompt.WizardOption{prompt.WithRenderers(plain.Name, vanilla.Name)}
			if a.driver != nil {
				options = append(options, prompt.WithDriver(a.driver))
			}

			cfg, err := prompt.NewWizard(options...).Run(cmd.Context(), defaults)
			if err != nil {
				return err
			}
			if err := cfg.Save(a.configPath); err != nil {
				return err
			}

			a.logger.Debug("config saved", zap.String("path", a.configPath))
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", a.configPath)
			return nil
		},
	}
}
