package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"moodify/cli"
	"moodify/config"
	"moodify/exporter"
	"moodify/palette"
)

var (
	configFlag   string
	logLevelFlag string
	pngFlag      string

	rootCmd = &cobra.Command{
		Use:           "moodify",
		Short:         "moodify - turn a mood into a color palette",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := setup(os.Stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			runGUI(cfg)
			return nil
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate <mood...>",
		Short: "Generate a palette in the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := setup(nil)
			if err != nil {
				return err
			}
			defer closer.Close()

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
			defer cancel()

			result, err := palette.NewGeneratorFromConfig(cfg).Generate(ctx, strings.Join(args, " "))
			if errors.Is(err, palette.ErrEmptyMood) {
				return fmt.Errorf("mood must not be empty")
			}
			if err != nil {
				return err
			}

			cli.PrintPalette(cmd.OutOrStdout(), result, cli.IsRich())

			if pngFlag != "" {
				if err := exporter.ExportPNG(result, pngFlag); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", pngFlag)
			}
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of moodify",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.VersionString())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config.toml (default ~/.config/moodify/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")

	generateCmd.Flags().StringVar(&pngFlag, "png", "", "also export the palette to this PNG file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env, the configuration and the logger. console receives
// human readable log lines and may be nil.
func setup(console io.Writer) (*config.Config, io.Closer, error) {
	// A missing .env is fine; variables may come from the shell
	_ = godotenv.Load()

	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	logPath, err := config.LogFilePath()
	if err != nil {
		return nil, nil, err
	}
	closer, err := config.InitLogger(logPath, cfg.LogLevel, console)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot initialize logging: %w", err)
	}

	log.Info().
		Str("component", "config").
		Str("version", config.Version).
		Str("model", cfg.Model).
		Str("api_key", cfg.MaskedAPIKey()).
		Msg("configuration loaded")

	return cfg, closer, nil
}
