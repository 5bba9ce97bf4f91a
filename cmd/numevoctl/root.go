package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	envFile  string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "numevoctl",
		Short: "Evolve populations of numerals and fixed-length numeral vectors",
		Long: `numevoctl runs a generational evolutionary algorithm built from five
swappable policies: initiation, mutation, crossover, selection and stop condition.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(opts.envFile); err != nil {
				return err
			}
			handler := slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLevel(opts.logLevel)})
			opts.logger = slog.New(handler)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Environment file with NUMEVO_* overrides")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newProfilesCmd())
	cmd.AddCommand(newPoliciesCmd())
	return cmd
}

// loadEnvFile loads path into the process environment. A missing file is not
// an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
