package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sitegen-labs/sitegen/internal/branding"
	"github.com/sitegen-labs/sitegen/internal/config"
	"github.com/sitegen-labs/sitegen/internal/logging"
	"github.com/sitegen-labs/sitegen/internal/runtime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// logger is built from settings before every command runs.
var logger = logging.Discard()

// newRunner returns the process runner used by create and doctor.
// Tests replace it with a fake.
var newRunner = func(cmd *cobra.Command) runtime.Runner {
	return &runtime.ExecRunner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Stdin:  cmd.InOrStdin(),
	}
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a Next.js front-end project for a site type
(portfolio, dashboard, or landing page): it runs create-next-app, installs
framer-motion, and writes a starter page and content component.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = viper.BindPFlag(config.KeyLogLevel, cmd.Root().PersistentFlags().Lookup("log-level"))
		_ = viper.BindPFlag(config.KeyLogFormat, cmd.Root().PersistentFlags().Lookup("log-format"))
		config.Load()
		settings := config.Current()

		l, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel, settings.LogFormat)
		if err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr; use ExitCode to map them to a process status.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Error:"), err)
	}
	return err
}
