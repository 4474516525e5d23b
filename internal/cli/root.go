package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/modu-ai/skelgen/internal/config"
	"github.com/modu-ai/skelgen/pkg/version"
)

// Execute builds the command tree and runs it. An interrupt cancels the
// running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd returns the skelgen root command. Run without arguments it
// generates the built-in project skeleton into the current directory.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noColor    bool
		deps       *Dependencies
	)

	rootCmd := &cobra.Command{
		Use:   "skelgen",
		Short: "Generate a web service project skeleton",
		Long: heredoc.Doc(`
			skelgen writes a project skeleton to disk: a FastAPI web service
			with its routers, a PostgreSQL helper, a Dockerfile and a compose
			file.

			Run without arguments it generates the skeleton into the current
			directory. Directories that already exist are reused, generated
			files are overwritten.
		`),
		Version:      version.GetVersion(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("no-color") {
				cfg.NoColor = noColor
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			deps = newDependencies(cfg, cmd.ErrOrStderr())
			if configPath != "" {
				deps.Logger.Debug("configuration loaded",
					"path", configPath,
					"target", cfg.Target,
					"layout", cfg.Layout,
				)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, deps, optionsFromConfig(deps.Config))
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("skelgen %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a YAML run configuration")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")

	depsFn := func() *Dependencies { return deps }
	rootCmd.AddCommand(
		newGenerateCmd(depsFn),
		newLayoutCmd(depsFn),
		newDescribeCmd(depsFn),
		newTemplatesCmd(depsFn),
		newVersionCmd(),
	)

	return rootCmd
}
