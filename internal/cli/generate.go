package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/modu-ai/skelgen/internal/config"
	"github.com/modu-ai/skelgen/internal/scaffold"
	"github.com/modu-ai/skelgen/internal/ui"
)

// completionMessage is printed after a successful run.
const completionMessage = "Project structure generated successfully."

// errAborted is returned when the user declines to overwrite existing files.
var errAborted = errors.New("generation aborted: existing files were left untouched")

// generateOptions are the settings of one generation run.
type generateOptions struct {
	Target    string
	Layout    string
	Templates string
	DryRun    bool
	Progress  bool
	Confirm   bool
}

func optionsFromConfig(cfg *config.Config) generateOptions {
	return generateOptions{
		Target:    cfg.Target,
		Layout:    cfg.Layout,
		Templates: cfg.Templates,
		Progress:  cfg.Progress,
		Confirm:   cfg.Confirm,
	}
}

func newGenerateCmd(deps func() *Dependencies) *cobra.Command {
	var flags generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the project skeleton",
		Long: heredoc.Doc(`
			Generate the project skeleton into a target directory.

			The target directory and any missing parent directories are
			created. Existing directories are kept as they are; every file
			with a registered template is written in full. File names in the
			layout that have no template are skipped.
		`),
		Example: heredoc.Doc(`
			skelgen generate --dir ./my-service
			skelgen generate --layout layout.yaml --templates ./overrides
			skelgen generate --dry-run
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := optionsFromConfig(deps().Config)
			f := cmd.Flags()
			if f.Changed("dir") {
				opts.Target = flags.Target
			}
			if f.Changed("layout") {
				opts.Layout = flags.Layout
			}
			if f.Changed("templates") {
				opts.Templates = flags.Templates
			}
			if f.Changed("progress") {
				opts.Progress = flags.Progress
			}
			if f.Changed("confirm") {
				opts.Confirm = flags.Confirm
			}
			opts.DryRun = flags.DryRun
			return runGenerate(cmd, deps(), opts)
		},
	}

	cmd.Flags().StringVarP(&flags.Target, "dir", "d", config.DefaultTarget, "Target directory")
	cmd.Flags().StringVar(&flags.Layout, "layout", "", "Layout descriptor file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&flags.Templates, "templates", "", "Directory of templates overriding the built-in ones")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the planned actions without writing anything")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar")
	cmd.Flags().BoolVar(&flags.Confirm, "confirm", false, "Ask before overwriting existing files")

	return cmd
}

// runGenerate materializes the layout described by opts.
func runGenerate(cmd *cobra.Command, deps *Dependencies, opts generateOptions) error {
	root, err := loadLayout(opts.Layout)
	if err != nil {
		return err
	}
	templates, err := loadTemplates(opts.Templates)
	if err != nil {
		return err
	}

	steps, err := scaffold.Plan(root, templates)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.DryRun {
		for _, s := range steps {
			if _, err := fmt.Fprintf(out, "%-5s %s\n", s.Kind, s.Path); err != nil {
				return err
			}
		}
		return nil
	}

	target, err := filepath.Abs(opts.Target)
	if err != nil {
		return fmt.Errorf("resolve target %q: %w", opts.Target, err)
	}
	fsys := scaffold.HostFS()

	if opts.Confirm {
		existing, err := scaffold.Existing(fsys, target, steps)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			prompt := ui.NewPrompt(deps.Theme, deps.Headless)
			ok, err := prompt.Confirm(fmt.Sprintf("Overwrite %d existing file(s) in %s?", len(existing), target), false)
			if err != nil {
				return err
			}
			if !ok {
				return errAborted
			}
		}
	}

	opt := []scaffold.Option{scaffold.WithLogger(deps.Logger)}
	var bar ui.ProgressBar
	if opts.Progress {
		bar = ui.NewProgress(deps.Theme, deps.Headless, cmd.ErrOrStderr()).
			Start("Generating "+target, scaffold.CountWrites(steps))
		opt = append(opt, scaffold.WithObserver(func(e scaffold.Event) {
			if e.Kind == scaffold.FileWritten {
				bar.SetTitle(e.Path)
				bar.Increment(1)
			}
		}))
	}

	report, err := scaffold.New(fsys, templates, opt...).Materialize(cmd.Context(), target, root)
	if bar != nil {
		bar.SetTitle("Done")
		bar.Done()
	}
	if err != nil {
		return err
	}
	deps.Logger.Info("generation finished",
		"target", target,
		"dirs", len(report.Dirs),
		"written", len(report.Written),
		"skipped", len(report.Skipped),
	)

	_, err = fmt.Fprintln(out, deps.Theme.Success(completionMessage))
	return err
}
