package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/modu-ai/skelgen/internal/layout"
	"github.com/modu-ai/skelgen/internal/registry"
	"github.com/modu-ai/skelgen/internal/ui"
)

// layoutFlag returns the --layout value, falling back to the configuration.
func layoutFlag(cmd *cobra.Command, deps *Dependencies, value string) string {
	if cmd.Flags().Changed("layout") {
		return value
	}
	return deps.Config.Layout
}

// templatesFlag returns the --templates value, falling back to the configuration.
func templatesFlag(cmd *cobra.Command, deps *Dependencies, value string) string {
	if cmd.Flags().Changed("templates") {
		return value
	}
	return deps.Config.Templates
}

func newLayoutCmd(deps func() *Dependencies) *cobra.Command {
	var layoutPath string

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout descriptor as YAML",
		Long: heredoc.Doc(`
			Print the layout descriptor in the YAML format accepted by
			--layout. Without --layout the built-in layout is printed, which
			is a convenient starting point for a custom one.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := loadLayout(layoutFlag(cmd, deps(), layoutPath))
			if err != nil {
				return err
			}
			data, err := layout.EncodeYAML(root)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "", "Layout descriptor file (.yaml, .yml or .toml)")
	return cmd
}

func newDescribeCmd(deps func() *Dependencies) *cobra.Command {
	var layoutPath, templatesDir string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the skeleton that would be generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := deps()
			root, err := loadLayout(layoutFlag(cmd, d, layoutPath))
			if err != nil {
				return err
			}
			templates, err := loadTemplates(templatesFlag(cmd, d, templatesDir))
			if err != nil {
				return err
			}

			out, err := ui.RenderMarkdown(d.Theme, d.Headless, describeMarkdown(root, templates))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layout", "", "Layout descriptor file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "Directory of templates overriding the built-in ones")
	return cmd
}

// describeMarkdown summarizes root as a tree followed by a table of files
// and the size of the template each one receives.
func describeMarkdown(root layout.DirectoryGroup, templates *registry.Registry) string {
	var b strings.Builder
	b.WriteString("# Project layout\n\n```text\n")
	b.WriteString(layout.Tree(root))
	b.WriteString("```\n\n")

	files := layout.Files(root)
	if len(files) == 0 {
		b.WriteString("The layout lists no files.\n")
		return b.String()
	}

	b.WriteString("| File | Template |\n|---|---|\n")
	missing := 0
	for _, f := range files {
		content, ok := templates.Lookup(path.Base(f))
		status := fmt.Sprintf("%d bytes", len(content))
		if !ok {
			status = "not registered, skipped"
			missing++
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", f, status)
	}
	fmt.Fprintf(&b, "\n%d file(s), %d without a template.\n", len(files), missing)
	return b.String()
}

func newTemplatesCmd(deps func() *Dependencies) *cobra.Command {
	var templatesDir string

	cmd := &cobra.Command{
		Use:   "templates [name]",
		Short: "List templates or print one",
		Long: heredoc.Doc(`
			Without arguments, list the registered template names and their
			sizes. With a name, print that template's content exactly as it
			would be written.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := loadTemplates(templatesFlag(cmd, deps(), templatesDir))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				content, err := templates.Content(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, content)
				return err
			}

			for _, name := range templates.Names() {
				content, _ := templates.Lookup(name)
				if _, err := fmt.Fprintf(out, "%-20s %6d bytes\n", name, len(content)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&templatesDir, "templates", "", "Directory of templates overriding the built-in ones")
	return cmd
}
