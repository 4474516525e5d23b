package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/skelgen/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "skelgen %s\n", version.GetFullVersion())
			return err
		},
	}
}
