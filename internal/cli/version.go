package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mecanica/pkg/mecanica"
)

const modulePath = "github.com/mesh-intelligence/mecanica"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mecanica version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "mecanica v%s\nmodule: %s\n", mecanica.Version, modulePath)
			return nil
		},
	}
}
