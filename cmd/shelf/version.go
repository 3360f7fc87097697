package main

import (
	"fmt"

	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var long bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show the current version of shelf.

USAGE:
    shelf version [--long]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if long {
				fmt.Fprintln(cmd.OutOrStdout(), version.Long())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shelf version %s\n", version.String())
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&long, "long", false, "Include the Go version and build date")
	return versionCmd
}

var versionCmd = NewVersionCmd()

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
