// Package cmd holds the root command shared by the shelf binary.
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/shelf/internal/version"
	"github.com/spf13/cobra"
)

const description = "Browse, edit and bookmark products from your terminal."

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "shelf",
	Short:         description,
	Long:          description,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// outputWriter overrides where the help text goes. Tests set it.
var outputWriter io.Writer

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"tui",
	"list",
	"add",
	"edit",
	"delete",
	"favorite",
	"favorites",
	"settings",
	"version",
	"help",
}

// Execute runs the root command with ctx. Errors are returned for the
// caller to report.
func Execute(ctx context.Context, args []string) error {
	RootCmd.SetArgs(args)
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprint(cmd.OutOrStdout(), cmd.Long+"\n")
			return
		}
		PrintHelp(cmd)
	})
}

// PrintHelp writes the command overview for root.
func PrintHelp(root *cobra.Command) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`shelf v%s

%s

USAGE:
    shelf [COMMAND] [OPTIONS]

    Running shelf without a command opens the interactive UI.

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
    -v, --version   Show version
`, root.Version, description, strings.Join(cmdLines, "\n"))

	w := outputWriter
	if w == nil {
		w = root.OutOrStdout()
	}
	fmt.Fprint(w, helpText)
}
