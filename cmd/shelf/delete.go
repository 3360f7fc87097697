package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/app"
	"github.com/spf13/cobra"
)

const deleteCommandLong = `Delete a product.

USAGE:
    shelf delete <id> [OPTIONS]

OPTIONS:
    --yes        Delete without confirmation
    --offline    Delete from the mock data instead of the API
    -h, --help   Show this help

Products created locally or loaded from mock data are removed without
calling the API.

With --offline nothing is sent or saved: the mock data is rebuilt on every
run, so the change only lasts for this command.`

// confirmInput is read by the confirmation prompts.
var confirmInput io.Reader = os.Stdin

// NewDeleteCmd creates the delete command with explicit dependencies.
func NewDeleteCmd(client runtimeClient) *cobra.Command {
	if client == nil {
		panic("NewDeleteCmd: client dependency cannot be nil")
	}

	var yes bool
	var offline bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Long:  deleteCommandLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("delete requires exactly one product id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := client.Runtime()
			if err != nil {
				return err
			}
			return app.NewDeleteUseCase(rt.Service).Execute(cmd.Context(), app.DeleteInput{
				UseAPI:        useAPI(rt, offline),
				ID:            args[0],
				Yes:           yes,
				Confirm:       func(title string) bool { return confirmDelete(cmd.OutOrStdout(), title) },
				IsCIOrTestEnv: func() bool { return os.Getenv("CI") != "" },
			})
		},
	}

	deleteCmd.Flags().BoolVar(&yes, "yes", false, "Delete without confirmation")
	deleteCmd.Flags().BoolVar(&offline, "offline", false, "Delete from the mock data instead of the API")
	return deleteCmd
}

// confirmDelete asks the user for confirmation before deleting.
func confirmDelete(w io.Writer, title string) bool {
	fmt.Fprintf(w, "Delete %s? (y/N): ", title)
	return readYes(confirmInput)
}

// readYes reports whether the next line is y or yes. A read failure means no.
func readYes(r io.Reader) bool {
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

var deleteCmd = NewDeleteCmd(catalogRuntime)

func init() {
	cmd.RootCmd.AddCommand(deleteCmd)
}
