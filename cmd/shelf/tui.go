package main

import (
	"fmt"

	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/settings"
	tuiapp "github.com/cristianoliveira/shelf/internal/tui/app"
	"github.com/spf13/cobra"
)

const tuiCommandLong = `Interactive terminal UI for the product catalog.

USAGE:
    shelf tui

KEY BINDINGS:
    j/k         Move up/down in the list
    v, Enter    View product details
    e           Edit selected product
    a           Add a product
    d           Delete selected product (asks y/N)
    f           Toggle favorite
    /           Search (filters on every keystroke)
    r           Reload the catalog
    o           Switch between API and mock data
    c           Switch between cards and compact layout
    ESC         Close dialogs or leave search
    q           Quit`

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(client tuiapp.Client) *cobra.Command {
	if client == nil {
		panic("NewTUICmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive catalog",
		Long:  tuiCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := client.LoadSettings()
			if err != nil {
				colors.Warning(fmt.Sprintf("Failed to load settings, using defaults: %v", err))
				loaded = settings.DefaultSettings()
			}

			model, err := client.CreateModel(cmd.Context(), loaded)
			if err != nil {
				return err
			}
			return client.RunProgram(model)
		},
	}
}

var tuiCmd = NewTUICmd(tuiapp.NewDefaultClient(nil, nil, nil))

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}
