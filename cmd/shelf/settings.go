package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/app"
	"github.com/spf13/cobra"
)

const (
	settingsCommandLong = `Manage TUI settings.

USAGE:
    shelf settings <subcommand>

SUBCOMMANDS:
    reset    Reset settings to defaults
    show     Display current settings

EXAMPLES:
    # Reset settings with confirmation
    shelf settings reset

    # Reset settings without confirmation
    shelf settings reset --force

    # Show current settings
    shelf settings show`
	resetCommandLong = `Reset TUI settings to defaults by deleting the settings file.

USAGE:
    shelf settings reset [OPTIONS]

OPTIONS:
    --force    Reset without confirmation
    -h, --help Show this help`
	showCommandLong = `Display current TUI settings in TOML format.

USAGE:
    shelf settings show`
)

// NewSettingsCmd creates the settings command with explicit dependencies.
func NewSettingsCmd(client app.SettingsClient) *cobra.Command {
	if client == nil {
		panic("NewSettingsCmd: client dependency cannot be nil")
	}

	useCase := app.NewSettingsUseCase(client)
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage TUI settings",
		Long:  settingsCommandLong,
	}

	var force bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset TUI settings to defaults",
		Long:  resetCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return useCase.Reset(app.ResetSettingsInput{
				Force:     force,
				GetEnv:    os.Getenv,
				ConfirmFn: func() bool { return confirmReset(cmd) },
			})
		},
	}
	resetCmd.Flags().BoolVar(&force, "force", false, "Reset without confirmation")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current settings",
		Long:  showCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return useCase.Show()
		},
	}

	settingsCmd.AddCommand(resetCmd, showCmd)
	return settingsCmd
}

// confirmReset asks the user for confirmation before resetting settings.
func confirmReset(c *cobra.Command) bool {
	fmt.Fprint(c.OutOrStdout(), "Are you sure you want to reset all settings to defaults? (y/N): ")
	return readYes(confirmInput)
}

var settingsCmd = NewSettingsCmd(app.DefaultSettingsClient{})

func init() {
	cmd.RootCmd.AddCommand(settingsCmd)
}
