package main

import (
	"fmt"

	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/app"
	"github.com/spf13/cobra"
)

const favoriteCommandLong = `Add a product to favorites, or remove it when already there.

USAGE:
    shelf favorite <id> [OPTIONS]

OPTIONS:
    --offline    Resolve the id against the mock data
    -h, --help   Show this help

Favorites are stored on disk and shared by both sources. Toggling with
--offline only changes the given id; saved favorites missing from the
mock data are kept.`

// NewFavoriteCmd creates the favorite command with explicit dependencies.
func NewFavoriteCmd(client runtimeClient) *cobra.Command {
	if client == nil {
		panic("NewFavoriteCmd: client dependency cannot be nil")
	}

	var offline bool
	favoriteCmd := &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle a favorite",
		Long:  favoriteCommandLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("favorite requires exactly one product id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := client.Runtime()
			if err != nil {
				return err
			}
			_, err = app.NewFavoriteUseCase(rt.Service).Execute(cmd.Context(), useAPI(rt, offline), args[0])
			return err
		},
	}

	favoriteCmd.Flags().BoolVar(&offline, "offline", false, "Resolve the id against the mock data")
	return favoriteCmd
}

var favoriteCmd = NewFavoriteCmd(catalogRuntime)

func init() {
	cmd.RootCmd.AddCommand(favoriteCmd)
}
