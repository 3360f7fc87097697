package main

import (
	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/app"
	"github.com/spf13/cobra"
)

const listCommandLong = `List products.

USAGE:
    shelf list [OPTIONS]

OPTIONS:
    --search <query>     Keep products matching query (search_mode decides how)
    --format=<format>    Output format: simple (default), table, json, html
    --offline            Use the local mock data instead of the API
    -h, --help           Show this help

Favorites are marked with a solid heart.`

const favoritesCommandLong = `List favorite products.

USAGE:
    shelf favorites [OPTIONS]

OPTIONS:
    --format=<format>    Output format: simple (default), table, json, html
    --offline            Use the local mock data instead of the API
    -h, --help           Show this help`

type listFlags struct {
	search  string
	format  string
	offline bool
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client runtimeClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var flags listFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, client, flags, false)
		},
	}

	listCmd.Flags().StringVar(&flags.search, "search", "", "Keep products matching query")
	listCmd.Flags().StringVar(&flags.format, "format", "simple", "Output format: simple, table, json, html")
	listCmd.Flags().BoolVar(&flags.offline, "offline", false, "Use the local mock data instead of the API")
	return listCmd
}

// NewFavoritesCmd creates the favorites command with explicit dependencies.
func NewFavoritesCmd(client runtimeClient) *cobra.Command {
	if client == nil {
		panic("NewFavoritesCmd: client dependency cannot be nil")
	}

	var flags listFlags
	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite products",
		Long:  favoritesCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, client, flags, true)
		},
	}

	favoritesCmd.Flags().StringVar(&flags.format, "format", "simple", "Output format: simple, table, json, html")
	favoritesCmd.Flags().BoolVar(&flags.offline, "offline", false, "Use the local mock data instead of the API")
	return favoritesCmd
}

func runList(cmd *cobra.Command, client runtimeClient, flags listFlags, favoritesOnly bool) error {
	// Reject a bad format before touching the store or the network.
	if err := app.ValidateFormat(flags.format); err != nil {
		return err
	}
	rt, err := client.Runtime()
	if err != nil {
		return err
	}
	return app.NewListUseCase(rt.Service).Execute(cmd.Context(), app.ListOptions{
		UseAPI:         useAPI(rt, flags.offline),
		Search:         flags.search,
		SearchProvider: rt.Search,
		Format:         flags.format,
		FavoritesOnly:  favoritesOnly,
	}, cmd.OutOrStdout())
}

var (
	listCmd      = NewListCmd(catalogRuntime)
	favoritesCmd = NewFavoritesCmd(catalogRuntime)
)

func init() {
	cmd.RootCmd.AddCommand(listCmd, favoritesCmd)
}
