package main

import (
	"fmt"

	"github.com/cristianoliveira/shelf/cmd"
	"github.com/cristianoliveira/shelf/internal/app"
	"github.com/spf13/cobra"
)

const addCommandLong = `Add a product to the catalog.

USAGE:
    shelf add --name <name> --price <price> [OPTIONS]

OPTIONS:
    --name <name>          Product name (at least 2 characters)
    --price <price>        Price in euros, comma or dot decimals (at least 0.1)
    --description <text>   Description
    --image <url>          Image URL
    --offline              Keep the product local instead of posting it
    -h, --help             Show this help

With --offline nothing is sent or saved: the mock data is rebuilt on every
run, so the change only lasts for this command.`

const editCommandLong = `Edit a product. Omitted fields keep their current value.

USAGE:
    shelf edit <id> [OPTIONS]

OPTIONS:
    --name <name>          Product name (at least 2 characters)
    --price <price>        Price in euros, comma or dot decimals (at least 0.1)
    --description <text>   Description
    --image <url>          Image URL
    --offline              Edit the mock data instead of the API
    -h, --help             Show this help

With --offline nothing is sent or saved: the mock data is rebuilt on every
run, so the change only lasts for this command.`

type submitFlags struct {
	name        string
	price       string
	description string
	image       string
	offline     bool
}

func bindSubmitFlags(c *cobra.Command, f *submitFlags) {
	c.Flags().StringVar(&f.name, "name", "", "Product name")
	c.Flags().StringVar(&f.price, "price", "", "Price in euros")
	c.Flags().StringVar(&f.description, "description", "", "Description")
	c.Flags().StringVar(&f.image, "image", "", "Image URL")
	c.Flags().BoolVar(&f.offline, "offline", false, "Do not call the API")
}

// changed returns a pointer to value when the flag was given.
func changed(c *cobra.Command, name string, value string) *string {
	if !c.Flags().Changed(name) {
		return nil
	}
	return &value
}

// NewAddCmd creates the add command with explicit dependencies.
func NewAddCmd(client runtimeClient) *cobra.Command {
	if client == nil {
		panic("NewAddCmd: client dependency cannot be nil")
	}

	var flags submitFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Long:  addCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, client, "", flags)
		},
	}
	bindSubmitFlags(addCmd, &flags)
	return addCmd
}

// NewEditCmd creates the edit command with explicit dependencies.
func NewEditCmd(client runtimeClient) *cobra.Command {
	if client == nil {
		panic("NewEditCmd: client dependency cannot be nil")
	}

	var flags submitFlags
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a product",
		Long:  editCommandLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("edit requires exactly one product id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, client, args[0], flags)
		},
	}
	bindSubmitFlags(editCmd, &flags)
	return editCmd
}

func runSubmit(c *cobra.Command, client runtimeClient, id string, flags submitFlags) error {
	rt, err := client.Runtime()
	if err != nil {
		return err
	}
	result, err := app.NewSubmitUseCase(rt.Service).Execute(c.Context(), app.SubmitInput{
		UseAPI:      useAPI(rt, flags.offline),
		ID:          id,
		Name:        changed(c, "name", flags.name),
		Price:       changed(c, "price", flags.price),
		Description: changed(c, "description", flags.description),
		Image:       changed(c, "image", flags.image),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), result.ID.String())
	return nil
}

var (
	addCmd  = NewAddCmd(catalogRuntime)
	editCmd = NewEditCmd(catalogRuntime)
)

func init() {
	cmd.RootCmd.AddCommand(addCmd, editCmd)
}
