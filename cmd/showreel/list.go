package main

import (
	"github.com/cristianoliveira/showreel/cmd"
	"github.com/cristianoliveira/showreel/internal/catalog"
	"github.com/cristianoliveira/showreel/internal/config"
	"github.com/cristianoliveira/showreel/internal/format"
	"github.com/spf13/cobra"
)

type catalogClient interface {
	LoadCatalog(path string) (*catalog.Catalog, error)
}

const listCommandLong = `List the projects of a catalog in carousel order.

USAGE:
    showreel list [OPTIONS]

OPTIONS:
    --catalog PATH    Catalog file (default: catalog_path, or the built-in sample)
    --format FORMAT   table, simple or json (default: table)`

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var catalogPath, outputFormat string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog projects",
		Long:  listCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := format.ParseType(outputFormat)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("catalog") {
				catalogPath = config.Get("catalog_path", "")
			}
			items, err := client.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			return format.NewFormatter(kind).FormatItems(items.Items(), cmd.OutOrStdout())
		},
	}

	listCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file")
	listCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeTable), "Output format: table, simple or json")
	return listCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewListCmd(appClient))
}
