package main

import (
	"errors"
	"fmt"

	"github.com/cristianoliveira/showreel/cmd"
	"github.com/cristianoliveira/showreel/internal/config"
	"github.com/spf13/cobra"
)

// ErrInvalidCatalog is returned when a catalog has validation problems.
var ErrInvalidCatalog = errors.New("catalog has problems")

// NewValidateCmd creates the validate command with explicit dependencies.
func NewValidateCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewValidateCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "validate [PATH]",
		Short: "Check a catalog for problems",
		Long: `Check a catalog for missing titles, missing ids and duplicate ids.

USAGE:
    showreel validate [PATH]

Without PATH the configured catalog_path is checked, or the built-in sample.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Get("catalog_path", "")
			if len(args) == 1 {
				path = args[0]
			}
			items, err := client.LoadCatalog(path)
			if err != nil {
				return err
			}

			problems := items.Validate()
			for _, p := range problems {
				fmt.Fprintln(cmd.ErrOrStderr(), p.String())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%w: %d found in %s", ErrInvalidCatalog, len(problems), items.Source())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d projects, no problems\n", items.Source(), items.Len())
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewValidateCmd(appClient))
}
