package main

import (
	"fmt"

	"github.com/cristianoliveira/showreel/cmd"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
	LongVersion() string
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	var long bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of showreel.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if long {
				fmt.Fprintln(cmd.OutOrStdout(), client.LongVersion())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "showreel version %s\n", client.Version())
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&long, "long", false, "Include Go version, platform and build date")
	return versionCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd(versionClientImpl))
}
