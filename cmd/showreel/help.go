package main

import (
	"github.com/cristianoliveira/showreel/cmd"
	"github.com/spf13/cobra"
)

// NewHelpCmd creates the help command.
func NewHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [COMMAND]",
		Short: "Show this help message",
		Long:  `Show this help message, or the help of one command.`,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.PrintHelp(c.Root(), c.OutOrStdout())
				return nil
			}
			target, _, err := c.Root().Find(args)
			if err != nil || target == nil || target == c.Root() {
				cmd.PrintHelp(c.Root(), c.OutOrStdout())
				return nil
			}
			return target.Help()
		},
	}
}

func init() {
	cmd.RootCmd.SetHelpCommand(NewHelpCmd())
}
