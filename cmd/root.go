package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/showreel/internal/colors"
	"github.com/cristianoliveira/showreel/internal/config"
	"github.com/cristianoliveira/showreel/internal/errors"
	"github.com/cristianoliveira/showreel/internal/logging"
	"github.com/cristianoliveira/showreel/internal/version"
	"github.com/spf13/cobra"
)

const description = "A terminal carousel for your projects."

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"play",
	"list",
	"validate",
	"history",
	"version",
	"help",
}

// errorHandler is where command setup failures are reported.
var errorHandler errors.ErrorHandler = errors.NewDefaultCLIHandler()

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "showreel",
	Short:         description,
	Long:          description,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		Teardown()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

// Setup loads the configuration and starts the file logger.
func Setup() {
	config.Load()
	if config.GetBool("debug", false) {
		colors.SetDebug(true)
	}
	if err := logging.InitGlobal(); err != nil {
		errorHandler.Warning(fmt.Sprintf("file logging disabled: %v", err))
		colors.StructuredWarn("logging", "init", "disabled", err, "", nil)
		return
	}
	if colors.DebugEnabled() {
		if path := logging.CurrentLogFile(); path != "" {
			colors.Debug("logging to", path)
		}
	}
}

// ReportError prints a failed command's error.
func ReportError(err error) {
	errors.Report(errorHandler, "", err)
}

// Teardown flushes and closes the file logger.
func Teardown() {
	if err := logging.ShutdownGlobal(); err != nil {
		colors.Debug(fmt.Sprintf("closing log file: %v", err))
	}
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		PrintHelp(cmd, cmd.OutOrStdout())
	})
}

// PrintHelp writes the root help text listing every registered command.
func PrintHelp(cmd *cobra.Command, w io.Writer) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %s%-16s%s %s", colors.Cyan, found.Name(), colors.Reset, found.Short))
	}

	fmt.Fprintf(w, `%sshowreel %s%s

%s

%sUSAGE:%s
    showreel [COMMAND] [OPTIONS]

%sCOMMANDS:%s
%s

%sOPTIONS:%s
    -h, --help      Show help message
    -v, --version   Show version
`, colors.Blue, version.String(), colors.Reset, description,
		colors.Blue, colors.Reset, colors.Blue, colors.Reset, strings.Join(cmdLines, "\n"), colors.Blue, colors.Reset)
}
