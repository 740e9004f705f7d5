package main

import (
	"fmt"
	"time"

	"github.com/cristianoliveira/showreel/cmd"
	"github.com/cristianoliveira/showreel/internal/carousel"
	"github.com/cristianoliveira/showreel/internal/tui/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const playCommandLong = `Start the project carousel.

The carousel advances on its own every few seconds. Any manual navigation
restarts the countdown.

USAGE:
    showreel play [OPTIONS]

KEY BINDINGS:
    ←/h, →/l    Previous / next project
    1-9         Jump to a project
    g, G        First / last project
    o, Enter    Open the project link
    ?           Show all key bindings
    q, Esc      Quit

MOUSE:
    Click ‹ and › or a dot to navigate. Drag the card left or right and
    release quickly to swipe.

EXAMPLES:
    # Play the built-in sample catalog
    showreel play

    # Play your own catalog with the card transition
    showreel play --catalog ~/projects.yaml --variant card`

type playOptions struct {
	catalog  string
	variant  string
	theme    string
	interval time.Duration
	debounce time.Duration
	journal  bool
}

// NewPlayCmd creates the play command with explicit dependencies.
func NewPlayCmd(client app.Client) *cobra.Command {
	if client == nil {
		panic("NewPlayCmd: client dependency cannot be nil")
	}

	var opts playOptions
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start the project carousel",
		Long:  playCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Flags(), client, opts)
		},
	}

	playCmd.Flags().StringVar(&opts.catalog, "catalog", "", "Catalog file (TOML, YAML or JSON)")
	playCmd.Flags().StringVar(&opts.variant, "variant", "", "Transition variant: directional or card")
	playCmd.Flags().StringVar(&opts.theme, "theme", "", "Color theme: auto, dark or light")
	playCmd.Flags().DurationVar(&opts.interval, "interval", 0, "Autoplay interval, 0 disables autoplay")
	playCmd.Flags().DurationVar(&opts.debounce, "debounce", 0, "Ignore buttons, dots and keys for this long after a change")
	playCmd.Flags().BoolVar(&opts.journal, "journal", false, "Record navigations in the history journal")

	return playCmd
}

func runPlay(flags *pflag.FlagSet, client app.Client, opts playOptions) error {
	settings, err := client.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := opts.apply(flags, settings); err != nil {
		return err
	}

	items, err := client.LoadCatalog(settings.CatalogPath)
	if err != nil {
		return err
	}

	model, err := client.CreateModel(settings, items)
	if err != nil {
		return fmt.Errorf("create carousel: %w", err)
	}
	defer client.Close()

	return client.RunProgram(model)
}

// apply overrides settings with the flags the user set explicitly.
func (o playOptions) apply(flags *pflag.FlagSet, s *app.Settings) error {
	if flags.Changed("catalog") {
		s.CatalogPath = o.catalog
	}
	if flags.Changed("variant") {
		v, err := carousel.ParseVariant(o.variant)
		if err != nil {
			return err
		}
		s.SetVariant(v)
	}
	if flags.Changed("theme") {
		s.Theme = o.theme
	}
	if flags.Changed("interval") {
		s.Options.AutoplayInterval = o.interval
	}
	if flags.Changed("debounce") {
		s.SetDebounce(o.debounce)
	}
	if flags.Changed("journal") {
		s.Journal = o.journal
	}
	return s.Validate()
}

func init() {
	cmd.RootCmd.AddCommand(NewPlayCmd(appClient))
}
