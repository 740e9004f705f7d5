package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cristianoliveira/showreel/cmd"
	"github.com/cristianoliveira/showreel/internal/colors"
	"github.com/cristianoliveira/showreel/internal/format"
	"github.com/cristianoliveira/showreel/internal/journal"
	"github.com/spf13/cobra"
)

const historyTimeout = 10 * time.Second

type historyStore interface {
	Recent(ctx context.Context, f journal.Filter) ([]journal.Entry, error)
	Counts(ctx context.Context) ([]journal.ItemCount, error)
	Clear(ctx context.Context) (int64, error)
	Close() error
}

type historyClient interface {
	OpenJournal() (historyStore, error)
}

const historyCommandLong = `Show the navigation journal.

The journal is written by "showreel play" when journal_enabled is set or
--journal is passed.

USAGE:
    showreel history [OPTIONS]

EXAMPLES:
    # Last 20 navigations
    showreel history

    # Only swipes on one project
    showreel history --source gesture --item dashboard

    # Views per project
    showreel history --counts`

type historyOptions struct {
	limit  int
	source string
	item   string
	since  time.Duration
	counts bool
	clear  bool
	format string
}

// NewHistoryCmd creates the history command with explicit dependencies.
func NewHistoryCmd(client historyClient) *cobra.Command {
	if client == nil {
		panic("NewHistoryCmd: client dependency cannot be nil")
	}

	var opts historyOptions
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded navigations",
		Long:  historyCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, client, opts)
		},
	}

	historyCmd.Flags().IntVar(&opts.limit, "limit", journal.DefaultLimit, "Maximum number of entries")
	historyCmd.Flags().StringVar(&opts.source, "source", "", "Only entries from this source (autoplay, gesture, button, dot, key)")
	historyCmd.Flags().StringVar(&opts.item, "item", "", "Only entries landing on this item id")
	historyCmd.Flags().DurationVar(&opts.since, "since", 0, "Only entries newer than this, e.g. 24h")
	historyCmd.Flags().BoolVar(&opts.counts, "counts", false, "Show views per item instead of entries")
	historyCmd.Flags().BoolVar(&opts.clear, "clear", false, "Delete every entry")
	historyCmd.Flags().StringVar(&opts.format, "format", string(format.FormatterTypeTable), "Output format: table, simple or json")
	historyCmd.MarkFlagsMutuallyExclusive("counts", "clear")
	return historyCmd
}

func runHistory(cmd *cobra.Command, client historyClient, opts historyOptions) (err error) {
	kind, err := format.ParseType(opts.format)
	if err != nil {
		return err
	}

	store, err := client.OpenJournal()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() {
		err = errors.Join(err, store.Close())
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), historyTimeout)
	defer cancel()
	formatter := format.NewFormatter(kind)
	out := cmd.OutOrStdout()

	switch {
	case opts.clear:
		n, err := store.Clear(ctx)
		if err != nil {
			return fmt.Errorf("clear journal: %w", err)
		}
		colors.Success(fmt.Sprintf("Removed %d entries", n))
		return nil
	case opts.counts:
		counts, err := store.Counts(ctx)
		if err != nil {
			return fmt.Errorf("count views: %w", err)
		}
		return formatter.FormatCounts(counts, out)
	}

	filter := journal.Filter{Source: opts.source, ItemID: opts.item, Limit: opts.limit}
	if opts.since > 0 {
		filter.Since = time.Now().Add(-opts.since)
	}
	entries, err := store.Recent(ctx, filter)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	if len(entries) == 0 && kind != format.FormatterTypeJSON {
		colors.Info("No navigations recorded")
		return nil
	}
	return formatter.FormatEntries(entries, out)
}

func init() {
	cmd.RootCmd.AddCommand(NewHistoryCmd(historyClientImpl))
}
