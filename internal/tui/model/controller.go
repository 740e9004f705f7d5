// Package model provides interface contracts for TUI components.
package model

import (
	"context"
	"time"

	"github.com/cristianoliveira/showreel/internal/carousel"
)

// NavigationEvent is one accepted navigation as seen by side effects.
type NavigationEvent struct {
	At        time.Time
	From      int
	To        int
	Direction carousel.Direction
	Source    carousel.Source
	ItemID    string
}

// InteractionController coordinates side-effectful TUI interactions.
// Implementations run inside tea.Cmds and must not touch model state.
type InteractionController interface {
	// RecordNavigation appends an accepted navigation to the journal.
	RecordNavigation(ctx context.Context, ev NavigationEvent) error
	// OpenLink hands url to the system opener.
	OpenLink(ctx context.Context, url string) error
}
