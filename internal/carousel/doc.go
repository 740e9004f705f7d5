// Package carousel implements the navigation state machine behind the
// project carousel.
//
// The package knows nothing about terminals or rendering. Every trigger
// (autoplay tick, drag release, button or dot press, key) is expressed as a
// Command and applied through Reduce, which is the only writer of State.
// Autoplay models "arm on state entry, cancel on state exit" with tickets,
// DragTracker and Interpret turn pointer drags into commands, and a
// TransitionStrategy turns a direction into enter/center/exit poses.
package carousel
