package router

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

// ScreenFunc runs a screen for a destination and returns a screen-specific result.
type ScreenFunc func(dest Destination) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next
// destination. It receives the destination that just completed, its result,
// and the navigation stack.
//
// Return a destination to navigate to it.
// Return *stack.Pop() to go back.
// Return Exit to stop the router.
type TransitionFunc func(from Destination, result any, stack *Stack) Destination

// Router runs screens with explicit data flow. Screens are registered with
// their functions, and a single transition function handles all routing
// logic in one place. Open starts the router from a deep link.
//
// A Router is driven from one goroutine.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	stack      *Stack
	table      *Table
	logger     *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// WithTable sets the route table Open resolves links against.
func (r *Router) WithTable(table *Table) *Router {
	r.table = table
	return r
}

// WithLogger sets the logger; the waypoint package logger is used otherwise.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	r.logger = logger
	return r
}

// Run starts the router at the given destination.
// It continues running until the transition function returns a destination
// on ScreenExit or an error occurs.
func (r *Router) Run(start Destination) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start

	for current.Screen != ScreenExit {
		fn, ok := r.screens[current.Screen]
		if !ok {
			return &ScreenError{Screen: current.Screen, Err: ErrNotRegistered}
		}

		r.log().Debug("Running screen", "screen", int(current.Screen), "segment", current.Segment)

		result, err := fn(current)
		if err != nil {
			return &ScreenError{Screen: current.Screen, Err: err}
		}

		current = r.transition(current, result, r.stack)
	}

	return nil
}

// Open resolves rawURL with the router's table, makes every destination but
// the last the back history, and runs from the last one. The stack is left
// untouched when the link does not resolve.
func (r *Router) Open(rawURL string) error {
	if r.table == nil {
		return ErrNoTable
	}

	dests, err := r.table.Resolve(rawURL)
	if err != nil {
		r.log().Warn("Unable to open deep link", "url", rawURL, "error", err)
		return fmt.Errorf("router: open: %w", err)
	}

	last := dests[len(dests)-1]
	r.stack.Replace(dests[:len(dests)-1])

	return r.Run(last)
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return waypoint.GetLogger()
}
