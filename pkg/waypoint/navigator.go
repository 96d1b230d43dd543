package waypoint

import (
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

// ApplyFunc receives the destinations of a resolved link. It is the only
// side-effecting step of navigation, e.g. replacing a navigation stack.
type ApplyFunc[D any] func(destinations []D)

// Navigate resolves rawURL and, on success, calls apply exactly once with the
// full destination list. It reports whether the link resolved; apply is not
// called when it did not.
func Navigate[D any](rawURL string, factory Factory[D], apply ApplyFunc[D]) bool {
	destinations, err := Resolve(rawURL, factory)
	if err != nil {
		return false
	}

	if apply != nil {
		apply(destinations)
	}
	return true
}

// Navigator bundles a factory and an apply callback so a host can hand
// incoming links to a single value. It holds no mutable state.
type Navigator[D any] struct {
	Factory Factory[D]
	Apply   ApplyFunc[D]
	Logger  *slog.Logger // optional, defaults to the package logger
}

// Navigate resolves and applies rawURL. Unresolved links are logged at debug level.
func (n Navigator[D]) Navigate(rawURL string) bool {
	destinations, err := Resolve(rawURL, n.Factory)
	if err != nil {
		n.logger().Debug("Deep link not resolved", "url", rawURL, "kind", kindOf(err), "error", err)
		return false
	}

	n.logger().Debug("Deep link resolved", "url", rawURL, "destinations", len(destinations))
	if n.Apply != nil {
		n.Apply(destinations)
	}
	return true
}

func (n Navigator[D]) logger() *slog.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return internal.GetLogger()
}

func kindOf(err error) string {
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Kind.String()
	}
	return "unknown"
}
