package waypoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for unresolved links.
var (
	// ErrNoResult is matched by every resolution failure. Callers that only
	// care whether a link produced destinations should test against this.
	ErrNoResult = errors.New("link did not resolve")

	// ErrUnparseable indicates the URL could not be decomposed into segments.
	// ErrNoSegments also matches it.
	ErrUnparseable = errors.New("link is not parseable")

	// ErrNoSegments indicates the URL parsed but carried neither a host nor a path.
	ErrNoSegments = errors.New("link has no path segments")

	// ErrNoDestinations indicates every segment was unknown to the factory.
	ErrNoDestinations = errors.New("link has no known destinations")
)

// Kind classifies a resolution failure.
type Kind int

const (
	KindUnparseable    Kind = iota // URL syntax error
	KindNoSegments                 // empty host and path
	KindNoDestinations             // no segment produced a destination
)

func (k Kind) String() string {
	switch k {
	case KindUnparseable:
		return "unparseable"
	case KindNoSegments:
		return "no_segments"
	case KindNoDestinations:
		return "no_destinations"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ResolveError is returned by Resolve when a link yields no destinations.
type ResolveError struct {
	Kind Kind
	URL  string
	Err  error // Underlying parse error, if any
}

func (e *ResolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("waypoint: %s: %q: %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("waypoint: %s: %q", e.Kind, e.URL)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNoResult or the sentinel for e.Kind.
func (e *ResolveError) Is(target error) bool {
	switch target {
	case ErrNoResult:
		return true
	case ErrUnparseable:
		return e.Kind == KindUnparseable || e.Kind == KindNoSegments
	case ErrNoSegments:
		return e.Kind == KindNoSegments
	case ErrNoDestinations:
		return e.Kind == KindNoDestinations
	}
	return false
}

func newResolveError(kind Kind, rawURL string, err error) *ResolveError {
	return &ResolveError{Kind: kind, URL: rawURL, Err: err}
}

// IsUnresolved checks if an error is any resolution failure.
func IsUnresolved(err error) bool {
	return errors.Is(err, ErrNoResult)
}

// IsUnparseable checks if an error means the link itself was malformed,
// as opposed to well-formed but unrecognised.
func IsUnparseable(err error) bool {
	return errors.Is(err, ErrUnparseable)
}
