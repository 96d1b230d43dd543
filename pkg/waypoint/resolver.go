package waypoint

// Factory builds a destination for one path segment. It receives the segment,
// the full ordered segment list of the link and the link's parameters.
// Returning false means the segment has no destination; it is skipped.
//
// A Factory is called from whichever goroutine calls Resolve, so it must be
// safe for concurrent use if Resolve is.
type Factory[D any] func(segment string, path []string, params Parameters) (D, bool)

// Resolve converts rawURL into the destinations produced by factory, in
// segment order. Segments the factory does not recognise are skipped.
//
// On failure the error is a *ResolveError matching ErrNoResult. Its Kind tells
// a malformed link apart from a well-formed one with no known destinations.
func Resolve[D any](rawURL string, factory Factory[D]) ([]D, error) {
	link, err := Parse(rawURL)
	if err != nil {
		return nil, err
	}

	destinations := ResolveLink(link, factory)
	if len(destinations) == 0 {
		return nil, newResolveError(KindNoDestinations, rawURL, nil)
	}

	return destinations, nil
}

// ResolveLink runs factory over an already parsed link. The result is empty
// (not an error) when nothing matched.
func ResolveLink[D any](link Link, factory Factory[D]) []D {
	if factory == nil {
		return nil
	}

	var destinations []D
	for _, segment := range link.Segments {
		path := make([]string, len(link.Segments))
		copy(path, link.Segments)

		if dest, ok := factory(segment, path, link.Params); ok {
			destinations = append(destinations, dest)
		}
	}

	return destinations
}

// Lookup is Resolve for callers that only need to know whether the link
// produced anything.
func Lookup[D any](rawURL string, factory Factory[D]) ([]D, bool) {
	destinations, err := Resolve(rawURL, factory)
	return destinations, err == nil
}
