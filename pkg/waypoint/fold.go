package waypoint

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Folded wraps factory so it sees segments in NFC form and case folded,
// letting "Detail", "DETAIL" and "detail" reach the same destination.
// Parameters are passed through untouched.
func Folded[D any](factory Factory[D]) Factory[D] {
	if factory == nil {
		return nil
	}

	return func(segment string, path []string, params Parameters) (D, bool) {
		// Casers keep state between calls and are not shared across goroutines.
		caser := cases.Fold()

		folded := make([]string, len(path))
		for i, p := range path {
			folded[i] = foldSegment(caser, p)
		}

		return factory(foldSegment(caser, segment), folded, params)
	}
}

// FoldSegment returns the normalised form Folded hands to its factory.
func FoldSegment(segment string) string {
	return foldSegment(cases.Fold(), segment)
}

func foldSegment(caser cases.Caser, segment string) string {
	return caser.String(norm.NFC.String(segment))
}
