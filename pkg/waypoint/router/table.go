package router

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gobwas/glob"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

type route struct {
	RouteConfig

	matcher glob.Glob // nil for exact segments
}

func (r *route) matches(segment string, params waypoint.Parameters) bool {
	if r.matcher != nil {
		if !r.matcher.Match(segment) {
			return false
		}
	} else if r.Segment != segment {
		return false
	}

	for _, key := range r.Requires {
		if !params.Has(key) {
			return false
		}
	}

	return true
}

// Table maps link segments to screens. Routes are tried in order and the
// first match wins. A Table is immutable and safe for concurrent use.
type Table struct {
	scheme string
	routes []route
}

// NewTable compiles conf. Glob patterns use '.' as separator, so "item-*"
// matches "item-42" but "*" does not cross dots in hosts like "a.b".
func NewTable(conf TableConfig) (*Table, error) {
	table := &Table{
		scheme: strings.ToLower(conf.Scheme),
		routes: make([]route, 0, len(conf.Routes)),
	}

	for i, rc := range conf.Routes {
		r := route{RouteConfig: rc}

		if rc.Pattern {
			compiled, err := glob.Compile(rc.Segment, '.')
			if err != nil {
				return nil, &ConfigError{Err: fmt.Errorf("route %d: pattern %q: %w", i, rc.Segment, err)}
			}
			r.matcher = compiled
		}

		table.routes = append(table.routes, r)
	}

	return table, nil
}

// Scheme returns the scheme the table is restricted to, or "" for any.
func (t *Table) Scheme() string {
	return t.scheme
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Destination is a waypoint.Factory for route tables. Each destination gets
// its own copy of params so screens may modify theirs.
func (t *Table) Destination(segment string, _ []string, params waypoint.Parameters) (Destination, bool) {
	for i := range t.routes {
		r := &t.routes[i]
		if !r.matches(segment, params) {
			continue
		}

		return Destination{
			Screen:  Screen(r.Screen),
			Segment: segment,
			Title:   r.Title,
			Params:  maps.Clone(params),
		}, true
	}

	return Destination{}, false
}

// Resolve checks the link's scheme against the table and resolves it.
func (t *Table) Resolve(rawURL string) ([]Destination, error) {
	if t.scheme != "" {
		link, err := waypoint.Parse(rawURL)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(link.Scheme, t.scheme) {
			return nil, fmt.Errorf("%w: %w: %q", waypoint.ErrNoResult, ErrSchemeMismatch, link.Scheme)
		}

		dests := waypoint.ResolveLink[Destination](link, t.Destination)
		if len(dests) == 0 {
			return nil, &waypoint.ResolveError{Kind: waypoint.KindNoDestinations, URL: rawURL}
		}
		return dests, nil
	}

	return waypoint.Resolve[Destination](rawURL, t.Destination)
}
