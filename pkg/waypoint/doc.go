// Package waypoint turns deep links such as myapp://detail/list?id=5 into an
// ordered list of caller-defined navigation destinations.
//
// The host is the first path segment and every non-empty path token follows
// it. Each segment is handed to a Factory together with the full segment list
// and the query parameters; segments the factory does not know are skipped.
// A link is only reported as resolved when at least one destination came out.
//
// # Basic Usage
//
//	type Destination struct {
//	    Name string
//	    ID   string
//	}
//
//	factory := func(segment string, path []string, params waypoint.Parameters) (Destination, bool) {
//	    switch segment {
//	    case "detail":
//	        return Destination{Name: "detail"}, true
//	    case "list":
//	        return Destination{Name: "list", ID: params.Get("id")}, true
//	    }
//	    return Destination{}, false
//	}
//
//	ok := waypoint.Navigate("myapp://detail/list?id=42", factory, func(d []Destination) {
//	    stack.Replace(d)
//	})
//
// Resolve, Lookup, Parse and Navigate keep no state between calls and may be
// used from any number of goroutines, provided the factory and apply callback
// are themselves safe for that.
//
// The router subpackage provides a TOML route table, a navigation stack and a
// screen runner that consume this package.
package waypoint
