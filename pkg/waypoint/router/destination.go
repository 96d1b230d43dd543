package router

import (
	"fmt"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota and use
// the same numbers in their route table.
//
// Example:
//
//	const (
//	    ScreenMain Screen = iota
//	    ScreenSettings
//	    ScreenDetail
//	)
type Screen int

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Destination is one step of a resolved link: the screen to show, the
// segment that selected it and the link's parameters.
type Destination struct {
	Screen  Screen
	Segment string
	Title   string // i18n message id from the route, may be empty
	Params  waypoint.Parameters
}

func (d Destination) String() string {
	return fmt.Sprintf("%s(screen=%d)", d.Segment, d.Screen)
}

// Exit is the destination a TransitionFunc returns to stop the router.
var Exit = Destination{Screen: ScreenExit}
