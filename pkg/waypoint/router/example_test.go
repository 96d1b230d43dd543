package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenGameList router.Screen = iota
	ScreenGameDetail
	ScreenSettings
)

const routes = `
scheme = "myapp"

[[route]]
segment = "games"
screen  = 0
title   = "games.title"

[[route]]
segment  = "game"
screen   = 1
title    = "game.title"
requires = ["id"]

[[route]]
segment = "settings-*"
pattern = true
screen  = 2
`

// Result types - what each screen returns
type GameDetailResult struct {
	Back bool
}

// Example demonstrates opening a deep link: the detail screen runs first and
// going back lands on the list the link put underneath it.
func Example() {
	table, err := router.ParseTable([]byte(routes))
	if err != nil {
		fmt.Println(err)
		return
	}

	r := router.New().WithTable(table)

	r.Register(ScreenGameList, func(dest router.Destination) (any, error) {
		fmt.Println("List: showing games, exiting")
		return nil, nil
	})

	r.Register(ScreenGameDetail, func(dest router.Destination) (any, error) {
		fmt.Printf("Detail: showing game %s, going back\n", dest.Params.Get("id"))
		return GameDetailResult{Back: true}, nil
	})

	// Define all transitions in one place
	r.OnTransition(func(from router.Destination, result any, stack *router.Stack) router.Destination {
		switch from.Screen {
		case ScreenGameDetail:
			if res := result.(GameDetailResult); res.Back {
				// Back: pop and restore
				if entry := stack.Pop(); entry != nil {
					return *entry
				}
			}
		}
		return router.Exit
	})

	if err := r.Open("myapp://games/game?id=7"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// Detail: showing game 7, going back
	// List: showing games, exiting
}

// Example_navigate demonstrates using a route table and stack without a Router.
func Example_navigate() {
	table, _ := router.ParseTable([]byte(routes))
	stack := router.NewStack()

	ok := waypoint.Navigate[router.Destination]("myapp://games/settings-audio", table.Destination, stack.Replace)
	fmt.Println(ok, stack.Entries())

	// "game" requires an id, so nothing resolves and the stack is kept.
	ok = waypoint.Navigate[router.Destination]("myapp://game", table.Destination, stack.Replace)
	fmt.Println(ok, stack.Len())

	// Output:
	// true [games(screen=0) settings-audio(screen=2)]
	// false 2
}

// ExampleTitles demonstrates localized breadcrumbs.
func ExampleTitles() {
	table, _ := router.ParseTable([]byte(routes))
	dests, _ := table.Resolve("myapp://games/game?id=7")

	titles := router.NewTitles()
	_ = titles.AddMessageFile([]byte(`
"games.title" = "Games"
"game.title" = "Game #{{.id}}"
`), "active.en.toml")
	_ = titles.AddMessageFile([]byte(`
"games.title" = "Spiele"
"game.title" = "Spiel #{{.id}}"
`), "active.de.toml")

	fmt.Println(titles.Breadcrumbs(dests))
	fmt.Println(titles.Breadcrumbs(dests, "de"))

	// Output:
	// [Games Game #7]
	// [Spiele Spiel #7]
}
