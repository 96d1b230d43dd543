// Package router is the host side of deep linking: a declarative route table
// that turns link segments into screens, a navigation stack, and a screen
// runner that can start from a link.
//
// # Route Tables
//
//	scheme = "myapp"
//
//	[[route]]
//	segment = "games"
//	screen  = 0
//	title   = "games.title"
//
//	[[route]]
//	segment  = "game"
//	screen   = 1
//	title    = "game.title"
//	requires = ["id"]
//
//	[[route]]
//	segment = "settings-*"
//	pattern = true
//	screen  = 2
//
// # Basic Usage
//
//	table, err := router.LoadTable("routes.toml")
//
//	r := router.New().WithTable(table)
//
//	r.Register(ScreenGameList, func(dest router.Destination) (any, error) {
//	    return listScreen(), nil
//	})
//
//	r.Register(ScreenGameDetail, func(dest router.Destination) (any, error) {
//	    return detailScreen(dest.Params.Get("id")), nil
//	})
//
//	r.OnTransition(func(from router.Destination, result any, stack *router.Stack) router.Destination {
//	    // Back: pop and restore
//	    if entry := stack.Pop(); entry != nil {
//	        return *entry
//	    }
//	    return router.Exit
//	})
//
//	// Shows the game detail with the game list underneath it.
//	err = r.Open("myapp://games/game?id=7")
//
// A table can also be used without a Router: Table.Destination is a
// waypoint.Factory and Stack.Replace is a waypoint.ApplyFunc.
package router
