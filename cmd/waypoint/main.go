package main

import "github.com/BrandonKowalski/waypoint/cmd/waypoint/cmd"

func main() {
	cmd.Execute()
}
