/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/
package main

import (
	"github.com/jpl-au/minigrep/cmd"

	// Import extensions - each registers itself via init()
	_ "github.com/jpl-au/minigrep/extension/all"
)

func main() {
	cmd.Execute()
}
