// The main package for the activities executable.
package main

import (
	"activities/cmd"
)

// main defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
