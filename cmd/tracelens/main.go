// cmd/tracelens/main.go
package main

import (
	cmd "github.com/tracelens/tracelens/internal/cli"
)

// main starts the tracelens CLI application by delegating to the
// cobra root command defined in the tracelens package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
