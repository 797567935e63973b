// Profilectl is the command-line interface to the profile type schema
// catalog.
package main

import "github.com/dukaforge/profilekit/internal/cli"

func main() {
	cli.Execute()
}
