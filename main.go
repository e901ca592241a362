package main

import "github.com/oshokin/suno-cli/cmd"

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
