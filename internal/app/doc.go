// Package app wires the Suno client, the song service and the REST server
// into the CLI commands and prints their results.
package app
