// Package utils holds small helpers shared by the Suno client, the generation
// service and the REST server: jittered pauses, cookie parsing, regex group
// extraction and content type checks.
package utils
