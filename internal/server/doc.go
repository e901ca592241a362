// Package server exposes the song service as a small JSON REST API built on chi.
package server
