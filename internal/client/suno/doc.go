// Package suno provides the HTTP client for the Suno studio API.
// Requests are retried with a fresh bearer token whenever the API answers 401 Unauthorized.
package suno
