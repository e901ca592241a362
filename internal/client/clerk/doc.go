// Package clerk keeps the Suno web session alive.
// It resolves the active session id once and exchanges it for short-lived API tokens on demand.
package clerk
