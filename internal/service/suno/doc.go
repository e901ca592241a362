// Package suno implements song generation, polling and downloading on top of the studio API client.
//
// A generation request returns provisional clip ids right away. The service then polls every id in turn,
// pausing a random interval after each fetch, until all songs report both audio and video URLs
// or the generation timeout elapses.
package suno
