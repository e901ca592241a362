// Package http provides the RoundTripper chain used for every call to Suno:
// debug dumps with masked credentials, browser identity headers and an optional
// transport that reproduces Chrome's TLS fingerprint.
package http
