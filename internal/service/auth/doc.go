// Package auth obtains a Suno session cookie through a real browser window.
//
// The user signs in on suno.com by hand, the service watches the Clerk cookies
// and returns them as a ready-to-use "Cookie" header value.
package auth
