package models

import "time"

// SessionSource tells how a [Session] was obtained.
type SessionSource string

const (
	// SessionSourceCached marks a session restored from the credential cache.
	SessionSourceCached SessionSource = "cached"
	// SessionSourceInteractive marks a session obtained by prompting the user.
	SessionSourceInteractive SessionSource = "interactive"
)

// Session is an authenticated handle to the book service. It is never
// persisted and lives for the duration of the process.
type Session struct {
	Credentials   Credentials
	Profile       Profile
	Source        SessionSource
	EstablishedAt time.Time
}
