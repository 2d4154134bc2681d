package internal

import (
	"fmt"
	"math/rand/v2"
)

type Session struct {
	id int64
}

// GenerateSession creates a new session with a random numeric identifier.
// The session names the resources created on its behalf, such as
// verification containers.
func GenerateSession() Session {
	return Session{id: rand.Int64N(10000)}
}

// String returns the string representation of the session, equivalent to
// calling ID().
func (s Session) String() string {
	return string(s.ID())
}

// ID returns the session identifier in the format "bib-test-<number>".
func (s Session) ID() SessionID {
	return SessionID(fmt.Sprintf("bib-test-%d", s.id))
}
