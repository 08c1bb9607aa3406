// Package session keeps the visible authentication/usage state consistent
// with server truth.
package session

import (
	"fmt"
)

// Session is the viewer snapshot derived from a session probe. It is
// re-derived whole on every reconciliation; nothing mutates an existing
// snapshot. Authenticated is true exactly when a username is present.
type Session struct {
	Authenticated bool
	Username      string
	UsedToday     int
	Limit         int
}

// UsageLine formats the visible usage summary for an authenticated session.
func (s Session) UsageLine() string {
	if !s.Authenticated {
		return ""
	}
	return fmt.Sprintf("%s • %d/%d today", s.Username, s.UsedToday, s.Limit)
}

// meResponse is the session-probe body. A null or absent user means no
// session.
type meResponse struct {
	User      *string `json:"user"`
	UsedToday int     `json:"used_today"`
	Limit     int     `json:"limit"`
}

func (m meResponse) session() Session {
	if m.User == nil || *m.User == "" {
		return Session{}
	}
	return Session{
		Authenticated: true,
		Username:      *m.User,
		UsedToday:     m.UsedToday,
		Limit:         m.Limit,
	}
}
