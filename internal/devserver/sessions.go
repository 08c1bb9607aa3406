package devserver

import (
	"sync"

	"fridgechef/internal/pkg/common"
)

// sessionCookie is the cookie carrying the session token.
const sessionCookie = "fc_session"

// sessions maps opaque tokens to usernames. Dev-only: tokens live as long as
// the process.
type sessions struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func newSessions() *sessions {
	return &sessions{tokens: make(map[string]string)}
}

// open issues a fresh token for username.
func (s *sessions) open(username string) string {
	token := common.NewRequestID()

	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()

	return token
}

// lookup resolves a token to its username.
func (s *sessions) lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.tokens[token]
	return username, ok
}

// close invalidates a token.
func (s *sessions) close(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
