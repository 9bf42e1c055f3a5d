package domain

import "time"

// Session tracks one refresh-token lineage for a logged-in user.
// The refresh token itself is never stored; only its hash is, so a copy of
// the database cannot be replayed against the API.
type Session struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	RefreshTokenHash string    `json:"refreshTokenHash"`
	ExpiresAt        time.Time `json:"expiresAt"`
	Timestamps
}

// IsExpired reports whether the session's refresh token can no longer be used.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
