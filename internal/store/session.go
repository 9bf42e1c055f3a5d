package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/quillapp/quill-server/internal/domain"
)

// CreateSession stores a new refresh-token session.
func (s *Store) CreateSession(ctx context.Context, session *domain.Session) error {
	if err := s.Sessions.Create(ctx, session.ID, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.Sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// GetSessionByTokenHash retrieves a session by its refresh-token hash.
func (s *Store) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	session, err := s.Sessions.GetByIndex(ctx, "token", tokenHash)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session by token: %w", err)
	}
	return session, nil
}

// UpdateSession replaces a session, typically on token rotation.
func (s *Store) UpdateSession(ctx context.Context, session *domain.Session) error {
	session.Touch()
	if err := s.Sessions.Update(ctx, session.ID, session); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// DeleteSession removes a session. Idempotent.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if err := s.Sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteUserSessions removes all sessions belonging to userID.
func (s *Store) DeleteUserSessions(ctx context.Context, userID string) error {
	var ids []string
	for session, err := range s.Sessions.List(ctx) {
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if session.UserID == userID {
			ids = append(ids, session.ID)
		}
	}

	for _, id := range ids {
		if err := s.Sessions.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	return nil
}
