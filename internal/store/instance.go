package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/quillapp/quill-server/internal/domain"
)

// GetInstance retrieves the singleton instance record.
func (s *Store) GetInstance(_ context.Context) (*domain.Instance, error) {
	var instance domain.Instance
	if err := s.get([]byte(instanceKey), &instance); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get instance: %w", err)
	}
	return &instance, nil
}

// SaveInstance stores the singleton instance record.
func (s *Store) SaveInstance(_ context.Context, instance *domain.Instance) error {
	if err := s.set([]byte(instanceKey), instance); err != nil {
		return fmt.Errorf("save instance: %w", err)
	}
	return nil
}

// EnsureInstance returns the instance record, creating it on first run.
func (s *Store) EnsureInstance(ctx context.Context, name string) (*domain.Instance, error) {
	instance, err := s.GetInstance(ctx)
	if err == nil {
		return instance, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	instance = domain.NewInstance(name)
	if err := s.SaveInstance(ctx, instance); err != nil {
		return nil, err
	}
	return instance, nil
}
