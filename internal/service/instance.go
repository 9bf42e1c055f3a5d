package service

import (
	"context"
	"log/slog"

	"github.com/quillapp/quill-server/internal/domain"
	"github.com/quillapp/quill-server/internal/store"
)

// InstanceService exposes the singleton record describing this server.
type InstanceService struct {
	store  *store.Store
	name   string
	logger *slog.Logger
}

// NewInstanceService creates a new instance service.
func NewInstanceService(store *store.Store, name string, logger *slog.Logger) *InstanceService {
	return &InstanceService{store: store, name: name, logger: logger}
}

// Get returns the instance record, creating it on first boot.
func (s *InstanceService) Get(ctx context.Context) (*domain.Instance, error) {
	instance, err := s.store.EnsureInstance(ctx, s.name)
	if err != nil {
		return nil, err
	}

	// Keep the reported version current across upgrades.
	if instance.Version != domain.Version {
		instance.Version = domain.Version
		instance.Touch()
		if err := s.store.SaveInstance(ctx, instance); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
