package repositories

import (
	"context"

	"contract-hub.backend/internal/domain/entities"
)

// RegistryEventRepository defines append-only registry event operations
type RegistryEventRepository interface {
	Create(ctx context.Context, event *entities.RegistryEvent) error
	GetByRecordID(ctx context.Context, recordID uint32) ([]*entities.RegistryEvent, error)
}
