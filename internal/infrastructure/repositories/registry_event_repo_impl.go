package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"contract-hub.backend/internal/domain/entities"
	domainrepos "contract-hub.backend/internal/domain/repositories"
	"contract-hub.backend/internal/infrastructure/models"
)

type registryEventRepo struct {
	db *gorm.DB
}

// NewRegistryEventRepository creates a new registry event repository
func NewRegistryEventRepository(db *gorm.DB) domainrepos.RegistryEventRepository {
	return &registryEventRepo{db: db}
}

// Create appends one event row
func (r *registryEventRepo) Create(ctx context.Context, event *entities.RegistryEvent) error {
	payload := "{}"
	if event.Payload != nil {
		raw, err := json.Marshal(event.Payload)
		if err != nil {
			return err
		}
		payload = string(raw)
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	m := &models.RegistryEvent{
		ID:        event.ID,
		RecordID:  event.RecordID,
		EventType: string(event.EventType),
		Caller:    event.Caller,
		Payload:   payload,
		CreatedAt: event.CreatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByRecordID gets a record's events, oldest first
func (r *registryEventRepo) GetByRecordID(ctx context.Context, recordID uint32) ([]*entities.RegistryEvent, error) {
	var ms []models.RegistryEvent
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	events := make([]*entities.RegistryEvent, 0, len(ms))
	for _, m := range ms {
		event := &entities.RegistryEvent{
			ID:        m.ID,
			RecordID:  m.RecordID,
			EventType: entities.RegistryEventType(m.EventType),
			Caller:    m.Caller,
			CreatedAt: m.CreatedAt,
		}
		if m.Payload != "" {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(m.Payload), &payload); err == nil {
				event.Payload = payload
			}
		}
		events = append(events, event)
	}

	return events, nil
}
