package models

import (
	"time"

	"github.com/google/uuid"
)

// RegistryEvent rows are append-only; there is no update or delete path.
type RegistryEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordID  uint32    `gorm:"not null;index"`
	EventType string    `gorm:"type:varchar(20);not null"`
	Caller    string    `gorm:"type:varchar(66);not null"`
	Payload   string    `gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time
}

func (RegistryEvent) TableName() string {
	return "registry_events"
}
