package entities

import (
	"time"

	"github.com/google/uuid"
)

// RegistryEventType identifies what happened to a record
type RegistryEventType string

const (
	RegistryEventCreated RegistryEventType = "created"
	RegistryEventUpdated RegistryEventType = "updated"
)

// RegistryEvent is one append-only audit row for a record. Created events
// carry the full record snapshot; updated events carry the changed fields.
type RegistryEvent struct {
	ID        uuid.UUID              `json:"id"`
	RecordID  uint32                 `json:"recordId"`
	EventType RegistryEventType      `json:"eventType"`
	Caller    string                 `json:"caller"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
