// Package historyrepo persists the append-only parcel history ledger.
// The bigserial seq column gives events a total order even when several
// share one timestamp; nothing in this package updates or deletes rows.
package historyrepo

import (
	"encoding/json"
	"time"

	"pickup/internal/core/domain/model/history"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventDTO represents the database structure for history events.
type EventDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ParcelID   uuid.UUID `gorm:"type:uuid;index"`
	EventType  string    `gorm:"type:varchar(64);index"`
	Actor      string    `gorm:"type:varchar(255)"`
	Payload    datatypes.JSON
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for history events.
func (EventDTO) TableName() string {
	return "history_events"
}

func fromDomain(event *history.Event) (EventDTO, error) {
	var payload datatypes.JSON
	if event.Payload() != nil {
		raw, err := json.Marshal(event.Payload())
		if err != nil {
			return EventDTO{}, err
		}
		payload = raw
	}

	return EventDTO{
		ID:         event.ID().Bytes(),
		ParcelID:   event.ParcelID().Bytes(),
		EventType:  event.Type().String(),
		Actor:      event.Actor(),
		Payload:    payload,
		OccurredAt: event.OccurredAt(),
	}, nil
}
