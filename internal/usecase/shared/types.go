package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID           uuid.UUID
	RoomNumber   int
	BuildingCode string
}

type ReservationSnapshot struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	UserID    uuid.UUID
	Status    string
	StartTime time.Time
	EndTime   time.Time
}
