// Package journalrepo persists pickup journal entries with gorm.
package journalrepo

import (
	"time"

	"github.com/google/uuid"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/pickup"
)

// EntryDTO is one row of the pickup_journal table. Status, strategy and
// resolution are stored by name so rows stay readable in psql.
type EntryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    string     `gorm:"type:varchar(64);not null;index"`
	Status     string     `gorm:"type:varchar(32);not null"`
	Strategy   string     `gorm:"type:varchar(32);not null"`
	LocationID *int64     `gorm:"type:bigint"`
	Attempts   int        `gorm:"type:smallint;not null"`
	Resolution string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time  `gorm:"not null;index"`
	ResolvedAt *time.Time
}

func (EntryDTO) TableName() string {
	return "pickup_journal"
}

func fromDomain(entry *pickup.Entry) EntryDTO {
	var location *int64
	if loc := entry.Location(); loc != nil {
		id := loc.Int64()
		location = &id
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().String(),
		Status:     entry.Status().String(),
		Strategy:   entry.Strategy().String(),
		LocationID: location,
		Attempts:   entry.Attempts(),
		Resolution: entry.Resolution().String(),
		CreatedAt:  entry.CreatedAt(),
		ResolvedAt: entry.ResolvedAt(),
	}
}

func toDomain(dto EntryDTO) (*pickup.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var location *kernel.LocationID
	if dto.LocationID != nil {
		loc, locErr := kernel.NewLocationID(*dto.LocationID)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	strategy, err := fulfillment.ParseStrategy(dto.Strategy)
	if err != nil {
		return nil, err
	}

	resolution, err := pickup.ParseResolution(dto.Resolution)
	if err != nil {
		return nil, err
	}

	return pickup.RestoreEntry(
		id,
		orderID,
		pickup.ParseStatus(dto.Status),
		strategy,
		location,
		dto.Attempts,
		resolution,
		dto.CreatedAt,
		dto.ResolvedAt,
	)
}
