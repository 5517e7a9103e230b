package journalrepo

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

const uniqueViolation pq.ErrorCode = "23505"

var _ ports.PickupJournal = (*GormJournalRepository)(nil)

// GormJournalRepository implements ports.PickupJournal on the pickup_journal table.
type GormJournalRepository struct {
	db *gorm.DB
}

func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

func (r *GormJournalRepository) Add(ctx context.Context, entry *pickup.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("pickup entry "+entry.ID().String()+" already exists", err)
		}
		return err
	}
	return nil
}

// Update writes the resolution columns only; everything else is immutable
// once recorded.
func (r *GormJournalRepository) Update(ctx context.Context, entry *pickup.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"resolution":  dto.Resolution,
			"resolved_at": dto.ResolvedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickup entry", entry.ID().String())
	}
	return nil
}

func (r *GormJournalRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickup entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormJournalRepository) GetAllPending(ctx context.Context) ([]*pickup.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("resolution = ?", pickup.ResolutionPending.String()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormJournalRepository) List(ctx context.Context, limit int) ([]*pickup.Entry, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []EntryDTO) ([]*pickup.Entry, error) {
	entries := make([]*pickup.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
