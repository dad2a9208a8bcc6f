package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
)

const referenceSequencePrefix = "applications:"

type Applications struct {
	*Resource[entities.Application]
	counters *Counters
}

func NewApplicationsRepository(db *gorm.DB, counters *Counters) *Applications {
	return &Applications{
		Resource: NewResource[entities.Application](db, "created_at DESC"),
		counters: counters,
	}
}

// Create assigns the reference number from an atomic per-day sequence
// before the insert. The unique index on reference_number is a backstop,
// not the allocation mechanism.
func (repo *Applications) Create(ctx context.Context, app *entities.Application) error {
	date := time.Now().UTC().Format("20060102")

	seq, err := repo.counters.Next(ctx, referenceSequencePrefix+date)
	if err != nil {
		return fmt.Errorf("failed to allocate reference sequence: %w", err)
	}

	app.ReferenceNumber = fmt.Sprintf("APP-%s%05d", date, seq)
	app.Status = entities.ApplicationNew
	return repo.db.WithContext(ctx).Create(app).Error
}

func (repo *Applications) UpdateStatus(ctx context.Context, id uint, status entities.ApplicationStatus) (*entities.Application, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return repo.GetByID(ctx, id)
}
