package repositories

import (
	"context"
	"time"

	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
)

type News struct {
	*Resource[entities.News]
}

func NewNewsRepository(db *gorm.DB) *News {
	return &News{Resource: NewResource[entities.News](db, "created_at DESC")}
}

// GetAndCountView fetches one item and bumps its view counter with a
// single UPDATE expression, so concurrent readers never lose counts.
func (repo *News) GetAndCountView(ctx context.Context, id uint) (*entities.News, error) {
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = repo.db.WithContext(ctx).Model(&entities.News{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		return nil, err
	}

	item.Views++
	return item, nil
}

// PublishDue flips scheduled items whose publish time has passed to
// published. Called by the scheduler once a minute.
func (repo *News) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&entities.News{}).
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", entities.NewsScheduled, now).
		Updates(map[string]any{"status": entities.NewsPublished})
	return res.RowsAffected, res.Error
}
