package repositories

import (
	"context"

	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
)

type Inquiries struct {
	*Resource[entities.Inquiry]
}

func NewInquiriesRepository(db *gorm.DB) *Inquiries {
	return &Inquiries{Resource: NewResource[entities.Inquiry](db, "created_at DESC")}
}

// GetAndMarkRead returns one inquiry, advancing it from unread to
// in-progress as a side effect of the first detail view.
func (repo *Inquiries) GetAndMarkRead(ctx context.Context, id uint) (*entities.Inquiry, error) {
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.Status != entities.InquiryUnread {
		return item, nil
	}

	err = repo.db.WithContext(ctx).Model(item).
		Updates(map[string]any{"status": entities.InquiryInProgress}).Error
	if err != nil {
		return nil, err
	}

	item.Status = entities.InquiryInProgress
	return item, nil
}

func (repo *Inquiries) UpdateStatus(ctx context.Context, id uint, status entities.InquiryStatus) (*entities.Inquiry, error) {
	res := repo.db.WithContext(ctx).Model(&entities.Inquiry{}).
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
