package repositories

import (
	"context"

	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HomepageSections struct {
	db *gorm.DB
}

func NewHomepageSectionsRepository(db *gorm.DB) *HomepageSections {
	return &HomepageSections{db: db}
}

func (repo *HomepageSections) GetAll(ctx context.Context) ([]entities.HomepageSection, error) {
	var sections []entities.HomepageSection
	err := repo.db.WithContext(ctx).Order("sort_order ASC").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

// Upsert writes the whole batch keyed by section_id: unknown ids are
// created, known ids updated in place. Returns the resulting full set.
func (repo *HomepageSections) Upsert(ctx context.Context, sections []entities.HomepageSection) ([]entities.HomepageSection, error) {
	if len(sections) > 0 {
		err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "section_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"title", "sort_order", "is_visible", "content", "updated_at",
				}),
			}).
			Create(&sections).Error
		if err != nil {
			return nil, err
		}
	}
	return repo.GetAll(ctx)
}
