package repositories

import (
	"context"

	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
)

type Counters struct {
	db *gorm.DB
}

func NewCountersRepository(db *gorm.DB) *Counters {
	return &Counters{db: db}
}

// Next atomically increments the named sequence and returns its new
// value. The upsert runs in a transaction so concurrent callers can
// never observe the same value.
func (repo *Counters) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec("INSERT INTO counters (name, value) VALUES (?, 1) "+
			"ON CONFLICT(name) DO UPDATE SET value = value + 1", name).Error
		if err != nil {
			return err
		}
		return tx.Model(&entities.Counter{}).
			Where("name = ?", name).
			Select("value").
			Scan(&value).Error
	})
	return value, err
}
