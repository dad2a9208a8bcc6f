package repositories

import (
	"context"
	"strings"

	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
)

// normalizeEmail is applied on every write and lookup so logins are
// case-insensitive regardless of how the address was entered.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user entities.User) error {
	user.Email = normalizeEmail(user.Email)
	return repo.db.WithContext(ctx).Create(&user).Error
}

func (repo *Users) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "email = ?", normalizeEmail(email)).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Users) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Users) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	res := repo.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"password_hash": hash})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
