package repositories

import (
	"context"

	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
)

// Settings and Company are single-row tables seeded in Migrate, so Get
// never has to create anything.

type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (repo *SettingsStore) Get(ctx context.Context) (*entities.Settings, error) {
	var settings entities.Settings
	if err := repo.db.WithContext(ctx).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (repo *SettingsStore) Update(ctx context.Context, settings *entities.Settings) error {
	current, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	settings.ID = current.ID
	return repo.db.WithContext(ctx).Save(settings).Error
}

type CompanyStore struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

func (repo *CompanyStore) Get(ctx context.Context) (*entities.Company, error) {
	var company entities.Company
	if err := repo.db.WithContext(ctx).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (repo *CompanyStore) Update(ctx context.Context, company *entities.Company) error {
	current, err := repo.Get(ctx)
	if err != nil {
		return err
	}
	company.ID = current.ID
	return repo.db.WithContext(ctx).Save(company).Error
}
