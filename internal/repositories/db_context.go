package repositories

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/towaplating/cms/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	models := []any{
		entities.News{},
		entities.Service{},
		entities.Equipment{},
		entities.SampleProduct{},
		entities.Event{},
		entities.JobPosition{},
		entities.Inquiry{},
		entities.Application{},
		entities.HomepageSection{},
		entities.Settings{},
		entities.Company{},
		entities.User{},
		entities.Counter{},
	}

	for _, model := range models {
		if err := c.DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	if err := c.seedSingletons(); err != nil {
		return fmt.Errorf("failed to seed singletons: %w", err)
	}

	return nil
}

// seedSingletons creates the settings and company rows once, so every
// later read can assume they exist.
func (c *DbContext) seedSingletons() error {
	var count int64
	if err := c.DB.Model(&entities.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := c.DB.Create(&entities.Settings{SiteTitle: "東和鍍金工業"}).Error; err != nil {
			return err
		}
	}

	if err := c.DB.Model(&entities.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := c.DB.Create(&entities.Company{Name: "東和鍍金工業株式会社"}).Error; err != nil {
			return err
		}
	}

	return nil
}

// EnsureAdmin creates the initial operator account if no user with the
// given email exists yet. The hash must already be computed.
func (c *DbContext) EnsureAdmin(name, email, passwordHash string) error {
	email = normalizeEmail(email)

	var user entities.User
	err := c.DB.First(&user, "email = ?", email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return c.DB.Create(&entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         entities.RoleAdmin,
	}).Error
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
