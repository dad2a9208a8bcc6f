package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towaplating/cms/internal/entities"
)

func Test_Migrate_ShouldSeedSingletonRows(t *testing.T) {

	dbContext := newTestDb(t)

	settings, err := NewSettingsRepository(dbContext.DB).Get(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, settings.SiteTitle)

	company, err := NewCompanyRepository(dbContext.DB).Get(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, company.Name)
}

func Test_Migrate_WhenRunTwice_ShouldNotDuplicateSingletons(t *testing.T) {

	dbContext := newTestDb(t)
	require.NoError(t, dbContext.Migrate())

	var count int64
	require.NoError(t, dbContext.DB.Model(&entities.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func Test_Settings_Update_ShouldPreserveRowIdentity(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewSettingsRepository(dbContext.DB)

	original, err := repo.Get(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), &entities.Settings{SiteTitle: "新しいタイトル"})
	assert.NoError(t, err)

	updated, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "新しいタイトル", updated.SiteTitle)
}

func Test_CachedSettings_Update_ShouldInvalidateCache(t *testing.T) {

	dbContext := newTestDb(t)
	cached := NewCachedSettings(NewSettingsRepository(dbContext.DB))

	first, err := cached.Get(context.Background())
	require.NoError(t, err)

	err = cached.Update(context.Background(), &entities.Settings{SiteTitle: first.SiteTitle + "（改）"})
	require.NoError(t, err)

	second, err := cached.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first.SiteTitle+"（改）", second.SiteTitle)
}

func Test_EnsureAdmin_WithMixedCaseEmail_ShouldStoreNormalized(t *testing.T) {

	dbContext := newTestDb(t)

	require.NoError(t, dbContext.EnsureAdmin("管理者", " Admin@Example.COM", "hash"))

	user, err := NewUsersRepository(dbContext.DB).GetByEmail(context.Background(), "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	require.NoError(t, dbContext.EnsureAdmin("管理者", "ADMIN@EXAMPLE.COM", "hash"))

	var count int64
	require.NoError(t, dbContext.DB.Model(&entities.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func Test_EnsureAdmin_WhenCalledTwice_ShouldCreateOneUser(t *testing.T) {

	dbContext := newTestDb(t)

	for i := 0; i < 2; i++ {
		require.NoError(t, dbContext.EnsureAdmin("管理者", "admin@example.com", "hash"))
	}

	var count int64
	require.NoError(t, dbContext.DB.Model(&entities.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	user, err := NewUsersRepository(dbContext.DB).GetByEmail(context.Background(), "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, user.Role)
}
