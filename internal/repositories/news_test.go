package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towaplating/cms/internal/entities"
)

func Test_News_GetAndCountView_ShouldIncrementViews(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewNewsRepository(dbContext.DB)

	item := entities.News{Title: "新工場稼働のお知らせ", Body: "本文", Status: entities.NewsPublished}
	require.NoError(t, repo.Create(context.Background(), &item))

	for i := 0; i < 3; i++ {
		fetched, err := repo.GetAndCountView(context.Background(), item.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(i+1), fetched.Views)
	}

	stored, err := repo.GetByID(context.Background(), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stored.Views)
}

func Test_News_GetAndCountView_WhenMissing_ShouldReturnNotFound(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewNewsRepository(dbContext.DB)

	_, err := repo.GetAndCountView(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_News_PublishDue_ShouldPublishOnlyDueItems(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewNewsRepository(dbContext.DB)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	due := entities.News{Title: "due", Body: "b", Status: entities.NewsScheduled, PublishAt: &past}
	notDue := entities.News{Title: "not due", Body: "b", Status: entities.NewsScheduled, PublishAt: &future}
	draft := entities.News{Title: "draft", Body: "b", Status: entities.NewsDraft}
	require.NoError(t, repo.Create(context.Background(), &due))
	require.NoError(t, repo.Create(context.Background(), &notDue))
	require.NoError(t, repo.Create(context.Background(), &draft))

	published, err := repo.PublishDue(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), published)

	stored, err := repo.GetByID(context.Background(), due.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.NewsPublished, stored.Status)

	stored, err = repo.GetByID(context.Background(), notDue.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.NewsScheduled, stored.Status)

	stored, err = repo.GetByID(context.Background(), draft.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.NewsDraft, stored.Status)
}
