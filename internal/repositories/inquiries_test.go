package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/towaplating/cms/internal/entities"
)

func createInquiry(t *testing.T, repo *Inquiries) entities.Inquiry {
	t.Helper()
	item := entities.Inquiry{
		Name:    "山田太郎",
		Email:   "yamada@example.com",
		Message: "亜鉛めっきの見積もりをお願いします",
		Status:  entities.InquiryUnread,
	}
	require.NoError(t, repo.Create(context.Background(), &item))
	return item
}

func Test_Inquiries_GetAndMarkRead_WhenUnread_ShouldAdvanceToInProgress(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewInquiriesRepository(dbContext.DB)
	item := createInquiry(t, repo)

	fetched, err := repo.GetAndMarkRead(context.Background(), item.ID)

	assert.NoError(t, err)
	assert.Equal(t, entities.InquiryInProgress, fetched.Status)

	stored, err := repo.GetByID(context.Background(), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.InquiryInProgress, stored.Status)
}

func Test_Inquiries_GetAndMarkRead_WhenAlreadyResolved_ShouldNotChangeStatus(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewInquiriesRepository(dbContext.DB)
	item := createInquiry(t, repo)

	_, err := repo.UpdateStatus(context.Background(), item.ID, entities.InquiryResolved)
	require.NoError(t, err)

	fetched, err := repo.GetAndMarkRead(context.Background(), item.ID)

	assert.NoError(t, err)
	assert.Equal(t, entities.InquiryResolved, fetched.Status)
}

func Test_Inquiries_UpdateStatus_WhenMissing_ShouldReturnNotFound(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewInquiriesRepository(dbContext.DB)

	_, err := repo.UpdateStatus(context.Background(), 42, entities.InquiryResolved)

	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Inquiries_UpdateStatus_WhenSameStatus_ShouldBeIdempotent(t *testing.T) {

	dbContext := newTestDb(t)
	repo := NewInquiriesRepository(dbContext.DB)
	item := createInquiry(t, repo)

	for i := 0; i < 2; i++ {
		updated, err := repo.UpdateStatus(context.Background(), item.ID, entities.InquiryResolved)
		assert.NoError(t, err)
		assert.Equal(t, entities.InquiryResolved, updated.Status)
	}
}
