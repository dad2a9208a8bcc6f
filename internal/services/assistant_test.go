package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func Test_Assistant_DraftNews_ShouldSplitTitleAndBody(t *testing.T) {

	ai := mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("夏季休業のお知らせ\n平素より格別のご愛顧を賜り、誠にありがとうございます。\n下記の期間を夏季休業とさせていただきます。", nil).Once()

	assistant := NewAssistant(&ai)

	draft, err := assistant.DraftNews(context.Background(), "夏季休業")

	assert.NoError(t, err)
	assert.Equal(t, "夏季休業のお知らせ", draft.Title)
	assert.Contains(t, draft.Body, "夏季休業とさせていただきます")
	ai.AssertExpectations(t)
}

func Test_Assistant_DraftNews_WhenResponseHasNoBody_ShouldFail(t *testing.T) {

	ai := mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).Return("タイトルだけ", nil).Once()

	assistant := NewAssistant(&ai)

	_, err := assistant.DraftNews(context.Background(), "テーマ")

	assert.Error(t, err)
}
