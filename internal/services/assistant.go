package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

type NewsDraft struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Assistant drafts news copy from an operator-supplied topic. It is a
// writing aid only; nothing is persisted until the operator saves the
// draft through the normal create endpoint.
type Assistant struct {
	aiClient aiClient
}

func NewAssistant(aiClient aiClient) *Assistant {
	return &Assistant{aiClient: aiClient}
}

func (a *Assistant) DraftNews(ctx context.Context, topic string) (*NewsDraft, error) {
	prompt := "あなたはメッキ加工会社の広報担当です。次のテーマでお知らせ記事を書いてください。" +
		"1行目にタイトルのみ、2行目以降に本文を書いてください。装飾記号は使わないでください。テーマ: " + topic

	response, err := a.aiClient.GenerateResponse(ctx, prompt)
	if err != nil {
		return nil, err
	}

	title, body, found := strings.Cut(strings.TrimSpace(response), "\n")
	if !found || strings.TrimSpace(title) == "" {
		return nil, errors.Errorf("unexpected assistant response: %q", response)
	}

	return &NewsDraft{
		Title: strings.TrimSpace(title),
		Body:  strings.TrimSpace(body),
	}, nil
}
