package entities

import (
	"errors"
	"time"
)

type NewsStatus string

const (
	NewsDraft     NewsStatus = "draft"
	NewsScheduled NewsStatus = "scheduled"
	NewsPublished NewsStatus = "published"
	NewsArchived  NewsStatus = "archived"
)

func ToNewsStatus(s string) (NewsStatus, error) {
	switch s {
	case string(NewsDraft):
		return NewsDraft, nil
	case string(NewsScheduled):
		return NewsScheduled, nil
	case string(NewsPublished):
		return NewsPublished, nil
	case string(NewsArchived):
		return NewsArchived, nil
	default:
		return "", errors.New("invalid news status")
	}
}

type News struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `json:"title" validate:"required"`
	Body      string     `json:"body" validate:"required"`
	Category  string     `json:"category"`
	Status    NewsStatus `gorm:"default:draft" json:"status"`
	PublishAt *time.Time `json:"publishAt,omitempty"`
	ImageURL  string     `json:"imageUrl"`
	Views     int64      `json:"views"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
