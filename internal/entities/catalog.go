package entities

import (
	"errors"
	"time"
)

type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Features    []string  `gorm:"serializer:json" json:"features"`
	ImageURL    string    `json:"imageUrl"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Equipment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Model       string    `json:"model"`
	Maker       string    `json:"maker"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	IsVisible   bool      `json:"isVisible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SampleProduct struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Material    string    `json:"material"`
	PlatingType string    `json:"platingType"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	IsVisible   bool      `json:"isVisible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventOpen     EventStatus = "open"
	EventClosed   EventStatus = "closed"
)

func ToEventStatus(s string) (EventStatus, error) {
	switch s {
	case string(EventUpcoming):
		return EventUpcoming, nil
	case string(EventOpen):
		return EventOpen, nil
	case string(EventClosed):
		return EventClosed, nil
	default:
		return "", errors.New("invalid event status")
	}
}

type Event struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	StartsAt    *time.Time  `json:"startsAt,omitempty"`
	EndsAt      *time.Time  `json:"endsAt,omitempty"`
	Status      EventStatus `gorm:"default:upcoming" json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type JobPosition struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `json:"title" validate:"required"`
	Department     string    `json:"department"`
	EmploymentType string    `json:"employmentType"`
	Location       string    `json:"location"`
	Salary         string    `json:"salary"`
	Requirements   []string  `gorm:"serializer:json" json:"requirements"`
	Description    string    `json:"description"`
	IsOpen         bool      `gorm:"default:true" json:"isOpen"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
