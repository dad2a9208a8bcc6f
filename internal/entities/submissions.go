package entities

import (
	"errors"
	"time"
)

type InquiryStatus string

const (
	InquiryUnread     InquiryStatus = "unread"
	InquiryInProgress InquiryStatus = "in-progress"
	InquiryResolved   InquiryStatus = "resolved"
)

func ToInquiryStatus(s string) (InquiryStatus, error) {
	switch s {
	case string(InquiryUnread):
		return InquiryUnread, nil
	case string(InquiryInProgress):
		return InquiryInProgress, nil
	case string(InquiryResolved):
		return InquiryResolved, nil
	default:
		return "", errors.New("invalid inquiry status")
	}
}

type Inquiry struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	CompanyName string        `json:"companyName"`
	Name        string        `json:"name" validate:"required"`
	Email       string        `json:"email" validate:"required,email"`
	Phone       string        `json:"phone"`
	Service     string        `json:"service"`
	Message     string        `json:"message" validate:"required"`
	Status      InquiryStatus `gorm:"default:unread" json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type ApplicationStatus string

const (
	ApplicationNew       ApplicationStatus = "new"
	ApplicationScreening ApplicationStatus = "screening"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationHired     ApplicationStatus = "hired"
	ApplicationRejected  ApplicationStatus = "rejected"
)

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch s {
	case string(ApplicationNew):
		return ApplicationNew, nil
	case string(ApplicationScreening):
		return ApplicationScreening, nil
	case string(ApplicationInterview):
		return ApplicationInterview, nil
	case string(ApplicationHired):
		return ApplicationHired, nil
	case string(ApplicationRejected):
		return ApplicationRejected, nil
	default:
		return "", errors.New("invalid application status")
	}
}

// ReferenceNumber is assigned exactly once, before the initial insert,
// and never changes afterwards.
type Application struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Position        string            `json:"position" validate:"required"`
	Name            string            `json:"name" validate:"required"`
	Age             int               `json:"age" validate:"gte=15,lte=99"`
	Email           string            `json:"email" validate:"required,email"`
	Phone           string            `json:"phone" validate:"required"`
	Experience      string            `json:"experience"`
	Motivation      string            `json:"motivation"`
	ResumeURL       string            `json:"resumeUrl,omitempty"`
	Status          ApplicationStatus `gorm:"default:new" json:"status"`
	ReferenceNumber string            `gorm:"uniqueIndex" json:"referenceNumber"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
