package entities

import (
	"encoding/json"
	"time"
)

// Known section kinds. Anything else decodes to a free-form map so that
// future section types survive a round trip through the editor.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionServices = "services"
	SectionContact  = "contact-cta"
)

type HomepageSection struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SectionID string          `gorm:"uniqueIndex" json:"sectionId" validate:"required"`
	Title     string          `json:"title"`
	Order     int             `gorm:"column:sort_order" json:"order"`
	IsVisible bool            `json:"isVisible"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type HeroContent struct {
	Heading     string `json:"heading"`
	Subheading  string `json:"subheading"`
	ImageURL    string `json:"imageUrl"`
	ButtonLabel string `json:"buttonLabel"`
	ButtonURL   string `json:"buttonUrl"`
}

type AboutContent struct {
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
}

type ServicesContent struct {
	Heading    string `json:"heading"`
	ServiceIDs []uint `json:"serviceIds"`
}

type ContactContent struct {
	Heading string `json:"heading"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// DecodeContent returns the typed variant for the section kind, or a
// free-form map for unknown kinds. Empty content decodes to the zero
// variant.
func (s *HomepageSection) DecodeContent() (any, error) {
	raw := s.Content
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	switch s.SectionID {
	case SectionHero:
		var c HeroContent
		return c, json.Unmarshal(raw, &c)
	case SectionAbout:
		var c AboutContent
		return c, json.Unmarshal(raw, &c)
	case SectionServices:
		var c ServicesContent
		return c, json.Unmarshal(raw, &c)
	case SectionContact:
		var c ContactContent
		return c, json.Unmarshal(raw, &c)
	default:
		var c map[string]any
		return c, json.Unmarshal(raw, &c)
	}
}
