package entities

import "time"

// Settings is a single-row table seeded during migration, so reads can
// assume the row exists.
type Settings struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SiteTitle     string    `json:"siteTitle"`
	ContactEmail  string    `json:"contactEmail"`
	ContactPhone  string    `json:"contactPhone"`
	Address       string    `json:"address"`
	BusinessHours string    `json:"businessHours"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Company is the public company profile, also seeded during migration.
type Company struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	President   string    `json:"president"`
	Founded     string    `json:"founded"`
	Capital     string    `json:"capital"`
	Employees   int       `json:"employees"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Counter backs atomic sequences such as application reference numbers.
type Counter struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}
