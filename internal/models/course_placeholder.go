package models

import "time"

// CoursePlaceholder stands in for a course on an academic plan before a
// specific course is chosen.
type CoursePlaceholder struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	CreditsText *string    `db:"credits_text" json:"credits_text,omitempty"`
	CatalogYear *string    `db:"catalog_year" json:"catalog_year,omitempty"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
}
