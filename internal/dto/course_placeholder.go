package dto

import "time"

// CoursePlaceholder is the wire representation of a course placeholder.
type CoursePlaceholder struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	CreditsText string     `json:"creditInformation,omitempty"`
	CatalogYear string     `json:"catalogYear,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// CoursePlaceholderQueryCriteria requests placeholders by id.
type CoursePlaceholderQueryCriteria struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}
