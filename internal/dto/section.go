package dto

import "time"

// SectionPetition is a student petition or faculty consent on the wire.
type SectionPetition struct {
	ID         string    `json:"id"`
	SectionID  string    `json:"sectionId"`
	StudentID  string    `json:"studentId"`
	StatusCode string    `json:"statusCode"`
	ReasonCode string    `json:"reasonCode,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	UpdatedBy  string    `json:"updatedBy,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SectionPermission groups a section's petitions and consents.
type SectionPermission struct {
	SectionID        string            `json:"sectionId"`
	StudentPetitions []SectionPetition `json:"studentPetitions"`
	FacultyConsents  []SectionPetition `json:"facultyConsents"`
}

// SectionTextbook is one book assigned to a section.
type SectionTextbook struct {
	BookID      string     `json:"bookId" validate:"required"`
	Requirement string     `json:"requirementStatus" validate:"required,oneof=required recommended optional"`
	Comment     string     `json:"comment,omitempty" validate:"max=500"`
	AssignedBy  string     `json:"assignedBy,omitempty"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
}

// SectionTextbookAssignment replaces the textbook list of a section.
type SectionTextbookAssignment struct {
	Textbooks []SectionTextbook `json:"textbooks" validate:"dive"`
}

// SectionTextbooks is returned after an assignment.
type SectionTextbooks struct {
	SectionID string            `json:"sectionId"`
	Textbooks []SectionTextbook `json:"textbooks"`
}
