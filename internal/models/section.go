package models

import "time"

// PetitionKind distinguishes student petitions from faculty consents.
type PetitionKind string

const (
	PetitionKindStudentPetition PetitionKind = "petition"
	PetitionKindFacultyConsent  PetitionKind = "consent"
)

// SectionPetition is a petition or faculty consent recorded against a section.
type SectionPetition struct {
	ID         string       `db:"id" json:"id"`
	SectionID  string       `db:"section_id" json:"section_id"`
	StudentID  string       `db:"student_id" json:"student_id"`
	Kind       PetitionKind `db:"kind" json:"kind"`
	StatusCode string       `db:"status_code" json:"status_code"`
	ReasonCode *string      `db:"reason_code" json:"reason_code,omitempty"`
	Comment    *string      `db:"comment" json:"comment,omitempty"`
	UpdatedBy  *string      `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt  time.Time    `db:"updated_at" json:"updated_at"`
}

// SectionPermission groups the petitions and consents of one section.
type SectionPermission struct {
	SectionID        string
	StudentPetitions []SectionPetition
	FacultyConsents  []SectionPetition
}

// TextbookRequirement marks whether a book is required for a section.
type TextbookRequirement string

const (
	TextbookRequired    TextbookRequirement = "required"
	TextbookRecommended TextbookRequirement = "recommended"
	TextbookOptional    TextbookRequirement = "optional"
)

// Valid returns true when the requirement is a supported value.
func (r TextbookRequirement) Valid() bool {
	switch r {
	case TextbookRequired, TextbookRecommended, TextbookOptional:
		return true
	default:
		return false
	}
}

// SectionTextbook assigns a book to a course section.
type SectionTextbook struct {
	SectionID   string              `db:"section_id" json:"section_id"`
	BookID      string              `db:"book_id" json:"book_id"`
	Requirement TextbookRequirement `db:"requirement" json:"requirement"`
	Comment     *string             `db:"comment" json:"comment,omitempty"`
	AssignedBy  string              `db:"assigned_by" json:"assigned_by"`
	AssignedAt  time.Time           `db:"assigned_at" json:"assigned_at"`
}
