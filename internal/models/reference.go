package models

import "github.com/lib/pq"

// ReferenceCode is the code/description pair shared by every reference entity.
type ReferenceCode struct {
	Code        string `db:"code" json:"code"`
	Description string `db:"description" json:"description"`
}

// GetCode returns the entity code.
func (r ReferenceCode) GetCode() string { return r.Code }

// Coded is implemented by every reference entity.
type Coded interface {
	GetCode() string
}

// CapSize is a commencement cap size.
type CapSize struct {
	ReferenceCode
}

// GownSize is a commencement gown size.
type GownSize struct {
	ReferenceCode
}

// Degree is an academic degree code.
type Degree struct {
	ReferenceCode
}

// Major is a field of study.
type Major struct {
	ReferenceCode
	FederalCourseClassification *string `db:"federal_course_classification" json:"federal_course_classification,omitempty"`
	Active                      bool    `db:"active" json:"active"`
}

// Minor is a secondary field of study.
type Minor struct {
	ReferenceCode
}

// ClassLevel is a student class level such as freshman or senior.
type ClassLevel struct {
	ReferenceCode
	SortOrder int `db:"sort_order" json:"sort_order"`
}

// CreditType classifies course credit (institutional, transfer, ...).
type CreditType struct {
	ReferenceCode
	Category string `db:"category" json:"category"`
}

// DropReason explains why a student dropped a section.
type DropReason struct {
	ReferenceCode
	DisplayInSelfService bool `db:"display_in_self_service" json:"display_in_self_service"`
}

// SessionCycle describes how often a course is offered within a year.
type SessionCycle struct {
	ReferenceCode
}

// YearlyCycle describes which years a course is offered.
type YearlyCycle struct {
	ReferenceCode
}

// GradeSubscheme restricts the grades assignable within a grade scheme.
type GradeSubscheme struct {
	ReferenceCode
	Grades pq.StringArray `db:"grades" json:"grades"`
}

// Specialization is a concentration within a major.
type Specialization struct {
	ReferenceCode
}

// StudentLoad is a load designation such as full time or part time.
type StudentLoad struct {
	ReferenceCode
	SortOrder int `db:"sort_order" json:"sort_order"`
}

// TranscriptCategory groups courses on an academic transcript.
type TranscriptCategory struct {
	ReferenceCode
}

// PetitionStatus is the status of a section petition or faculty consent.
type PetitionStatus struct {
	ReferenceCode
	Granted bool `db:"granted" json:"granted"`
}

// StudentPetitionReason explains a student's section petition.
type StudentPetitionReason struct {
	ReferenceCode
}

// AttendanceKind classifies an attendance type.
type AttendanceKind string

const (
	AttendanceKindPresent AttendanceKind = "present"
	AttendanceKindAbsent  AttendanceKind = "absent"
	AttendanceKindTardy   AttendanceKind = "tardy"
	AttendanceKindExcused AttendanceKind = "excused"
)

// Valid returns true when the kind is a supported value.
func (k AttendanceKind) Valid() bool {
	switch k {
	case AttendanceKindPresent, AttendanceKindAbsent, AttendanceKindTardy, AttendanceKindExcused:
		return true
	default:
		return false
	}
}

// AttendanceType is an attendance category faculty may record.
type AttendanceType struct {
	ReferenceCode
	Kind AttendanceKind `db:"kind" json:"kind"`
}
