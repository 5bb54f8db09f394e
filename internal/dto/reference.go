package dto

// CapSize is the wire representation of a commencement cap size.
type CapSize struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// GownSize is the wire representation of a commencement gown size.
type GownSize struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Degree is the wire representation of a degree code.
type Degree struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Major is the wire representation of a major.
type Major struct {
	Code                        string `json:"code"`
	Description                 string `json:"description"`
	FederalCourseClassification string `json:"federalCourseClassification,omitempty"`
	IsActive                    bool   `json:"isActive"`
}

// Minor is the wire representation of a minor.
type Minor struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ClassLevel is the wire representation of a class level.
type ClassLevel struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

// CreditType is the wire representation of a credit type.
type CreditType struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// DropReason is the wire representation of a drop reason.
type DropReason struct {
	Code                 string `json:"code"`
	Description          string `json:"description"`
	DisplayInSelfService bool   `json:"displayInSelfService"`
}

// SessionCycle is the wire representation of a session cycle.
type SessionCycle struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YearlyCycle is the wire representation of a yearly cycle.
type YearlyCycle struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// GradeSubscheme is the wire representation of a grade subscheme.
type GradeSubscheme struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Grades      []string `json:"grades"`
}

// Specialization is the wire representation of a specialization.
type Specialization struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// StudentLoad is the wire representation of a student load.
type StudentLoad struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

// TranscriptCategory is the wire representation of a transcript category.
type TranscriptCategory struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PetitionStatus is the wire representation of a petition status.
type PetitionStatus struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	IsGranted   bool   `json:"isGranted"`
}

// StudentPetitionReason is the wire representation of a petition reason.
type StudentPetitionReason struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// AttendanceType is the wire representation of an attendance category.
type AttendanceType struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Kind        string `json:"attendanceKind"`
}
