package models

// GradingType is a grading option a student may choose at registration.
type GradingType string

const (
	GradingTypeGraded   GradingType = "graded"
	GradingTypePassFail GradingType = "pass_fail"
	GradingTypeAudit    GradingType = "audit"
)

// RegistrationOptions lists the registration choices open to a student.
type RegistrationOptions struct {
	StudentID    string        `db:"student_id" json:"student_id"`
	GradingTypes []GradingType `db:"-" json:"grading_types"`
}
