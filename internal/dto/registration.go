package dto

// RegistrationOptions lists the grading types a student may register with.
type RegistrationOptions struct {
	StudentID    string   `json:"studentId"`
	GradingTypes []string `json:"gradingTypes"`
}

// RegistrationOptionsQueryCriteria requests options for several students.
type RegistrationOptionsQueryCriteria struct {
	StudentIDs []string `json:"studentIds" validate:"required,min=1,dive,required"`
}
