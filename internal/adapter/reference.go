package adapter

import (
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
)

// CapSize maps a cap size entity.
func CapSize(src models.CapSize) (dto.CapSize, error) {
	if err := checkCode("cap size", src.ReferenceCode); err != nil {
		return dto.CapSize{}, err
	}
	return dto.CapSize{Code: src.Code, Description: src.Description}, nil
}

// GownSize maps a gown size entity.
func GownSize(src models.GownSize) (dto.GownSize, error) {
	if err := checkCode("gown size", src.ReferenceCode); err != nil {
		return dto.GownSize{}, err
	}
	return dto.GownSize{Code: src.Code, Description: src.Description}, nil
}

// Degree maps a degree entity.
func Degree(src models.Degree) (dto.Degree, error) {
	if err := checkCode("degree", src.ReferenceCode); err != nil {
		return dto.Degree{}, err
	}
	return dto.Degree{Code: src.Code, Description: src.Description}, nil
}

// Major maps a major entity.
func Major(src models.Major) (dto.Major, error) {
	if err := checkCode("major", src.ReferenceCode); err != nil {
		return dto.Major{}, err
	}
	return dto.Major{
		Code:                        src.Code,
		Description:                 src.Description,
		FederalCourseClassification: deref(src.FederalCourseClassification),
		IsActive:                    src.Active,
	}, nil
}

// Minor maps a minor entity.
func Minor(src models.Minor) (dto.Minor, error) {
	if err := checkCode("minor", src.ReferenceCode); err != nil {
		return dto.Minor{}, err
	}
	return dto.Minor{Code: src.Code, Description: src.Description}, nil
}

// ClassLevel maps a class level entity.
func ClassLevel(src models.ClassLevel) (dto.ClassLevel, error) {
	if err := checkCode("class level", src.ReferenceCode); err != nil {
		return dto.ClassLevel{}, err
	}
	return dto.ClassLevel{Code: src.Code, Description: src.Description, SortOrder: src.SortOrder}, nil
}

// CreditType maps a credit type entity.
func CreditType(src models.CreditType) (dto.CreditType, error) {
	if err := checkCode("credit type", src.ReferenceCode); err != nil {
		return dto.CreditType{}, err
	}
	return dto.CreditType{Code: src.Code, Description: src.Description, Category: src.Category}, nil
}

// DropReason maps a drop reason entity.
func DropReason(src models.DropReason) (dto.DropReason, error) {
	if err := checkCode("drop reason", src.ReferenceCode); err != nil {
		return dto.DropReason{}, err
	}
	return dto.DropReason{
		Code:                 src.Code,
		Description:          src.Description,
		DisplayInSelfService: src.DisplayInSelfService,
	}, nil
}

// SessionCycle maps a session cycle entity.
func SessionCycle(src models.SessionCycle) (dto.SessionCycle, error) {
	if err := checkCode("session cycle", src.ReferenceCode); err != nil {
		return dto.SessionCycle{}, err
	}
	return dto.SessionCycle{Code: src.Code, Description: src.Description}, nil
}

// YearlyCycle maps a yearly cycle entity.
func YearlyCycle(src models.YearlyCycle) (dto.YearlyCycle, error) {
	if err := checkCode("yearly cycle", src.ReferenceCode); err != nil {
		return dto.YearlyCycle{}, err
	}
	return dto.YearlyCycle{Code: src.Code, Description: src.Description}, nil
}

// GradeSubscheme maps a grade subscheme entity. A nil grade list is written
// as an empty array.
func GradeSubscheme(src models.GradeSubscheme) (dto.GradeSubscheme, error) {
	if err := checkCode("grade subscheme", src.ReferenceCode); err != nil {
		return dto.GradeSubscheme{}, err
	}
	grades := make([]string, 0, len(src.Grades))
	grades = append(grades, src.Grades...)
	return dto.GradeSubscheme{Code: src.Code, Description: src.Description, Grades: grades}, nil
}

// Specialization maps a specialization entity.
func Specialization(src models.Specialization) (dto.Specialization, error) {
	if err := checkCode("specialization", src.ReferenceCode); err != nil {
		return dto.Specialization{}, err
	}
	return dto.Specialization{Code: src.Code, Description: src.Description}, nil
}

// StudentLoad maps a student load entity.
func StudentLoad(src models.StudentLoad) (dto.StudentLoad, error) {
	if err := checkCode("student load", src.ReferenceCode); err != nil {
		return dto.StudentLoad{}, err
	}
	return dto.StudentLoad{Code: src.Code, Description: src.Description, SortOrder: src.SortOrder}, nil
}

// TranscriptCategory maps a transcript category entity.
func TranscriptCategory(src models.TranscriptCategory) (dto.TranscriptCategory, error) {
	if err := checkCode("transcript category", src.ReferenceCode); err != nil {
		return dto.TranscriptCategory{}, err
	}
	return dto.TranscriptCategory{Code: src.Code, Description: src.Description}, nil
}

// PetitionStatus maps a petition status entity.
func PetitionStatus(src models.PetitionStatus) (dto.PetitionStatus, error) {
	if err := checkCode("petition status", src.ReferenceCode); err != nil {
		return dto.PetitionStatus{}, err
	}
	return dto.PetitionStatus{Code: src.Code, Description: src.Description, IsGranted: src.Granted}, nil
}

// StudentPetitionReason maps a petition reason entity.
func StudentPetitionReason(src models.StudentPetitionReason) (dto.StudentPetitionReason, error) {
	if err := checkCode("student petition reason", src.ReferenceCode); err != nil {
		return dto.StudentPetitionReason{}, err
	}
	return dto.StudentPetitionReason{Code: src.Code, Description: src.Description}, nil
}

// AttendanceType maps an attendance type entity. Unknown kinds cannot be
// represented on the wire.
func AttendanceType(src models.AttendanceType) (dto.AttendanceType, error) {
	if err := checkCode("attendance type", src.ReferenceCode); err != nil {
		return dto.AttendanceType{}, err
	}
	if !src.Kind.Valid() {
		return dto.AttendanceType{}, missing("attendance type "+src.Code, "valid kind")
	}
	return dto.AttendanceType{Code: src.Code, Description: src.Description, Kind: string(src.Kind)}, nil
}
