package adapter

import (
	"strings"

	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
)

// MeetingInstance maps a meeting instance entity.
func MeetingInstance(src models.MeetingInstance) dto.MeetingInstance {
	return dto.MeetingInstance{
		InstanceID:          src.InstanceID,
		InstructionalMethod: src.InstructionalMethod,
		MeetingDate:         src.MeetingDate,
		StartTime:           src.StartTime,
		EndTime:             src.EndTime,
	}
}

// StudentAttendance maps a student attendance entity.
func StudentAttendance(src models.StudentAttendance) (dto.StudentAttendance, error) {
	if src.StudentID == "" {
		return dto.StudentAttendance{}, missing("student attendance "+src.ID, "student id")
	}
	if src.SectionID == "" {
		return dto.StudentAttendance{}, missing("student attendance "+src.ID, "section id")
	}
	return dto.StudentAttendance{
		ID:                     src.ID,
		StudentID:              src.StudentID,
		SectionID:              src.SectionID,
		StudentCourseSectionID: src.StudentCourseSectionID,
		MeetingDate:            src.MeetingDate,
		StartTime:              src.StartTime,
		EndTime:                src.EndTime,
		AttendanceCategoryCode: deref(src.AttendanceCategoryCode),
		MinutesAttended:        src.MinutesAttended,
		Comment:                deref(src.Comment),
	}, nil
}

// SectionAttendanceEntity converts the update payload into the entity the
// repository writes. Blank optional strings become NULL.
func SectionAttendanceEntity(src dto.SectionAttendance) models.SectionAttendance {
	meeting := models.MeetingInstance{
		InstanceID:          src.MeetingInstance.InstanceID,
		InstructionalMethod: src.MeetingInstance.InstructionalMethod,
		MeetingDate:         src.MeetingInstance.MeetingDate,
		StartTime:           src.MeetingInstance.StartTime,
		EndTime:             src.MeetingInstance.EndTime,
	}
	out := models.SectionAttendance{
		SectionID:          src.SectionID,
		Meeting:            meeting,
		StudentAttendances: make([]models.StudentAttendance, 0, len(src.StudentAttendances)),
	}
	for _, item := range src.StudentAttendances {
		out.StudentAttendances = append(out.StudentAttendances, models.StudentAttendance{
			StudentID:              item.StudentID,
			SectionID:              src.SectionID,
			StudentCourseSectionID: item.StudentCourseSectionID,
			MeetingDate:            meeting.MeetingDate,
			StartTime:              meeting.StartTime,
			EndTime:                meeting.EndTime,
			AttendanceCategoryCode: optional(item.AttendanceCategoryCode),
			MinutesAttended:        item.MinutesAttended,
			Comment:                optional(item.Comment),
		})
	}
	return out
}

// SectionAttendanceResponse maps the result of an attendance update. Written
// rows that cannot be represented are reported as errors instead.
func SectionAttendanceResponse(src models.SectionAttendanceResult) dto.SectionAttendanceResponse {
	resp := dto.SectionAttendanceResponse{
		SectionID:                       src.SectionID,
		MeetingInstance:                 MeetingInstance(src.Meeting),
		UpdatedStudentAttendances:       make([]dto.StudentAttendance, 0, len(src.Updated)),
		StudentCourseSectionsWithErrors: append([]string{}, src.StudentCourseSectionsWithErrors...),
	}
	for _, item := range src.Updated {
		mapped, err := StudentAttendance(item)
		if err != nil {
			resp.StudentCourseSectionsWithErrors = append(resp.StudentCourseSectionsWithErrors, item.StudentCourseSectionID)
			continue
		}
		resp.UpdatedStudentAttendances = append(resp.UpdatedStudentAttendances, mapped)
	}
	return resp
}

// RegistrationOptions maps a student's registration options.
func RegistrationOptions(src models.RegistrationOptions) (dto.RegistrationOptions, error) {
	if src.StudentID == "" {
		return dto.RegistrationOptions{}, missing("registration options", "student id")
	}
	types := make([]string, 0, len(src.GradingTypes))
	for _, t := range src.GradingTypes {
		types = append(types, string(t))
	}
	return dto.RegistrationOptions{StudentID: src.StudentID, GradingTypes: types}, nil
}

// CoursePlaceholder maps a course placeholder entity.
func CoursePlaceholder(src models.CoursePlaceholder) (dto.CoursePlaceholder, error) {
	if src.ID == "" {
		return dto.CoursePlaceholder{}, missing("course placeholder "+src.Title, "id")
	}
	return dto.CoursePlaceholder{
		ID:          src.ID,
		Title:       src.Title,
		Description: deref(src.Description),
		CreditsText: deref(src.CreditsText),
		CatalogYear: deref(src.CatalogYear),
		StartDate:   src.StartDate,
		EndDate:     src.EndDate,
	}, nil
}

// SectionPetition maps a petition or consent entity.
func SectionPetition(src models.SectionPetition) (dto.SectionPetition, error) {
	if src.StudentID == "" {
		return dto.SectionPetition{}, missing("section petition "+src.ID, "student id")
	}
	return dto.SectionPetition{
		ID:         src.ID,
		SectionID:  src.SectionID,
		StudentID:  src.StudentID,
		StatusCode: src.StatusCode,
		ReasonCode: deref(src.ReasonCode),
		Comment:    deref(src.Comment),
		UpdatedBy:  deref(src.UpdatedBy),
		UpdatedAt:  src.UpdatedAt,
	}, nil
}

// SectionPermission maps a section's permissions. Petitions without a student
// are dropped.
func SectionPermission(src models.SectionPermission) (dto.SectionPermission, error) {
	if src.SectionID == "" {
		return dto.SectionPermission{}, missing("section permission", "section id")
	}
	out := dto.SectionPermission{
		SectionID:        src.SectionID,
		StudentPetitions: make([]dto.SectionPetition, 0, len(src.StudentPetitions)),
		FacultyConsents:  make([]dto.SectionPetition, 0, len(src.FacultyConsents)),
	}
	for _, p := range src.StudentPetitions {
		if mapped, err := SectionPetition(p); err == nil {
			out.StudentPetitions = append(out.StudentPetitions, mapped)
		}
	}
	for _, p := range src.FacultyConsents {
		if mapped, err := SectionPetition(p); err == nil {
			out.FacultyConsents = append(out.FacultyConsents, mapped)
		}
	}
	return out, nil
}

// SectionTextbooks maps the textbooks assigned to a section.
func SectionTextbooks(sectionID string, src []models.SectionTextbook) dto.SectionTextbooks {
	out := dto.SectionTextbooks{SectionID: sectionID, Textbooks: make([]dto.SectionTextbook, 0, len(src))}
	for _, book := range src {
		assignedAt := book.AssignedAt
		out.Textbooks = append(out.Textbooks, dto.SectionTextbook{
			BookID:      book.BookID,
			Requirement: string(book.Requirement),
			Comment:     deref(book.Comment),
			AssignedBy:  book.AssignedBy,
			AssignedAt:  &assignedAt,
		})
	}
	return out
}

// SectionTextbookEntities converts an assignment payload into entities.
func SectionTextbookEntities(sectionID, actor string, src dto.SectionTextbookAssignment) []models.SectionTextbook {
	out := make([]models.SectionTextbook, 0, len(src.Textbooks))
	for _, book := range src.Textbooks {
		out = append(out, models.SectionTextbook{
			SectionID:   sectionID,
			BookID:      strings.TrimSpace(book.BookID),
			Requirement: models.TextbookRequirement(book.Requirement),
			Comment:     optional(book.Comment),
			AssignedBy:  actor,
		})
	}
	return out
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
