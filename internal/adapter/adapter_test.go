package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

func TestCapSizeMapsCodeAndDescription(t *testing.T) {
	out, err := CapSize(models.CapSize{ReferenceCode: models.ReferenceCode{Code: "SM", Description: "Small"}})
	require.NoError(t, err)
	assert.Equal(t, dto.CapSize{Code: "SM", Description: "Small"}, out)
}

func TestReferenceWithoutCodeIsMappingFault(t *testing.T) {
	_, err := Degree(models.Degree{ReferenceCode: models.ReferenceCode{Code: "  ", Description: "Blank"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrMapping))
	assert.True(t, errors.Is(err, ErrMissingCode))
}

func TestMajorDereferencesOptionalFields(t *testing.T) {
	cip := "11.0701"
	out, err := Major(models.Major{ReferenceCode: models.ReferenceCode{Code: "CS", Description: "Computer Science"}, FederalCourseClassification: &cip, Active: true})
	require.NoError(t, err)
	assert.Equal(t, "11.0701", out.FederalCourseClassification)
	assert.True(t, out.IsActive)

	out, err = Major(models.Major{ReferenceCode: models.ReferenceCode{Code: "HIST", Description: "History"}})
	require.NoError(t, err)
	assert.Empty(t, out.FederalCourseClassification)
}

func TestGradeSubschemeNeverReturnsNilGrades(t *testing.T) {
	out, err := GradeSubscheme(models.GradeSubscheme{ReferenceCode: models.ReferenceCode{Code: "UG", Description: "Undergrad"}})
	require.NoError(t, err)
	assert.NotNil(t, out.Grades)
	assert.Empty(t, out.Grades)
}

func TestAttendanceTypeRejectsUnknownKind(t *testing.T) {
	_, err := AttendanceType(models.AttendanceType{ReferenceCode: models.ReferenceCode{Code: "P", Description: "Present"}, Kind: "late-ish"})
	assert.True(t, errors.Is(err, appErrors.ErrMapping))

	out, err := AttendanceType(models.AttendanceType{ReferenceCode: models.ReferenceCode{Code: "P", Description: "Present"}, Kind: models.AttendanceKindPresent})
	require.NoError(t, err)
	assert.Equal(t, "present", out.Kind)
}

func TestSectionAttendanceEntityCopiesMeetingOntoStudents(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	minutes := 50
	entity := SectionAttendanceEntity(dto.SectionAttendance{
		SectionID:       "sec-1",
		MeetingInstance: dto.MeetingInstance{MeetingDate: date},
		StudentAttendances: []dto.StudentAttendance{
			{StudentCourseSectionID: "scs-1", AttendanceCategoryCode: "P", MinutesAttended: &minutes},
			{StudentCourseSectionID: "scs-2", Comment: "  "},
		},
	})

	require.Len(t, entity.StudentAttendances, 2)
	assert.Equal(t, "sec-1", entity.StudentAttendances[0].SectionID)
	assert.Equal(t, date, entity.StudentAttendances[1].MeetingDate)
	assert.Equal(t, "P", *entity.StudentAttendances[0].AttendanceCategoryCode)
	assert.Nil(t, entity.StudentAttendances[1].Comment)
	assert.Nil(t, entity.StudentAttendances[1].AttendanceCategoryCode)
}

func TestSectionAttendanceResponseReportsUnmappableRows(t *testing.T) {
	resp := SectionAttendanceResponse(models.SectionAttendanceResult{
		SectionID: "sec-1",
		Updated: []models.StudentAttendance{
			{ID: "a1", StudentID: "stu-1", SectionID: "sec-1", StudentCourseSectionID: "scs-1"},
			{ID: "a2", SectionID: "sec-1", StudentCourseSectionID: "scs-2"},
		},
		StudentCourseSectionsWithErrors: []string{"scs-9"},
	})

	require.Len(t, resp.UpdatedStudentAttendances, 1)
	assert.Equal(t, []string{"scs-9", "scs-2"}, resp.StudentCourseSectionsWithErrors)
}

func TestSectionPermissionSkipsPetitionsWithoutStudent(t *testing.T) {
	out, err := SectionPermission(models.SectionPermission{
		SectionID:        "sec-1",
		StudentPetitions: []models.SectionPetition{{ID: "p1", StudentID: "stu-1"}, {ID: "p2"}},
	})
	require.NoError(t, err)
	assert.Len(t, out.StudentPetitions, 1)
	assert.NotNil(t, out.FacultyConsents)
}
