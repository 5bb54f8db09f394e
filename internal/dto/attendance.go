package dto

import "time"

// MeetingInstance identifies a section meeting on the wire.
type MeetingInstance struct {
	InstanceID          string     `json:"instanceId,omitempty"`
	InstructionalMethod string     `json:"instructionalMethod,omitempty"`
	MeetingDate         time.Time  `json:"meetingDate" validate:"required"`
	StartTime           *time.Time `json:"startTime,omitempty"`
	EndTime             *time.Time `json:"endTime,omitempty"`
}

// StudentAttendance is one student's attendance for a meeting.
type StudentAttendance struct {
	ID                     string     `json:"id,omitempty"`
	StudentID              string     `json:"studentId"`
	SectionID              string     `json:"sectionId"`
	StudentCourseSectionID string     `json:"studentCourseSectionId" validate:"required"`
	MeetingDate            time.Time  `json:"meetingDate"`
	StartTime              *time.Time `json:"startTime,omitempty"`
	EndTime                *time.Time `json:"endTime,omitempty"`
	AttendanceCategoryCode string     `json:"attendanceCategoryCode,omitempty"`
	MinutesAttended        *int       `json:"minutesAttended,omitempty" validate:"omitempty,min=0"`
	Comment                string     `json:"comment,omitempty" validate:"max=500"`
}

// SectionAttendance is the update payload for a section meeting.
type SectionAttendance struct {
	SectionID          string              `json:"sectionId" validate:"required"`
	MeetingInstance    MeetingInstance     `json:"meetingInstance"`
	StudentAttendances []StudentAttendance `json:"studentAttendances" validate:"required,min=1,dive"`
}

// SectionAttendanceResponse reports which attendances were written and which
// student course sections could not be updated.
type SectionAttendanceResponse struct {
	SectionID                       string              `json:"sectionId"`
	MeetingInstance                 MeetingInstance     `json:"meetingInstance"`
	UpdatedStudentAttendances       []StudentAttendance `json:"updatedStudentCourseSectionAttendances"`
	StudentCourseSectionsWithErrors []string            `json:"studentCourseSectionsWithErrors"`
}

// StudentAttendanceQueryCriteria selects attendances for a section.
type StudentAttendanceQueryCriteria struct {
	SectionID  string   `json:"sectionId" validate:"required"`
	StudentIDs []string `json:"studentIds" validate:"omitempty,dive,required"`
}
