package models

import "time"

// MeetingInstance identifies one meeting of a course section.
type MeetingInstance struct {
	InstanceID          string     `db:"instance_id" json:"instance_id"`
	InstructionalMethod string     `db:"instructional_method" json:"instructional_method"`
	MeetingDate         time.Time  `db:"meeting_date" json:"meeting_date"`
	StartTime           *time.Time `db:"start_time" json:"start_time,omitempty"`
	EndTime             *time.Time `db:"end_time" json:"end_time,omitempty"`
}

// StudentAttendance is one student's attendance for a section meeting.
type StudentAttendance struct {
	ID                     string     `db:"id" json:"id"`
	StudentID              string     `db:"student_id" json:"student_id"`
	SectionID              string     `db:"section_id" json:"section_id"`
	StudentCourseSectionID string     `db:"student_course_section_id" json:"student_course_section_id"`
	MeetingDate            time.Time  `db:"meeting_date" json:"meeting_date"`
	StartTime              *time.Time `db:"start_time" json:"start_time,omitempty"`
	EndTime                *time.Time `db:"end_time" json:"end_time,omitempty"`
	AttendanceCategoryCode *string    `db:"attendance_category_code" json:"attendance_category_code,omitempty"`
	MinutesAttended        *int       `db:"minutes_attended" json:"minutes_attended,omitempty"`
	Comment                *string    `db:"comment" json:"comment,omitempty"`
	UpdatedBy              string     `db:"updated_by" json:"updated_by"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updated_at"`
}

// SectionAttendance is a batch of student attendances for one meeting.
type SectionAttendance struct {
	SectionID          string
	Meeting            MeetingInstance
	StudentAttendances []StudentAttendance
}

// SectionAttendanceResult reports the outcome of a batch attendance update.
type SectionAttendanceResult struct {
	SectionID                       string
	Meeting                         MeetingInstance
	Updated                         []StudentAttendance
	StudentCourseSectionsWithErrors []string
}

// StudentAttendanceFilter narrows attendance reads.
type StudentAttendanceFilter struct {
	SectionID  string
	StudentIDs []string
}
