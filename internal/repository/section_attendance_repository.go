package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/colleague-student-api/internal/models"
)

// SectionAttendanceRepository persists student attendance per section meeting.
type SectionAttendanceRepository struct {
	db      *sqlx.DB
	metrics QueryObserver
}

// NewSectionAttendanceRepository instantiates the repository.
func NewSectionAttendanceRepository(db *sqlx.DB, metrics QueryObserver) *SectionAttendanceRepository {
	return &SectionAttendanceRepository{db: db, metrics: metrics}
}

func (r *SectionAttendanceRepository) observe(label string, start time.Time) {
	if r.metrics != nil {
		r.metrics.ObserveDBQuery(label, time.Since(start))
	}
}

// ActiveCourseSections maps each student course section id that belongs to
// the section and is active onto its student id. Ids outside the section are
// absent from the map.
func (r *SectionAttendanceRepository) ActiveCourseSections(ctx context.Context, sectionID string, courseSectionIDs []string) (map[string]string, error) {
	const query = `SELECT id, student_id FROM student_course_sections WHERE section_id = $1 AND id = ANY($2) AND status = 'active'`
	start := time.Now()
	defer r.observe("attendance.course_sections", start)

	rows, err := r.db.QueryxContext(ctx, query, sectionID, pq.Array(courseSectionIDs))
	if err != nil {
		return nil, translateDBError(err, "list course sections")
	}
	defer rows.Close()

	active := make(map[string]string, len(courseSectionIDs))
	for rows.Next() {
		var courseSectionID, studentID string
		if err := rows.Scan(&courseSectionID, &studentID); err != nil {
			return nil, translateDBError(err, "scan course section")
		}
		active[courseSectionID] = studentID
	}
	if err := rows.Err(); err != nil {
		return nil, translateDBError(err, "iterate course sections")
	}
	return active, nil
}

// Upsert writes every attendance in one transaction, replacing any earlier
// record for the same course section and meeting.
func (r *SectionAttendanceRepository) Upsert(ctx context.Context, records []models.StudentAttendance) ([]models.StudentAttendance, error) {
	if len(records) == 0 {
		return []models.StudentAttendance{}, nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translateDBError(err, "begin section attendance tx")
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback() //nolint:errcheck
		}
	}()

	const query = `INSERT INTO student_attendances (id, student_id, section_id, student_course_section_id, meeting_date, start_time, end_time, attendance_category_code, minutes_attended, comment, updated_by, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (student_course_section_id, meeting_date, start_time)
DO UPDATE SET attendance_category_code = EXCLUDED.attendance_category_code, minutes_attended = EXCLUDED.minutes_attended,
              comment = EXCLUDED.comment, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at
RETURNING id`

	start := time.Now()
	now := start.UTC()
	stored := make([]models.StudentAttendance, 0, len(records))
	for i := range records {
		rec := records[i]
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.UpdatedAt = now
		if err := tx.QueryRowxContext(ctx, query, rec.ID, rec.StudentID, rec.SectionID, rec.StudentCourseSectionID, rec.MeetingDate,
			rec.StartTime, rec.EndTime, rec.AttendanceCategoryCode, rec.MinutesAttended, rec.Comment, rec.UpdatedBy, rec.UpdatedAt).Scan(&rec.ID); err != nil {
			return nil, translateDBError(err, "upsert student attendance")
		}
		stored = append(stored, rec)
	}
	if err := tx.Commit(); err != nil {
		return nil, translateDBError(err, "commit section attendance tx")
	}
	commit = true
	r.observe("attendance.upsert", start)
	return stored, nil
}

// List returns attendances for a section, optionally narrowed to students.
func (r *SectionAttendanceRepository) List(ctx context.Context, filter models.StudentAttendanceFilter) ([]models.StudentAttendance, error) {
	conditions := []string{"section_id = $1"}
	args := []interface{}{filter.SectionID}
	if len(filter.StudentIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("student_id = ANY($%d)", len(args)+1))
		args = append(args, pq.Array(filter.StudentIDs))
	}
	query := fmt.Sprintf(`SELECT id, student_id, section_id, student_course_section_id, meeting_date, start_time, end_time, attendance_category_code, minutes_attended, comment, updated_by, updated_at
FROM student_attendances WHERE %s ORDER BY meeting_date, student_id`, strings.Join(conditions, " AND "))

	start := time.Now()
	var rows []models.StudentAttendance
	err := r.db.SelectContext(ctx, &rows, query, args...)
	r.observe("attendance.list", start)
	if err != nil {
		return nil, translateDBError(err, "list student attendances")
	}
	return rows, nil
}
