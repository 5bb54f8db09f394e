package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/colleague-student-api/internal/models"
)

// SectionRepository covers section membership checks, petitions and textbooks.
type SectionRepository struct {
	db      *sqlx.DB
	metrics QueryObserver
}

// NewSectionRepository instantiates the repository.
func NewSectionRepository(db *sqlx.DB, metrics QueryObserver) *SectionRepository {
	return &SectionRepository{db: db, metrics: metrics}
}

func (r *SectionRepository) observe(label string, start time.Time) {
	if r.metrics != nil {
		r.metrics.ObserveDBQuery(label, time.Since(start))
	}
}

// Exists reports whether the section is known.
func (r *SectionRepository) Exists(ctx context.Context, sectionID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM sections WHERE id = $1)`
	start := time.Now()
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, sectionID)
	r.observe("section.exists", start)
	if err != nil {
		return false, translateDBError(err, "check section")
	}
	return exists, nil
}

// IsFaculty reports whether the person teaches the section.
func (r *SectionRepository) IsFaculty(ctx context.Context, sectionID, personID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM section_faculty WHERE section_id = $1 AND faculty_id = $2)`
	start := time.Now()
	var ok bool
	err := r.db.GetContext(ctx, &ok, query, sectionID, personID)
	r.observe("section.is_faculty", start)
	if err != nil {
		return false, translateDBError(err, "check section faculty")
	}
	return ok, nil
}

// ListPetitions returns the petitions and consents recorded for a section.
func (r *SectionRepository) ListPetitions(ctx context.Context, sectionID string) ([]models.SectionPetition, error) {
	const query = `SELECT id, section_id, student_id, kind, status_code, reason_code, comment, updated_by, updated_at
FROM section_petitions WHERE section_id = $1 ORDER BY student_id, kind`
	start := time.Now()
	var rows []models.SectionPetition
	err := r.db.SelectContext(ctx, &rows, query, sectionID)
	r.observe("section.petitions", start)
	if err != nil {
		return nil, translateDBError(err, "list section petitions")
	}
	return rows, nil
}

// ReplaceTextbooks swaps the section's textbook list for books in one transaction.
func (r *SectionRepository) ReplaceTextbooks(ctx context.Context, sectionID string, books []models.SectionTextbook) ([]models.SectionTextbook, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translateDBError(err, "begin section textbook tx")
	}
	commit := false
	defer func() {
		if !commit {
			tx.Rollback() //nolint:errcheck
		}
	}()

	start := time.Now()
	if _, err := tx.ExecContext(ctx, `DELETE FROM section_textbooks WHERE section_id = $1`, sectionID); err != nil {
		return nil, translateDBError(err, "clear section textbooks")
	}

	const insert = `INSERT INTO section_textbooks (section_id, book_id, requirement, comment, assigned_by, assigned_at)
VALUES (:section_id, :book_id, :requirement, :comment, :assigned_by, :assigned_at)`
	now := start.UTC()
	stored := make([]models.SectionTextbook, 0, len(books))
	for i := range books {
		book := books[i]
		book.SectionID = sectionID
		book.AssignedAt = now
		if _, err := tx.NamedExecContext(ctx, insert, book); err != nil {
			return nil, translateDBError(err, "insert section textbook")
		}
		stored = append(stored, book)
	}

	if err := tx.Commit(); err != nil {
		return nil, translateDBError(err, "commit section textbook tx")
	}
	commit = true
	r.observe("section.replace_textbooks", start)
	return stored, nil
}
