package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/colleague-student-api/internal/models"
)

// CoursePlaceholderRepository reads course placeholders from the catalog.
type CoursePlaceholderRepository struct {
	db      *sqlx.DB
	metrics QueryObserver
}

// NewCoursePlaceholderRepository instantiates the repository.
func NewCoursePlaceholderRepository(db *sqlx.DB, metrics QueryObserver) *CoursePlaceholderRepository {
	return &CoursePlaceholderRepository{db: db, metrics: metrics}
}

const coursePlaceholderColumns = `id, title, description, credits_text, catalog_year, start_date, end_date`

// FindByIDs returns the placeholders matching ids, in id order.
func (r *CoursePlaceholderRepository) FindByIDs(ctx context.Context, ids []string) ([]models.CoursePlaceholder, error) {
	const query = `SELECT ` + coursePlaceholderColumns + ` FROM course_placeholders WHERE id = ANY($1) ORDER BY id`

	start := time.Now()
	var rows []models.CoursePlaceholder
	err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids))
	r.observe("course_placeholder.find_by_ids", start)
	if err != nil {
		return nil, translateDBError(err, "list course placeholders")
	}
	return rows, nil
}

// FindByID loads one placeholder.
func (r *CoursePlaceholderRepository) FindByID(ctx context.Context, id string) (*models.CoursePlaceholder, error) {
	const query = `SELECT ` + coursePlaceholderColumns + ` FROM course_placeholders WHERE id = $1`

	start := time.Now()
	var placeholder models.CoursePlaceholder
	err := r.db.GetContext(ctx, &placeholder, query, id)
	r.observe("course_placeholder.find_by_id", start)
	if err != nil {
		return nil, translateDBError(err, "get course placeholder")
	}
	return &placeholder, nil
}

func (r *CoursePlaceholderRepository) observe(label string, start time.Time) {
	if r.metrics != nil {
		r.metrics.ObserveDBQuery(label, time.Since(start))
	}
}
