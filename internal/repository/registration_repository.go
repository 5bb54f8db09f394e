package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/colleague-student-api/internal/models"
)

// RegistrationRepository reads the registration options open to students.
type RegistrationRepository struct {
	db      *sqlx.DB
	metrics QueryObserver
}

// NewRegistrationRepository instantiates the repository.
func NewRegistrationRepository(db *sqlx.DB, metrics QueryObserver) *RegistrationRepository {
	return &RegistrationRepository{db: db, metrics: metrics}
}

type registrationOptionsRow struct {
	StudentID    string         `db:"student_id"`
	GradingTypes pq.StringArray `db:"grading_types"`
}

// ListOptions returns the options of the given students. Students without a
// row are omitted.
func (r *RegistrationRepository) ListOptions(ctx context.Context, studentIDs []string) ([]models.RegistrationOptions, error) {
	const query = `SELECT student_id, grading_types FROM student_registration_options WHERE student_id = ANY($1) ORDER BY student_id`

	start := time.Now()
	var rows []registrationOptionsRow
	err := r.db.SelectContext(ctx, &rows, query, pq.Array(studentIDs))
	if r.metrics != nil {
		r.metrics.ObserveDBQuery("registration.options", time.Since(start))
	}
	if err != nil {
		return nil, translateDBError(err, "list registration options")
	}

	options := make([]models.RegistrationOptions, 0, len(rows))
	for _, row := range rows {
		types := make([]models.GradingType, 0, len(row.GradingTypes))
		for _, t := range row.GradingTypes {
			types = append(types, models.GradingType(t))
		}
		options = append(options, models.RegistrationOptions{StudentID: row.StudentID, GradingTypes: types})
	}
	return options, nil
}
