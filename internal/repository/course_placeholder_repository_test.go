package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

var placeholderColumns = []string{"id", "title", "description", "credits_text", "catalog_year", "start_date", "end_date"}

func TestCoursePlaceholderRepositoryFindByIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCoursePlaceholderRepository(db, nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM course_placeholders WHERE id = ANY").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(placeholderColumns).
			AddRow("CP-1", "Humanities elective", "Any 200-level humanities", "3 credits", "2024", start, nil))

	rows, err := repo.FindByIDs(context.Background(), []string{"CP-1", "CP-2"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Humanities elective", rows[0].Title)
	assert.Nil(t, rows[0].EndDate)
}

func TestCoursePlaceholderRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCoursePlaceholderRepository(db, nil)
	mock.ExpectQuery("FROM course_placeholders WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
