package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

// ReferenceCache is the subset of the cache service used for reference data.
type ReferenceCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// QueryObserver records database query timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// ReferenceTable describes where one kind of reference entity lives.
type ReferenceTable struct {
	Name    string
	Columns []string
	OrderBy string
}

func (t ReferenceTable) selectQuery() string {
	order := t.OrderBy
	if order == "" {
		order = "code"
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(t.Columns, ", "), t.Name, order)
}

// CacheKey is the Redis key holding the table's cached rows.
func (t ReferenceTable) CacheKey() string {
	return "reference:" + t.Name
}

// ReferenceOptions carries the optional collaborators of a ReferenceRepository.
type ReferenceOptions struct {
	Cache   ReferenceCache
	TTL     time.Duration
	Metrics QueryObserver
	Logger  *zap.Logger
}

// ReferenceRepository reads one reference table, serving it from cache
// unless the caller asks for a bypass.
type ReferenceRepository[E models.Coded] struct {
	db      *sqlx.DB
	table   ReferenceTable
	cache   ReferenceCache
	ttl     time.Duration
	metrics QueryObserver
	logger  *zap.Logger
}

// NewReferenceRepository instantiates a repository for table.
func NewReferenceRepository[E models.Coded](db *sqlx.DB, table ReferenceTable, opts ReferenceOptions) *ReferenceRepository[E] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceRepository[E]{
		db:      db,
		table:   table,
		cache:   opts.Cache,
		ttl:     opts.TTL,
		metrics: opts.Metrics,
		logger:  logger,
	}
}

// Table returns the table descriptor.
func (r *ReferenceRepository[E]) Table() ReferenceTable {
	return r.table
}

// List returns every row of the table. With bypass set the cache is not read
// but is still refreshed with the rows loaded from the database.
func (r *ReferenceRepository[E]) List(ctx context.Context, bypass bool) ([]E, error) {
	key := r.table.CacheKey()
	if r.cache != nil && !bypass {
		var cached []E
		hit, err := r.cache.Get(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	start := time.Now()
	var rows []E
	err := r.db.SelectContext(ctx, &rows, r.table.selectQuery())
	if r.metrics != nil {
		r.metrics.ObserveDBQuery("reference."+r.table.Name, time.Since(start))
	}
	if err != nil {
		return nil, translateDBError(err, "list "+r.table.Name)
	}
	if rows == nil {
		rows = []E{}
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, rows, r.ttl); err != nil {
			r.logger.Debug("reference cache refresh failed", zap.String("table", r.table.Name), zap.Error(err))
		}
	}
	return rows, nil
}

// Get returns the entity with the given code.
func (r *ReferenceRepository[E]) Get(ctx context.Context, code string, bypass bool) (E, error) {
	var zero E
	rows, err := r.List(ctx, bypass)
	if err != nil {
		return zero, err
	}
	for _, row := range rows {
		if row.GetCode() == code {
			return row, nil
		}
	}
	return zero, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s: code %q not found", r.table.Name, code))
}
