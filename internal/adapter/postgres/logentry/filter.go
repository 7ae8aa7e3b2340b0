package logentry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/tracknox/timetrack-backend/internal/adapter/postgres"
	"github.com/tracknox/timetrack-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps pagination values.
func normalize(f *domain.EntryFilter) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// conditions translates the filter into squirrel predicates shared by the
// page and count queries.
func conditions(f domain.EntryFilter) []sq.Sqlizer {
	var conds []sq.Sqlizer

	if f.From != nil {
		// An entry intersects the range when it ends after From; live
		// sessions have no end yet and always qualify.
		conds = append(conds, sq.Or{
			sq.Expr("end_time > ?", *f.From),
			sq.Eq{"end_time": nil},
		})
	}
	if f.To != nil {
		conds = append(conds, sq.Expr("start_time < ?", *f.To))
	}
	if f.ActivityID != nil {
		conds = append(conds, sq.Eq{"activity_id": *f.ActivityID})
	}
	if f.EntryType != nil {
		conds = append(conds, sq.Eq{"entry_type": *f.EntryType})
	}
	if f.Status != nil {
		conds = append(conds, sq.Eq{"status": *f.Status})
	}

	return conds
}

// List returns entries matching the filter ordered by start_time descending,
// plus the total match count for pagination.
func (r *Repo) List(ctx context.Context, filter domain.EntryFilter) ([]*domain.ActivityLogEntry, int, error) {
	normalize(&filter)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	conds := conditions(filter)

	countQuery := builder.Select("count(*)").From("activity_log")
	pageQuery := builder.Select(entryColumns).From("activity_log")
	for _, c := range conds {
		countQuery = countQuery.Where(c)
		pageQuery = pageQuery.Where(c)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	pageSQL, pageArgs, err := pageQuery.
		OrderBy("start_time DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []*domain.ActivityLogEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list entries: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}

	return entries, total, nil
}
