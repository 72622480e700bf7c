package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/ports"
)

// collect scans every row into a page. scan receives the window total
// column alongside the item.
func collect[T any](rows *sql.Rows, scan func(rows *sql.Rows, item *T, total *int) error) (ports.Page[T], error) {
	defer rows.Close()

	page := ports.Page[T]{Items: make([]T, 0)}
	for rows.Next() {
		var item T
		if err := scan(rows, &item, &page.Total); err != nil {
			return ports.Page[T]{}, err
		}
		page.Items = append(page.Items, item)
	}
	if err := rows.Err(); err != nil {
		return ports.Page[T]{}, err
	}
	return page, nil
}

// withTotal fills in Total for a page past the last row, where the window
// count has no row to ride on.
func withTotal[T any](ctx context.Context, q querier, page ports.Page[T], req ports.PageRequest, countQuery string, args ...any) (ports.Page[T], error) {
	if len(page.Items) > 0 || req.Offset == 0 {
		return page, nil
	}
	if err := q.QueryRowContext(ctx, countQuery, args...).Scan(&page.Total); err != nil {
		return ports.Page[T]{}, mapError("count rows", err)
	}
	return page, nil
}

// nullable turns the zero UUID into SQL NULL so filters can match all rows.
func nullable(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func (s *Store) ListProjects(ctx context.Context, page ports.PageRequest) (ports.Page[ports.ProjectSummary], error) {
	const q = `
SELECT id, name, description, status, progress, created_at, updated_at, count(*) OVER ()
FROM projects
ORDER BY updated_at DESC, id
LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, q, page.Limit, page.Offset)
	if err != nil {
		return ports.Page[ports.ProjectSummary]{}, mapError("list projects", err)
	}
	result, err := collect(rows, func(rows *sql.Rows, p *ports.ProjectSummary, total *int) error {
		return rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Progress, &p.CreatedAt, &p.UpdatedAt, total)
	})
	if err != nil {
		return ports.Page[ports.ProjectSummary]{}, mapError("list projects", err)
	}
	return withTotal(ctx, s.db, result, page, `SELECT count(*) FROM projects`)
}

func (s *Store) ListSubprojects(ctx context.Context, filter ports.SubprojectFilter, page ports.PageRequest) (ports.Page[ports.SubprojectSummary], error) {
	const q = `
SELECT id, project_id, name, description, status, progress, created_at, updated_at, count(*) OVER ()
FROM subprojects
WHERE $1::uuid IS NULL OR project_id = $1
ORDER BY updated_at DESC, id
LIMIT $2 OFFSET $3`

	projectID := nullable(filter.ProjectID)
	rows, err := s.db.QueryContext(ctx, q, projectID, page.Limit, page.Offset)
	if err != nil {
		return ports.Page[ports.SubprojectSummary]{}, mapError("list subprojects", err)
	}
	result, err := collect(rows, func(rows *sql.Rows, sp *ports.SubprojectSummary, total *int) error {
		return rows.Scan(&sp.ID, &sp.ProjectID, &sp.Name, &sp.Description, &sp.Status, &sp.Progress,
			&sp.CreatedAt, &sp.UpdatedAt, total)
	})
	if err != nil {
		return ports.Page[ports.SubprojectSummary]{}, mapError("list subprojects", err)
	}
	return withTotal(ctx, s.db, result, page,
		`SELECT count(*) FROM subprojects WHERE $1::uuid IS NULL OR project_id = $1`, projectID)
}

func (s *Store) ListStages(ctx context.Context, filter ports.StageFilter, page ports.PageRequest) (ports.Page[ports.StageSummary], error) {
	const q = `
SELECT id, subproject_id, name, description, status, created_at, updated_at, count(*) OVER ()
FROM stages
WHERE $1::uuid IS NULL OR subproject_id = $1
ORDER BY updated_at DESC, id
LIMIT $2 OFFSET $3`

	subprojectID := nullable(filter.SubprojectID)
	rows, err := s.db.QueryContext(ctx, q, subprojectID, page.Limit, page.Offset)
	if err != nil {
		return ports.Page[ports.StageSummary]{}, mapError("list stages", err)
	}
	result, err := collect(rows, func(rows *sql.Rows, st *ports.StageSummary, total *int) error {
		return rows.Scan(&st.ID, &st.SubprojectID, &st.Name, &st.Description, &st.Status,
			&st.CreatedAt, &st.UpdatedAt, total)
	})
	if err != nil {
		return ports.Page[ports.StageSummary]{}, mapError("list stages", err)
	}
	return withTotal(ctx, s.db, result, page,
		`SELECT count(*) FROM stages WHERE $1::uuid IS NULL OR subproject_id = $1`, subprojectID)
}
