package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

var errOutsideTx = errors.New("write outside a unit of work")

// projectRepo maps the project aggregate onto its tables. Inside a unit of
// work the root row is read with FOR UPDATE.
type projectRepo struct {
	q     querier
	clock project.Clock
	inTx  bool
}

const selectProject = `
SELECT id, name, description, status, progress, created_at, updated_at
FROM projects
WHERE id = $1`

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := selectProject
	if r.inTx {
		query += ` FOR UPDATE`
	}

	var st project.ProjectState
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&st.ID, &st.Name, &st.Description, &st.Status, &st.Progress, &st.CreatedAt, &st.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, mapError("load project", err)
	}

	if err := r.loadChildren(ctx, &st); err != nil {
		return nil, err
	}
	return project.Restore(st, r.clock)
}

func (r *projectRepo) GetBySubproject(ctx context.Context, subprojectID uuid.UUID) (*project.Project, error) {
	var projectID uuid.UUID
	err := r.q.QueryRowContext(ctx, `SELECT project_id FROM subprojects WHERE id = $1`, subprojectID).Scan(&projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subproject %s: %w", subprojectID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, mapError("resolve subproject", err)
	}
	return r.Get(ctx, projectID)
}

func (r *projectRepo) GetByStage(ctx context.Context, stageID uuid.UUID) (*project.Project, error) {
	const q = `
SELECT sp.project_id
FROM stages st
JOIN subprojects sp ON sp.id = st.subproject_id
WHERE st.id = $1`

	var projectID uuid.UUID
	err := r.q.QueryRowContext(ctx, q, stageID).Scan(&projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("stage %s: %w", stageID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, mapError("resolve stage", err)
	}
	return r.Get(ctx, projectID)
}

// loadChildren fills in the template, subprojects, stages, messages and
// files of st, each in stored order.
func (r *projectRepo) loadChildren(ctx context.Context, st *project.ProjectState) error {
	tmpl, err := r.loadTemplate(ctx, st.ID)
	if err != nil {
		return err
	}
	st.Template = tmpl

	subIndex, err := r.loadSubprojects(ctx, st)
	if err != nil {
		return err
	}
	stageIndex, err := r.loadStages(ctx, st, subIndex)
	if err != nil {
		return err
	}
	if err := r.loadMessages(ctx, st, stageIndex); err != nil {
		return err
	}
	return r.loadFiles(ctx, st, subIndex, stageIndex)
}

func (r *projectRepo) loadTemplate(ctx context.Context, projectID uuid.UUID) (*project.Template, error) {
	var tmpl project.Template
	err := r.q.QueryRowContext(ctx, `SELECT id FROM project_templates WHERE project_id = $1`, projectID).Scan(&tmpl.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("load template", err)
	}

	rows, err := r.q.QueryContext(ctx, `
SELECT id, name, description
FROM template_stages
WHERE template_id = $1
ORDER BY position`, tmpl.ID)
	if err != nil {
		return nil, mapError("load template stages", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ts project.StageTemplate
		if err := rows.Scan(&ts.ID, &ts.Name, &ts.Description); err != nil {
			return nil, mapError("scan template stage", err)
		}
		tmpl.Stages = append(tmpl.Stages, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("load template stages", err)
	}
	return &tmpl, nil
}

func (r *projectRepo) loadSubprojects(ctx context.Context, st *project.ProjectState) (map[uuid.UUID]int, error) {
	rows, err := r.q.QueryContext(ctx, `
SELECT id, name, description, status, progress, created_at, updated_at
FROM subprojects
WHERE project_id = $1
ORDER BY position`, st.ID)
	if err != nil {
		return nil, mapError("load subprojects", err)
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int)
	for rows.Next() {
		sp := project.SubprojectState{ProjectID: st.ID}
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Description, &sp.Status, &sp.Progress, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, mapError("scan subproject", err)
		}
		index[sp.ID] = len(st.Subprojects)
		st.Subprojects = append(st.Subprojects, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("load subprojects", err)
	}
	return index, nil
}

// stageLoc addresses a stage inside a ProjectState.
type stageLoc struct{ sub, stage int }

func (r *projectRepo) loadStages(ctx context.Context, st *project.ProjectState, subIndex map[uuid.UUID]int) (map[uuid.UUID]stageLoc, error) {
	rows, err := r.q.QueryContext(ctx, `
SELECT st.id, st.subproject_id, st.name, st.description, st.status, st.created_at, st.updated_at
FROM stages st
JOIN subprojects sp ON sp.id = st.subproject_id
WHERE sp.project_id = $1
ORDER BY sp.position, st.position`, st.ID)
	if err != nil {
		return nil, mapError("load stages", err)
	}
	defer rows.Close()

	index := make(map[uuid.UUID]stageLoc)
	for rows.Next() {
		var s project.StageState
		if err := rows.Scan(&s.ID, &s.SubprojectID, &s.Name, &s.Description, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, mapError("scan stage", err)
		}
		i, ok := subIndex[s.SubprojectID]
		if !ok {
			continue
		}
		sp := &st.Subprojects[i]
		index[s.ID] = stageLoc{sub: i, stage: len(sp.Stages)}
		sp.Stages = append(sp.Stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("load stages", err)
	}
	return index, nil
}

func (r *projectRepo) loadMessages(ctx context.Context, st *project.ProjectState, stageIndex map[uuid.UUID]stageLoc) error {
	rows, err := r.q.QueryContext(ctx, `
SELECT m.id, m.stage_id, m.author_id, m.text, m.created_at
FROM stage_messages m
JOIN stages st ON st.id = m.stage_id
JOIN subprojects sp ON sp.id = st.subproject_id
WHERE sp.project_id = $1
ORDER BY m.position`, st.ID)
	if err != nil {
		return mapError("load messages", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m       project.Message
			stageID uuid.UUID
		)
		if err := rows.Scan(&m.ID, &stageID, &m.AuthorID, &m.Text, &m.CreatedAt); err != nil {
			return mapError("scan message", err)
		}
		if loc, ok := stageIndex[stageID]; ok {
			s := &st.Subprojects[loc.sub].Stages[loc.stage]
			s.Messages = append(s.Messages, m)
		}
	}
	return mapError("load messages", rows.Err())
}

func (r *projectRepo) loadFiles(ctx context.Context, st *project.ProjectState, subIndex map[uuid.UUID]int, stageIndex map[uuid.UUID]stageLoc) error {
	rows, err := r.q.QueryContext(ctx, `
SELECT id, owner_kind, subproject_id, stage_id, filename, content_type, size, path, uploaded_at
FROM files
WHERE project_id = $1
ORDER BY position`, st.ID)
	if err != nil {
		return mapError("load files", err)
	}
	defer rows.Close()

	for rows.Next() {
		f, kind, subID, stageID, err := scanFile(rows)
		if err != nil {
			return mapError("scan file", err)
		}
		switch kind {
		case project.OwnerProject:
			st.Files = append(st.Files, f)
		case project.OwnerSubproject:
			if i, ok := subIndex[subID.UUID]; ok {
				st.Subprojects[i].Files = append(st.Subprojects[i].Files, f)
			}
		case project.OwnerStage:
			if loc, ok := stageIndex[stageID.UUID]; ok {
				s := &st.Subprojects[loc.sub].Stages[loc.stage]
				s.Files = append(s.Files, f)
			}
		}
	}
	return mapError("load files", rows.Err())
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFile(row rowScanner) (project.FileAttachment, project.OwnerKind, uuid.NullUUID, uuid.NullUUID, error) {
	var (
		f       project.FileAttachment
		kind    project.OwnerKind
		subID   uuid.NullUUID
		stageID uuid.NullUUID
	)
	err := row.Scan(&f.ID, &kind, &subID, &stageID, &f.Filename, &f.ContentType, &f.Size, &f.Path, &f.UploadedAt)
	return f, kind, subID, stageID, err
}

// Save upserts the root row and rewrites every child table for the
// project, so removed children disappear with it.
func (r *projectRepo) Save(ctx context.Context, p *project.Project) error {
	if !r.inTx {
		return fmt.Errorf("saving project %s: %w", p.ID(), errOutsideTx)
	}
	st := p.Snapshot()

	_, err := r.q.ExecContext(ctx, `
INSERT INTO projects (id, name, description, status, progress, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    status = EXCLUDED.status,
    progress = EXCLUDED.progress,
    updated_at = EXCLUDED.updated_at`,
		st.ID, st.Name, st.Description, st.Status, st.Progress, st.CreatedAt.UTC(), st.UpdatedAt.UTC())
	if err != nil {
		return mapError("save project", err)
	}

	for _, q := range []string{
		`DELETE FROM files WHERE project_id = $1`,
		`DELETE FROM subprojects WHERE project_id = $1`,
		`DELETE FROM project_templates WHERE project_id = $1`,
	} {
		if _, err := r.q.ExecContext(ctx, q, st.ID); err != nil {
			return mapError("clear project children", err)
		}
	}

	if err := r.insertTemplate(ctx, st.ID, st.Template); err != nil {
		return err
	}
	for i, sp := range st.Subprojects {
		if err := r.insertSubproject(ctx, i, sp); err != nil {
			return err
		}
	}
	return r.insertFiles(ctx, st)
}

func (r *projectRepo) insertTemplate(ctx context.Context, projectID uuid.UUID, tmpl *project.Template) error {
	if tmpl == nil {
		return nil
	}
	if _, err := r.q.ExecContext(ctx,
		`INSERT INTO project_templates (id, project_id) VALUES ($1, $2)`, tmpl.ID, projectID); err != nil {
		return mapError("save template", err)
	}
	for i, ts := range tmpl.Stages {
		if _, err := r.q.ExecContext(ctx, `
INSERT INTO template_stages (id, template_id, position, name, description)
VALUES ($1, $2, $3, $4, $5)`, ts.ID, tmpl.ID, i, ts.Name.String(), ts.Description.String()); err != nil {
			return mapError("save template stage", err)
		}
	}
	return nil
}

func (r *projectRepo) insertSubproject(ctx context.Context, position int, sp project.SubprojectState) error {
	if _, err := r.q.ExecContext(ctx, `
INSERT INTO subprojects (id, project_id, position, name, description, status, progress, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sp.ID, sp.ProjectID, position, sp.Name, sp.Description, sp.Status, sp.Progress,
		sp.CreatedAt.UTC(), sp.UpdatedAt.UTC()); err != nil {
		return mapError("save subproject", err)
	}

	for i, s := range sp.Stages {
		if _, err := r.q.ExecContext(ctx, `
INSERT INTO stages (id, subproject_id, position, name, description, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, sp.ID, i, s.Name, s.Description, s.Status, s.CreatedAt.UTC(), s.UpdatedAt.UTC()); err != nil {
			return mapError("save stage", err)
		}
		for j, m := range s.Messages {
			if _, err := r.q.ExecContext(ctx, `
INSERT INTO stage_messages (id, stage_id, position, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
				m.ID, s.ID, j, m.AuthorID, m.Text.String(), m.CreatedAt.UTC()); err != nil {
				return mapError("save message", err)
			}
		}
	}
	return nil
}

// fileRow is a file with its resolved owner columns.
type fileRow struct {
	file    project.FileAttachment
	kind    project.OwnerKind
	subID   uuid.NullUUID
	stageID uuid.NullUUID
}

func (r *projectRepo) insertFiles(ctx context.Context, st project.ProjectState) error {
	var rows []fileRow
	for _, f := range st.Files {
		rows = append(rows, fileRow{file: f, kind: project.OwnerProject})
	}
	for _, sp := range st.Subprojects {
		for _, f := range sp.Files {
			rows = append(rows, fileRow{file: f, kind: project.OwnerSubproject, subID: uuid.NullUUID{UUID: sp.ID, Valid: true}})
		}
		for _, s := range sp.Stages {
			for _, f := range s.Files {
				rows = append(rows, fileRow{
					file:    f,
					kind:    project.OwnerStage,
					subID:   uuid.NullUUID{UUID: sp.ID, Valid: true},
					stageID: uuid.NullUUID{UUID: s.ID, Valid: true},
				})
			}
		}
	}

	for i, row := range rows {
		f := row.file
		if _, err := r.q.ExecContext(ctx, `
INSERT INTO files (id, project_id, subproject_id, stage_id, owner_kind, position, filename, content_type, size, path, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			f.ID, st.ID, row.subID, row.stageID, string(row.kind), i,
			f.Filename.String(), f.ContentType, f.Size, f.Path, f.UploadedAt.UTC()); err != nil {
			return mapError("save file", err)
		}
	}
	return nil
}

// Delete removes the project; foreign keys cascade to its children.
func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.inTx {
		return fmt.Errorf("deleting project %s: %w", id, errOutsideTx)
	}
	res, err := r.q.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return mapError("delete project", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError("delete project", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *projectRepo) FindFile(ctx context.Context, fileID uuid.UUID) (project.FileAttachment, project.FileOwner, error) {
	const q = `
SELECT id, owner_kind, subproject_id, stage_id, filename, content_type, size, path, uploaded_at, project_id
FROM files
WHERE id = $1`

	var (
		f         project.FileAttachment
		kind      project.OwnerKind
		subID     uuid.NullUUID
		stageID   uuid.NullUUID
		projectID uuid.UUID
	)
	err := r.q.QueryRowContext(ctx, q, fileID).Scan(
		&f.ID, &kind, &subID, &stageID, &f.Filename, &f.ContentType, &f.Size, &f.Path, &f.UploadedAt, &projectID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return project.FileAttachment{}, project.FileOwner{}, fmt.Errorf("file %s: %w", fileID, domain.ErrNotFound)
	}
	if err != nil {
		return project.FileAttachment{}, project.FileOwner{}, mapError("find file", err)
	}

	owner := project.FileOwner{Kind: kind, ID: projectID}
	switch kind {
	case project.OwnerSubproject:
		owner.ID = subID.UUID
	case project.OwnerStage:
		owner.ID = stageID.UUID
	}
	return f, owner, nil
}

// historyRepo stores stage status history rows.
type historyRepo struct {
	q    querier
	inTx bool
}

func (r *historyRepo) Append(ctx context.Context, e project.StageStatusHistory) error {
	if !r.inTx {
		return fmt.Errorf("appending history for stage %s: %w", e.StageID, errOutsideTx)
	}
	_, err := r.q.ExecContext(ctx, `
INSERT INTO stage_status_history (id, stage_id, to_status, changed_by, changed_at)
VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.StageID, e.ToStatus, e.ChangedBy, e.ChangedAt.UTC())
	return mapError("append stage history", err)
}

func (r *historyRepo) ListByStage(ctx context.Context, stageID uuid.UUID, page ports.PageRequest) (ports.Page[project.StageStatusHistory], error) {
	const q = `
SELECT id, stage_id, to_status, changed_by, changed_at, count(*) OVER ()
FROM stage_status_history
WHERE stage_id = $1
ORDER BY changed_at DESC, id
LIMIT $2 OFFSET $3`

	rows, err := r.q.QueryContext(ctx, q, stageID, page.Limit, page.Offset)
	if err != nil {
		return ports.Page[project.StageStatusHistory]{}, mapError("list stage history", err)
	}
	result, err := collect(rows, func(rows *sql.Rows, e *project.StageStatusHistory, total *int) error {
		return rows.Scan(&e.ID, &e.StageID, &e.ToStatus, &e.ChangedBy, &e.ChangedAt, total)
	})
	if err != nil {
		return ports.Page[project.StageStatusHistory]{}, mapError("list stage history", err)
	}
	return withTotal(ctx, r.q, result, page,
		`SELECT count(*) FROM stage_status_history WHERE stage_id = $1`, stageID)
}
