// Package memory implements the persistence ports in process memory. It
// backs the "memory" database driver and the application tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.UnitOfWork     = (*Store)(nil)
	_ ports.ProjectQueries = (*Store)(nil)
)

// Store holds project snapshots and the stage history. Writers are
// serialized by a store-wide lock held for the whole unit of work.
type Store struct {
	writeMu sync.Mutex

	mu       sync.RWMutex
	projects map[uuid.UUID]project.ProjectState
	history  []project.StageStatusHistory
	clock    project.Clock
}

// New creates an empty store. clock is handed to restored aggregates.
func New(clock project.Clock) *Store {
	return &Store{
		projects: make(map[uuid.UUID]project.ProjectState),
		clock:    clock,
	}
}

// Projects returns a repository reading committed state.
func (s *Store) Projects() ports.ProjectRepository { return &projectRepo{store: s} }

// History returns a history repository reading committed state.
func (s *Store) History() ports.StageHistoryRepository { return &historyRepo{store: s} }

// Do runs fn against a private overlay and applies it only when fn succeeds.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, tx ports.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	t := &memTx{
		store:   s,
		saved:   make(map[uuid.UUID]project.ProjectState),
		deleted: make(map[uuid.UUID]bool),
	}
	if err := fn(ctx, t); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range t.deleted {
		delete(s.projects, id)
	}
	for id, st := range t.saved {
		s.projects[id] = st
	}
	s.history = append(s.history, t.appended...)
	return nil
}

// HealthCheck always succeeds; it lets the memory driver take part in
// readiness checks like the real database.
func (s *Store) HealthCheck(context.Context) error { return nil }

// Name identifies the store in readiness output.
func (s *Store) Name() string { return "database" }

// states returns every visible project, applying t's overlay when set.
func (s *Store) states(t *memTx) []project.ProjectState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]project.ProjectState, 0, len(s.projects))
	for id, st := range s.projects {
		if t != nil {
			if t.deleted[id] {
				continue
			}
			if _, ok := t.saved[id]; ok {
				continue
			}
		}
		out = append(out, st)
	}
	if t != nil {
		for _, st := range t.saved {
			out = append(out, st)
		}
	}
	return out
}

func (s *Store) find(t *memTx, match func(project.ProjectState) bool) (project.ProjectState, bool) {
	for _, st := range s.states(t) {
		if match(st) {
			return st, true
		}
	}
	return project.ProjectState{}, false
}

type memTx struct {
	store    *Store
	saved    map[uuid.UUID]project.ProjectState
	deleted  map[uuid.UUID]bool
	appended []project.StageStatusHistory
}

func (t *memTx) Projects() ports.ProjectRepository {
	return &projectRepo{store: t.store, tx: t}
}

func (t *memTx) History() ports.StageHistoryRepository {
	return &historyRepo{store: t.store, tx: t}
}

type projectRepo struct {
	store *Store
	tx    *memTx
}

func (r *projectRepo) load(match func(project.ProjectState) bool, what string, id uuid.UUID) (*project.Project, error) {
	st, ok := r.store.find(r.tx, match)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)
	}
	return project.Restore(st, r.store.clock)
}

func (r *projectRepo) Get(_ context.Context, id uuid.UUID) (*project.Project, error) {
	return r.load(func(st project.ProjectState) bool { return st.ID == id }, "project", id)
}

func (r *projectRepo) GetBySubproject(_ context.Context, subprojectID uuid.UUID) (*project.Project, error) {
	return r.load(func(st project.ProjectState) bool {
		return slices.ContainsFunc(st.Subprojects, func(sp project.SubprojectState) bool {
			return sp.ID == subprojectID
		})
	}, "subproject", subprojectID)
}

func (r *projectRepo) GetByStage(_ context.Context, stageID uuid.UUID) (*project.Project, error) {
	return r.load(func(st project.ProjectState) bool {
		for _, sp := range st.Subprojects {
			if slices.ContainsFunc(sp.Stages, func(s project.StageState) bool { return s.ID == stageID }) {
				return true
			}
		}
		return false
	}, "stage", stageID)
}

func (r *projectRepo) Save(_ context.Context, p *project.Project) error {
	if r.tx == nil {
		return fmt.Errorf("saving project %s outside a unit of work: %w", p.ID(), domain.ErrConflict)
	}
	r.tx.saved[p.ID()] = p.Snapshot()
	delete(r.tx.deleted, p.ID())
	return nil
}

func (r *projectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.tx == nil {
		return fmt.Errorf("deleting project %s outside a unit of work: %w", id, domain.ErrConflict)
	}
	if _, ok := r.store.find(r.tx, func(st project.ProjectState) bool { return st.ID == id }); !ok {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(r.tx.saved, id)
	r.tx.deleted[id] = true
	return nil
}

func (r *projectRepo) FindFile(ctx context.Context, fileID uuid.UUID) (project.FileAttachment, project.FileOwner, error) {
	for _, st := range r.store.states(r.tx) {
		p, err := project.Restore(st, r.store.clock)
		if err != nil {
			return project.FileAttachment{}, project.FileOwner{}, err
		}
		if f, owner, ok := p.File(fileID); ok {
			return f, owner, nil
		}
	}
	return project.FileAttachment{}, project.FileOwner{}, fmt.Errorf("file %s: %w", fileID, domain.ErrNotFound)
}

type historyRepo struct {
	store *Store
	tx    *memTx
}

func (r *historyRepo) Append(_ context.Context, entry project.StageStatusHistory) error {
	if r.tx == nil {
		return fmt.Errorf("appending history outside a unit of work: %w", domain.ErrConflict)
	}
	r.tx.appended = append(r.tx.appended, entry)
	return nil
}

func (r *historyRepo) ListByStage(_ context.Context, stageID uuid.UUID, page ports.PageRequest) (ports.Page[project.StageStatusHistory], error) {
	r.store.mu.RLock()
	entries := slices.Clone(r.store.history)
	r.store.mu.RUnlock()
	if r.tx != nil {
		entries = append(entries, r.tx.appended...)
	}

	entries = slices.DeleteFunc(entries, func(h project.StageStatusHistory) bool { return h.StageID != stageID })
	slices.SortStableFunc(entries, func(a, b project.StageStatusHistory) int {
		return b.ChangedAt.Compare(a.ChangedAt)
	})
	return paginate(entries, page), nil
}

// ListProjects implements ports.ProjectQueries.
func (s *Store) ListProjects(_ context.Context, page ports.PageRequest) (ports.Page[ports.ProjectSummary], error) {
	states := s.states(nil)
	rows := make([]ports.ProjectSummary, len(states))
	for i, st := range states {
		rows[i] = ports.ProjectSummary{
			ID:          st.ID,
			Name:        st.Name,
			Description: st.Description,
			Status:      st.Status,
			Progress:    st.Progress,
			CreatedAt:   st.CreatedAt,
			UpdatedAt:   st.UpdatedAt,
		}
	}
	sortByUpdated(rows, func(r ports.ProjectSummary) (int64, uuid.UUID) { return r.UpdatedAt.UnixNano(), r.ID })
	return paginate(rows, page), nil
}

// ListSubprojects implements ports.ProjectQueries.
func (s *Store) ListSubprojects(_ context.Context, filter ports.SubprojectFilter, page ports.PageRequest) (ports.Page[ports.SubprojectSummary], error) {
	var rows []ports.SubprojectSummary
	for _, st := range s.states(nil) {
		if filter.ProjectID != uuid.Nil && st.ID != filter.ProjectID {
			continue
		}
		for _, sp := range st.Subprojects {
			rows = append(rows, ports.SubprojectSummary{
				ID:          sp.ID,
				ProjectID:   st.ID,
				Name:        sp.Name,
				Description: sp.Description,
				Status:      sp.Status,
				Progress:    sp.Progress,
				CreatedAt:   sp.CreatedAt,
				UpdatedAt:   sp.UpdatedAt,
			})
		}
	}
	sortByUpdated(rows, func(r ports.SubprojectSummary) (int64, uuid.UUID) { return r.UpdatedAt.UnixNano(), r.ID })
	return paginate(rows, page), nil
}

// ListStages implements ports.ProjectQueries.
func (s *Store) ListStages(_ context.Context, filter ports.StageFilter, page ports.PageRequest) (ports.Page[ports.StageSummary], error) {
	var rows []ports.StageSummary
	for _, st := range s.states(nil) {
		for _, sp := range st.Subprojects {
			if filter.SubprojectID != uuid.Nil && sp.ID != filter.SubprojectID {
				continue
			}
			for _, stage := range sp.Stages {
				rows = append(rows, ports.StageSummary{
					ID:           stage.ID,
					SubprojectID: sp.ID,
					Name:         stage.Name,
					Description:  stage.Description,
					Status:       stage.Status,
					CreatedAt:    stage.CreatedAt,
					UpdatedAt:    stage.UpdatedAt,
				})
			}
		}
	}
	sortByUpdated(rows, func(r ports.StageSummary) (int64, uuid.UUID) { return r.UpdatedAt.UnixNano(), r.ID })
	return paginate(rows, page), nil
}

// sortByUpdated orders rows newest first, breaking ties by id.
func sortByUpdated[T any](rows []T, key func(T) (int64, uuid.UUID)) {
	slices.SortFunc(rows, func(a, b T) int {
		ta, ia := key(a)
		tb, ib := key(b)
		if c := cmp.Compare(tb, ta); c != 0 {
			return c
		}
		return cmp.Compare(ia.String(), ib.String())
	})
}

func paginate[T any](rows []T, page ports.PageRequest) ports.Page[T] {
	total := len(rows)
	start := min(page.Offset, total)
	end := total
	if page.Limit > 0 {
		end = min(start+page.Limit, total)
	}
	items := make([]T, end-start)
	copy(items, rows[start:end])
	return ports.Page[T]{Items: items, Total: total}
}
