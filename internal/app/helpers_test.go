package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	objectmemory "github.com/jsamuelsen11/project-service/internal/adapters/objectstore/memory"
	"github.com/jsamuelsen11/project-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func ptr[T any](v T) *T { return &v }

func stepClock() project.Clock {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

// fixture wires the services against in-memory adapters.
type fixture struct {
	store   *memory.Store
	objects *objectmemory.Store
	clock   project.Clock
}

func newFixture() *fixture {
	clock := stepClock()
	return &fixture{
		store:   memory.New(clock),
		objects: objectmemory.New(),
		clock:   clock,
	}
}

func (f *fixture) storage() Storage {
	return Storage{
		UnitOfWork: f.store,
		Projects:   f.store.Projects(),
		Queries:    f.store,
		History:    f.store.History(),
	}
}

func (f *fixture) projects(events ports.EventPublisher) *ProjectService {
	return NewProjectService(f.storage(), events, discardLogger(), WithClock(f.clock))
}

func (f *fixture) subprojects() *SubprojectService {
	return NewSubprojectService(f.storage(), discardLogger(), WithClock(f.clock))
}

func (f *fixture) stages(users ports.UserDirectory, events ports.EventPublisher, opts ...Option) *StageService {
	return NewStageService(f.storage(), users, events, discardLogger(), append([]Option{WithClock(f.clock)}, opts...)...)
}

func (f *fixture) files() *FileService {
	return NewFileService(f.storage(), f.objects, discardLogger(), WithClock(f.clock))
}

// seedProject stores a project with one subproject holding the named stages.
func (f *fixture) seedProject(t *testing.T, stages ...string) (*project.Project, *project.Subproject) {
	t.Helper()
	ctx := context.Background()

	p, err := f.projects(nil).CreateProject(ctx, ports.CreateProjectCmd{Name: "Apollo"})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	sp, err := f.subprojects().CreateSubproject(ctx, ports.CreateSubprojectCmd{ProjectID: p.ID(), Name: "Backend"})
	if err != nil {
		t.Fatalf("CreateSubproject() error = %v", err)
	}
	for _, name := range stages {
		if _, err := f.stages(nil, nil).CreateStage(ctx, ports.CreateStageCmd{SubprojectID: sp.ID(), Name: name}); err != nil {
			t.Fatalf("CreateStage(%q) error = %v", name, err)
		}
	}

	loaded, err := f.store.Projects().Get(ctx, p.ID())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	return loaded, loaded.Subproject(sp.ID())
}

func stageIDs(sp *project.Subproject) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(sp.Stages()))
	for _, st := range sp.Stages() {
		ids = append(ids, st.ID())
	}
	return ids
}
