package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

func stepClock() project.Clock {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func seed(t *testing.T, s *Store, clock project.Clock, name string, stages ...string) *project.Project {
	t.Helper()

	p, err := project.NewProject(name, nil, clock)
	require.NoError(t, err)
	children := make([]*project.Stage, len(stages))
	for i, n := range stages {
		children[i], err = project.NewStage(n, nil, clock)
		require.NoError(t, err)
	}
	sp, err := project.NewSubproject(name+"-sub", nil, clock, children...)
	require.NoError(t, err)
	require.NoError(t, p.AddSubproject(sp))

	require.NoError(t, s.Do(context.Background(), func(ctx context.Context, tx ports.Tx) error {
		return tx.Projects().Save(ctx, p)
	}))
	return p
}

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	p := seed(t, s, clock, "Apollo", "Design", "Build")
	sp := p.Subprojects()[0]
	stage := sp.Stages()[1]
	ctx := context.Background()

	got, err := s.Projects().Get(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, p.Snapshot(), got.Snapshot())

	bySub, err := s.Projects().GetBySubproject(ctx, sp.ID())
	require.NoError(t, err)
	assert.Equal(t, p.ID(), bySub.ID())

	byStage, err := s.Projects().GetByStage(ctx, stage.ID())
	require.NoError(t, err)
	assert.Equal(t, p.ID(), byStage.ID())

	_, err = s.Projects().GetByStage(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Do_RollsBackOnError(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	p := seed(t, s, clock, "Apollo", "Design")
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		loaded, err := tx.Projects().Get(ctx, p.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Update("Renamed", nil))
		require.NoError(t, tx.Projects().Save(ctx, loaded))
		require.NoError(t, tx.History().Append(ctx, project.NewStageStatusHistory(uuid.New(), project.StageInProgress, uuid.New(), clock)))

		inTx, err := tx.Projects().Get(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, project.Name("Renamed"), inTx.Name(), "reads inside the unit of work see its writes")
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Projects().Get(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, project.Name("Apollo"), got.Name())
	assert.Empty(t, s.history)
}

func TestStore_SaveOutsideUnitOfWork(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	p, err := project.NewProject("Apollo", nil, clock)
	require.NoError(t, err)

	assert.Error(t, s.Projects().Save(context.Background(), p))
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	p := seed(t, s, clock, "Apollo")
	ctx := context.Background()

	del := func(id uuid.UUID) error {
		return s.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
			return tx.Projects().Delete(ctx, id)
		})
	}

	require.NoError(t, del(p.ID()))
	assert.ErrorIs(t, del(p.ID()), domain.ErrNotFound)

	_, err := s.Projects().Get(ctx, p.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListProjects_OrderAndPaging(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	a := seed(t, s, clock, "A")
	b := seed(t, s, clock, "B")
	c := seed(t, s, clock, "C")
	ctx := context.Background()

	page, err := s.ListProjects(ctx, ports.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, c.ID(), page.Items[0].ID)
	assert.Equal(t, b.ID(), page.Items[1].ID)

	page, err = s.ListProjects(ctx, ports.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, a.ID(), page.Items[0].ID)

	page, err = s.ListProjects(ctx, ports.PageRequest{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestStore_ListSubprojectsAndStages_Filter(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	a := seed(t, s, clock, "A", "x", "y")
	seed(t, s, clock, "B", "z")
	ctx := context.Background()
	page := ports.PageRequest{Limit: 100}

	subs, err := s.ListSubprojects(ctx, ports.SubprojectFilter{ProjectID: a.ID()}, page)
	require.NoError(t, err)
	require.Len(t, subs.Items, 1)
	assert.Equal(t, a.ID(), subs.Items[0].ProjectID)

	all, err := s.ListSubprojects(ctx, ports.SubprojectFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	stages, err := s.ListStages(ctx, ports.StageFilter{SubprojectID: a.Subprojects()[0].ID()}, page)
	require.NoError(t, err)
	assert.Equal(t, 2, stages.Total)
}

func TestStore_History(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	stageID := uuid.New()
	ctx := context.Background()

	for _, status := range []project.StageStatus{project.StageInProgress, project.StageCompleted} {
		require.NoError(t, s.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
			return tx.History().Append(ctx, project.NewStageStatusHistory(stageID, status, uuid.New(), clock))
		}))
	}
	require.NoError(t, s.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		return tx.History().Append(ctx, project.NewStageStatusHistory(uuid.New(), project.StageInProgress, uuid.New(), clock))
	}))

	page, err := s.History().ListByStage(ctx, stageID, ports.PageRequest{Limit: 100})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, project.StageCompleted, page.Items[0].ToStatus, "newest first")
}

func TestStore_FindFile(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	s := New(clock)
	p := seed(t, s, clock, "Apollo", "Design")
	stage := p.Subprojects()[0].Stages()[0]
	ctx := context.Background()

	f, err := project.NewFileAttachment("a.txt", "text/plain", 1, "stages/x/a.txt", clock)
	require.NoError(t, err)
	require.NoError(t, s.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		loaded, err := tx.Projects().Get(ctx, p.ID())
		if err != nil {
			return err
		}
		if err := loaded.AttachStageFile(stage.ID(), f); err != nil {
			return err
		}
		return tx.Projects().Save(ctx, loaded)
	}))

	got, owner, err := s.Projects().FindFile(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Path, got.Path)
	assert.Equal(t, project.FileOwner{Kind: project.OwnerStage, ID: stage.ID()}, owner)

	_, _, err = s.Projects().FindFile(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
