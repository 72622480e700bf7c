package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

func buildTree(t *testing.T) *Project {
	t.Helper()

	clock := stepClock()
	p := mustProject(t, clock)
	sp := mustSubproject(t, clock, "Backend", "Design", "Build")
	require.NoError(t, p.AddSubproject(sp))
	require.NoError(t, p.AddSubproject(mustSubproject(t, clock, "Frontend")))

	design := sp.Stages()[0]
	_, err := p.ChangeStageStatus(design.ID(), StageCompleted, mustMessage(t, clock, "shipped"))
	require.NoError(t, err)

	f, err := NewFileAttachment("spec.pdf", "application/pdf", 10, "stages/x/spec.pdf", clock)
	require.NoError(t, err)
	require.NoError(t, p.AttachStageFile(design.ID(), f))

	_, err = p.MakeTemplateFromSubproject(sp.ID())
	require.NoError(t, err)
	return p
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	t.Parallel()

	p := buildTree(t)
	state := p.Snapshot()

	restored, err := Restore(state, stepClock())
	require.NoError(t, err)

	assert.Equal(t, state, restored.Snapshot())
	assert.Equal(t, p.Status(), restored.Status())
	assert.InDelta(t, p.Progress(), restored.Progress(), 1e-9)
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	t.Parallel()

	p := buildTree(t)
	state := p.Snapshot()
	state.Subprojects[0].Stages[0].Messages[0].Text = "tampered"
	state.Subprojects[0].Stages[0].Name = "tampered"
	state.Template.Stages[0].Name = "tampered"

	sp := p.Subprojects()[0]
	st := sp.Stages()[0]
	assert.Equal(t, MessageText("shipped"), st.Messages()[0].Text)
	assert.Equal(t, Name("Design"), st.Name())
	assert.Equal(t, Name("Design"), p.Template().Stages[0].Name)
}

func TestRestore_RederivesStatus(t *testing.T) {
	t.Parallel()

	state := buildTree(t).Snapshot()
	state.Status = StatusCompleted
	state.Progress = 1
	state.Subprojects[0].Status = StatusCompleted
	state.Subprojects[0].Progress = 1

	p, err := Restore(state, stepClock())
	require.NoError(t, err)

	assert.Equal(t, StatusInProgress, p.Status())
	assert.InDelta(t, 0.0, p.Progress(), 1e-9)
	assert.Equal(t, StatusInProgress, p.Subprojects()[0].Status())
	assert.InDelta(t, 0.5, p.Subprojects()[0].Progress(), 1e-9)
}

func TestRestore_RejectsBrokenState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*ProjectState)
		want   error
	}{
		{
			name:   "blank project name",
			mutate: func(s *ProjectState) { s.Name = " " },
			want:   domain.ErrValidation,
		},
		{
			name:   "duplicate subproject names",
			mutate: func(s *ProjectState) { s.Subprojects[1].Name = s.Subprojects[0].Name },
			want:   domain.ErrConflict,
		},
		{
			name: "duplicate stage names",
			mutate: func(s *ProjectState) {
				s.Subprojects[0].Stages[1].Name = s.Subprojects[0].Stages[0].Name
			},
			want: domain.ErrConflict,
		},
		{
			name:   "unknown stage status",
			mutate: func(s *ProjectState) { s.Subprojects[0].Stages[0].Status = "archived" },
			want:   domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := buildTree(t).Snapshot()
			tt.mutate(&state)

			_, err := Restore(state, stepClock())
			if !errors.Is(err, tt.want) {
				t.Errorf("Restore() error = %v, want %v", err, tt.want)
			}
		})
	}
}
