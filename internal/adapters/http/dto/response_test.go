package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testTime }

// buildProject returns Apollo with subproject Backend holding one completed
// stage that carries a message.
func buildProject(t *testing.T) (*project.Project, *project.Stage, project.Message) {
	t.Helper()

	p, err := project.NewProject("Apollo", ptr("to the moon"), fixedClock)
	require.NoError(t, err)

	st, err := project.NewStage("Design", nil, fixedClock)
	require.NoError(t, err)
	sp, err := project.NewSubproject("Backend", nil, fixedClock, st)
	require.NoError(t, err)
	require.NoError(t, p.AddSubproject(sp))

	msg, err := project.NewMessage(uuid.New(), "shipped", fixedClock)
	require.NoError(t, err)
	_, err = p.ChangeStageStatus(st.ID(), project.StageCompleted, &msg)
	require.NoError(t, err)

	_, err = p.MakeTemplateFromSubproject(sp.ID())
	require.NoError(t, err)

	return p, p.Stage(st.ID()), msg
}

func TestToProjectResponse(t *testing.T) {
	t.Parallel()

	p, st, msg := buildProject(t)

	got := dto.ToProjectResponse(p)

	assert.Equal(t, p.ID(), got.ID)
	assert.Equal(t, "Apollo", got.Name)
	assert.Equal(t, "to the moon", got.Description)
	assert.Equal(t, "completed", got.Status)
	assert.InDelta(t, 1.0, got.Progress, 1e-9)
	assert.Equal(t, "2026-02-12T15:04:05Z", got.CreatedAt)
	assert.Empty(t, got.Files)
	assert.NotNil(t, got.Files)

	require.Len(t, got.Subprojects, 1)
	sp := got.Subprojects[0]
	assert.Equal(t, "completed", sp.Status)
	require.Len(t, sp.Stages, 1)
	assert.Equal(t, st.ID(), sp.Stages[0].ID)
	require.Len(t, sp.Stages[0].Messages, 1)
	assert.Equal(t, msg.AuthorID, sp.Stages[0].Messages[0].AuthorID)
	assert.Equal(t, "shipped", sp.Stages[0].Messages[0].Text)

	require.NotNil(t, got.Template)
	require.Len(t, got.Template.Stages, 1)
	assert.Equal(t, "Design", got.Template.Stages[0].Name)
}

func TestToProjectResponse_EmptyListsEncodeAsArrays(t *testing.T) {
	t.Parallel()

	p, err := project.NewProject("Apollo", nil, fixedClock)
	require.NoError(t, err)

	raw, err := json.Marshal(dto.ToProjectResponse(p))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, []any{}, body["subprojects"])
	assert.Equal(t, []any{}, body["files"])
	assert.NotContains(t, body, "template")
}

func TestToStageViewResponse(t *testing.T) {
	t.Parallel()

	_, st, msg := buildProject(t)
	subprojectID := uuid.New()

	got := dto.ToStageViewResponse(&ports.StageView{
		Stage:        st,
		SubprojectID: subprojectID,
		Messages:     []ports.MessageView{{Message: msg, AuthorUsername: "ada"}},
	})

	require.NotNil(t, got.SubprojectID)
	assert.Equal(t, subprojectID, *got.SubprojectID)
	require.Len(t, got.Messages, 1)
	if got.Messages[0].AuthorUsername != "ada" {
		t.Errorf("AuthorUsername = %q, want %q", got.Messages[0].AuthorUsername, "ada")
	}
}

func TestToListResponse(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	page := ports.Page[ports.StageSummary]{
		Items: []ports.StageSummary{{ID: id, Name: "Design", Status: project.StageInProgress, UpdatedAt: testTime}},
		Total: 7,
	}

	got := dto.ToListResponse(page, ports.PageRequest{Limit: 1, Offset: 3}, dto.ToStageSummaryResponse)

	assert.Equal(t, 7, got.Total)
	assert.Equal(t, 1, got.Limit)
	assert.Equal(t, 3, got.Offset)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "in_progress", got.Items[0].Status)
	assert.Equal(t, "2026-02-12T15:04:05Z", got.Items[0].UpdatedAt)
}

func TestToStatusHistoryResponse(t *testing.T) {
	t.Parallel()

	stageID, userID := uuid.New(), uuid.New()
	h := project.NewStageStatusHistory(stageID, project.StageConfirmed, userID, fixedClock)

	got := dto.ToStatusHistoryResponse(h)

	want := dto.StatusHistoryResponse{
		ID:        h.ID,
		StageID:   stageID,
		ToStatus:  "confirmed",
		ChangedBy: userID,
		ChangedAt: "2026-02-12T15:04:05Z",
	}
	if got != want {
		t.Errorf("ToStatusHistoryResponse() = %+v, want %+v", got, want)
	}
}
