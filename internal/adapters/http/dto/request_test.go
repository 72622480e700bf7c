package dto_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
)

func ptr[T any](v T) *T { return &v }

type validatable interface {
	Validate() error
}

func TestRequestValidation(t *testing.T) {
	t.Parallel()

	parentID := uuid.NewString()

	tests := []struct {
		name       string
		req        validatable
		wantFields map[string]string
	}{
		{
			name: "create project valid",
			req:  &dto.CreateProjectRequest{Name: "Apollo"},
		},
		{
			name:       "create project blank name",
			req:        &dto.CreateProjectRequest{Name: "  "},
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name:       "create project blank description",
			req:        &dto.CreateProjectRequest{Name: "Apollo", Description: ptr(" ")},
			wantFields: map[string]string{"description": "must not be empty"},
		},
		{
			name:       "update project missing name",
			req:        &dto.UpdateProjectRequest{Description: ptr("moon")},
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name: "create subproject valid",
			req:  &dto.CreateSubprojectRequest{ProjectID: parentID, Name: "Backend", FromTemplate: true},
		},
		{
			name:       "create subproject missing project",
			req:        &dto.CreateSubprojectRequest{Name: "Backend"},
			wantFields: map[string]string{"project_id": "is required"},
		},
		{
			name:       "create subproject malformed project",
			req:        &dto.CreateSubprojectRequest{ProjectID: "42", Name: ""},
			wantFields: map[string]string{"project_id": "must be a valid UUID", "name": "is required"},
		},
		{
			name:       "update entity missing name",
			req:        &dto.UpdateEntityRequest{},
			wantFields: map[string]string{"name": "is required"},
		},
		{
			name: "create stage valid",
			req:  &dto.CreateStageRequest{SubprojectID: parentID, Name: "Design"},
		},
		{
			name:       "create stage malformed subproject",
			req:        &dto.CreateStageRequest{SubprojectID: "x", Name: "Design"},
			wantFields: map[string]string{"subproject_id": "must be a valid UUID"},
		},
		{
			name: "change status valid",
			req:  &dto.ChangeStageStatusRequest{Status: "confirmed", Message: ptr("looks good")},
		},
		{
			name:       "change status missing",
			req:        &dto.ChangeStageStatusRequest{},
			wantFields: map[string]string{"status": "is required"},
		},
		{
			name:       "change status unknown",
			req:        &dto.ChangeStageStatusRequest{Status: "archived"},
			wantFields: map[string]string{"status": "must be one of: created, in_progress, confirmed, completed"},
		},
		{
			name:       "add message blank",
			req:        &dto.AddMessageRequest{Message: "\n"},
			wantFields: map[string]string{"message": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantFields == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestRequestToCmd(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	subprojectID := uuid.New()
	stageID := uuid.New()
	principal := domain.Principal{UserID: uuid.New()}

	create := (&dto.CreateSubprojectRequest{
		ProjectID: projectID.String(), Name: "Backend", FromTemplate: true,
	}).ToCmd()
	assert.Equal(t, projectID, create.ProjectID)
	assert.True(t, create.FromTemplate)

	stage := (&dto.CreateStageRequest{SubprojectID: subprojectID.String(), Name: "Design"}).ToCmd()
	assert.Equal(t, subprojectID, stage.SubprojectID)

	change := (&dto.ChangeStageStatusRequest{Status: " completed ", Message: ptr("done")}).ToCmd(stageID, principal)
	assert.Equal(t, stageID, change.StageID)
	assert.Equal(t, project.StageCompleted, change.Status)
	assert.Equal(t, principal, change.Principal)
	assert.Equal(t, "done", *change.Message)

	update := (&dto.UpdateProjectRequest{Name: "Artemis"}).ToCmd(projectID)
	assert.Equal(t, projectID, update.ID)
	assert.Nil(t, update.Description)
}
