package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/ports"
	"github.com/jsamuelsen11/project-service/mocks"
)

func newSubprojectHandler(t *testing.T) (*handlers.SubprojectHandler, *mocks.MockSubprojectService) {
	t.Helper()
	svc := mocks.NewMockSubprojectService(t)
	return handlers.NewSubprojectHandler(svc), svc
}

func TestListSubprojects_FilterByProject(t *testing.T) {
	t.Parallel()
	h, svc := newSubprojectHandler(t)

	projectID := uuid.New()
	page := ports.Page[ports.SubprojectSummary]{
		Items: []ports.SubprojectSummary{{ID: uuid.New(), ProjectID: projectID, Name: "Backend"}},
		Total: 1,
	}
	svc.EXPECT().ListSubprojects(mock.Anything,
		ports.SubprojectFilter{ProjectID: projectID},
		ports.PageRequest{Limit: ports.DefaultPageLimit},
	).Return(page, nil)

	rec := httptest.NewRecorder()
	h.ListSubprojects(rec, httptest.NewRequest(http.MethodGet, "/api/v1/subprojects?project_id="+projectID.String(), nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[dto.SubprojectSummaryResponse]](t, rec)
	if len(resp.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(resp.Items))
	}
	assert.Equal(t, projectID, resp.Items[0].ProjectID)
}

func TestListSubprojects_InvalidProjectID(t *testing.T) {
	t.Parallel()
	h, _ := newSubprojectHandler(t)

	rec := httptest.NewRecorder()
	h.ListSubprojects(rec, httptest.NewRequest(http.MethodGet, "/api/v1/subprojects?project_id=nope", nil))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateSubproject(t *testing.T) {
	t.Parallel()

	p := validProject(t)
	sp := firstSubproject(p)

	tests := []struct {
		name       string
		body       dto.CreateSubprojectRequest
		setup      func(svc *mocks.MockSubprojectService)
		wantStatus int
	}{
		{
			name: "created from template",
			body: dto.CreateSubprojectRequest{ProjectID: p.ID().String(), Name: "Frontend", FromTemplate: true},
			setup: func(svc *mocks.MockSubprojectService) {
				svc.EXPECT().CreateSubproject(mock.Anything, ports.CreateSubprojectCmd{
					ProjectID:    p.ID(),
					Name:         "Frontend",
					FromTemplate: true,
				}).Return(sp, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid project id",
			body:       dto.CreateSubprojectRequest{ProjectID: "x", Name: "Frontend"},
			setup:      func(*mocks.MockSubprojectService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			body: dto.CreateSubprojectRequest{ProjectID: p.ID().String(), Name: "Backend"},
			setup: func(svc *mocks.MockSubprojectService) {
				svc.EXPECT().CreateSubproject(mock.Anything, mock.Anything).
					Return(nil, domain.NewDomainError(domain.ErrConflict, "subproject %q already exists", "Backend"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "project missing",
			body: dto.CreateSubprojectRequest{ProjectID: uuid.NewString(), Name: "Frontend"},
			setup: func(svc *mocks.MockSubprojectService) {
				svc.EXPECT().CreateSubproject(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newSubprojectHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			h.CreateSubproject(rec, httptest.NewRequest(http.MethodPost, "/api/v1/subprojects", jsonBody(t, tt.body)))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestGetSubproject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSubprojectHandler(t)

	sp := firstSubproject(validProject(t))
	svc.EXPECT().GetSubproject(mock.Anything, sp.ID()).Return(sp, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subprojects/"+sp.ID().String(), nil)
	req = withChiParams(req, map[string]string{"id": sp.ID().String()})
	h.GetSubproject(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SubprojectResponse](t, rec)
	if resp.Name != "Backend" {
		t.Errorf("Name = %q, want %q", resp.Name, "Backend")
	}
	assert.Len(t, resp.Stages, 1)
}

func TestUpdateSubproject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSubprojectHandler(t)

	sp := firstSubproject(validProject(t))
	svc.EXPECT().UpdateSubproject(mock.Anything, ports.UpdateSubprojectCmd{
		ID:          sp.ID(),
		Name:        "Platform",
		Description: ptr("shared services"),
	}).Return(sp, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/subprojects/"+sp.ID().String(),
		jsonBody(t, dto.UpdateEntityRequest{Name: "Platform", Description: ptr("shared services")}))
	req = withChiParams(req, map[string]string{"id": sp.ID().String()})
	h.UpdateSubproject(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteSubproject_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSubprojectHandler(t)

	id := uuid.New()
	svc.EXPECT().DeleteSubproject(mock.Anything, id).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/subprojects/"+id.String(), nil)
	req = withChiParams(req, map[string]string{"id": id.String()})
	h.DeleteSubproject(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}
