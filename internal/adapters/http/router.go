// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
)

// Handlers groups the inbound handlers served by the router.
type Handlers struct {
	Projects    *handlers.ProjectHandler
	Subprojects *handlers.SubprojectHandler
	Stages      *handlers.StageHandler
	Files       *handlers.FileHandler
	Health      *handlers.HealthHandler
}

// Permission codes the stage routes are guarded by.
const (
	permStagesRead     = "stages:read"
	permStagesWrite    = "stages:write"
	permStageCompleted = "stages:change_status_to_completed"
	permStageConfirmed = "stages:change_status_to_confirmed"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
//
// JSON routes run under a requestTimeout deadline when it is positive. File
// transfers are registered outside it and carry their own limits.
// Every mutating route requires an authenticated principal, and stage
// routes other than history and messages also require a permission.
func NewRouter(h Handlers, requestTimeout time.Duration, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if requestTimeout > 0 {
				r.Use(middleware.Timeout(requestTimeout))
			}

			r.Get("/projects", h.Projects.ListProjects)
			r.Get("/projects/{id}", h.Projects.GetProject)
			r.Get("/subprojects", h.Subprojects.ListSubprojects)
			r.Get("/subprojects/{id}", h.Subprojects.GetSubproject)
			r.With(middleware.RequirePermission(permStagesRead)).Get("/stages", h.Stages.ListStages)
			r.With(middleware.RequirePermission(permStagesRead)).Get("/stages/{id}", h.Stages.GetStage)
			r.Get("/stages/{id}/status-history", h.Stages.ListStageHistory)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth())

				r.Post("/projects", h.Projects.CreateProject)
				r.Patch("/projects/{id}", h.Projects.UpdateProject)
				r.Delete("/projects/{id}", h.Projects.DeleteProject)
				r.Post("/projects/{id}/template", h.Projects.MakeTemplate)

				r.Post("/subprojects", h.Subprojects.CreateSubproject)
				r.Patch("/subprojects/{id}", h.Subprojects.UpdateSubproject)
				r.Delete("/subprojects/{id}", h.Subprojects.DeleteSubproject)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(permStagesWrite))

					r.Post("/stages", h.Stages.CreateStage)
					r.Patch("/stages/{id}", h.Stages.UpdateStage)
					r.Delete("/stages/{id}", h.Stages.DeleteStage)
				})
				r.With(middleware.RequirePermission(permStageCompleted, permStageConfirmed)).
					Patch("/stages/{id}/status", h.Stages.ChangeStageStatus)
				r.Post("/stages/{id}/message", h.Stages.AddMessage)
			})
		})

		// File transfers.
		r.Get("/files/{id}", h.Files.Download)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth())

			r.Post("/projects/{id}/files", h.Files.Upload(project.OwnerProject))
			r.Post("/subprojects/{id}/files", h.Files.Upload(project.OwnerSubproject))
			r.Post("/stages/{id}/files", h.Files.Upload(project.OwnerStage))
		})
	})

	return r
}
