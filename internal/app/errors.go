package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// ApplicationError reports a use case that cannot proceed although every
// aggregate invariant holds. Kind is a domain sentinel for errors.Is.
type ApplicationError struct {
	Kind error
	Msg  string
}

func (e *ApplicationError) Error() string { return e.Msg }

func (e *ApplicationError) Unwrap() error { return e.Kind }

// ErrTemplateMissing is returned when a subproject is requested from a
// template that the project does not have.
var ErrTemplateMissing = &ApplicationError{
	Kind: domain.ErrConflict,
	Msg:  "project has no template",
}

// Permission codes checked by StageService.ChangeStageStatus.
const (
	PermissionCompleteStage = "stages:change_status_to_completed"
	PermissionConfirmStage  = "stages:change_status_to_confirmed"
)

// PermissionError reports that a principal lacks a required permission.
type PermissionError struct {
	UserID     uuid.UUID
	Permission string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %s lacks permission %q", e.UserID, e.Permission)
}

func (e *PermissionError) Unwrap() error { return domain.ErrForbidden }
