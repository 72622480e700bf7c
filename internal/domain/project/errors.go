package project

import (
	"errors"
	"maps"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// collectFields merges the field errors of a *domain.ValidationError into dst.
func collectFields(dst map[string]string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		maps.Copy(dst, verr.Fields)
	}
}

func subprojectNotFound(id uuid.UUID) error {
	return domain.NewDomainError(domain.ErrNotFound, "subproject %s not found in project", id)
}

func stageNotFound(id uuid.UUID) error {
	return domain.NewDomainError(domain.ErrNotFound, "stage %s not found in project", id)
}
