package project

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// ProjectState is the plain-data form of a Project used by persistence
// adapters. Status and Progress are informational: Restore recomputes them.
type ProjectState struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Status      Status
	Progress    float64
	Subprojects []SubprojectState
	Files       []FileAttachment
	Template    *Template
}

// SubprojectState is the plain-data form of a Subproject. ProjectID is the
// weak back reference to the owning project.
type SubprojectState struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Status      Status
	Progress    float64
	Stages      []StageState
	Files       []FileAttachment
}

// StageState is the plain-data form of a Stage.
type StageState struct {
	ID           uuid.UUID
	SubprojectID uuid.UUID
	Name         string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Status       StageStatus
	Messages     []Message
	Files        []FileAttachment
}

// Snapshot returns a deep copy of the tree. Mutating the result does not
// affect the project.
func (p *Project) Snapshot() ProjectState {
	state := ProjectState{
		ID:          p.id,
		Name:        p.name.String(),
		Description: p.description.String(),
		CreatedAt:   p.createdAt,
		UpdatedAt:   p.updatedAt,
		Status:      p.status,
		Progress:    p.progress,
		Subprojects: make([]SubprojectState, len(p.subprojects)),
		Files:       slices.Clone(p.files),
		Template:    p.template.clone(),
	}
	for i, sp := range p.subprojects {
		state.Subprojects[i] = sp.snapshot(p.id)
	}
	return state
}

func (s *Subproject) snapshot(projectID uuid.UUID) SubprojectState {
	state := SubprojectState{
		ID:          s.id,
		ProjectID:   projectID,
		Name:        s.name.String(),
		Description: s.description.String(),
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.updatedAt,
		Status:      s.status,
		Progress:    s.progress,
		Stages:      make([]StageState, len(s.stages)),
		Files:       slices.Clone(s.files),
	}
	for i, st := range s.stages {
		state.Stages[i] = StageState{
			ID:           st.id,
			SubprojectID: s.id,
			Name:         st.name.String(),
			Description:  st.description.String(),
			CreatedAt:    st.createdAt,
			UpdatedAt:    st.updatedAt,
			Status:       st.status,
			Messages:     slices.Clone(st.messages),
			Files:        slices.Clone(st.files),
		}
	}
	return state
}

// Restore rebuilds a project from persisted state. It enforces the same
// invariants as the mutation methods and derives status and progress from
// the stages, ignoring the stored values. clock is used by later mutations.
func Restore(state ProjectState, clock Clock) (*Project, error) {
	name, err := NewName(state.Name)
	if err != nil {
		return nil, fmt.Errorf("restoring project %s: %w", state.ID, err)
	}

	p := &Project{
		id:          state.ID,
		name:        name,
		description: Description(state.Description),
		createdAt:   state.CreatedAt,
		updatedAt:   state.UpdatedAt,
		files:       slices.Clone(state.Files),
		template:    state.Template.clone(),
		clock:       clock,
	}

	var errs []error
	for _, sps := range state.Subprojects {
		sp, err := restoreSubproject(sps)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if p.hasSubprojectNamed(sp.name, uuid.Nil) {
			errs = append(errs, domain.NewDomainError(domain.ErrConflict,
				"duplicate subproject name %q", sp.name))
			continue
		}
		p.subprojects = append(p.subprojects, sp)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("restoring project %s: %w", state.ID, errors.Join(errs...))
	}

	p.recompute()
	return p, nil
}

func restoreSubproject(state SubprojectState) (*Subproject, error) {
	name, err := NewName(state.Name)
	if err != nil {
		return nil, fmt.Errorf("subproject %s: %w", state.ID, err)
	}

	sp := &Subproject{
		id:          state.ID,
		name:        name,
		description: Description(state.Description),
		createdAt:   state.CreatedAt,
		updatedAt:   state.UpdatedAt,
		files:       slices.Clone(state.Files),
	}
	for _, sts := range state.Stages {
		st, err := restoreStage(sts)
		if err != nil {
			return nil, fmt.Errorf("subproject %s: %w", state.ID, err)
		}
		if sp.hasStageNamed(st.name, uuid.Nil) {
			return nil, domain.NewDomainError(domain.ErrConflict,
				"subproject %s: duplicate stage name %q", state.ID, st.name)
		}
		sp.stages = append(sp.stages, st)
	}
	sp.recompute()
	return sp, nil
}

func restoreStage(state StageState) (*Stage, error) {
	name, err := NewName(state.Name)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", state.ID, err)
	}
	if !state.Status.IsValid() {
		return nil, domain.NewDomainError(domain.ErrValidation,
			"stage %s: unknown status %q", state.ID, state.Status)
	}
	return &Stage{
		id:          state.ID,
		name:        name,
		description: Description(state.Description),
		createdAt:   state.CreatedAt,
		updatedAt:   state.UpdatedAt,
		status:      state.Status,
		messages:    slices.Clone(state.Messages),
		files:       slices.Clone(state.Files),
	}, nil
}
