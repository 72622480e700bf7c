package project

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// Stage is a leaf of the project tree with its own status, message thread
// and files. Stages are owned by exactly one Subproject and are mutated only
// through the owning Project.
type Stage struct {
	id          uuid.UUID
	name        Name
	description Description
	createdAt   time.Time
	updatedAt   time.Time
	status      StageStatus
	messages    []Message
	files       []FileAttachment
}

// NewStage creates a stage in status created. It is not part of any tree
// until passed to NewSubproject or Project.AddStage.
func NewStage(name string, description *string, clock Clock) (*Stage, error) {
	n, d, err := newNameAndDescription(name, description)
	if err != nil {
		return nil, err
	}
	return newStage(n, d, clock()), nil
}

func newStage(name Name, description Description, now time.Time) *Stage {
	return &Stage{
		id:          uuid.New(),
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
		status:      StageCreated,
	}
}

func (s *Stage) ID() uuid.UUID            { return s.id }
func (s *Stage) Name() Name               { return s.name }
func (s *Stage) Description() Description { return s.description }
func (s *Stage) CreatedAt() time.Time     { return s.createdAt }
func (s *Stage) UpdatedAt() time.Time     { return s.updatedAt }
func (s *Stage) Status() StageStatus      { return s.status }

// Messages returns the thread in append order.
func (s *Stage) Messages() []Message { return slices.Clone(s.messages) }

// Files returns the stage's attachments.
func (s *Stage) Files() []FileAttachment { return slices.Clone(s.files) }

// TransitionOption adjusts the guards applied by Project.ChangeStageStatus.
type TransitionOption func(*transitionRules)

type transitionRules struct {
	rejectSameStatus bool
}

// RejectSameStatus makes a change to the stage's current status fail
// instead of being accepted as a no-op transition.
func RejectSameStatus() TransitionOption {
	return func(r *transitionRules) { r.rejectSameStatus = true }
}

// changeStatus applies the stage guards. A non-nil msg is appended whatever
// the target status, so a note and a status change can share one call.
func (s *Stage) changeStatus(to StageStatus, msg *Message, rules transitionRules, now time.Time) error {
	switch {
	case !to.IsValid():
		return domain.NewDomainError(domain.ErrValidation, "unknown stage status %q", to)
	case to == StageCreated:
		return domain.NewDomainError(domain.ErrValidation,
			"stage %s cannot be set back to %s", s.id, StageCreated)
	case to == StageConfirmed && msg == nil:
		return domain.NewDomainError(domain.ErrValidation,
			"a message is required to move stage %s to %s", s.id, StageConfirmed)
	case rules.rejectSameStatus && to == s.status:
		return domain.NewDomainError(domain.ErrConflict, "stage %s is already %s", s.id, to)
	}

	if msg != nil {
		s.messages = append(s.messages, *msg)
	}
	s.status = to
	s.updatedAt = now
	return nil
}

func (s *Stage) addMessage(msg Message, now time.Time) {
	s.messages = append(s.messages, msg)
	s.updatedAt = now
}

func (s *Stage) update(name Name, description *Description, now time.Time) {
	s.name = name
	if description != nil {
		s.description = *description
	}
	s.updatedAt = now
}

func (s *Stage) attach(f FileAttachment, now time.Time) {
	s.files = append(s.files, f)
	s.updatedAt = now
}

// newNameAndDescription validates both fields together so a caller sees
// every field error at once.
func newNameAndDescription(name string, description *string) (Name, Description, error) {
	fields := make(map[string]string)

	n, err := NewName(name)
	collectFields(fields, err)
	d, err := NewDescription(description)
	collectFields(fields, err)

	if len(fields) > 0 {
		return "", "", &domain.ValidationError{Fields: fields}
	}
	return n, d, nil
}

// optionalUpdate validates an update pair where a nil description means
// "keep the current one".
func optionalUpdate(name string, description *string) (Name, *Description, error) {
	n, d, err := newNameAndDescription(name, description)
	if err != nil {
		return "", nil, err
	}
	if description == nil {
		return n, nil, nil
	}
	return n, &d, nil
}
