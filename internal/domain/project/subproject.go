package project

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// Subproject owns an ordered list of uniquely named stages and derives its
// status and progress from them.
type Subproject struct {
	id          uuid.UUID
	name        Name
	description Description
	createdAt   time.Time
	updatedAt   time.Time
	status      Status
	progress    float64
	stages      []*Stage
	files       []FileAttachment
}

// NewSubproject creates a subproject holding the given stages in order.
// Stage names must be unique.
func NewSubproject(name string, description *string, clock Clock, stages ...*Stage) (*Subproject, error) {
	n, d, err := newNameAndDescription(name, description)
	if err != nil {
		return nil, err
	}

	now := clock()
	sp := &Subproject{
		id:          uuid.New(),
		name:        n,
		description: d,
		createdAt:   now,
		updatedAt:   now,
	}
	for _, st := range stages {
		if err := sp.addStage(st, now); err != nil {
			return nil, err
		}
	}
	sp.recompute()
	return sp, nil
}

func (s *Subproject) ID() uuid.UUID            { return s.id }
func (s *Subproject) Name() Name               { return s.name }
func (s *Subproject) Description() Description { return s.description }
func (s *Subproject) CreatedAt() time.Time     { return s.createdAt }
func (s *Subproject) UpdatedAt() time.Time     { return s.updatedAt }
func (s *Subproject) Status() Status           { return s.status }
func (s *Subproject) Progress() float64        { return s.progress }

// Stages returns the stages in order. The slice is a copy; the stages are
// not and must be treated as read-only.
func (s *Subproject) Stages() []*Stage { return slices.Clone(s.stages) }

// Files returns the subproject's attachments.
func (s *Subproject) Files() []FileAttachment { return slices.Clone(s.files) }

// Stage returns the stage with the given id, or nil.
func (s *Subproject) Stage(id uuid.UUID) *Stage {
	if i := s.stageIndex(id); i >= 0 {
		return s.stages[i]
	}
	return nil
}

func (s *Subproject) stageIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.stages, func(st *Stage) bool { return st.id == id })
}

func (s *Subproject) hasStageNamed(name Name, except uuid.UUID) bool {
	return slices.ContainsFunc(s.stages, func(st *Stage) bool {
		return st.name == name && st.id != except
	})
}

func (s *Subproject) addStage(st *Stage, now time.Time) error {
	if s.hasStageNamed(st.name, uuid.Nil) {
		return domain.NewDomainError(domain.ErrConflict,
			"stage named %q already exists in subproject %s", st.name, s.id)
	}
	s.stages = append(s.stages, st)
	s.touch(now)
	return nil
}

func (s *Subproject) removeStage(id uuid.UUID, now time.Time) error {
	i := s.stageIndex(id)
	if i < 0 {
		return stageNotFound(id)
	}
	s.stages = slices.Delete(s.stages, i, i+1)
	s.touch(now)
	return nil
}

func (s *Subproject) update(name Name, description *Description, now time.Time) {
	s.name = name
	if description != nil {
		s.description = *description
	}
	s.updatedAt = now
}

func (s *Subproject) attach(f FileAttachment, now time.Time) {
	s.files = append(s.files, f)
	s.updatedAt = now
}

// touch recomputes derived state after a change to the stage list or to a
// stage's status.
func (s *Subproject) touch(now time.Time) {
	s.recompute()
	s.updatedAt = now
}

func (s *Subproject) recompute() {
	completed := 0
	for _, st := range s.stages {
		if st.status == StageCompleted {
			completed++
		}
	}
	s.status, s.progress = derive(completed, len(s.stages))
}
