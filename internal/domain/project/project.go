package project

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// Project is the aggregate root. Every mutation of the tree goes through a
// Project method so derived status and progress are recomputed bottom-up
// before the call returns. A Project is not safe for concurrent use.
type Project struct {
	id          uuid.UUID
	name        Name
	description Description
	createdAt   time.Time
	updatedAt   time.Time
	status      Status
	progress    float64
	subprojects []*Subproject
	files       []FileAttachment
	template    *Template
	clock       Clock
}

// NewProject creates an empty project in status created.
func NewProject(name string, description *string, clock Clock) (*Project, error) {
	n, d, err := newNameAndDescription(name, description)
	if err != nil {
		return nil, err
	}
	now := clock()
	return &Project{
		id:          uuid.New(),
		name:        n,
		description: d,
		createdAt:   now,
		updatedAt:   now,
		status:      StatusCreated,
		clock:       clock,
	}, nil
}

func (p *Project) ID() uuid.UUID            { return p.id }
func (p *Project) Name() Name               { return p.name }
func (p *Project) Description() Description { return p.description }
func (p *Project) CreatedAt() time.Time     { return p.createdAt }
func (p *Project) UpdatedAt() time.Time     { return p.updatedAt }
func (p *Project) Status() Status           { return p.status }
func (p *Project) Progress() float64        { return p.progress }

// Subprojects returns the subprojects in order. The slice is a copy; its
// elements must be treated as read-only.
func (p *Project) Subprojects() []*Subproject { return slices.Clone(p.subprojects) }

// Files returns the project-level attachments.
func (p *Project) Files() []FileAttachment { return slices.Clone(p.files) }

// Template returns a copy of the project's template, or nil if none was made.
func (p *Project) Template() *Template { return p.template.clone() }

// Update renames the project. A nil description keeps the current one.
func (p *Project) Update(name string, description *string) error {
	n, d, err := optionalUpdate(name, description)
	if err != nil {
		return err
	}
	p.name = n
	if d != nil {
		p.description = *d
	}
	p.updatedAt = p.clock()
	return nil
}

// Subproject returns the subproject with the given id, or nil.
func (p *Project) Subproject(id uuid.UUID) *Subproject {
	if i := p.subprojectIndex(id); i >= 0 {
		return p.subprojects[i]
	}
	return nil
}

// Stage returns the stage with the given id from any subproject, or nil.
func (p *Project) Stage(id uuid.UUID) *Stage {
	if sp := p.SubprojectOfStage(id); sp != nil {
		return sp.Stage(id)
	}
	return nil
}

// SubprojectOfStage returns the subproject holding the stage, or nil.
func (p *Project) SubprojectOfStage(stageID uuid.UUID) *Subproject {
	for _, sp := range p.subprojects {
		if sp.stageIndex(stageID) >= 0 {
			return sp
		}
	}
	return nil
}

// AddSubproject appends sp. Subproject names are unique within a project.
func (p *Project) AddSubproject(sp *Subproject) error {
	if p.hasSubprojectNamed(sp.name, uuid.Nil) {
		return domain.NewDomainError(domain.ErrConflict,
			"subproject named %q already exists in project %s", sp.name, p.id)
	}
	p.subprojects = append(p.subprojects, sp)
	p.touch(p.clock())
	return nil
}

// RemoveSubproject drops the subproject with its stages and files.
func (p *Project) RemoveSubproject(id uuid.UUID) error {
	i := p.subprojectIndex(id)
	if i < 0 {
		return subprojectNotFound(id)
	}
	p.subprojects = slices.Delete(p.subprojects, i, i+1)
	p.touch(p.clock())
	return nil
}

// UpdateSubproject renames a subproject. A nil description keeps the
// current one.
func (p *Project) UpdateSubproject(id uuid.UUID, name string, description *string) (*Subproject, error) {
	sp := p.Subproject(id)
	if sp == nil {
		return nil, subprojectNotFound(id)
	}
	n, d, err := optionalUpdate(name, description)
	if err != nil {
		return nil, err
	}
	if p.hasSubprojectNamed(n, id) {
		return nil, domain.NewDomainError(domain.ErrConflict,
			"subproject named %q already exists in project %s", n, p.id)
	}

	now := p.clock()
	sp.update(n, d, now)
	p.updatedAt = now
	return sp, nil
}

// AddStage appends st to the given subproject.
func (p *Project) AddStage(subprojectID uuid.UUID, st *Stage) error {
	sp := p.Subproject(subprojectID)
	if sp == nil {
		return subprojectNotFound(subprojectID)
	}
	now := p.clock()
	if err := sp.addStage(st, now); err != nil {
		return err
	}
	p.touch(now)
	return nil
}

// RemoveStage drops a stage from whichever subproject holds it.
func (p *Project) RemoveStage(stageID uuid.UUID) error {
	sp := p.SubprojectOfStage(stageID)
	if sp == nil {
		return stageNotFound(stageID)
	}
	now := p.clock()
	if err := sp.removeStage(stageID, now); err != nil {
		return err
	}
	p.touch(now)
	return nil
}

// UpdateStage renames a stage. A nil description keeps the current one.
func (p *Project) UpdateStage(stageID uuid.UUID, name string, description *string) (*Stage, error) {
	sp := p.SubprojectOfStage(stageID)
	if sp == nil {
		return nil, stageNotFound(stageID)
	}
	n, d, err := optionalUpdate(name, description)
	if err != nil {
		return nil, err
	}
	if sp.hasStageNamed(n, stageID) {
		return nil, domain.NewDomainError(domain.ErrConflict,
			"stage named %q already exists in subproject %s", n, sp.id)
	}

	now := p.clock()
	st := sp.Stage(stageID)
	st.update(n, d, now)
	sp.updatedAt = now
	p.updatedAt = now
	return st, nil
}

// ChangeStageStatus moves a stage to a new status. A non-nil msg is
// appended to the stage's thread. The owning subproject and the project
// recompute their status and progress afterwards.
func (p *Project) ChangeStageStatus(stageID uuid.UUID, to StageStatus, msg *Message, opts ...TransitionOption) (*Stage, error) {
	sp := p.SubprojectOfStage(stageID)
	if sp == nil {
		return nil, stageNotFound(stageID)
	}

	var rules transitionRules
	for _, opt := range opts {
		opt(&rules)
	}

	now := p.clock()
	st := sp.Stage(stageID)
	if err := st.changeStatus(to, msg, rules, now); err != nil {
		return nil, err
	}
	sp.touch(now)
	p.touch(now)
	return st, nil
}

// AddMessageToStage appends msg to the stage's thread without changing status.
func (p *Project) AddMessageToStage(stageID uuid.UUID, msg Message) (*Stage, error) {
	sp := p.SubprojectOfStage(stageID)
	if sp == nil {
		return nil, stageNotFound(stageID)
	}
	now := p.clock()
	st := sp.Stage(stageID)
	st.addMessage(msg, now)
	sp.updatedAt = now
	p.updatedAt = now
	return st, nil
}

// MakeTemplateFromSubproject captures the subproject's stage names and
// descriptions as the project's template. An existing template keeps its
// identity and has its stage list replaced.
func (p *Project) MakeTemplateFromSubproject(subprojectID uuid.UUID) (*Template, error) {
	sp := p.Subproject(subprojectID)
	if sp == nil {
		return nil, subprojectNotFound(subprojectID)
	}

	stages := make([]StageTemplate, len(sp.stages))
	for i, st := range sp.stages {
		stages[i] = StageTemplate{ID: uuid.New(), Name: st.name, Description: st.description}
	}

	if p.template == nil {
		p.template = &Template{ID: uuid.New()}
	}
	p.template.Stages = stages
	p.updatedAt = p.clock()
	return p.template.clone(), nil
}

// AttachFile attaches files to the project itself.
func (p *Project) AttachFile(files ...FileAttachment) {
	p.files = append(p.files, files...)
	p.updatedAt = p.clock()
}

// AttachSubprojectFile attaches files to a subproject.
func (p *Project) AttachSubprojectFile(subprojectID uuid.UUID, files ...FileAttachment) error {
	sp := p.Subproject(subprojectID)
	if sp == nil {
		return subprojectNotFound(subprojectID)
	}
	now := p.clock()
	for _, f := range files {
		sp.attach(f, now)
	}
	p.updatedAt = now
	return nil
}

// AttachStageFile attaches files to a stage.
func (p *Project) AttachStageFile(stageID uuid.UUID, files ...FileAttachment) error {
	sp := p.SubprojectOfStage(stageID)
	if sp == nil {
		return stageNotFound(stageID)
	}
	now := p.clock()
	st := sp.Stage(stageID)
	for _, f := range files {
		st.attach(f, now)
	}
	sp.updatedAt = now
	p.updatedAt = now
	return nil
}

// Attach dispatches to the attach method matching owner.Kind.
func (p *Project) Attach(owner FileOwner, files ...FileAttachment) error {
	switch owner.Kind {
	case OwnerProject:
		if owner.ID != p.id {
			return domain.NewDomainError(domain.ErrNotFound, "project %s does not match %s", owner.ID, p.id)
		}
		p.AttachFile(files...)
		return nil
	case OwnerSubproject:
		return p.AttachSubprojectFile(owner.ID, files...)
	case OwnerStage:
		return p.AttachStageFile(owner.ID, files...)
	default:
		return domain.NewDomainError(domain.ErrValidation, "unknown file owner kind %q", owner.Kind)
	}
}

// File finds an attachment anywhere in the tree.
func (p *Project) File(fileID uuid.UUID) (FileAttachment, FileOwner, bool) {
	match := func(f FileAttachment) bool { return f.ID == fileID }

	if i := slices.IndexFunc(p.files, match); i >= 0 {
		return p.files[i], FileOwner{Kind: OwnerProject, ID: p.id}, true
	}
	for _, sp := range p.subprojects {
		if i := slices.IndexFunc(sp.files, match); i >= 0 {
			return sp.files[i], FileOwner{Kind: OwnerSubproject, ID: sp.id}, true
		}
		for _, st := range sp.stages {
			if i := slices.IndexFunc(st.files, match); i >= 0 {
				return st.files[i], FileOwner{Kind: OwnerStage, ID: st.id}, true
			}
		}
	}
	return FileAttachment{}, FileOwner{}, false
}

func (p *Project) subprojectIndex(id uuid.UUID) int {
	return slices.IndexFunc(p.subprojects, func(sp *Subproject) bool { return sp.id == id })
}

func (p *Project) hasSubprojectNamed(name Name, except uuid.UUID) bool {
	return slices.ContainsFunc(p.subprojects, func(sp *Subproject) bool {
		return sp.name == name && sp.id != except
	})
}

func (p *Project) touch(now time.Time) {
	p.recompute()
	p.updatedAt = now
}

func (p *Project) recompute() {
	completed := 0
	for _, sp := range p.subprojects {
		if sp.status == StatusCompleted {
			completed++
		}
	}
	p.status, p.progress = derive(completed, len(p.subprojects))
}
