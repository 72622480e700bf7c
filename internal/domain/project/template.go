package project

import (
	"slices"

	"github.com/google/uuid"
)

// StageTemplate is the reusable part of a stage: its name and description.
type StageTemplate struct {
	ID          uuid.UUID
	Name        Name
	Description Description
}

// Template is a snapshot of a subproject's stage list that can be replayed
// into new subprojects. A project holds at most one.
type Template struct {
	ID     uuid.UUID
	Stages []StageTemplate
}

// Instantiate returns fresh stages for every template entry, in order. Each
// stage gets a new identity, status created and empty messages and files.
func (t *Template) Instantiate(clock Clock) []*Stage {
	stages := make([]*Stage, len(t.Stages))
	for i, st := range t.Stages {
		stages[i] = newStage(st.Name, st.Description, clock())
	}
	return stages
}

func (t *Template) clone() *Template {
	if t == nil {
		return nil
	}
	return &Template{ID: t.ID, Stages: slices.Clone(t.Stages)}
}
