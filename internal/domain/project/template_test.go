package project

import (
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

func TestProject_MakeTemplateFromSubproject(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	p := mustProject(t, clock)
	src := mustSubproject(t, clock, "Backend", "A", "B")
	if err := p.AddSubproject(src); err != nil {
		t.Fatalf("AddSubproject() error = %v", err)
	}
	original := src.Stages()
	if _, err := p.ChangeStageStatus(original[0].ID(), StageCompleted, mustMessage(t, clock, "done")); err != nil {
		t.Fatalf("ChangeStageStatus() error = %v", err)
	}

	tmpl, err := p.MakeTemplateFromSubproject(src.ID())
	if err != nil {
		t.Fatalf("MakeTemplateFromSubproject() error = %v", err)
	}
	if len(tmpl.Stages) != 2 || tmpl.Stages[0].Name != "A" || tmpl.Stages[1].Name != "B" {
		t.Fatalf("template stages = %+v, want [A B]", tmpl.Stages)
	}

	fresh := tmpl.Instantiate(clock)
	sp, err := NewSubproject("Frontend", nil, clock, fresh...)
	if err != nil {
		t.Fatalf("NewSubproject() error = %v", err)
	}
	if err := p.AddSubproject(sp); err != nil {
		t.Fatalf("AddSubproject() error = %v", err)
	}

	stages := sp.Stages()
	if len(stages) != 2 {
		t.Fatalf("len(Stages()) = %d, want 2", len(stages))
	}
	for i, st := range stages {
		if st.Name() != original[i].Name() {
			t.Errorf("stage[%d].Name() = %q, want %q", i, st.Name(), original[i].Name())
		}
		if st.ID() == original[i].ID() {
			t.Errorf("stage[%d] reuses original id %s", i, st.ID())
		}
		if st.Status() != StageCreated {
			t.Errorf("stage[%d].Status() = %q, want created", i, st.Status())
		}
		if len(st.Messages()) != 0 || len(st.Files()) != 0 {
			t.Errorf("stage[%d] carries messages or files", i)
		}
	}
}

func TestProject_MakeTemplate_KeepsIdentity(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	p := mustProject(t, clock)
	first := mustSubproject(t, clock, "One", "A")
	second := mustSubproject(t, clock, "Two", "X", "Y", "Z")
	for _, sp := range []*Subproject{first, second} {
		if err := p.AddSubproject(sp); err != nil {
			t.Fatalf("AddSubproject() error = %v", err)
		}
	}

	t1, err := p.MakeTemplateFromSubproject(first.ID())
	if err != nil {
		t.Fatalf("MakeTemplateFromSubproject(first) error = %v", err)
	}
	t2, err := p.MakeTemplateFromSubproject(second.ID())
	if err != nil {
		t.Fatalf("MakeTemplateFromSubproject(second) error = %v", err)
	}

	if t1.ID != t2.ID {
		t.Errorf("template id changed from %s to %s", t1.ID, t2.ID)
	}
	if got := len(p.Template().Stages); got != 3 {
		t.Errorf("len(Template().Stages) = %d, want 3", got)
	}

	_, err = p.MakeTemplateFromSubproject(uuid.New())
	assertDomainError(t, err, domain.ErrNotFound)
}

func TestProject_Template_IsCopy(t *testing.T) {
	t.Parallel()

	clock := stepClock()
	p := mustProject(t, clock)
	if p.Template() != nil {
		t.Fatal("Template() on new project is not nil")
	}
	sp := mustSubproject(t, clock, "One", "A")
	if err := p.AddSubproject(sp); err != nil {
		t.Fatalf("AddSubproject() error = %v", err)
	}
	if _, err := p.MakeTemplateFromSubproject(sp.ID()); err != nil {
		t.Fatalf("MakeTemplateFromSubproject() error = %v", err)
	}

	got := p.Template()
	got.Stages[0].Name = "changed"
	if p.Template().Stages[0].Name != "A" {
		t.Error("Template() exposes internal stages")
	}
}
