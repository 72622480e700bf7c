package project

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// stepClock returns a clock that advances one second per call.
func stepClock() Clock {
	now := baseTime
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func ptr[T any](v T) *T { return &v }

func mustStage(t *testing.T, clock Clock, name string) *Stage {
	t.Helper()
	st, err := NewStage(name, nil, clock)
	if err != nil {
		t.Fatalf("NewStage(%q) error = %v", name, err)
	}
	return st
}

func mustSubproject(t *testing.T, clock Clock, name string, stages ...string) *Subproject {
	t.Helper()
	children := make([]*Stage, len(stages))
	for i, n := range stages {
		children[i] = mustStage(t, clock, n)
	}
	sp, err := NewSubproject(name, nil, clock, children...)
	if err != nil {
		t.Fatalf("NewSubproject(%q) error = %v", name, err)
	}
	return sp
}

func mustProject(t *testing.T, clock Clock) *Project {
	t.Helper()
	p, err := NewProject("Apollo", ptr("moon program"), clock)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	return p
}

func mustMessage(t *testing.T, clock Clock, text string) *Message {
	t.Helper()
	msg, err := NewMessage(uuid.New(), text, clock)
	if err != nil {
		t.Fatalf("NewMessage(%q) error = %v", text, err)
	}
	return &msg
}
