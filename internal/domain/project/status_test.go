package project

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusCreated, true},
		{StatusInProgress, true},
		{StatusCompleted, true},
		{"confirmed", false},
		{"", false},
		{"Completed", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestParseStageStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    StageStatus
		wantErr bool
	}{
		{name: "created", raw: "created", want: StageCreated},
		{name: "in progress", raw: "in_progress", want: StageInProgress},
		{name: "confirmed", raw: "confirmed", want: StageConfirmed},
		{name: "completed with spaces", raw: "  completed ", want: StageCompleted},
		{name: "unknown", raw: "done", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "wrong case", raw: "CONFIRMED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStageStatus(tt.raw)
			if tt.wantErr {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseStageStatus(%q) error = %v, want *ValidationError", tt.raw, err)
				}
				if _, ok := verr.Fields["status"]; !ok {
					t.Errorf("ParseStageStatus(%q) fields = %v, want status key", tt.raw, verr.Fields)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStageStatus(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseStageStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		completed    int
		total        int
		wantStatus   Status
		wantProgress float64
	}{
		{name: "no children", completed: 0, total: 0, wantStatus: StatusCreated, wantProgress: 0},
		{name: "none completed", completed: 0, total: 3, wantStatus: StatusInProgress, wantProgress: 0},
		{name: "some completed", completed: 1, total: 4, wantStatus: StatusInProgress, wantProgress: 0.25},
		{name: "all but one", completed: 2, total: 3, wantStatus: StatusInProgress, wantProgress: 2.0 / 3.0},
		{name: "all completed", completed: 2, total: 2, wantStatus: StatusCompleted, wantProgress: 1},
		{name: "single completed", completed: 1, total: 1, wantStatus: StatusCompleted, wantProgress: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, progress := derive(tt.completed, tt.total)
			if status != tt.wantStatus {
				t.Errorf("derive(%d, %d) status = %q, want %q", tt.completed, tt.total, status, tt.wantStatus)
			}
			if progress != tt.wantProgress {
				t.Errorf("derive(%d, %d) progress = %v, want %v", tt.completed, tt.total, progress, tt.wantProgress)
			}
		})
	}
}
