package project

import (
	"strings"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// Status is the derived lifecycle state of a Project or Subproject.
type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// StageStatus is the lifecycle state of a Stage. Unlike Status it is set
// explicitly through Project.ChangeStageStatus.
type StageStatus string

const (
	StageCreated    StageStatus = "created"
	StageInProgress StageStatus = "in_progress"
	StageConfirmed  StageStatus = "confirmed"
	StageCompleted  StageStatus = "completed"
)

// StageStatuses lists every stage status in lifecycle order.
var StageStatuses = []StageStatus{StageCreated, StageInProgress, StageConfirmed, StageCompleted}

// IsValid returns true if the status is one of the defined constants.
func (s StageStatus) IsValid() bool {
	switch s {
	case StageCreated, StageInProgress, StageConfirmed, StageCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s StageStatus) String() string {
	return string(s)
}

// ParseStageStatus converts external input into a StageStatus.
func ParseStageStatus(raw string) (StageStatus, error) {
	s := StageStatus(strings.TrimSpace(raw))
	if !s.IsValid() {
		names := make([]string, len(StageStatuses))
		for i, st := range StageStatuses {
			names[i] = st.String()
		}
		return "", &domain.ValidationError{
			Fields: map[string]string{"status": "must be one of: " + strings.Join(names, ", ")},
		}
	}
	return s, nil
}

// derive computes status and progress from the number of completed children
// out of total. It is the single rule for both tree levels:
// no children is created with progress 0, all children completed is
// completed, anything else is in progress.
func derive(completed, total int) (Status, float64) {
	if total == 0 {
		return StatusCreated, 0
	}
	progress := float64(completed) / float64(total)
	if completed == total {
		return StatusCompleted, progress
	}
	return StatusInProgress, progress
}
