package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event topics.
const (
	TopicProjectCreated     = "project.created"
	TopicStageStatusChanged = "stage.status_changed"
)

// Event is a notification published after a committed change.
type Event interface {
	Topic() string
}

// ProjectCreated is published once a new project is stored.
type ProjectCreated struct {
	ProjectID   uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func (ProjectCreated) Topic() string { return TopicProjectCreated }

// StageStatusChanged is published once a stage status change is stored.
type StageStatusChanged struct {
	StageID   uuid.UUID `json:"stage_id"`
	ToStatus  string    `json:"to_status"`
	ChangedBy uuid.UUID `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func (StageStatusChanged) Topic() string { return TopicStageStatusChanged }

// EventPublisher delivers events fire-and-forget. Callers log a returned
// error; they never fail the use case on it.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
