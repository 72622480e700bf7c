package project

import (
	"time"

	"github.com/google/uuid"
)

// StageStatusHistory is an append-only audit record of a stage status
// change. StageID is a weak reference: the record outlives the stage and is
// persisted apart from the aggregate.
type StageStatusHistory struct {
	ID        uuid.UUID
	StageID   uuid.UUID
	ToStatus  StageStatus
	ChangedBy uuid.UUID
	ChangedAt time.Time
}

// NewStageStatusHistory records that changedBy moved stageID to status.
func NewStageStatusHistory(stageID uuid.UUID, status StageStatus, changedBy uuid.UUID, clock Clock) StageStatusHistory {
	return StageStatusHistory{
		ID:        uuid.New(),
		StageID:   stageID,
		ToStatus:  status,
		ChangedBy: changedBy,
		ChangedAt: clock(),
	}
}
