package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

const defaultContentType = "application/octet-stream"

// OwnerKind names the level of the tree a file is attached to.
type OwnerKind string

const (
	OwnerProject    OwnerKind = "project"
	OwnerSubproject OwnerKind = "subproject"
	OwnerStage      OwnerKind = "stage"
)

// IsValid returns true if the kind is one of the defined constants.
func (k OwnerKind) IsValid() bool {
	switch k {
	case OwnerProject, OwnerSubproject, OwnerStage:
		return true
	default:
		return false
	}
}

// FileOwner identifies the single entity a file is attached to.
type FileOwner struct {
	Kind OwnerKind
	ID   uuid.UUID
}

// FileAttachment is immutable metadata for an object held in object storage.
// Path is the storage key and is unique across the whole system.
type FileAttachment struct {
	ID          uuid.UUID
	Filename    FileName
	ContentType string
	Size        int64
	UploadedAt  time.Time
	Path        string
}

// NewFileAttachment validates upload metadata. The path must already be
// resolved to a unique storage key by the caller.
func NewFileAttachment(filename, contentType string, size int64, path string, clock Clock) (FileAttachment, error) {
	name, err := NewFileName(filename)
	if err != nil {
		return FileAttachment{}, err
	}

	fields := make(map[string]string)
	if size < 0 {
		fields["size"] = "must not be negative"
	}
	if path == "" {
		fields["path"] = msgRequired
	}
	if len(fields) > 0 {
		return FileAttachment{}, &domain.ValidationError{Fields: fields}
	}

	if contentType == "" {
		contentType = defaultContentType
	}

	return FileAttachment{
		ID:          uuid.New(),
		Filename:    name,
		ContentType: contentType,
		Size:        size,
		UploadedAt:  clock(),
		Path:        path,
	}, nil
}
