package project

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// MaxMessageLength is the maximum number of characters in a message.
const MaxMessageLength = 255

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// Name is a trimmed, non-empty display name for a project, subproject or stage.
type Name string

// NewName validates raw and returns it trimmed.
func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", invalid("name", msgRequired)
	}
	return Name(v), nil
}

// String implements fmt.Stringer.
func (n Name) String() string { return string(n) }

// Description is optional free text. The zero value means no description.
type Description string

// NewDescription validates an optional description. A nil raw yields the
// zero Description; a provided value must not be blank.
func NewDescription(raw *string) (Description, error) {
	if raw == nil {
		return "", nil
	}
	v := strings.TrimSpace(*raw)
	if v == "" {
		return "", invalid("description", msgMustNotEmpty)
	}
	return Description(v), nil
}

// String implements fmt.Stringer.
func (d Description) String() string { return string(d) }

// MessageText is the body of a stage message.
type MessageText string

// NewMessageText trims raw and checks it is non-empty and at most
// MaxMessageLength characters long.
func NewMessageText(raw string) (MessageText, error) {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		return "", invalid("text", msgRequired)
	case utf8.RuneCountInString(v) > MaxMessageLength:
		return "", invalid("text", "must be at most 255 characters")
	}
	return MessageText(v), nil
}

// String implements fmt.Stringer.
func (m MessageText) String() string { return string(m) }

// FileName is the base name of an uploaded file.
type FileName string

// NewFileName trims raw and rejects blank names or names carrying a path.
func NewFileName(raw string) (FileName, error) {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		return "", invalid("filename", msgRequired)
	case strings.ContainsAny(v, `/\`), v == ".", v == "..":
		return "", invalid("filename", "must not contain a path")
	}
	return FileName(v), nil
}

// String implements fmt.Stringer.
func (f FileName) String() string { return string(f) }

func invalid(field, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}
