package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLen is the longest title the note form accepts.
const MaxTitleLen = 200

// Note represents a single note owned by exactly one user. UserID is
// set at creation and never reassigned through any operation.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote trims and validates the user-supplied fields before any
// store write. Validation lives here rather than in the schema so a
// failure surfaces as a structured error instead of a driver error.
func NewNote(ownerID int64, title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if ownerID == 0 {
		return nil, &ValidationError{Field: "userId", Reason: "note must belong to a user"}
	}
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "title is required"}
	}
	// Counted in characters, not bytes: a multibyte title is fine as
	// long as it stays within 200 runes.
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return nil, &ValidationError{Field: "title", Reason: "title can be at most 200 characters"}
	}
	if content == "" {
		return nil, &ValidationError{Field: "content", Reason: "content is required"}
	}

	return &Note{
		UserID:  ownerID,
		Title:   title,
		Content: content,
	}, nil
}
