package service

import (
	"context"

	"github.com/quicknote/quicknote-go/internal/model"
)

// NoteStore is the persistence surface NoteService depends on.
// *repository.NoteRepository satisfies it.
type NoteStore interface {
	Insert(ctx context.Context, note *model.Note) error
	ListByOwner(ctx context.Context, userID int64) ([]model.Note, error)
	Update(ctx context.Context, noteID, userID int64, title, content string) error
	Delete(ctx context.Context, noteID, userID int64) error
}

// NoteService handles owner-scoped note operations. The owner id on
// every call comes from the authenticated session, never from the
// request body, and the store's dual id+owner filter is the only
// authorization mechanism for mutations.
type NoteService struct {
	notes NoteStore
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

// List returns all of a user's notes, newest first.
func (s *NoteService) List(ctx context.Context, userID int64) ([]model.Note, error) {
	return s.notes.ListByOwner(ctx, userID)
}

// Create validates and stores a new note owned by userID.
func (s *NoteService) Create(ctx context.Context, userID int64, title, content string) error {
	note, err := model.NewNote(userID, title, content)
	if err != nil {
		return err
	}

	return s.notes.Insert(ctx, note)
}

// Update rewrites a note the caller owns. If the id does not match one
// of the caller's notes nothing happens and no error is returned: the
// caller cannot tell "not found" from "not yours".
func (s *NoteService) Update(ctx context.Context, userID, noteID int64, title, content string) error {
	note, err := model.NewNote(userID, title, content)
	if err != nil {
		return err
	}

	return s.notes.Update(ctx, noteID, userID, note.Title, note.Content)
}

// Delete removes a note the caller owns. Misses, including repeated
// deletes of the same id, are silent no-ops.
func (s *NoteService) Delete(ctx context.Context, userID, noteID int64) error {
	return s.notes.Delete(ctx, noteID, userID)
}
