package repository

import (
	"context"
	"database/sql"

	"github.com/quicknote/quicknote-go/internal/model"
)

// NoteRepository handles note persistence operations. Every mutating
// query filters on both the note id and the owner id, so a caller can
// never touch a note that is not theirs.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Insert stores a new note and sets the generated ID on the note struct.
func (r *NoteRepository) Insert(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (user_id, title, content) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, note.UserID, note.Title, note.Content)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	note.ID = id
	return nil
}

// ListByOwner retrieves all notes belonging to a user, newest first.
// The secondary id sort keeps ordering stable when timestamps collide.
func (r *NoteRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Note, error) {
	query := `SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// Update rewrites title and content of the note matching both id and
// owner. Zero rows matched means the note does not exist or belongs to
// someone else; the two cases are indistinguishable and not an error.
func (r *NoteRepository) Update(ctx context.Context, noteID, userID int64, title, content string) error {
	query := `UPDATE notes SET title = ?, content = ? WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, title, content, noteID, userID)
	return err
}

// Delete removes the note matching both id and owner. A miss is a
// no-op, which also makes repeated deletes of the same id harmless.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID int64) error {
	query := `DELETE FROM notes WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query, noteID, userID)
	return err
}
