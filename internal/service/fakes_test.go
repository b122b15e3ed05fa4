package service

import (
	"context"

	"github.com/quicknote/quicknote-go/internal/model"
	"github.com/quicknote/quicknote-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore for tests.
type fakeUserStore struct {
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) UpdateName(_ context.Context, id int64, name string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Name = name
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

// fakeNoteStore is an in-memory NoteStore. Listing returns a user's
// notes in reverse insertion order, matching the SQL created_at DESC,
// id DESC ordering.
type fakeNoteStore struct {
	nextID int64
	notes  []model.Note
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{}
}

func (f *fakeNoteStore) Insert(_ context.Context, note *model.Note) error {
	f.nextID++
	note.ID = f.nextID
	f.notes = append(f.notes, *note)
	return nil
}

func (f *fakeNoteStore) ListByOwner(_ context.Context, userID int64) ([]model.Note, error) {
	var out []model.Note
	for i := len(f.notes) - 1; i >= 0; i-- {
		if f.notes[i].UserID == userID {
			out = append(out, f.notes[i])
		}
	}
	return out, nil
}

func (f *fakeNoteStore) Update(_ context.Context, noteID, userID int64, title, content string) error {
	for i := range f.notes {
		if f.notes[i].ID == noteID && f.notes[i].UserID == userID {
			f.notes[i].Title = title
			f.notes[i].Content = content
		}
	}
	return nil
}

func (f *fakeNoteStore) Delete(_ context.Context, noteID, userID int64) error {
	for i := range f.notes {
		if f.notes[i].ID == noteID && f.notes[i].UserID == userID {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return nil
}
