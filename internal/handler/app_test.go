package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/quicknote/quicknote-go/internal/middleware"
	"github.com/quicknote/quicknote-go/internal/model"
	"github.com/quicknote/quicknote-go/internal/repository"
	"github.com/quicknote/quicknote-go/internal/service"
	"github.com/quicknote/quicknote-go/internal/view"
)

const testSecret = "test-secret"

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

type fakeNoteStore struct {
	nextID int64
	notes  []model.Note
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

type testApp struct {
	router http.Handler
	users  *fakeUserStore
	notes  *fakeNoteStore
}

// newTestApp wires the real handlers, services, middleware, and
// templates over in-memory stores, mirroring cmd/web.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	renderer, err := view.New()
	if err != nil {
		t.Fatalf("view.New() unexpected error: %v", err)
	}

	users := newFakeUserStore()
	notes := &fakeNoteStore{}

	authHandler := NewAuthHandler(service.NewAuthService(users, testSecret), renderer)
	noteHandler := NewNoteHandler(service.NewNoteService(notes), renderer)

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
	})
	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", authHandler.HandleRegisterForm)
		r.Post("/register", authHandler.HandleRegister)
		r.Get("/login", authHandler.HandleLoginForm)
		r.Post("/login", authHandler.HandleLogin)
		r.Get("/logout", authHandler.HandleLogout)
	})
	r.Route("/notes", func(r chi.Router) {
		r.Use(middleware.RequireAuth(users, testSecret))
		r.Get("/dashboard", noteHandler.HandleDashboard)
		r.Post("/create", noteHandler.HandleCreate)
		r.Post("/update/{id}", noteHandler.HandleUpdate)
		r.Post("/delete/{id}", noteHandler.HandleDelete)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusNotFound, "error", view.ErrorData{
			Title:   "Page Not Found",
			Message: "The page you are looking for does not exist.",
			Code:    http.StatusNotFound,
		})
	})

	return &testApp{router: r, users: users, notes: notes}
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account directly and returns a logged-in session cookie.
func (a *testApp) login(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()

	rec := a.postForm("/auth/register", url.Values{
		"name": {name}, "email": {email}, "password": {password},
	}, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("register: status = %d, body: %s", rec.Code, rec.Body.String())
	}

	rec = a.postForm("/auth/login", url.Values{
		"email": {email}, "password": {password},
	}, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("login: status = %d, body: %s", rec.Code, rec.Body.String())
	}

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}
