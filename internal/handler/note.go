package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quicknote/quicknote-go/internal/middleware"
	"github.com/quicknote/quicknote-go/internal/model"
	"github.com/quicknote/quicknote-go/internal/service"
	"github.com/quicknote/quicknote-go/internal/view"
)

const dashboardPath = "/notes/dashboard"

// NoteHandler handles the dashboard and note CRUD forms. Every route
// sits behind the auth middleware, so the owner always comes from the
// request context, never from the form.
type NoteHandler struct {
	service *service.NoteService
	view    *view.Renderer
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(svc *service.NoteService, renderer *view.Renderer) *NoteHandler {
	return &NoteHandler{service: svc, view: renderer}
}

// HandleDashboard handles GET /notes/dashboard requests.
func (h *NoteHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}

	notes, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		// A failing list is treated as a session-integrity problem,
		// not a user-facing 500.
		slog.Error("dashboard list failed", "user_id", user.ID, "error", err)
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}

	h.view.Render(w, http.StatusOK, "dashboard", view.DashboardData{
		UserName: user.Name,
		Notes:    notes,
	})
}

// HandleCreate handles POST /notes/create requests. On success the
// response is a redirect so a refresh never re-submits the form.
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, dashboardPath, http.StatusFound)
		return
	}

	err := h.service.Create(r.Context(), user.ID, r.PostFormValue("title"), r.PostFormValue("content"))
	if err == nil {
		http.Redirect(w, r, dashboardPath, http.StatusFound)
		return
	}

	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		// Re-render the dashboard with the message so the user keeps
		// a complete page, note list included.
		notes, listErr := h.service.List(r.Context(), user.ID)
		if listErr != nil {
			slog.Error("dashboard list failed", "user_id", user.ID, "error", listErr)
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		h.view.Render(w, http.StatusOK, "dashboard", view.DashboardData{
			UserName: user.Name,
			Notes:    notes,
			Error:    "Both title and content are required.",
		})
		return
	}

	slog.Error("note create failed", "user_id", user.ID, "error", err)
	http.Redirect(w, r, dashboardPath, http.StatusFound)
}

// HandleUpdate handles POST /notes/update/{id} requests. A miss —
// malformed id, empty fields, or a note the caller does not own —
// redirects to the dashboard exactly like a success does.
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, dashboardPath, http.StatusFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, dashboardPath, http.StatusFound)
		return
	}

	err = h.service.Update(r.Context(), user.ID, noteID, r.PostFormValue("title"), r.PostFormValue("content"))
	if err != nil {
		var vErr *model.ValidationError
		if !errors.As(err, &vErr) {
			slog.Error("note update failed", "user_id", user.ID, "note_id", noteID, "error", err)
		}
	}

	http.Redirect(w, r, dashboardPath, http.StatusFound)
}

// HandleDelete handles POST /notes/delete/{id} requests. Deleting an
// id that is gone, or was never yours, is a silent no-op.
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, dashboardPath, http.StatusFound)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, noteID); err != nil {
		slog.Error("note delete failed", "user_id", user.ID, "note_id", noteID, "error", err)
	}

	http.Redirect(w, r, dashboardPath, http.StatusFound)
}
