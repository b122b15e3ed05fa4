package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quicknote/quicknote-go/internal/middleware"
	"github.com/quicknote/quicknote-go/internal/service"
	"github.com/quicknote/quicknote-go/internal/view"
)

// AuthHandler handles the registration, login, and logout pages.
type AuthHandler struct {
	service *service.AuthService
	view    *view.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, renderer *view.Renderer) *AuthHandler {
	return &AuthHandler{service: svc, view: renderer}
}

// HandleRegisterForm handles GET /auth/register requests.
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, "register", view.RegisterData{})
}

// HandleRegister handles POST /auth/register requests. A new account is
// never logged in automatically; the user is sent to the login form.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		h.view.Render(w, http.StatusOK, "register", view.RegisterData{Error: "All fields are required."})
		return
	}

	err := h.service.Register(r.Context(), r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.view.Render(w, http.StatusOK, "register", view.RegisterData{Error: registerMessage(err)})
		return
	}

	http.Redirect(w, r, "/auth/login?msg=Account+created.+Please+log+in.", http.StatusFound)
}

func registerMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrFieldsRequired):
		return "All fields are required."
	case errors.Is(err, service.ErrPasswordTooShort):
		return "Password must be at least 6 characters."
	case errors.Is(err, service.ErrEmailTaken):
		return "An account with that email already exists."
	default:
		slog.Error("register failed", "error", err)
		return "Something went wrong. Try again."
	}
}

// HandleLoginForm handles GET /auth/login requests. The form carries
// over notices passed via the error and msg query parameters.
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, "login", view.LoginData{
		Error:   r.URL.Query().Get("error"),
		Success: r.URL.Query().Get("msg"),
	})
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := r.ParseForm(); err != nil {
		h.view.Render(w, http.StatusOK, "login", view.LoginData{Error: "Both email and password are required."})
		return
	}

	_, token, err := h.service.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.view.Render(w, http.StatusOK, "login", view.LoginData{Error: loginMessage(err)})
		return
	}

	middleware.SetSessionCookie(w, token)
	http.Redirect(w, r, "/notes/dashboard", http.StatusFound)
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrCredentialsRequired):
		return "Both email and password are required."
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password."
	default:
		slog.Error("login failed", "error", err)
		return "Something went wrong. Try again."
	}
}

// HandleLogout handles GET /auth/logout requests. Clearing the cookie
// needs no valid session, so logging out twice is harmless.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/auth/login?msg=You+have+been+logged+out.", http.StatusFound)
}
