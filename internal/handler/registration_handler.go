package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"mathboard/internal/auth"
	"mathboard/internal/repository"
	"mathboard/internal/session"
	"mathboard/internal/templates"
)

type RegistrationHandler struct {
	users UserStore
	store *session.Store
	tmpl  *template.Template
}

func NewRegistrationHandler(users UserStore, store *session.Store) *RegistrationHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "signup.html"))

	return &RegistrationHandler{
		users: users,
		store: store,
		tmpl:  tmpl,
	}
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.RegisterPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	passwordReentered := r.FormValue("passwordReentered")
	isPublic := r.FormValue("public") == "checked"

	if err := auth.ValidateRegistration(username, password, passwordReentered); err != nil {
		h.store.AddFlash(w, r, "error", registrationMessage(err))
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("Ошибка хэширования пароля: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user, err := h.users.Create(username, hash, isPublic)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			h.store.AddFlash(w, r, "error", "Username already exists.")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
			return
		}
		log.Printf("Ошибка создания пользователя: %v", err)
		http.Error(w, "There was a problem adding your account :(", http.StatusInternalServerError)
		return
	}

	if err := h.store.SignIn(w, r, user.ID, user.Username); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	h.store.AddFlash(w, r, "success", "Account created!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *RegistrationHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":   "Sign up",
		"Flashes": h.store.Flashes(w, r),
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("Ошибка рендера шаблона: %v", err)
	}
}

func registrationMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, auth.ErrPasswordTooShort):
		return "Password must be at least 8 characters."
	case errors.Is(err, auth.ErrUsernameRequired):
		return "Username is required."
	case errors.Is(err, auth.ErrUsernameTooLong):
		return "Username must be at most 30 characters."
	default:
		return "Invalid registration data."
	}
}
