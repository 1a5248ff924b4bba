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

type LoginHandler struct {
	users UserStore
	store *session.Store
	tmpl  *template.Template
}

func NewLoginHandler(users UserStore, store *session.Store) *LoginHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "login.html"))

	return &LoginHandler{
		users: users,
		store: store,
		tmpl:  tmpl,
	}
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.LoginPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.store.AddFlash(w, r, "error", "Username does not exist.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Printf("Ошибка поиска пользователя %s: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			h.store.AddFlash(w, r, "error", "Incorrect password, try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Printf("Ошибка проверки пароля: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.store.SignIn(w, r, user.ID, user.Username); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	h.store.AddFlash(w, r, "success", "Logged in successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":   "Log in",
		"Flashes": h.store.Flashes(w, r),
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("Ошибка рендера шаблона: %v", err)
	}
}
