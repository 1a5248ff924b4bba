package handler

import (
	"log"
	"net/http"

	"mathboard/internal/session"
)

type LogoutHandler struct {
	store *session.Store
}

func NewLogoutHandler(store *session.Store) *LogoutHandler {
	return &LogoutHandler{store: store}
}

func (h *LogoutHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.SignOut(w, r); err != nil {
		log.Printf("Ошибка завершения сессии: %v", err)
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
