package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"mathboard/internal/config"
	"mathboard/internal/repository"
	"mathboard/internal/session"
	"mathboard/internal/templates"
)

type CommentHandler struct {
	comments CommentStore
	store    *session.Store
	policy   config.Policy
	tmpl     *template.Template
}

func NewCommentHandler(comments CommentStore, store *session.Store, policy config.Policy) *CommentHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "username.html"))

	return &CommentHandler{
		comments: comments,
		store:    store,
		policy:   policy,
		tmpl:     tmpl,
	}
}

// Like увеличивает счетчик лайков на единицу.
// Требование авторизации решает политика (см. публичные пути в main).
func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/like/")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.comments.IncrementLikes(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Ошибка лайка комментария %d: %v", id, err)
		http.Error(w, "There was a problem liking the chosen comment", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete удаляет комментарий; по умолчанию только свой.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := h.store.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := pathID(r, "/delete/")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	comment, err := h.comments.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Ошибка получения комментария %d: %v", id, err)
		http.Error(w, "There was a problem deleting the chosen comment", http.StatusInternalServerError)
		return
	}

	if h.policy.DeleteOwnerOnly && comment.UserID != userID {
		http.Error(w, "You can only delete your own comments", http.StatusForbidden)
		return
	}

	if err := h.comments.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Ошибка удаления комментария %d: %v", id, err)
		http.Error(w, "There was a problem deleting the chosen comment", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UsernamePage показывает автора комментария.
func (h *CommentHandler) UsernamePage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/username/")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	comment, err := h.comments.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("Ошибка получения комментария %d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":    "Author",
		"Username": comment.Username,
		"Flashes":  h.store.Flashes(w, r),
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("Ошибка рендера шаблона: %v", err)
	}
}

func pathID(r *http.Request, prefix string) (int, error) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	return strconv.Atoi(raw)
}
