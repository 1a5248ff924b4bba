package handler

import (
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"mathboard/internal/config"
	"mathboard/internal/entity"
	"mathboard/internal/quiz"
	"mathboard/internal/session"
	"mathboard/internal/templates"
)

type BoardHandler struct {
	comments  CommentStore
	questions QuestionStore
	gen       *quiz.Generator
	store     *session.Store
	policy    config.Policy
	tmpl      *template.Template
}

func NewBoardHandler(comments CommentStore, questions QuestionStore, gen *quiz.Generator, store *session.Store, policy config.Policy) *BoardHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "index.html"))

	return &BoardHandler{
		comments:  comments,
		questions: questions,
		gen:       gen,
		store:     store,
		policy:    policy,
		tmpl:      tmpl,
	}
}

func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if r.Method == http.MethodPost {
		h.postComment(w, r)
		return
	}

	h.boardPage(w, r)
}

// boardPage при первом запросе дня генерирует набор вопросов.
func (h *BoardHandler) boardPage(w http.ResponseWriter, r *http.Request) {
	_, username, _ := h.store.CurrentUser(r)

	_, questions, err := h.questions.EnsureSet(time.Now(), h.gen)
	if err != nil {
		log.Printf("Ошибка подготовки набора вопросов: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	comments, err := h.comments.List()
	if err != nil {
		log.Printf("Ошибка получения комментариев: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":     "Daily maths",
		"Username":  username,
		"Comments":  comments,
		"Questions": questions,
		"Flashes":   h.store.Flashes(w, r),
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("Ошибка рендера шаблона: %v", err)
	}
}

func (h *BoardHandler) postComment(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := h.store.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	if r.FormValue("comment") == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	content := strings.TrimSpace(r.FormValue("content"))
	if content == "" {
		h.store.AddFlash(w, r, "error", "Comment cannot be empty.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if len(content) > entity.MaxContentLength {
		h.store.AddFlash(w, r, "error", "Comment is too long.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if h.policy.OneCommentPerDay {
		count, err := h.comments.CountPostedSince(userID, startOfDay(time.Now()))
		if err != nil {
			log.Printf("Ошибка проверки дневного лимита: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if count > 0 {
			h.store.AddFlash(w, r, "error", "Only one comment can be made a day :(")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}

	if _, err := h.comments.Create(userID, content); err != nil {
		log.Printf("Ошибка сохранения комментария: %v", err)
		http.Error(w, "There was a problem adding your comment :(", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
