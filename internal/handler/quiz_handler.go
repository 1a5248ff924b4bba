package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"mathboard/internal/config"
	"mathboard/internal/entity"
	"mathboard/internal/quiz"
	"mathboard/internal/repository"
	"mathboard/internal/session"
	"mathboard/internal/templates"
)

type QuizHandler struct {
	questions QuestionStore
	results   ResultStore
	store     *session.Store
	policy    config.Policy
	tmpl      *template.Template
}

func NewQuizHandler(questions QuestionStore, results ResultStore, store *session.Store, policy config.Policy) *QuizHandler {
	funcMap := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	tmpl := template.Must(template.New("results.html").
		Funcs(funcMap).
		ParseFS(templates.FS, "results.html"))

	return &QuizHandler{
		questions: questions,
		results:   results,
		store:     store,
		policy:    policy,
		tmpl:      tmpl,
	}
}

// CheckAnswers оценивает все шесть ответов, не прерываясь на
// пропущенных или нечисловых, и сохраняет одну строку результата.
func (h *QuizHandler) CheckAnswers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, username, ok := h.store.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form data", http.StatusBadRequest)
		return
	}

	set, questions, err := h.questions.GetSet(time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// набор еще не генерировался - сначала главная страница
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("Ошибка получения набора вопросов: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	expected := make([]int, len(questions))
	answers := make([]string, len(questions))
	for i, q := range questions {
		expected[i] = q.Answer
		answers[i] = r.FormValue("math_answer" + strconv.Itoa(i))
	}

	graded := quiz.Grade(expected, answers)

	if err := h.persistResult(userID, set, graded); err != nil {
		log.Printf("Ошибка сохранения результата: %v", err)
		http.Error(w, "There was an error processing your answers", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":    "Results",
		"Username": username,
		"Score":    graded.Score,
		"Total":    len(questions),
		"Feedback": graded.Feedback,
		"Missing":  graded.Missing,
		"Flashes":  h.store.Flashes(w, r),
	}

	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("Ошибка рендера шаблона: %v", err)
	}
}

func (h *QuizHandler) persistResult(userID int, set entity.QuizSet, graded quiz.GradeResult) error {
	if h.policy.OneResultPerDay {
		exists, err := h.results.HasResultSince(userID, startOfDay(time.Now()))
		if err != nil {
			return err
		}
		if exists {
			// засчитывается только первая попытка дня
			return nil
		}
	}

	_, err := h.results.Create(entity.NewResult(userID, set.ID, graded.Score))
	return err
}
