package handler

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"mathboard/internal/entity"
	"mathboard/internal/quiz"
	"mathboard/internal/repository"
)

// Фейковые хранилища в памяти для httptest-прогонов.

type fakeUserStore struct {
	nextID     int
	byUsername map[string]entity.User
	byID       map[int]entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byUsername: make(map[string]entity.User),
		byID:       make(map[int]entity.User),
	}
}

func (s *fakeUserStore) Create(username, passwordHash string, publicAccount bool) (entity.User, error) {
	if _, exists := s.byUsername[username]; exists {
		return entity.User{}, repository.ErrDuplicateUsername
	}

	s.nextID++
	u := entity.User{
		ID:            s.nextID,
		Username:      username,
		PasswordHash:  passwordHash,
		PublicAccount: publicAccount,
		CreatedAt:     time.Now(),
	}
	s.byUsername[username] = u
	s.byID[u.ID] = u
	return u, nil
}

func (s *fakeUserStore) GetByUsername(username string) (entity.User, error) {
	u, exists := s.byUsername[username]
	if !exists {
		return entity.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetByID(id int) (entity.User, error) {
	u, exists := s.byID[id]
	if !exists {
		return entity.User{}, repository.ErrNotFound
	}
	return u, nil
}

type fakeCommentStore struct {
	users    *fakeUserStore
	nextID   int
	comments map[int]entity.Comment
}

func newFakeCommentStore(users *fakeUserStore) *fakeCommentStore {
	return &fakeCommentStore{
		users:    users,
		comments: make(map[int]entity.Comment),
	}
}

func (s *fakeCommentStore) Create(userID int, content string) (entity.Comment, error) {
	s.nextID++
	c := entity.Comment{
		ID:        s.nextID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().Add(time.Duration(s.nextID) * time.Millisecond),
	}
	if u, err := s.users.GetByID(userID); err == nil {
		c.Username = u.Username
	}
	s.comments[c.ID] = c
	return c, nil
}

func (s *fakeCommentStore) List() ([]entity.Comment, error) {
	var list []entity.Comment
	for _, c := range s.comments {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (s *fakeCommentStore) GetByID(id int) (entity.Comment, error) {
	c, exists := s.comments[id]
	if !exists {
		return entity.Comment{}, repository.ErrNotFound
	}
	return c, nil
}

func (s *fakeCommentStore) IncrementLikes(id int) error {
	c, exists := s.comments[id]
	if !exists {
		return repository.ErrNotFound
	}
	c.Likes++
	s.comments[id] = c
	return nil
}

func (s *fakeCommentStore) Delete(id int) error {
	if _, exists := s.comments[id]; !exists {
		return repository.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *fakeCommentStore) CountPostedSince(userID int, since time.Time) (int, error) {
	count := 0
	for _, c := range s.comments {
		if c.UserID == userID && !c.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type fakeQuestionStore struct {
	sets      map[string]entity.QuizSet
	questions map[string][]entity.Question
	generated int
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{
		sets:      make(map[string]entity.QuizSet),
		questions: make(map[string][]entity.Question),
	}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func (s *fakeQuestionStore) GetSet(day time.Time) (entity.QuizSet, []entity.Question, error) {
	set, exists := s.sets[dayKey(day)]
	if !exists {
		return entity.QuizSet{}, nil, repository.ErrNotFound
	}
	return set, s.questions[dayKey(day)], nil
}

func (s *fakeQuestionStore) EnsureSet(day time.Time, gen *quiz.Generator) (entity.QuizSet, []entity.Question, error) {
	if set, exists := s.sets[dayKey(day)]; exists {
		return set, s.questions[dayKey(day)], nil
	}

	s.generated++
	set := entity.QuizSet{ID: uuid.New(), ActiveOn: day, CreatedAt: time.Now()}

	var questions []entity.Question
	for i, eq := range gen.GenerateSet() {
		questions = append(questions, entity.Question{
			ID:       i + 1,
			SetID:    set.ID,
			Position: i,
			Equation: eq.Text,
			Answer:   eq.Answer,
		})
	}

	s.sets[dayKey(day)] = set
	s.questions[dayKey(day)] = questions
	return set, questions, nil
}

type fakeResultStore struct {
	nextID  int
	results []entity.Result
}

func (s *fakeResultStore) Create(res entity.Result) (entity.Result, error) {
	s.nextID++
	res.ID = s.nextID
	res.CreatedAt = time.Now()
	s.results = append(s.results, res)
	return res, nil
}

func (s *fakeResultStore) HasResultSince(userID int, since time.Time) (bool, error) {
	for _, res := range s.results {
		if res.UserID == userID && !res.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}
