package session

import (
	"encoding/gob"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"mathboard/internal/config"
)

const cookieName = "app-session"

// Flash - сообщение для показа на следующей странице.
type Flash struct {
	Message  string
	Category string
}

func init() {
	gob.Register(Flash{})
}

type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(cfg config.Session) *Store {
	if cfg.InsecureSecret() {
		log.Println("SESSION_SECRET не задан, используется небезопасное значение для разработки")
	}

	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{cookies: store}
}

func (s *Store) session(r *http.Request) *sessions.Session {
	session, _ := s.cookies.Get(r, cookieName)
	return session
}

// SignIn привязывает сессию к пользователю.
func (s *Store) SignIn(w http.ResponseWriter, r *http.Request, userID int, username string) error {
	session := s.session(r)
	session.Values["user_id"] = userID
	session.Values["username"] = username
	return session.Save(r, w)
}

// SignOut завершает сессию безусловно.
func (s *Store) SignOut(w http.ResponseWriter, r *http.Request) error {
	session := s.session(r)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

func (s *Store) CurrentUser(r *http.Request) (int, string, bool) {
	session := s.session(r)

	userID, ok := session.Values["user_id"].(int)
	if !ok || userID == 0 {
		return 0, "", false
	}

	username, _ := session.Values["username"].(string)
	return userID, username, true
}

func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	session := s.session(r)
	session.AddFlash(Flash{Message: message, Category: category})
	if err := session.Save(r, w); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}
}

// Flashes забирает накопленные сообщения и очищает их в cookie.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	session := s.session(r)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, value := range raw {
		if flash, ok := value.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}

	if err := session.Save(r, w); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	return flashes
}
