package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mathboard/internal/config"
	"mathboard/internal/session"
)

func newAuthedRequest(t *testing.T, store *session.Store, path string) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	signIn := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := store.SignIn(rec, signIn, 1, "tester"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range rec.Result().Cookies() {
		r.AddCookie(cookie)
	}
	return r
}

func TestRequireAuth(t *testing.T) {
	store := session.NewStore(config.Session{Secret: "test secret"})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guard := RequireAuth(store, []string{"/login", "/signup", "/static/"})(next)

	cases := []struct {
		path       string
		authorized bool
		wantStatus int
	}{
		{"/login", false, http.StatusOK},
		{"/signup", false, http.StatusOK},
		{"/static/app.css", false, http.StatusOK},
		{"/", false, http.StatusSeeOther},
		{"/maths", false, http.StatusSeeOther},
		{"/delete/1", false, http.StatusSeeOther},
		{"/", true, http.StatusOK},
		{"/maths", true, http.StatusOK},
	}

	for _, c := range cases {
		var r *http.Request
		if c.authorized {
			r = newAuthedRequest(t, store, c.path)
		} else {
			r = httptest.NewRequest(http.MethodGet, c.path, nil)
		}

		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, r)

		if rec.Code != c.wantStatus {
			t.Errorf("%s (authorized=%v): expected status %d, got %d", c.path, c.authorized, c.wantStatus, rec.Code)
		}
		if c.wantStatus == http.StatusSeeOther && rec.Header().Get("Location") != "/login" {
			t.Errorf("%s: expected redirect to /login, got %q", c.path, rec.Header().Get("Location"))
		}
	}
}

func TestRootIsNotAPrefixWildcard(t *testing.T) {
	store := session.NewStore(config.Session{Secret: "test secret"})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// "/" в публичных путях не должен открывать весь сайт
	guard := RequireAuth(store, []string{"/"})(next)

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/maths", nil))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected /maths to stay protected, got status %d", rec.Code)
	}
}
