package middleware

import (
	"net/http"
	"strings"

	"mathboard/internal/session"
)

// RequireAuth закрывает все страницы, кроме перечисленных публичных.
// Пути с завершающим слэшем проверяются по префиксу.
func RequireAuth(store *session.Store, publicPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			for _, publicPath := range publicPaths {
				if path == publicPath {
					next.ServeHTTP(w, r)
					return
				}
				if strings.HasSuffix(publicPath, "/") && len(publicPath) > 1 && strings.HasPrefix(path, publicPath) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if _, _, ok := store.CurrentUser(r); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
