package middleware

import (
	"net/http"
	"os"
	"strings"

	"skysurvey/pathplanner/internal/logging"
)

// APIKeyMiddleware gates the API behind the X-API-Key header. Keys come
// from the comma-separated APP_API_KEYS environment variable; when unset
// the middleware passes everything through, which is the development mode.
func APIKeyMiddleware() func(http.Handler) http.Handler {
	keys := map[string]bool{}
	for _, k := range strings.Split(os.Getenv("APP_API_KEYS"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys[k] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(keys) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			if !keys[r.Header.Get("X-API-Key")] {
				logging.Warn("rejected request with missing or unknown API key",
					"endpoint", r.URL.Path)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
