package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware allowing browser clients from allowedOrigins.
// "*" allows any origin.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         300,
	})
}
