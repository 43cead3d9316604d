package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors libera as origens configuradas; a busca é somente leitura, então só GET e OPTIONS
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{CorrelationIDHeader},
		AllowCredentials: false,
		MaxAge:           86400, // Cache do CORS por 24 horas
	})

	return c.Handler
}
