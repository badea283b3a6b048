package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/lucasferreira/fluentia/internal/config"
)

func CorsMiddleware(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   config.EnvCSV("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
