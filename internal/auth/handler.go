package auth

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lucasferreira/fluentia/internal/config"
)

const sessionDuration = 24 * time.Hour

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Guest emite um token anônimo. O app é de uso individual, sem cadastro:
// cada navegador vira um "aluno" com seu próprio ID.
func (h *Handler) Guest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID := uuid.NewString()
	token, err := GenerateJWT(userID, "student", sessionDuration)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar token de convidado")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"token":   token,
		"user_id": userID,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
