package api

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"englishquest/internal/auth"
	"englishquest/internal/models"
)

// ApiHandler holds the shared dependencies of every endpoint.
type ApiHandler struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

func NewApiHandler(db *gorm.DB, tokens *auth.TokenManager) *ApiHandler {
	return &ApiHandler{DB: db, Tokens: tokens}
}

func (h *ApiHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Welcome to EnglishQuest API!"})
}

func (h *ApiHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// userSummary is the compact payload returned next to a fresh token.
func userSummary(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"level":      u.Level,
		"experience": u.Experience,
		"coins":      u.Coins,
		"hearts":     u.Hearts,
		"max_hearts": u.MaxHearts,
	}
}

// userProfile is the full profile including streak and boost state.
func userProfile(u *models.User) map[string]interface{} {
	profile := userSummary(u)
	profile["avatar_url"] = u.AvatarURL
	profile["boost_expires_at"] = u.BoostExpiresAt
	profile["streak_count"] = u.StreakCount
	profile["last_lesson_at"] = u.LastLessonAt
	return profile
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
