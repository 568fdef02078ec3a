package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"englishquest/internal/models"
)

type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *ApiHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Email != nil && *req.Email != user.Email {
		var existing models.User
		err := h.DB.Where("email = ? AND id <> ?", *req.Email, user.ID).First(&existing).Error
		if err == nil {
			respondWithError(w, http.StatusBadRequest, "Email already in use")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error checking email availability: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := h.DB.Save(user).Error; err != nil {
		log.Printf("Failed to update profile for user %d: %v", user.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	respondWithJSON(w, http.StatusOK, userProfile(user))
}

type LeaderboardEntry struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	AvatarURL  string `json:"avatar_url"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
}

func (h *ApiHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := h.DB.Order("experience DESC").Limit(10).Find(&users).Error; err != nil {
		log.Printf("Failed to query leaderboard: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to query leaderboard")
		return
	}

	entries := []LeaderboardEntry{}
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			ID:         u.ID,
			Username:   u.Username,
			AvatarURL:  u.AvatarURL,
			Level:      u.Level,
			Experience: u.Experience,
		})
	}
	respondWithJSON(w, http.StatusOK, entries)
}
