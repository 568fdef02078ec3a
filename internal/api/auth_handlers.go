package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"englishquest/internal/auth"
	"englishquest/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *ApiHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email, username and password are required")
		return
	}

	var existing models.User
	err := h.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error
	if err == nil {
		respondWithError(w, http.StatusBadRequest, "Email or username already registered")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking existing account: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Level:          1,
		Experience:     0,
		Hearts:         5,
		MaxHearts:      5,
		Coins:          100,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		// Races with a concurrent registration land on the unique indexes.
		respondWithError(w, http.StatusBadRequest, "Email or username already registered")
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"user":         userSummary(&user),
	})
}

// Login expects form fields username (the email) and password, mirroring the
// OAuth2 password flow the frontend already speaks.
func (h *ApiHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	email := r.FormValue("username")
	password := r.FormValue("password")

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Incorrect email or password")
		} else {
			respondWithError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !auth.CheckPassword(user.HashedPassword, password) {
		respondWithError(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"user":         userSummary(&user),
	})
}

func (h *ApiHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	respondWithJSON(w, http.StatusOK, userProfile(user))
}
