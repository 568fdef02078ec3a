package api

import (
	"context"
	"net/http"
	"strings"

	"englishquest/internal/models"
)

type contextKey string

const contextUserKey contextKey = "currentUser"

// AuthMiddleware validates the bearer token and resolves it to a full user
// record, stored in the request context. Every failure mode collapses to 401.
func (h *ApiHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			respondWithError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		email, err := h.Tokens.Parse(headerParts[1])
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		var user models.User
		if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
			respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), contextUserKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the principal resolved by AuthMiddleware.
func currentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(contextUserKey).(*models.User)
	return user, ok
}
