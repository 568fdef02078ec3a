package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"englishquest/internal/models"
)

// GetLevels returns every level ordered by rank, each with its lessons in
// lesson order.
func (h *ApiHandler) GetLevels(w http.ResponseWriter, r *http.Request) {
	levels := []models.Level{}
	err := h.DB.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Order(`"order" ASC`).
		Find(&levels).Error
	if err != nil {
		log.Printf("Failed to query levels: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to query levels")
		return
	}

	respondWithJSON(w, http.StatusOK, levels)
}

func (h *ApiHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lessonID, err := strconv.Atoi(vars["lesson_id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lesson ID")
		return
	}

	var lesson models.Lesson
	if err := h.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "Lesson not found")
		} else {
			log.Printf("Failed to query lesson %d: %v", lessonID, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to query lesson")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, lesson)
}
