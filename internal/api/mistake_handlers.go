package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"englishquest/internal/models"
)

type WrongQuestionResponse struct {
	ID            uint       `json:"id"`
	LessonID      uint       `json:"lesson_id"`
	QuestionID    int        `json:"question_id"`
	QuestionText  string     `json:"question_text"`
	CorrectAnswer string     `json:"correct_answer"`
	UserAnswer    string     `json:"user_answer"`
	Mastered      bool       `json:"mastered"`
	CreatedAt     time.Time  `json:"created_at"`
	LastReviewed  *time.Time `json:"last_reviewed"`
	LessonTitle   string     `json:"lesson_title"`
}

// GetMistakes lists the caller's unmastered wrong questions in insertion
// order, each with the title of the lesson it came from.
func (h *ApiHandler) GetMistakes(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	mistakes := []WrongQuestionResponse{}
	err := h.DB.Model(&models.WrongQuestion{}).
		Select("wrong_questions.id, wrong_questions.lesson_id, wrong_questions.question_id, " +
			"wrong_questions.question_text, wrong_questions.correct_answer, wrong_questions.user_answer, " +
			"wrong_questions.mastered, wrong_questions.created_at, wrong_questions.last_reviewed, " +
			"lessons.title AS lesson_title").
		Joins("JOIN lessons ON lessons.id = wrong_questions.lesson_id").
		Where("wrong_questions.user_id = ? AND wrong_questions.mastered = ?", user.ID, false).
		Order("wrong_questions.created_at ASC, wrong_questions.id ASC").
		Scan(&mistakes).Error
	if err != nil {
		log.Printf("Failed to query wrong questions for user %d: %v", user.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to query wrong questions")
		return
	}

	respondWithJSON(w, http.StatusOK, mistakes)
}

// MarkMastered flags one wrong question as reviewed. Rows owned by other users
// are indistinguishable from missing ones.
func (h *ApiHandler) MarkMastered(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid wrong question ID")
		return
	}

	now := time.Now().UTC()
	res := h.DB.Model(&models.WrongQuestion{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Updates(map[string]interface{}{"mastered": true, "last_reviewed": now})
	if res.Error != nil {
		log.Printf("Failed to mark wrong question %d mastered: %v", id, res.Error)
		respondWithError(w, http.StatusInternalServerError, "Failed to update wrong question")
		return
	}
	if res.RowsAffected == 0 {
		respondWithError(w, http.StatusNotFound, "Wrong question not found")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Question marked as mastered"})
}
