package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"englishquest/internal/models"
	"englishquest/internal/reward"
)

type SubmitRequest struct {
	LessonID         uint  `json:"lesson_id"`
	Score            int   `json:"score"`
	HeartsLost       int   `json:"hearts_lost"`
	WrongQuestionIDs []int `json:"wrong_question_ids"`
}

// SubmitProgress records one lesson attempt: progress row, reward computation
// and missed questions are committed in a single transaction.
func (h *ApiHandler) SubmitProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Score < 0 || req.Score > 100 {
		respondWithError(w, http.StatusBadRequest, "Score must be between 0 and 100")
		return
	}
	if req.HeartsLost < 0 {
		respondWithError(w, http.StatusBadRequest, "hearts_lost must not be negative")
		return
	}

	var lesson models.Lesson
	if err := h.DB.First(&lesson, req.LessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(w, http.StatusNotFound, "Lesson not found")
		} else {
			log.Printf("Failed to query lesson %d: %v", req.LessonID, err)
			respondWithError(w, http.StatusInternalServerError, "Failed to query lesson")
		}
		return
	}

	var questions []models.Question
	if len(req.WrongQuestionIDs) > 0 {
		var err error
		questions, err = models.ParseQuestions(lesson.Content)
		if err != nil {
			// Seeded content should always parse; missed questions are
			// skipped rather than failing the whole submission.
			log.Printf("Lesson %d has unparseable content: %v", lesson.ID, err)
		}
	}

	now := time.Now().UTC()
	var result reward.Result

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var progress models.UserProgress
		err := tx.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.UserProgress{UserID: user.ID, LessonID: lesson.ID}
		} else if err != nil {
			return err
		}

		progress.Attempts++
		if req.Score > progress.BestScore {
			progress.BestScore = req.Score
		}
		if progress.BestScore >= reward.CompletionThreshold {
			progress.Completed = true
		}
		progress.LastAttempt = now
		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		result = reward.Apply(user, req.Score, req.HeartsLost, now)
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		for _, questionID := range req.WrongQuestionIDs {
			var count int64
			err := tx.Model(&models.WrongQuestion{}).
				Where("user_id = ? AND lesson_id = ? AND question_id = ? AND mastered = ?",
					user.ID, lesson.ID, questionID, false).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			question, found := models.QuestionByID(questions, questionID)
			if !found {
				continue
			}
			wrongQuestion := models.WrongQuestion{
				UserID:        user.ID,
				LessonID:      lesson.ID,
				QuestionID:    questionID,
				QuestionText:  question.Question,
				CorrectAnswer: question.Answer,
			}
			if err := tx.Create(&wrongQuestion).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Failed to save progress for user %d, lesson %d: %v", user.ID, lesson.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to save progress")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":           "Progress saved",
		"experience_gained": result.ExperienceGained,
		"coins_gained":      result.CoinsGained,
		"user": map[string]interface{}{
			"level":      user.Level,
			"experience": user.Experience,
			"hearts":     user.Hearts,
			"max_hearts": user.MaxHearts,
			"coins":      user.Coins,
		},
	})
}

func (h *ApiHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	progress := []models.UserProgress{}
	if err := h.DB.Where("user_id = ?", user.ID).Find(&progress).Error; err != nil {
		log.Printf("Failed to query progress for user %d: %v", user.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to query progress")
		return
	}

	respondWithJSON(w, http.StatusOK, progress)
}
