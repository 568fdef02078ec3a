package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// User is a learner account together with its gamified stats.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string     `gorm:"not null" json:"-"`
	AvatarURL      string     `gorm:"default:''" json:"avatar_url"`
	Level          int        `gorm:"default:1" json:"level"`
	Experience     int        `gorm:"default:0" json:"experience"`
	Hearts         int        `gorm:"default:5" json:"hearts"`
	MaxHearts      int        `gorm:"default:5" json:"max_hearts"`
	Coins          int        `gorm:"default:100" json:"coins"`
	BoostExpiresAt *time.Time `json:"boost_expires_at"`
	StreakCount    int        `gorm:"default:0" json:"streak_count"`
	LastLessonAt   *time.Time `json:"last_lesson_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// BoostActive reports whether the experience boost window covers now.
func (u *User) BoostActive(now time.Time) bool {
	return u.BoostExpiresAt != nil && u.BoostExpiresAt.After(now)
}

// Level is a difficulty tier containing lessons. Seeded once, never edited at runtime.
type Level struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	Title              string   `gorm:"not null" json:"title"`
	Description        string   `gorm:"type:text" json:"description"`
	Order              int      `gorm:"uniqueIndex;not null" json:"order"`
	RequiredExperience int      `gorm:"default:0" json:"required_experience"`
	Lessons            []Lesson `gorm:"foreignKey:LevelID" json:"lessons"`
}

// Lesson is one learning unit inside a level. Content holds the question list
// as a JSON string, parsed on demand with ParseQuestions.
type Lesson struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	LevelID     uint   `gorm:"not null;index" json:"level_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `gorm:"default:'multiple_choice'" json:"type"`
	Order       int    `gorm:"not null" json:"order"`
	Content     string `gorm:"type:text" json:"content"`
}

// UserProgress tracks attempts per (user, lesson) pair.
type UserProgress struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_lesson" json:"user_id"`
	LessonID    uint      `gorm:"not null;uniqueIndex:idx_user_lesson" json:"lesson_id"`
	Attempts    int       `gorm:"default:0" json:"attempts"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	BestScore   int       `gorm:"default:0" json:"best_score"`
	LastAttempt time.Time `json:"last_attempt"`
}

// WrongQuestion is one missed question in the user's mistake notebook.
type WrongQuestion struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	LessonID      uint       `gorm:"not null" json:"lesson_id"`
	QuestionID    int        `gorm:"not null" json:"question_id"`
	QuestionText  string     `gorm:"not null" json:"question_text"`
	CorrectAnswer string     `gorm:"not null" json:"correct_answer"`
	UserAnswer    string     `gorm:"default:''" json:"user_answer"`
	Mastered      bool       `gorm:"default:false" json:"mastered"`
	CreatedAt     time.Time  `json:"created_at"`
	LastReviewed  *time.Time `json:"last_reviewed"`
}

// Question is one entry of a lesson's content list.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ParseQuestions decodes a lesson's content field.
func ParseQuestions(content string) ([]Question, error) {
	if content == "" {
		return nil, nil
	}
	var questions []Question
	if err := json.Unmarshal([]byte(content), &questions); err != nil {
		return nil, fmt.Errorf("invalid lesson content: %w", err)
	}
	return questions, nil
}

// QuestionByID finds a question in a parsed content list.
func QuestionByID(questions []Question, id int) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
