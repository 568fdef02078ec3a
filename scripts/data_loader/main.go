// Command data_loader seeds the levels and lessons catalog. It is idempotent:
// a database that already holds levels is left untouched.
package main

import (
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"englishquest/internal/config"
	"englishquest/internal/database"
	"englishquest/internal/models"
)

type lessonSeed struct {
	Title       string
	Description string
	Order       int
	Questions   []models.Question
}

type levelSeed struct {
	Title              string
	Description        string
	Order              int
	RequiredExperience int
	Lessons            []lessonSeed
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	cfg := config.LoadConfigOrPanic()

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("DB migrate error: %v", err)
	}

	var count int64
	if err := db.Model(&models.Level{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect levels: %v", err)
	}
	if count > 0 {
		log.Println("Database already seeded.")
		return
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, ls := range levelSeeds() {
			level := models.Level{
				Title:              ls.Title,
				Description:        ls.Description,
				Order:              ls.Order,
				RequiredExperience: ls.RequiredExperience,
			}
			if err := tx.Create(&level).Error; err != nil {
				return err
			}
			for _, l := range ls.Lessons {
				content, err := json.Marshal(l.Questions)
				if err != nil {
					return err
				}
				lesson := models.Lesson{
					LevelID:     level.ID,
					Title:       l.Title,
					Description: l.Description,
					Type:        "multiple_choice",
					Order:       l.Order,
					Content:     string(content),
				}
				if err := tx.Create(&lesson).Error; err != nil {
					return err
				}
			}
			log.Printf("Seeded %q with %d lessons", level.Title, len(ls.Lessons))
		}
		return nil
	})
}

func levelSeeds() []levelSeed {
	return []levelSeed{
		{
			Title:              "Level 1: Basics",
			Description:        "Learn fundamental English alphabet, numbers, and basic words.",
			Order:              1,
			RequiredExperience: 0,
			Lessons: []lessonSeed{
				{
					Title:       "Alphabet & Sounds",
					Description: "Learn English alphabet pronunciation.",
					Order:       1,
					Questions: []models.Question{
						{ID: 1, Question: "Which letter comes after 'A'?", Options: []string{"B", "C", "D", "E"}, Answer: "B"},
						{ID: 2, Question: "How do you pronounce 'C'?", Options: []string{"See", "Kay", "Cee", "Sea"}, Answer: "Cee"},
						{ID: 3, Question: "Which is a vowel?", Options: []string{"B", "C", "D", "E"}, Answer: "E"},
						{ID: 4, Question: "How many letters are in the English alphabet?", Options: []string{"24", "25", "26", "27"}, Answer: "26"},
						{ID: 5, Question: "Which letter is silent in 'knight'?", Options: []string{"k", "n", "g", "h"}, Answer: "k"},
					},
				},
				{
					Title:       "Numbers 1-20",
					Description: "Learn to count and spell numbers.",
					Order:       2,
					Questions: []models.Question{
						{ID: 1, Question: "How do you spell '12'?", Options: []string{"twelve", "twelv", "twelf", "twel"}, Answer: "twelve"},
						{ID: 2, Question: "What comes after fifteen?", Options: []string{"fourteen", "sixteen", "fiveteen", "seventeen"}, Answer: "sixteen"},
						{ID: 3, Question: "Which number is 'eighteen'?", Options: []string{"17", "18", "19", "20"}, Answer: "18"},
						{ID: 4, Question: "How do you write '20' in words?", Options: []string{"twoty", "twenty", "twenteen", "twainty"}, Answer: "twenty"},
						{ID: 5, Question: "What is 7 + 8?", Options: []string{"14", "15", "16", "17"}, Answer: "15"},
					},
				},
				{
					Title:       "Basic Colors",
					Description: "Learn common color names.",
					Order:       3,
					Questions: []models.Question{
						{ID: 1, Question: "What color is the sky on a clear day?", Options: []string{"Green", "Blue", "Red", "Yellow"}, Answer: "Blue"},
						{ID: 2, Question: "Which color is a mix of red and white?", Options: []string{"Pink", "Orange", "Purple", "Brown"}, Answer: "Pink"},
						{ID: 3, Question: "What color are ripe bananas?", Options: []string{"Green", "Yellow", "Red", "Blue"}, Answer: "Yellow"},
						{ID: 4, Question: "Which color represents 'stop'?", Options: []string{"Green", "Yellow", "Red", "Blue"}, Answer: "Red"},
						{ID: 5, Question: "What color is grass?", Options: []string{"Blue", "Green", "Brown", "Yellow"}, Answer: "Green"},
					},
				},
			},
		},
		{
			Title:              "Level 2: Greetings",
			Description:        "Master greetings, introductions, and polite expressions.",
			Order:              2,
			RequiredExperience: 100,
			Lessons: []lessonSeed{
				{
					Title:       "Greetings & Introductions",
					Description: "Learn how to say hello and introduce yourself.",
					Order:       1,
					Questions: []models.Question{
						{ID: 1, Question: "How do you say 'Hello' in a formal way?", Options: []string{"Hi", "Hey", "Good morning", "Yo"}, Answer: "Good morning"},
						{ID: 2, Question: "What is the correct response to 'How are you?'", Options: []string{"I am fine, thank you.", "I am apple.", "Yes, please.", "No problem."}, Answer: "I am fine, thank you."},
						{ID: 3, Question: "Choose the correct introduction:", Options: []string{"Me is John.", "I am John.", "John am I.", "Am John I."}, Answer: "I am John."},
						{ID: 4, Question: "What does 'Nice to meet you' mean?", Options: []string{"Goodbye", "Thank you", "Pleased to meet you", "I'm sorry"}, Answer: "Pleased to meet you"},
						{ID: 5, Question: "How do you say goodbye formally?", Options: []string{"Bye", "See ya", "Goodbye", "Later"}, Answer: "Goodbye"},
					},
				},
				{
					Title:       "Polite Expressions",
					Description: "Learn to use please, thank you, and apologies.",
					Order:       2,
					Questions: []models.Question{
						{ID: 1, Question: "What do you say when you receive a gift?", Options: []string{"Please", "Thank you", "Excuse me", "Sorry"}, Answer: "Thank you"},
						{ID: 2, Question: "Which word makes a request polite?", Options: []string{"Now", "Please", "Fast", "Must"}, Answer: "Please"},
						{ID: 3, Question: "What do you say after bumping into someone?", Options: []string{"Hello", "Goodbye", "Sorry", "Welcome"}, Answer: "Sorry"},
						{ID: 4, Question: "How do you politely get attention?", Options: []string{"Hey you!", "Excuse me", "Listen!", "Move"}, Answer: "Excuse me"},
						{ID: 5, Question: "What is the response to 'Thank you'?", Options: []string{"Yes", "You're welcome", "Okay", "Fine"}, Answer: "You're welcome"},
					},
				},
			},
		},
		{
			Title:              "Level 3: Simple Grammar",
			Description:        "Understand basic sentence structure, pronouns, and simple tenses.",
			Order:              3,
			RequiredExperience: 250,
			Lessons: []lessonSeed{
				{
					Title:       "Pronouns",
					Description: "Learn personal pronouns and their usage.",
					Order:       1,
					Questions: []models.Question{
						{ID: 1, Question: "Which pronoun replaces 'Mary'?", Options: []string{"He", "She", "It", "They"}, Answer: "She"},
						{ID: 2, Question: "Complete: '___ am a student.'", Options: []string{"He", "She", "I", "They"}, Answer: "I"},
						{ID: 3, Question: "Which pronoun is plural?", Options: []string{"He", "She", "It", "They"}, Answer: "They"},
						{ID: 4, Question: "Complete: '___ is raining.'", Options: []string{"He", "She", "It", "I"}, Answer: "It"},
						{ID: 5, Question: "Which pronoun replaces 'John and I'?", Options: []string{"They", "We", "You", "He"}, Answer: "We"},
					},
				},
				{
					Title:       "Present Simple",
					Description: "Form simple statements about habits and facts.",
					Order:       2,
					Questions: []models.Question{
						{ID: 1, Question: "Complete: 'She ___ to school every day.'", Options: []string{"go", "goes", "going", "gone"}, Answer: "goes"},
						{ID: 2, Question: "Complete: 'They ___ football on Sundays.'", Options: []string{"plays", "play", "playing", "played"}, Answer: "play"},
						{ID: 3, Question: "Which sentence is correct?", Options: []string{"He like tea.", "He likes tea.", "He liking tea.", "He be like tea."}, Answer: "He likes tea."},
						{ID: 4, Question: "Complete: 'I ___ English.'", Options: []string{"studies", "studying", "study", "studys"}, Answer: "study"},
						{ID: 5, Question: "Negative of 'She sings': ", Options: []string{"She not sings.", "She doesn't sing.", "She don't sing.", "She isn't sing."}, Answer: "She doesn't sing."},
					},
				},
			},
		},
		{
			Title:              "Level 4: Daily Conversation",
			Description:        "Communicate in everyday situations like shopping, dining, and directions.",
			Order:              4,
			RequiredExperience: 450,
			Lessons: []lessonSeed{
				{
					Title:       "At the Shop",
					Description: "Ask for prices and make purchases.",
					Order:       1,
					Questions: []models.Question{
						{ID: 1, Question: "How do you ask for the price?", Options: []string{"How much is it?", "How many is it?", "What cost?", "Price please?"}, Answer: "How much is it?"},
						{ID: 2, Question: "What does 'receipt' mean?", Options: []string{"A discount", "Proof of purchase", "A shopping bag", "A refund"}, Answer: "Proof of purchase"},
						{ID: 3, Question: "Complete: 'Can I pay ___ card?'", Options: []string{"on", "by", "at", "for"}, Answer: "by"},
						{ID: 4, Question: "What is a 'sale'?", Options: []string{"A new product", "Reduced prices", "A closed shop", "A queue"}, Answer: "Reduced prices"},
						{ID: 5, Question: "How do you ask for a different size?", Options: []string{"Do you have this in medium?", "Give me medium.", "Medium now.", "Is medium?"}, Answer: "Do you have this in medium?"},
					},
				},
				{
					Title:       "Asking for Directions",
					Description: "Find your way around town.",
					Order:       2,
					Questions: []models.Question{
						{ID: 1, Question: "How do you politely ask for directions?", Options: []string{"Where station?", "Excuse me, how do I get to the station?", "Station!", "Tell me station."}, Answer: "Excuse me, how do I get to the station?"},
						{ID: 2, Question: "What does 'turn left' mean?", Options: []string{"Go straight", "Go back", "Go to the left side", "Stop"}, Answer: "Go to the left side"},
						{ID: 3, Question: "Complete: 'The bank is ___ the corner.'", Options: []string{"around", "into", "under", "over"}, Answer: "around"},
						{ID: 4, Question: "What is 'opposite'?", Options: []string{"Next to", "Facing", "Behind", "Inside"}, Answer: "Facing"},
						{ID: 5, Question: "Complete: 'Go ___ ahead.'", Options: []string{"straight", "strait", "street", "strict"}, Answer: "straight"},
					},
				},
			},
		},
		{
			Title:              "Level 5: Intermediate",
			Description:        "Expand vocabulary and tackle more complex grammar and conversations.",
			Order:              5,
			RequiredExperience: 700,
			Lessons: []lessonSeed{
				{
					Title:       "Past Tense",
					Description: "Talk about things that already happened.",
					Order:       1,
					Questions: []models.Question{
						{ID: 1, Question: "Past tense of 'go':", Options: []string{"goed", "went", "gone", "going"}, Answer: "went"},
						{ID: 2, Question: "Complete: 'Yesterday I ___ a film.'", Options: []string{"watch", "watched", "watching", "watches"}, Answer: "watched"},
						{ID: 3, Question: "Past tense of 'eat':", Options: []string{"eated", "ate", "eaten", "eating"}, Answer: "ate"},
						{ID: 4, Question: "Which sentence is in the past?", Options: []string{"I run daily.", "I will run.", "I ran yesterday.", "I am running."}, Answer: "I ran yesterday."},
						{ID: 5, Question: "Past tense of 'buy':", Options: []string{"buyed", "bought", "brought", "buying"}, Answer: "bought"},
					},
				},
				{
					Title:       "Common Idioms",
					Description: "Understand everyday English idioms.",
					Order:       2,
					Questions: []models.Question{
						{ID: 1, Question: "What does 'piece of cake' mean?", Options: []string{"A dessert", "Something easy", "Something sweet", "A party"}, Answer: "Something easy"},
						{ID: 2, Question: "'Break a leg' means:", Options: []string{"Get injured", "Good luck", "Run fast", "Stop"}, Answer: "Good luck"},
						{ID: 3, Question: "'It's raining cats and dogs' means:", Options: []string{"Animals are falling", "It's raining heavily", "It's sunny", "Pets are outside"}, Answer: "It's raining heavily"},
						{ID: 4, Question: "'Hit the books' means:", Options: []string{"Fight", "Study hard", "Throw books", "Buy books"}, Answer: "Study hard"},
						{ID: 5, Question: "'Under the weather' means:", Options: []string{"Outside", "Feeling ill", "Cold climate", "Below clouds"}, Answer: "Feeling ill"},
					},
				},
			},
		},
	}
}
