package challenge

import "time"

// Difficulty labels accepted for a challenge.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Challenge is a single multiple-choice coding question.
type Challenge struct {
	ID              string     `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string     `json:"title" yaml:"title"`
	Difficulty      string     `json:"difficulty" yaml:"difficulty"`
	Options         OptionList `json:"options" yaml:"options"`
	CorrectAnswerID int        `json:"correct_answer_id" yaml:"correct_answer_id"`
	Explanation     string     `json:"explanation" yaml:"explanation"`
	CreatedBy       string     `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	CreatedAt       time.Time  `json:"date_created,omitempty" yaml:"date_created,omitempty"`
}

// KnownDifficulty reports whether the label is one of the accepted levels.
func KnownDifficulty(label string) bool {
	switch label {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}
