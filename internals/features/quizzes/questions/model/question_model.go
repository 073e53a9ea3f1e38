// file: internals/features/quizzes/questions/model/question_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	userModel "quizku_backend/internals/features/users/user/model"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDraft    Status = "draft"
)

const (
	DefaultMarks     = 1
	DefaultTimeLimit = 60 // detik
	MinOptions       = 2
)

// Teks error ini dikirim apa adanya ke client sebagai message 400, makanya kapital.
var (
	ErrTooFewOptions   = errors.New("At least 2 options are required")
	ErrNoCorrectOption = errors.New("At least one correct answer must be specified")
)

// QuestionOption disimpan sebagai elemen array jsonb.
type QuestionOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionModel struct {
	ID          uuid.UUID                           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string                              `gorm:"type:text;not null" json:"title"`
	Description string                              `gorm:"type:text" json:"description"`
	Options     datatypes.JSONSlice[QuestionOption] `gorm:"type:jsonb;not null" json:"options"`
	Difficulty  Difficulty                          `gorm:"type:varchar(10);not null;index" json:"difficulty"`
	Category    string                              `gorm:"type:varchar(100);not null;index" json:"category"`
	Marks       int                                 `gorm:"not null;default:1" json:"marks"`
	Status      Status                              `gorm:"type:varchar(10);not null;default:'active';index" json:"status"`
	CreatedBy   uuid.UUID                           `gorm:"type:uuid;not null;index" json:"createdBy"`
	TimeLimit   int                                 `gorm:"column:time_limit;not null;default:60" json:"timeLimit"`
	Tags        pq.StringArray                      `gorm:"type:text[];not null;default:'{}'" json:"tags"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// populate creator (name/email) — tanpa FK constraint, tidak ada cascade
	Creator *userModel.UserLite `gorm:"foreignKey:CreatedBy;references:ID;constraint:-" json:"-"`
}

func (QuestionModel) TableName() string { return "questions" }

// ValidateOptions: minimal 2 opsi dan minimal satu is_correct=true.
func ValidateOptions(options []QuestionOption) error {
	if len(options) < MinOptions {
		return ErrTooFewOptions
	}
	for _, op := range options {
		if op.IsCorrect {
			return nil
		}
	}
	return ErrNoCorrectOption
}

func (m *QuestionModel) ValidateShape() error {
	return ValidateOptions(m.Options)
}

func (m *QuestionModel) IsOwnedBy(userID uuid.UUID) bool {
	return m.CreatedBy != uuid.Nil && m.CreatedBy == userID
}
