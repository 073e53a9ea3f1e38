package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProgrammeModel: program studi; name jadi kunci lookup start-quiz.
type ProgrammeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null;uniqueIndex" json:"name"`
	Code      string    `gorm:"type:varchar(30)" json:"code"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ProgrammeModel) TableName() string { return "programmes" }

// SessionModel: tahun akademik, contoh "2024/2025".
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	IsCurrent bool      `gorm:"not null;default:false" json:"isCurrent"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SessionModel) TableName() string { return "sessions" }

// QuizModel — kombinasi (programme_id, semester, session_id) tidak dibuat unique.
type QuizModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title           string         `gorm:"type:varchar(180);not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	ProgrammeID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_quiz_lookup,priority:1" json:"programmeId"`
	Semester        string         `gorm:"type:varchar(20);not null;index:idx_quiz_lookup,priority:2" json:"semester"`
	SessionID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_quiz_lookup,priority:3" json:"sessionId"`
	DurationMinutes int            `gorm:"not null;default:0" json:"durationMinutes"`
	QuestionIDs     pq.StringArray `gorm:"column:question_ids;type:uuid[];not null;default:'{}'" json:"questionIds"`
	IsPublished     bool           `gorm:"not null;default:false" json:"isPublished"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (QuizModel) TableName() string { return "quizzes" }
