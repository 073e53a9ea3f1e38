// file: internals/features/quizzes/questions/dto/question_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	qmodel "quizku_backend/internals/features/quizzes/questions/model"
)

type OptionRequest struct {
	Text      string `json:"text" validate:"required,max=1000"`
	IsCorrect bool   `json:"isCorrect"`
}

func toOptions(in []OptionRequest) []qmodel.QuestionOption {
	out := make([]qmodel.QuestionOption, 0, len(in))
	for _, op := range in {
		out = append(out, qmodel.QuestionOption{
			Text:      strings.TrimSpace(op.Text),
			IsCorrect: op.IsCorrect,
		})
	}
	return out
}

func compactTags(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// nilai <= 0 atau kosong jatuh ke default
func intOr(v *int, def int) int {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}

/* =========================================================
   CREATE
========================================================= */

type CreateQuestionRequest struct {
	Title       string          `json:"title" validate:"required,max=500"`
	Description string          `json:"description" validate:"omitempty,max=5000"`
	Options     []OptionRequest `json:"options" validate:"dive"`
	Difficulty  string          `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Category    string          `json:"category" validate:"required,max=100"`
	Marks       *int            `json:"marks" validate:"omitempty,gte=0"`
	TimeLimit   *int            `json:"timeLimit" validate:"omitempty,gte=0"`
	Tags        []string        `json:"tags" validate:"omitempty,dive,max=50"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.Category = strings.TrimSpace(r.Category)
}

// OptionsError: invariant opsi dicek sebelum validasi field lain.
func (r *CreateQuestionRequest) OptionsError() error {
	return qmodel.ValidateOptions(toOptions(r.Options))
}

// ToModel — status selalu active saat create; createdBy dari token.
func (r *CreateQuestionRequest) ToModel(createdBy uuid.UUID) *qmodel.QuestionModel {
	return &qmodel.QuestionModel{
		Title:       r.Title,
		Description: r.Description,
		Options:     datatypes.JSONSlice[qmodel.QuestionOption](toOptions(r.Options)),
		Difficulty:  qmodel.Difficulty(r.Difficulty),
		Category:    r.Category,
		Marks:       intOr(r.Marks, qmodel.DefaultMarks),
		TimeLimit:   intOr(r.TimeLimit, qmodel.DefaultTimeLimit),
		Tags:        compactTags(r.Tags),
		Status:      qmodel.StatusActive,
		CreatedBy:   createdBy,
	}
}

/* =========================================================
   UPDATE (PUT, full overwrite)
========================================================= */

type UpdateQuestionRequest struct {
	Title       string          `json:"title" validate:"required,max=500"`
	Description string          `json:"description" validate:"omitempty,max=5000"`
	Options     []OptionRequest `json:"options" validate:"dive"`
	Difficulty  string          `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Category    string          `json:"category" validate:"required,max=100"`
	Marks       *int            `json:"marks" validate:"omitempty,gte=0"`
	TimeLimit   *int            `json:"timeLimit" validate:"omitempty,gte=0"`
	Tags        []string        `json:"tags" validate:"omitempty,dive,max=50"`
	Status      string          `json:"status" validate:"required,oneof=active inactive draft"`
}

func (r *UpdateQuestionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.Category = strings.TrimSpace(r.Category)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r *UpdateQuestionRequest) OptionsError() error {
	return qmodel.ValidateOptions(toOptions(r.Options))
}

// ApplyToModel menimpa semua field yang bisa diubah; id, createdBy, createdAt tetap.
func (r *UpdateQuestionRequest) ApplyToModel(m *qmodel.QuestionModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.Options = datatypes.JSONSlice[qmodel.QuestionOption](toOptions(r.Options))
	m.Difficulty = qmodel.Difficulty(r.Difficulty)
	m.Category = r.Category
	m.Marks = intOr(r.Marks, qmodel.DefaultMarks)
	m.TimeLimit = intOr(r.TimeLimit, qmodel.DefaultTimeLimit)
	m.Tags = compactTags(r.Tags)
	m.Status = qmodel.Status(r.Status)
}

/* =========================================================
   LIST QUERY (GET /questions)
========================================================= */

type ListQuestionsQuery struct {
	Difficulty string `query:"difficulty"`
	Category   string `query:"category"`
	Status     string `query:"status"`
}

func (q *ListQuestionsQuery) Normalize() {
	q.Difficulty = strings.ToLower(strings.TrimSpace(q.Difficulty))
	q.Category = strings.TrimSpace(q.Category)
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
}

/* =========================================================
   RESPONSE
========================================================= */

type CreatorResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

type QuestionResponse struct {
	ID          uuid.UUID               `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Options     []qmodel.QuestionOption `json:"options"`
	Difficulty  qmodel.Difficulty       `json:"difficulty"`
	Category    string                  `json:"category"`
	Marks       int                     `json:"marks"`
	Status      qmodel.Status           `json:"status"`
	CreatedBy   uuid.UUID               `json:"createdBy"`
	Creator     *CreatorResponse        `json:"creator,omitempty"`
	TimeLimit   int                     `json:"timeLimit"`
	Tags        []string                `json:"tags"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func FromModelQuestion(m *qmodel.QuestionModel) *QuestionResponse {
	opts := []qmodel.QuestionOption(m.Options)
	if opts == nil {
		opts = []qmodel.QuestionOption{}
	}
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}

	var creator *CreatorResponse
	if m.Creator != nil {
		creator = &CreatorResponse{
			ID:       m.Creator.ID,
			UserName: m.Creator.UserName,
			FullName: m.Creator.FullName,
			Email:    m.Creator.Email,
		}
	}

	return &QuestionResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Options:     opts,
		Difficulty:  m.Difficulty,
		Category:    m.Category,
		Marks:       m.Marks,
		Status:      m.Status,
		CreatedBy:   m.CreatedBy,
		Creator:     creator,
		TimeLimit:   m.TimeLimit,
		Tags:        tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModelsQuestions(arr []qmodel.QuestionModel) []*QuestionResponse {
	out := make([]*QuestionResponse, 0, len(arr))
	for i := range arr {
		out = append(out, FromModelQuestion(&arr[i]))
	}
	return out
}
