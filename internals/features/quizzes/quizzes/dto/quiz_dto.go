package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	qzmodel "quizku_backend/internals/features/quizzes/quizzes/model"
)

/* =========================================================
   REQUEST
========================================================= */

// StartQuizRequest — semua berupa nama, bukan id.
type StartQuizRequest struct {
	Programme string `json:"programme" validate:"required,max=150"`
	Semester  string `json:"semester" validate:"required,max=20"`
	Session   string `json:"session" validate:"required,max=50"`
}

func (r *StartQuizRequest) Normalize() {
	r.Programme = strings.TrimSpace(r.Programme)
	r.Semester = strings.TrimSpace(r.Semester)
	r.Session = strings.TrimSpace(r.Session)
}

/* =========================================================
   RESPONSE
========================================================= */

type ProgrammeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsCurrent bool      `json:"isCurrent"`
}

type QuizResponse struct {
	ID              uuid.UUID         `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Programme       ProgrammeResponse `json:"programme"`
	Semester        string            `json:"semester"`
	Session         SessionResponse   `json:"session"`
	DurationMinutes int               `json:"durationMinutes"`
	QuestionIDs     []string          `json:"questionIds"`
	IsPublished     bool              `json:"isPublished"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func FromProgramme(p *qzmodel.ProgrammeModel) ProgrammeResponse {
	return ProgrammeResponse{ID: p.ID, Name: p.Name, Code: p.Code}
}

func FromSession(s *qzmodel.SessionModel) SessionResponse {
	return SessionResponse{ID: s.ID, Name: s.Name, IsCurrent: s.IsCurrent}
}

func FromProgrammes(arr []qzmodel.ProgrammeModel) []ProgrammeResponse {
	out := make([]ProgrammeResponse, 0, len(arr))
	for i := range arr {
		out = append(out, FromProgramme(&arr[i]))
	}
	return out
}

func FromSessions(arr []qzmodel.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(arr))
	for i := range arr {
		out = append(out, FromSession(&arr[i]))
	}
	return out
}

// FromModelQuiz menempelkan programme & session hasil lookup.
func FromModelQuiz(q *qzmodel.QuizModel, p *qzmodel.ProgrammeModel, s *qzmodel.SessionModel) *QuizResponse {
	ids := []string(q.QuestionIDs)
	if ids == nil {
		ids = []string{}
	}
	return &QuizResponse{
		ID:              q.ID,
		Title:           q.Title,
		Description:     q.Description,
		Programme:       FromProgramme(p),
		Semester:        q.Semester,
		Session:         FromSession(s),
		DurationMinutes: q.DurationMinutes,
		QuestionIDs:     ids,
		IsPublished:     q.IsPublished,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}
