package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	qzmodel "quizku_backend/internals/features/quizzes/quizzes/model"
)

// QuizLookupRepository — semua method mengembalikan gorm.ErrRecordNotFound kalau tidak ada.
type QuizLookupRepository interface {
	FindProgrammeByName(ctx context.Context, name string) (*qzmodel.ProgrammeModel, error)
	FindSessionByName(ctx context.Context, name string) (*qzmodel.SessionModel, error)
	FindQuiz(ctx context.Context, programmeID uuid.UUID, semester string, sessionID uuid.UUID) (*qzmodel.QuizModel, error)
	ListProgrammes(ctx context.Context) ([]qzmodel.ProgrammeModel, error)
	ListSessions(ctx context.Context) ([]qzmodel.SessionModel, error)
}

type gormQuizLookupRepository struct {
	db *gorm.DB
}

func NewQuizLookupRepository(db *gorm.DB) QuizLookupRepository {
	return &gormQuizLookupRepository{db: db}
}

func (r *gormQuizLookupRepository) FindProgrammeByName(ctx context.Context, name string) (*qzmodel.ProgrammeModel, error) {
	var p qzmodel.ProgrammeModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormQuizLookupRepository) FindSessionByName(ctx context.Context, name string) (*qzmodel.SessionModel, error) {
	var s qzmodel.SessionModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindQuiz: kalau ada lebih dari satu, ambil yang paling baru.
func (r *gormQuizLookupRepository) FindQuiz(ctx context.Context, programmeID uuid.UUID, semester string, sessionID uuid.UUID) (*qzmodel.QuizModel, error) {
	var q qzmodel.QuizModel
	err := r.db.WithContext(ctx).
		Where("programme_id = ? AND semester = ? AND session_id = ?", programmeID, semester, sessionID).
		Order("created_at DESC").
		Take(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *gormQuizLookupRepository) ListProgrammes(ctx context.Context) ([]qzmodel.ProgrammeModel, error) {
	var rows []qzmodel.ProgrammeModel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *gormQuizLookupRepository) ListSessions(ctx context.Context) ([]qzmodel.SessionModel, error) {
	var rows []qzmodel.SessionModel
	err := r.db.WithContext(ctx).Order("is_current DESC, name DESC").Find(&rows).Error
	return rows, err
}
