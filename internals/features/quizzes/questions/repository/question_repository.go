package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "quizku_backend/internals/features/quizzes/questions/model"
)

// QuestionFilter: semua field opsional, digabung AND.
type QuestionFilter struct {
	Difficulty string
	Category   string
	Status     string
}

type QuestionRepository interface {
	Create(ctx context.Context, m *qmodel.QuestionModel) error
	// List mengembalikan satu halaman (created_at DESC) + total baris yang cocok filter.
	List(ctx context.Context, f QuestionFilter, offset, limit int) ([]qmodel.QuestionModel, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*qmodel.QuestionModel, error)
	Update(ctx context.Context, m *qmodel.QuestionModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormQuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &gormQuestionRepository{db: db}
}

func preloadCreator(db *gorm.DB) *gorm.DB {
	return db.Select("id", "user_name", "full_name", "email")
}

func (r *gormQuestionRepository) applyFilters(db *gorm.DB, f QuestionFilter) *gorm.DB {
	if f.Difficulty != "" {
		db = db.Where("difficulty = ?", f.Difficulty)
	}
	if f.Category != "" {
		db = db.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	return db
}

func (r *gormQuestionRepository) Create(ctx context.Context, m *qmodel.QuestionModel) error {
	return r.db.WithContext(ctx).Omit("Creator").Create(m).Error
}

func (r *gormQuestionRepository) List(ctx context.Context, f QuestionFilter, offset, limit int) ([]qmodel.QuestionModel, int64, error) {
	base := r.applyFilters(r.db.WithContext(ctx).Model(&qmodel.QuestionModel{}), f)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []qmodel.QuestionModel
	if err := base.Session(&gorm.Session{}).
		Preload("Creator", preloadCreator).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *gormQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*qmodel.QuestionModel, error) {
	var m qmodel.QuestionModel
	if err := r.db.WithContext(ctx).
		Preload("Creator", preloadCreator).
		First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormQuestionRepository) Update(ctx context.Context, m *qmodel.QuestionModel) error {
	tx := r.db.WithContext(ctx).
		Model(&qmodel.QuestionModel{}).
		Where("id = ?", m.ID).
		Select("title", "description", "options", "difficulty", "category", "marks", "time_limit", "tags", "status", "updated_at").
		Updates(m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&qmodel.QuestionModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
