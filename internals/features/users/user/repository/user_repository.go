package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/users/user/model"
)

// UserRepository: semua error "tidak ada baris" dikembalikan sebagai gorm.ErrRecordNotFound.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.UserModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.UserModel, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}
	tx := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *gormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
