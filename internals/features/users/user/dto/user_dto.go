package dto

import (
	"strings"
	"time"

	uModel "quizku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpdateUserRequest — partial update (pakai pointer agar bisa bedakan omit vs kosong)
type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user coordinator admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Normalize — trim & lower email
func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Role))
		r.Role = &v
	}
	// password kosong = tidak diganti
	if r.Password != nil && strings.TrimSpace(*r.Password) == "" {
		r.Password = nil
	}
}

// TouchesPrivileged: role / is_active hanya boleh diubah coordinator ke atas.
func (r *UpdateUserRequest) TouchesPrivileged() bool {
	return r.Role != nil || r.IsActive != nil
}

// ToUpdates — map kolom → nilai untuk gorm Updates. Password di sini sudah harus tersegel.
func (r *UpdateUserRequest) ToUpdates(sealedPassword string) map[string]any {
	m := map[string]any{}
	if r.UserName != nil {
		m["user_name"] = *r.UserName
	}
	if r.FullName != nil {
		m["full_name"] = *r.FullName
	}
	if r.Email != nil {
		m["email"] = *r.Email
	}
	if sealedPassword != "" {
		m["password"] = sealedPassword
	}
	if r.Role != nil {
		m["role"] = *r.Role
	}
	if r.IsActive != nil {
		m["is_active"] = *r.IsActive
	}
	return m
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse — tanpa password
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
