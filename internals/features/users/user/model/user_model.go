package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name"`
	FullName string    `gorm:"size:100" json:"full_name"`
	Email    string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	// selalu tersimpan terenkripsi dan tidak pernah ikut diserialisasi
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// UserLite dipakai untuk populate creator di response question.
type UserLite struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `json:"user_name"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

func (UserLite) TableName() string {
	return "users"
}
