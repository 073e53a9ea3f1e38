package repository

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "quizku_backend/internals/features/users/auth/model"
)

// BlacklistStore dipakai oleh AuthJWT (IsBlacklisted), logout (Add), dan cron cleanup (PurgeExpired).
type BlacklistStore interface {
	Add(ctx context.Context, rawToken string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, rawToken string) (bool, error)
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

type gormBlacklistStore struct {
	db     *gorm.DB
	secret string
}

func NewBlacklistStore(db *gorm.DB, jwtSecret string) BlacklistStore {
	return &gormBlacklistStore{db: db, secret: jwtSecret}
}

func hmacHex(msg, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(msg))
	return hex.EncodeToString(m.Sum(nil))
}

// Add idempotent: token yang sama cukup memperbarui expired_at.
func (s *gormBlacklistStore) Add(ctx context.Context, rawToken string, expiresAt time.Time) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	row := authModel.TokenBlacklist{
		Token:     hmacHex(rawToken, s.secret),
		ExpiredAt: expiresAt.UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
	}).Create(&row).Error
}

func (s *gormBlacklistStore) IsBlacklisted(ctx context.Context, rawToken string) (bool, error) {
	if strings.TrimSpace(rawToken) == "" {
		return false, nil
	}
	var n int64
	err := s.db.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token = ? AND expired_at > ?", hmacHex(rawToken, s.secret), time.Now().UTC()).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

// PurgeExpired hard delete baris yang expired_at-nya sebelum `before`.
func (s *gormBlacklistStore) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("expired_at < ?", before.UTC()).
		Delete(&authModel.TokenBlacklist{})
	return tx.RowsAffected, tx.Error
}
