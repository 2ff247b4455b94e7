package repository

import (
	"context"
	"errors"
	"time"

	"siwatours/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error)
	RotateToken(ctx context.Context, sessionID uuid.UUID, tokenHash string, expiresAt time.Time) error
	Revoke(ctx context.Context, sessionID uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *entity.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepository) FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	var session entity.Session
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) RotateToken(ctx context.Context, sessionID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Updates(map[string]any{
			"token_hash": tokenHash,
			"expires_at": expiresAt,
		}).
		Error
}

func (r *sessionRepository) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("id = ?", sessionID).
		Update("revoked_at", &now).
		Error
}

func (r *sessionRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", &now).
		Error
}

func (r *sessionRepository) CleanupExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < NOW()").
		Delete(&entity.Session{})
	return result.RowsAffected, result.Error
}
