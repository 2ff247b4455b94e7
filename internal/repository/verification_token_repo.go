package repository

import (
	"context"
	"errors"
	"time"

	"siwatours/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationTokenRepository interface {
	Create(ctx context.Context, token *entity.VerificationToken) error
	FindValid(ctx context.Context, tokenHash string, tokenType entity.VerificationType) (*entity.VerificationToken, error)
	Consume(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type verificationTokenRepository struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

func (r *verificationTokenRepository) Create(ctx context.Context, t *entity.VerificationToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *verificationTokenRepository) FindValid(
	ctx context.Context,
	tokenHash string,
	tokenType entity.VerificationType,
) (*entity.VerificationToken, error) {

	var token entity.VerificationToken
	err := r.db.WithContext(ctx).
		Where(`
			token_hash = ? AND
			type = ? AND
			used_at IS NULL AND
			expires_at > NOW()
		`, tokenHash, tokenType).
		First(&token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &token, err
}

// Consume marks the token used with a conditional update. The used_at IS
// NULL predicate is the serialization point: of two concurrent requests
// presenting the same token, exactly one sees a row affected.
func (r *verificationTokenRepository) Consume(ctx context.Context, id uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entity.VerificationToken{}).
		Where("id = ? AND used_at IS NULL AND expires_at > NOW()", id).
		Update("used_at", &now)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *verificationTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < NOW() OR used_at IS NOT NULL").
		Delete(&entity.VerificationToken{})
	return result.RowsAffected, result.Error
}
