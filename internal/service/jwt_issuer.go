package service

import (
	"time"

	"siwatours/internal/entity"
	"siwatours/internal/utils"

	"github.com/google/uuid"
)

type JWTAccessIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTAccessIssuer) IssueAccessToken(user entity.User, sessionID uuid.UUID) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	return j.Manager.IssueAccessToken(user.ID.String(), string(user.Role), sessionID.String())
}
