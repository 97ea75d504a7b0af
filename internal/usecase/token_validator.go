package usecase

import (
	"collective-lifecycle/internal/domain/user"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/pkg/jwt"
	"collective-lifecycle/internal/usecase/shared"
)

var ErrNotAccessToken = errs.New("not an access token")

// TokenValidator provides token validation for middleware
//
//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, err
	}
	if err := user.CheckMembership(role, claims.OffererID); err != nil {
		return shared.Actor{}, err
	}

	return shared.ProActor(claims.UserID, role, claims.OffererID), nil
}
