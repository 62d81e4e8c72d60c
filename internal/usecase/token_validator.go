package usecase

import (
	"context"

	"commission-tracker/internal/domain/auth"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/jwt"
	"commission-tracker/internal/usecase/queries"
)

var (
	ErrWrongTokenType  = errs.New("not an access token")
	ErrSessionInactive = errs.New("session user is inactive")
)

// TokenValidator resolves an access token to the request principal.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserQueries
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserQueries) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

// ValidateToken re-reads the user so deactivated vendors lose access before their token expires.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return auth.Principal{}, ErrWrongTokenType
	}

	view, err := t.users.GetCurrentUser(ctx, claims.UserID)
	if err != nil {
		return auth.Principal{}, errs.Mark(err, ErrSessionInactive)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.NewPrincipal(view.ID, role, view.VendorID)
}
