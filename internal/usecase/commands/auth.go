package commands

import (
	"context"
	"log/slog"

	"commission-tracker/internal/domain/auth"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/domain/vendor"
	reqdto "commission-tracker/internal/handler/dto/request"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/jwt"
	"commission-tracker/internal/pkg/password"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrEmailTaken           = errs.New("email already registered")
)

type LoginResult struct {
	Principal auth.Principal
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegisterResult struct {
	UserID   uuid.UUID
	VendorID uuid.UUID
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	RegisterVendor(ctx context.Context, req reqdto.RegisterVendorRequest) (*RegisterResult, error)
	// EnsureTechnician creates the technician account unless the email is already registered.
	EnsureTechnician(ctx context.Context, email, plainPassword string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	principal, err := principalOf(userReadModel)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(principal.UserID(), principal.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
	})
	if err != nil {
		// Login succeeded; only the last_login bookkeeping failed.
		slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{
		Principal: principal,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}
	if !isActive(userReadModel) {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) RegisterVendor(ctx context.Context, req reqdto.RegisterVendorRequest) (*RegisterResult, error) {
	credentials, profile, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	u := user.NewUser(credentials.Email(), hash, user.RoleVendor, now)

	var result RegisterResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err := tx.Users().Create(ctx, tx.DB(), u)
		if err != nil {
			return err
		}

		v, err := vendor.NewVendor(&userID, profile, nil, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		vendorID, err := tx.Vendors().Create(ctx, tx.DB(), v)
		if err != nil {
			return err
		}

		result = RegisterResult{UserID: userID, VendorID: vendorID}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	slog.Info("vendor registered", "user_id", result.UserID, "vendor_id", result.VendorID)
	return &result, nil
}

func (a *authCommandsImpl) EnsureTechnician(ctx context.Context, email, plainPassword string) error {
	credentials, err := auth.NewCredentials(email, plainPassword)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	_, _, err = a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err == nil {
		return nil
	}
	if !infra.IsNotFound(err) {
		return err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return err
	}

	u := user.NewUser(credentials.Email(), hash, user.RoleTechnician, a.clock.Now())
	err = a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), u)
		return err
	})
	if err != nil && !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}

	slog.Info("technician account created", "email", credentials.Email().Value())
	return nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !isActive(userReadModel) {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}

// isActive requires an active vendor row for vendor accounts.
func isActive(u *queries.AuthorizedUserView) bool {
	if !u.IsActive {
		return false
	}
	if u.Role == user.RoleVendor.String() {
		return u.VendorID != nil && u.VendorActive != nil && *u.VendorActive
	}
	return true
}

func principalOf(u *queries.AuthorizedUserView) (auth.Principal, error) {
	role, err := user.NewRole(u.Role)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.NewPrincipal(u.ID, role, u.VendorID)
}
