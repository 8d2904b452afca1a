package usecase

import (
	"context"
	"errors"

	"courtbook/internal/domain/user"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/jwt"
	"courtbook/internal/pkg/password"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserBlocked          = errors.New("user account is blocked")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type AuthReadStore interface {
	FindByLogin(ctx context.Context, dbtx db.DBTX, login string) (*queries.AuthorizedUserView, string, error)
	FindAuthorizedByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, login, plainPassword string) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userReads  AuthReadStore
	dbtx       db.DBTX
	jwtService *jwt.Service
}

func NewAuthUseCase(userReads AuthReadStore, dbtx db.DBTX, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userReads:  userReads,
		dbtx:       dbtx,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, login, plainPassword string) (string, *queries.AuthorizedUserView, error) {
	view, storedHash, err := a.userReads.FindByLogin(ctx, a.dbtx, login)
	if err != nil {
		// Do not reveal whether the account exists.
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(storedHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if view.IsBlocked {
		return "", nil, ErrUserBlocked
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.userReads.FindAuthorizedByID(ctx, a.dbtx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if view.IsBlocked {
		return nil, ErrUserBlocked
	}

	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
