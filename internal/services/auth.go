package services

import (
	"context"
	"net/mail"
	"strings"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/errs"
	"github.com/lucasmbarros/wallet-backend/internal/models"
	"github.com/lucasmbarros/wallet-backend/pkg/logger"
)

type identityAdapter interface {
	SignIn(ctx context.Context, email, password string) (dto.Session, error)
	SignUp(ctx context.Context, email, password string) (dto.Session, error)
}

type tokenRevoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type userASStore interface {
	CreateUser(ctx context.Context, user *models.User) error
}

type authService struct {
	identity identityAdapter
	revoker  tokenRevoker
	users    userASStore
}

func NewAuthService(identity identityAdapter, revoker tokenRevoker, users userASStore) *authService {
	return &authService{identity: identity, revoker: revoker, users: users}
}

// Register validates locally, creates the identity-provider account and
// then the users/{uid} profile document. Provider failures arrive already
// classified into auth error kinds by the adapter.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (dto.Session, error) {
	if err := validateEmail(req.Email); err != nil {
		return dto.Session{}, err
	}
	if req.Password == "" {
		return dto.Session{}, errs.NewValidationError("password is required")
	}
	if req.Password != req.ConfirmPassword {
		return dto.Session{}, errs.NewValidationError("passwords do not match")
	}

	session, err := s.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return dto.Session{}, err
	}

	user := &models.User{
		UID:   session.UID,
		Email: session.Email,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return dto.Session{}, err
	}

	logger.FromContext(ctx).Info("user registered", "uid", session.UID)
	return session, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.Session, error) {
	if err := validateEmail(req.Email); err != nil {
		return dto.Session{}, err
	}
	if req.Password == "" {
		return dto.Session{}, errs.NewValidationError("password is required")
	}

	session, err := s.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return dto.Session{}, err
	}

	logger.FromContext(ctx).Info("user signed in", "uid", session.UID)
	return session, nil
}

// Logout revokes the user's refresh tokens. Outstanding ID tokens expire
// on their own within the hour.
func (s *authService) Logout(ctx context.Context, uid string) error {
	if err := s.revoker.RevokeRefreshTokens(ctx, uid); err != nil {
		return errs.NewAuthError(errs.AuthKindUnspecified, err)
	}
	logger.FromContext(ctx).Info("user signed out", "uid", uid)
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValidationError("email is malformed")
	}
	return nil
}
