package identityclient

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"github.com/lucasmbarros/wallet-backend/internal/dto"
	"github.com/lucasmbarros/wallet-backend/internal/errs"
)

// Adapter wraps the Identity Toolkit REST API for email/password
// sign-in and sign-up. The admin SDK cannot verify passwords, so these
// two calls go through the same endpoint the client SDKs use.
type Adapter struct {
	relyingparty *identitytoolkit.RelyingpartyService
}

func NewAdapter(ctx context.Context, apiKey string) (*Adapter, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Adapter{relyingparty: svc.Relyingparty}, nil
}

func (a *Adapter) SignIn(ctx context.Context, email, password string) (dto.Session, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}

	resp, err := a.relyingparty.VerifyPassword(req).Context(ctx).Do()
	if err != nil {
		return dto.Session{}, classify(err)
	}

	return dto.Session{
		UID:          resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (a *Adapter) SignUp(ctx context.Context, email, password string) (dto.Session, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}

	resp, err := a.relyingparty.SignupNewUser(req).Context(ctx).Do()
	if err != nil {
		return dto.Session{}, classify(err)
	}

	return dto.Session{
		UID:          resp.LocalId,
		Email:        resp.Email,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// classify maps Identity Toolkit error codes to AuthError kinds. The code
// is the first token of the googleapi message ("WEAK_PASSWORD : Password
// should be at least 6 characters"). Anything unrecognized stays generic.
func classify(err error) *errs.AuthError {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return errs.NewAuthError(errs.AuthKindNetwork, err)
	}

	code, _, _ := strings.Cut(gerr.Message, " ")
	switch code {
	case "EMAIL_NOT_FOUND":
		return errs.NewAuthError(errs.AuthKindUserNotFound, err)
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return errs.NewAuthError(errs.AuthKindWrongPassword, err)
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return errs.NewAuthError(errs.AuthKindInvalidEmail, err)
	case "USER_DISABLED":
		return errs.NewAuthError(errs.AuthKindUserDisabled, err)
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return errs.NewAuthError(errs.AuthKindTooManyRequests, err)
	case "EMAIL_EXISTS":
		return errs.NewAuthError(errs.AuthKindEmailInUse, err)
	case "WEAK_PASSWORD", "MISSING_PASSWORD":
		return errs.NewAuthError(errs.AuthKindWeakPassword, err)
	default:
		return errs.NewAuthError(errs.AuthKindUnspecified, err)
	}
}
