package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/vantran-dev/storefront/internal/domain/errors"
	"github.com/vantran-dev/storefront/internal/domain/model"
	"github.com/vantran-dev/storefront/internal/domain/repository"
	"github.com/vantran-dev/storefront/internal/notifier"
	pkgAuth "github.com/vantran-dev/storefront/internal/pkg/auth"
)

// Notifier enqueues best-effort customer notifications.
type Notifier interface {
	Enqueue(msg notifier.Message)
}

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.TokenStrategy
	notify Notifier
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, tokens pkgAuth.TokenStrategy, notify Notifier) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, notify: notify}
}

// Register creates a customer account and returns it with an auth token.
func (u *AuthUseCase) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, name, hash, model.RoleCustomer)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	u.notify.Enqueue(notifier.Message{
		To:      usr.Email,
		Subject: "Welcome to the store",
		Body:    fmt.Sprintf("Hello %s, your account has been created.", usr.Name),
	})

	return usr, token, nil
}

// Authenticate validates credentials and returns the account with a token
// signed for its role domain.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !usr.Active {
		return nil, "", domainErrors.ErrAccountInactive
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// VerifyToken resolves the principal behind a bearer token.
func (u *AuthUseCase) VerifyToken(token string) (*pkgAuth.Principal, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.Verify(token)
}

// GetByID fetches an account by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
