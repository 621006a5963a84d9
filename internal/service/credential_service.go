// Package service contains the business rules layered over the repositories.
package service

import (
	"context"
	"strings"

	"github.com/cmcummings/warechat/internal/models"
	"github.com/cmcummings/warechat/internal/repository"
	"github.com/cmcummings/warechat/internal/resolver"

	"golang.org/x/crypto/bcrypt"
)

const (
	// PasswordHashCost is the bcrypt work factor for stored password hashes.
	PasswordHashCost = 10
	// MaxPasswordBytes is bcrypt's input limit; longer passwords are
	// rejected rather than silently truncated.
	MaxPasswordBytes = 72
)

// CredentialService creates and authenticates user identities. It is the
// only code that ever sees a plaintext password, and it never persists or
// logs one.
type CredentialService struct {
	userRepo repository.UserRepository
}

// RegisterUserInput is the payload for creating a new account.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// NewCredentialService returns a CredentialService over the given repository.
func NewCredentialService(userRepo repository.UserRepository) *CredentialService {
	return &CredentialService{userRepo: userRepo}
}

// RegisterUser creates a user row holding a salted bcrypt hash of the
// password. Duplicate usernames or emails surface as a conflict.
func (s *CredentialService) RegisterUser(ctx context.Context, in RegisterUserInput) (*resolver.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" {
		return nil, models.NewInvalidInputError("Username and email are required")
	}
	if in.Password == "" {
		return nil, models.NewInvalidInputError("Password is required")
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, models.NewInvalidInputError("Password is too long")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordHashCost)
	if err != nil {
		return nil, models.NewStorageError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resolved := resolver.ResolveUser(user)
	return &resolved, nil
}

// AuthorizeUser verifies a username/password pair and returns the resolved
// user. A missing user and a failed hash comparison are deliberately
// indistinguishable to the caller, so failed logins cannot be used to probe
// which usernames exist.
func (s *CredentialService) AuthorizeUser(ctx context.Context, username, password string) (*resolver.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	resolved := resolver.ResolveUser(user)
	return &resolved, nil
}

func invalidCredentials() error {
	return models.NewUnauthorizedError("Invalid username or password")
}
