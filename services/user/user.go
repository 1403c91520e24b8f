package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "urbanhelp/database/repository/user"
	"urbanhelp/models"
	"urbanhelp/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long issued auth tokens remain valid.
const tokenTTL = 24 * time.Hour

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterRequest carries a new account submission.
type RegisterRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Service handles account registration and authentication. The booking
// workflow only consumes the identity the resulting token carries.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo userRepo.Repository
}

// Register creates an account and returns it with a signed token.
func (s *DefaultService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.IsAdmin, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return u, token, nil
}

// Login verifies credentials and returns the account with a signed token.
func (s *DefaultService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.IsAdmin, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return u, token, nil
}
