package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/webdawg/futures-api/internal/core/domain"
	"github.com/webdawg/futures-api/internal/core/ports"
)

// DefaultHashCost matches the reference deployment: deliberately expensive
// per attempt. Tests pass bcrypt.MinCost instead.
const DefaultHashCost = 16

// AuthService implements signup and login over a UserRepository.
type AuthService struct {
	repo     ports.UserRepository
	hashCost int
}

func NewAuthService(repo ports.UserRepository, hashCost int) *AuthService {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = DefaultHashCost
	}
	return &AuthService{repo: repo, hashCost: hashCost}
}

// Signup creates an account. The pre-check on email gives the common case a
// friendly conflict before paying for a hash; the unique index on the users
// collection is what actually guarantees uniqueness under concurrency.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies credentials against the stored hash. An unknown email and a
// wrong password return the identical error so responses carry no
// enumeration signal.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
