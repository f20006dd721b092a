package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kasim110/todo-service/internal/models"
	"github.com/kasim110/todo-service/internal/repository"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUsernameTaken     = errors.New("username already registered")
)

// RegisterResponse is returned after successful registration.
// The password hash is never included.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	GetUser(ctx context.Context, id int64) (*RegisterResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register hashes the password and inserts the user. There is no
// pre-check for an existing username; the store's uniqueness constraint
// raises gorm.ErrDuplicatedKey, translated here to ErrUsernameTaken.
// Hashing runs before any store access so the expensive bcrypt work never
// overlaps a transaction.
func (s *authService) Register(ctx context.Context, username, password string) (*RegisterResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &RegisterResponse{ID: user.ID, Username: user.Username}, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password are distinct failures: the former maps to
// ErrUserNotFound, the latter to ErrIncorrectPassword.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrIncorrectPassword
	}

	accessToken, err := s.jwtService.GenerateToken(user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*RegisterResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &RegisterResponse{ID: user.ID, Username: user.Username}, nil
}
