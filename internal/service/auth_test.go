package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kasim110/todo-service/internal/models"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockUserRepository struct {
	findByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	findByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	createFunc         func(ctx context.Context, user *models.User) error
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword() error = %v", err)
	}
	return string(hash)
}

// =============================================================================
// Register Tests
// =============================================================================

func TestRegister_Success(t *testing.T) {
	var stored *models.User
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) error {
			user.ID = 42
			stored = user
			return nil
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	response, err := authService.Register(context.Background(), "testuser", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if response.ID != 42 {
		t.Errorf("response.ID = %d, want 42", response.ID)
	}
	if response.Username != "testuser" {
		t.Errorf("response.Username = %s, want testuser", response.Username)
	}

	if stored == nil {
		t.Fatal("user was not passed to the repository")
	}
	if stored.PasswordHash == "password123" {
		t.Error("password was stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) error {
			return fmt.Errorf("failed to create user: %w", gorm.ErrDuplicatedKey)
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Register(context.Background(), "testuser", "password123")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Register() error = %v, want ErrUsernameTaken", err)
	}
}

func TestRegister_StoreError(t *testing.T) {
	storeErr := errors.New("connection lost")
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) error {
			return storeErr
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Register(context.Background(), "testuser", "password123")
	if !errors.Is(err, storeErr) {
		t.Errorf("Register() error = %v, want wrapped store error", err)
	}
}

// =============================================================================
// Login Tests
// =============================================================================

func TestLogin_Success(t *testing.T) {
	hash := mustHash(t, "password123")
	repo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username, PasswordHash: hash}, nil
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	response, err := authService.Login(context.Background(), "testuser", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if response.TokenType != "bearer" {
		t.Errorf("TokenType = %s, want bearer", response.TokenType)
	}

	// Token subject must equal the username.
	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(response.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != "testuser" {
		t.Errorf("token subject = %s, want testuser", claims.Subject)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, fmt.Errorf("failed to find user by username %s: %w", username, gorm.ErrRecordNotFound)
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Login(context.Background(), "missing", "password123")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Login() error = %v, want ErrUserNotFound", err)
	}
}

func TestLogin_IncorrectPassword(t *testing.T) {
	hash := mustHash(t, "password123")
	repo := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username, PasswordHash: hash}, nil
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.Login(context.Background(), "testuser", "wrongpassword")
	if !errors.Is(err, ErrIncorrectPassword) {
		t.Errorf("Login() error = %v, want ErrIncorrectPassword", err)
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Error("wrong password for an existing user must not report user-not-found")
	}
}

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	// In-memory repo backed by a map to exercise the full flow.
	users := make(map[string]*models.User)
	repo := &mockUserRepository{
		createFunc: func(ctx context.Context, user *models.User) error {
			if _, exists := users[user.Username]; exists {
				return fmt.Errorf("failed to create user: %w", gorm.ErrDuplicatedKey)
			}
			user.ID = int64(len(users) + 1)
			users[user.Username] = user
			return nil
		},
		findByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			user, ok := users[username]
			if !ok {
				return nil, fmt.Errorf("failed to find user by username %s: %w", username, gorm.ErrRecordNotFound)
			}
			return user, nil
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	if _, err := authService.Register(context.Background(), "kasim", "kasim@123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	response, err := authService.Login(context.Background(), "kasim", "kasim@123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	subject, err := jwtService.ValidateToken(response.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if subject != "kasim" {
		t.Errorf("token subject = %s, want kasim", subject)
	}
}

// =============================================================================
// GetUser Tests
// =============================================================================

func TestGetUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Username: "testuser", PasswordHash: "x"}, nil
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	response, err := authService.GetUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if response.ID != 7 || response.Username != "testuser" {
		t.Errorf("GetUser() = %+v, want id=7 username=testuser", response)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, fmt.Errorf("failed to find user by id %d: %w", id, gorm.ErrRecordNotFound)
		},
	}

	jwtService := NewJWTService(testSecret, testAccessExpiry)
	authService := NewAuthService(repo, jwtService)

	_, err := authService.GetUser(context.Background(), 7)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser() error = %v, want ErrUserNotFound", err)
	}
}

// =============================================================================
// Password Hashing Tests
// =============================================================================

func TestPasswordHash_RoundTrip(t *testing.T) {
	plaintexts := []string{"password123", "kasim@123", "", "p", "üñïçødé-påsswörd"}

	for _, p := range plaintexts {
		hash, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("GenerateFromPassword(%q) error = %v", p, err)
		}
		if string(hash) == p {
			t.Errorf("hash equals plaintext for %q", p)
		}
		if err := bcrypt.CompareHashAndPassword(hash, []byte(p)); err != nil {
			t.Errorf("CompareHashAndPassword(%q) = %v, want nil", p, err)
		}
		if err := bcrypt.CompareHashAndPassword(hash, []byte(p+"-other")); err == nil {
			t.Errorf("CompareHashAndPassword accepted a different password for %q", p)
		}
	}
}
