package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering/metrics"
	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/utils"
)

const minPasswordLength = 6

// AuthService registers users, checks credentials and resolves session tokens.
type AuthService struct {
	users  UserStore
	tokens *utils.TokenIssuer
}

func NewAuthService(users UserStore, tokens *utils.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates the account and returns it with a fresh session token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	user, token, err := s.register(ctx, username, email, password)
	recordAuth("register", err)
	return user, token, err
}

func (s *AuthService) register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, "", utils.ValidationError("All fields are required")
	}
	if len(password) < minPasswordLength {
		return nil, "", utils.ValidationError("Password must be at least 6 characters")
	}

	existing, err := s.users.FindByEmailOrUsername(ctx, email, username)
	switch {
	case err == nil:
		return nil, "", duplicateUserError(existing, email)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, "", utils.InternalError("Server error during registration", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", utils.InternalError("Server error during registration", err)
	}

	// The token is issued first so a signing failure leaves no account behind.
	user := &models.User{ID: uuid.NewString(), Username: username, Email: email, Password: hashed}
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race with a concurrent registration
			if existing, findErr := s.users.FindByEmailOrUsername(ctx, email, username); findErr == nil {
				return nil, "", duplicateUserError(existing, email)
			}
			return nil, "", utils.ConflictError("Username already taken")
		}
		return nil, "", utils.InternalError("Server error during registration", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("user registered")
	return user, token, nil
}

// Authenticate checks username and password. Unknown users and wrong
// passwords produce the same error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, string, error) {
	user, token, err := s.authenticate(ctx, username, password)
	recordAuth("login", err)
	return user, token, err
}

func (s *AuthService) authenticate(ctx context.Context, username, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", utils.ValidationError("Username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.BurnPasswordCheck(password)
			return nil, "", utils.AuthError("Invalid username or password", nil)
		}
		return nil, "", utils.InternalError("Server error during login", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, "", utils.AuthError("Invalid username or password", nil)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify resolves a bearer token to the user it was issued for.
func (s *AuthService) Verify(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.AuthError("User not found", nil)
		}
		return nil, utils.InternalError("Server error", err)
	}
	return user, nil
}

func duplicateUserError(existing *models.User, email string) error {
	if existing.Email == email {
		return utils.ConflictError("Email already registered")
	}
	return utils.ConflictError("Username already taken")
}

func recordAuth(action string, err error) {
	result := "success"
	if err != nil {
		switch utils.KindOf(err) {
		case utils.KindValidation:
			result = "invalid"
		case utils.KindConflict:
			result = "conflict"
		case utils.KindAuth:
			result = "denied"
		default:
			result = "error"
		}
	}
	metrics.RecordAuthAttempt(action, result)
}
