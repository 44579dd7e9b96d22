// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/stefanninkovic/carunity/internal/config"
	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type AuthService struct {
	users *store.UserStore
	cfg   *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type AuthResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int         `json:"expires_in"` // in seconds
}

func NewAuthService(users *store.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

// Login checks the credentials against the mock table and issues an
// access token. Session state lives only in process memory.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.Authenticate(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Register appends a new credential row and identity, then authenticates
// as that identity. A duplicate email leaves the table untouched.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.Create(req.Name, req.Email, req.Password, req.Phone, req.Location)
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) GetUser(userID string) (models.User, error) {
	user, ok := s.users.Get(userID)
	if !ok {
		return models.User{}, errors.New("user not found")
	}
	return user, nil
}

// UpdateProfile merges the patch into the authenticated identity.
func (s *AuthService) UpdateProfile(userID string, patch models.UserPatch) (models.User, error) {
	return s.users.Update(userID, patch)
}

func (s *AuthService) issueToken(user models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Name, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
