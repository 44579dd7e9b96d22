// internal/store/users.go
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/stefanninkovic/carunity/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore holds the mock credential table and the identities it maps
// to. Users are never deleted within a process lifetime.
type UserStore struct {
	mu          sync.RWMutex
	users       map[string]models.User       // by user id
	credentials map[string]models.Credential // by email
}

type SeedUser struct {
	User     models.User
	Password string
}

func NewUserStore(seed []SeedUser) (*UserStore, error) {
	s := &UserStore{
		users:       make(map[string]models.User),
		credentials: make(map[string]models.Credential),
	}

	for _, su := range seed {
		cred := models.Credential{Email: su.User.Email, UserID: su.User.ID}
		if err := cred.SetPassword(su.Password); err != nil {
			return nil, err
		}
		s.users[su.User.ID] = su.User
		s.credentials[su.User.Email] = cred
	}
	return s, nil
}

// Authenticate checks email and password against the credential table.
func (s *UserStore) Authenticate(email, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.credentials[email]
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := cred.CheckPassword(password); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return s.users[cred.UserID], nil
}

// Create registers a new identity. A duplicate email fails without
// touching the table.
func (s *UserStore) Create(name, email, password, phone, location string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.credentials[email]; exists {
		return models.User{}, ErrEmailExists
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Location: location,
	}
	cred := models.Credential{Email: email, UserID: user.ID}
	if err := cred.SetPassword(password); err != nil {
		return models.User{}, err
	}

	s.users[user.ID] = user
	s.credentials[email] = cred
	return user, nil
}

func (s *UserStore) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

// Update merges the patch into an existing identity.
func (s *UserStore) Update(id string, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	patch.Apply(&user)
	s.users[id] = user
	return user, nil
}

// Count reports the number of registered identities.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
