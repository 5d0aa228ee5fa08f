package service

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"otomo-storefront/storefront-svc/internal/domain"
)

// AdminCredential is one admin account: a bcrypt hash and a role. Hashes
// come from configuration, there are no credentials in source.
type AdminCredential struct {
	PasswordHash string
	Role         string
}

// BcryptAuthenticator checks credentials against configured bcrypt
// hashes. It stands in for a real identity provider behind the same
// Authenticator interface.
type BcryptAuthenticator struct {
	users map[string]AdminCredential
}

func NewBcryptAuthenticator(users map[string]AdminCredential) *BcryptAuthenticator {
	if users == nil {
		users = map[string]AdminCredential{}
	}
	return &BcryptAuthenticator{users: users}
}

func (a *BcryptAuthenticator) Authenticate(username, password string) (*domain.AdminUser, error) {
	credential, ok := a.users[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &domain.AdminUser{Username: username, Role: credential.Role}, nil
}

var _ Authenticator = (*BcryptAuthenticator)(nil)

// AuthService issues opaque session tokens for authenticated admins.
// Tokens live in process memory and vanish on restart, like the rest of
// the stores.
type AuthService struct {
	authenticator Authenticator

	mu       sync.RWMutex
	sessions map[string]domain.AdminUser
}

func NewAuthService(authenticator Authenticator) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		sessions:      map[string]domain.AdminUser{},
	}
}

func (s *AuthService) Login(username, password string) (string, *domain.AdminUser, error) {
	user, err := s.authenticator.Authenticate(username, password)
	if err != nil {
		return "", nil, err
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = *user
	s.mu.Unlock()

	return token, user, nil
}

func (s *AuthService) Verify(token string) (*domain.AdminUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

var _ AuthServiceInterface = (*AuthService)(nil)
