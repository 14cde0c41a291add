package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/password"
	accountrepo "storefront/internal/repository/account"
	"storefront/internal/token"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput indicates a missing or malformed request field.
	ErrInvalidInput = errors.New("invalid input")
)

// Service handles account registration and login flows.
type Service struct {
	repo   accountrepo.Repository
	hasher *password.Hasher
	tokens *token.Manager
}

// New creates a Service wiring the credential store, hasher and token manager.
func New(repo accountrepo.Repository, hasher *password.Hasher, tokens *token.Manager) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register persists a new account and mints a bearer token for it. The token
// is minted only after the record is durably stored, so a failed registration
// never leaks a usable token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Account, string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	switch {
	case name == "":
		return nil, "", fmt.Errorf("%w: name required", ErrInvalidInput)
	case email == "":
		return nil, "", fmt.Errorf("%w: email required", ErrInvalidInput)
	case in.Password == "":
		return nil, "", fmt.Errorf("%w: password required", ErrInvalidInput)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	created, err := s.repo.Create(ctx, domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		return nil, "", err
	}

	t, err := s.tokens.Mint(created.ID, created.Email)
	if err != nil {
		return nil, "", err
	}
	return created, t, nil
}

// Login validates credentials and returns the account plus a fresh token.
func (s *Service) Login(ctx context.Context, email, pass string) (*domain.Account, string, error) {
	a, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !s.hasher.Verify(pass, a.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	t, err := s.tokens.Mint(a.ID, a.Email)
	if err != nil {
		return nil, "", err
	}
	return a, t, nil
}

// Profile returns the account behind a verified token subject.
func (s *Service) Profile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.repo.GetByID(ctx, accountID)
}
