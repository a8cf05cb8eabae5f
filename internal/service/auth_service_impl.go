package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rcamargo/pdiflow/internal/repository"
)

type authService struct {
	persons repository.PersonRepo
}

// NewAuthService creates an AuthService backed by the people table.
func NewAuthService(persons repository.PersonRepo) AuthService {
	return &authService{persons: persons}
}

// Authenticate compares the submitted secret against the stored person
// identifier. The identifier is the shared secret; nothing is hashed.
func (s *authService) Authenticate(ctx context.Context, email, secret string) (bool, error) {
	p, err := s.persons.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("looking up person: %w", err)
	}
	return strings.TrimSpace(p.Secret) == strings.TrimSpace(secret), nil
}
