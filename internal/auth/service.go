package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo AdminRepository
}

func NewService(repo AdminRepository) *Service {
	return &Service{repo: repo}
}

// SeedAdmin registers the admin account configured in the environment.
// Idempotent: an existing account just gets its password refreshed.
func (s *Service) SeedAdmin(email, password string) (*Admin, error) {
	if email == "" || password == "" {
		return nil, errors.New("missing admin credentials")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.repo.Save(admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*Admin, error) {
	admin, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(admin.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
