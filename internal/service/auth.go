package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	apperrors "github.com/rlwai/shop-api/internal/errors"
	"github.com/rlwai/shop-api/internal/repository"
	"github.com/rlwai/shop-api/internal/util"
)

type LoginResult struct {
	Token string  `json:"token"`
	User  string  `json:"user"`
	Phone *string `json:"phone"`
}

type AuthService struct {
	customerRepo repository.CustomerRepository
	sessions     SessionStore
}

func NewAuthService(customerRepo repository.CustomerRepository, sessions SessionStore) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		sessions:     sessions,
	}
}

// Login checks the customer's pass phrase and issues a bearer token.
// Both login and phrase are case-insensitive.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	password = strings.ToLower(password)
	if username == "" || password == "" {
		return nil, apperrors.ValidationError("Missing username or password")
	}

	customer, err := s.customerRepo.FindEnabledByLogin(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil || !util.CheckPassword(password, customer.Phrase) {
		return nil, apperrors.InvalidCredentials()
	}

	displayName := customer.DisplayName()
	token, err := s.sessions.Issue(customer.ID, customer.Login, displayName)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	log.Info().
		Int64("customerId", customer.ID).
		Str("login", customer.Login).
		Msg("customer logged in")

	return &LoginResult{
		Token: token,
		User:  displayName,
		Phone: customer.Phone,
	}, nil
}
