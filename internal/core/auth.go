package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todoapi/internal/repository"
	tokenIssuer "todoapi/pkg/jwt"

	"go.uber.org/zap"
)

// MaxPasswordBytes is the longest password bcrypt can digest.
const MaxPasswordBytes = 72

var ErrEmailTaken error = errors.New("email already registered")
var ErrPasswordTooLong error = errors.New("password is too long")
var ErrInvalidCredentials error = errors.New("incorrect email or password")
var ErrInvalidToken error = errors.New("could not validate credentials")
var ErrExpiredToken error = errors.New("token has expired")
var ErrUnknownSubject error = errors.New("token subject is not a known user")

// bcrypt digest compared against when the email is unknown, so a miss costs as much as a
// wrong password.
const dummyHash = "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"

// AuthService registers users, logs them in and resolves bearer tokens back to users.
type AuthService struct {
	logs     *zap.SugaredLogger
	users    UserRepository
	tokens   TokenIssuer
	hasher   PasswordHasher
	tokenTTL time.Duration
}

// NewAuthService is a constructor function for the AuthService type.
func NewAuthService(logger *zap.SugaredLogger, users UserRepository, tokens TokenIssuer, hasher PasswordHasher, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		logs:     logger,
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		tokenTTL: tokenTTL,
	}
}

// Register creates a user for email and returns a token for it. The email must not be in use.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	_, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("find user by email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.logs.Infow("concurrent registration lost the race", "email", email)
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user registered", "user_id", user.ID)

	return s.issue(user.Email)
}

// Login exchanges valid credentials for a token. Unknown email and wrong password both yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.hasher.Verify(password, dummyHash)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	return s.issue(user.Email)
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, token string) (User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, tokenIssuer.ErrTokenExpired) {
			return User{}, fmt.Errorf("%w: %w", ErrExpiredToken, err)
		}
		return User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := s.users.FindUserByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return User{}, ErrUnknownSubject
		}
		return User{}, fmt.Errorf("find token subject: %w", err)
	}

	return User{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}

func (s *AuthService) issue(email string) (string, error) {
	token, err := s.tokens.Issue(email, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
