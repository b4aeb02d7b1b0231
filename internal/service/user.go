package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/shopkit/shopkit/internal/auth"
	"github.com/shopkit/shopkit/internal/model"
	"github.com/shopkit/shopkit/internal/repository"
)

// Input limits for signup.
const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 6
)

// emailRegex matches a basic "local@domain.tld" shape. Full RFC 5322
// validation is out of scope; the store's unique index is the backstop.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore is the store contract the user service depends on.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserService orchestrates signup and signin.
type UserService struct {
	store      UserStore
	tokens     *auth.TokenIssuer
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, tokens *auth.TokenIssuer, bcryptCost int) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = auth.DefaultBcryptCost
	}
	return &UserService{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// SignupInput defines input for signup.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// SigninInput defines input for signin.
type SigninInput struct {
	Email    string
	Password string
}

// Signup validates the input, checks email uniqueness, hashes the password,
// persists the user and issues a bearer token.
// Validation failures short-circuit before any store access.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (string, *model.User, error) {
	if err := validateSignup(input); err != nil {
		return "", nil, err
	}

	// Fast-path duplicate check. The unique index on users.email catches
	// the loser of a concurrent signup race below.
	exists, err := s.store.EmailExists(ctx, input.Email)
	if err != nil {
		return "", nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return "", nil, ErrDuplicateUser
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", nil, ErrDuplicateUser
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// Signin validates the input, fetches the user by email, verifies the
// password hash and issues a bearer token.
func (s *UserService) Signin(ctx context.Context, input SigninInput) (string, *model.User, error) {
	if err := validateSignin(input); err != nil {
		return "", nil, err
	}

	user, err := s.store.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	match, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

// GetUser returns the user with the given ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func validateSignup(input SignupInput) error {
	verr := &ValidationError{}

	if len(input.Username) < minUsernameLength {
		verr.add("username", fmt.Sprintf("must be at least %d characters", minUsernameLength))
	} else if len(input.Username) > maxUsernameLength {
		verr.add("username", fmt.Sprintf("must be at most %d characters", maxUsernameLength))
	}

	if !emailRegex.MatchString(input.Email) {
		verr.add("email", "must be a valid email address")
	}

	if len(input.Password) < minPasswordLength {
		verr.add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	return verr.orNil()
}

func validateSignin(input SigninInput) error {
	verr := &ValidationError{}

	if !emailRegex.MatchString(input.Email) {
		verr.add("email", "must be a valid email address")
	}

	if input.Password == "" {
		verr.add("password", "must not be empty")
	}

	return verr.orNil()
}
