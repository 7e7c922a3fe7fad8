package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/checklists/internal/checklists/domain"
	"github.com/aussiebroadwan/checklists/internal/checklists/store"
	"github.com/aussiebroadwan/checklists/pkg/cryptox"
	"github.com/aussiebroadwan/checklists/pkg/idx"
	"github.com/aussiebroadwan/checklists/pkg/slogx"
)

type UserService struct {
	Store  store.Store
	Hasher *cryptox.Hasher

	// dummyHash is verified against for unknown emails. No password is
	// expected to match it.
	dummyHash string
}

// NewUserService builds a UserService, hashing its dummy password up front
// so no login pays for it.
func NewUserService(st store.Store, hasher *cryptox.Hasher) (*UserService, error) {
	pw, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return nil, err
	}
	dummy, err := hasher.Hash(pw)
	if err != nil {
		return nil, err
	}
	return &UserService{Store: st, Hasher: hasher, dummyHash: dummy}, nil
}

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates a user from an email and a plaintext password. Failures
// are *ValidationError, including an email that is already registered.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	in := credentials{Email: strings.TrimSpace(email), Password: password}
	if err := validateStruct(in); err != nil {
		return domain.User{}, err
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, in.Email); err == nil {
		return domain.User{}, newValidationError("email", "is already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, newValidationError("email", "is already registered")
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID)
	return u, nil
}

// Authenticate returns the user whose credentials match. An unknown email
// and a wrong password are indistinguishable: both are ErrAuthentication and
// both pay for one hash verification.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.Hasher.Verify(password, s.dummyHash)
			return domain.User{}, ErrAuthentication
		}
		return domain.User{}, err
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			slogx.FromContext(ctx).Error("stored password hash unreadable", "user_id", u.ID, "err", err)
		}
		return domain.User{}, ErrAuthentication
	}
	return u, nil
}

// GetUser fetches a user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return u, err
}
