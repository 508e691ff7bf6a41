package core

import (
	"audio2score/internal/repository"
	tokenIssuer "audio2score/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user and signs a token for it. Input shape is
// validated by the caller.
func (s *Scorer) Register(ctx context.Context, msg RegisterMessage) (Session, error) {
	if err := s.ensureAvailable(ctx, msg); err != nil {
		return Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, repository.User{
		Username:       msg.Username,
		Email:          msg.Email,
		HashedPassword: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return Session{}, ErrUserAlreadyExists
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.signToken(user)
	if err != nil {
		return Session{}, err
	}

	s.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)

	return Session{
		Token: token,
		User:  toProfile(user),
	}, nil
}

func (s *Scorer) ensureAvailable(ctx context.Context, msg RegisterMessage) error {
	_, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return fmt.Errorf("%w: username %q is taken", ErrUserAlreadyExists, msg.Username)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user by username: %w", err)
	}

	_, err = s.repo.GetUserByEmail(ctx, msg.Email)
	if err == nil {
		return fmt.Errorf("%w: email %q is registered", ErrUserAlreadyExists, msg.Email)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("get user by email: %w", err)
	}

	return nil
}

// Authenticate checks the provided username and password against the
// database. If the credentials are valid, it signs a token for the user.
func (s *Scorer) Authenticate(ctx context.Context, msg AuthMessage) (Session, error) {
	user, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(msg.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token: token,
		User:  toProfile(user),
	}, nil
}

// VerifyToken resolves a bearer token to the user it was issued for.
func (s *Scorer) VerifyToken(ctx context.Context, token string) (UserProfile, error) {
	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 0)
	if err != nil {
		return UserProfile{}, fmt.Errorf("%w: bad subject %q", ErrInvalidOrExpiredToken, sub)
	}

	user, err := s.repo.GetUserByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, fmt.Errorf("get user by id: %w", err)
	}

	return toProfile(user), nil
}

func (s *Scorer) signToken(user repository.User) (string, error) {
	token := s.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: s.tokenTTL,
	})

	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func toProfile(user repository.User) UserProfile {
	return UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
