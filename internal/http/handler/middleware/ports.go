package middleware

import (
	"audio2score/internal/core"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (core.UserProfile, error)
}
