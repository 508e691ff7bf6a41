package core

import (
	"audio2score/internal/repository"
	tokenIssuer "audio2score/pkg/jwt"
	"context"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetUserByID(ctx context.Context, id uint) (repository.User, error)
	CreateMidiFile(ctx context.Context, midi repository.MidiFile) (repository.MidiFile, error)
	ListMidiFiles(ctx context.Context, userID uint) ([]repository.MidiFile, error)
	GetMidiFile(ctx context.Context, userID, id uint) (repository.MidiFile, error)
	GetMidiFileInfo(ctx context.Context, userID, id uint) (repository.MidiFile, error)
	DeleteMidiFile(ctx context.Context, userID, id uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Transcriber . Transcriber
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, outputDir string) (string, error)
	OutputPath(audioPath, outputDir string) string
}

//counterfeiter:generate -o fake -fake-name Mirror . Mirror
type Mirror interface {
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
