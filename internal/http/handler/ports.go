package handler

import (
	"audio2score/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ScoreService . ScoreService
type ScoreService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.Session, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	ConvertUpload(ctx context.Context, userID uint, upload core.Upload) (core.MidiSummary, error)
	ListMidis(ctx context.Context, userID uint) ([]core.MidiSummary, error)
	GetMidi(ctx context.Context, userID, id uint) (core.MidiDetail, error)
	DownloadMidi(ctx context.Context, userID, id uint) (core.MidiDownload, error)
	DeleteMidi(ctx context.Context, userID, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name HealthChecker . HealthChecker
type HealthChecker interface {
	Ping(ctx context.Context) error
}
