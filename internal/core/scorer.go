package core

import (
	"audio2score/internal/scratch"
	"time"

	"go.uber.org/zap"
)

// Scorer turns uploaded audio into MIDI files and manages the users owning
// them.
type Scorer struct {
	logs        *zap.SugaredLogger
	repo        Repository
	jwtIssuer   JWTIssuer
	transcriber Transcriber
	mirror      Mirror
	scratch     *scratch.Area
	tokenTTL    time.Duration
}

func NewScorer(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, transcriber Transcriber, mirror Mirror, area *scratch.Area, tokenTTL time.Duration) *Scorer {
	return &Scorer{
		logs:        logger,
		repo:        repo,
		jwtIssuer:   jwt,
		transcriber: transcriber,
		mirror:      mirror,
		scratch:     area,
		tokenTTL:    tokenTTL,
	}
}
