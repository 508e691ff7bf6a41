package transcribe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	toolName     = "basic-pitch"
	outputSuffix = "_basic_pitch.mid"
)

// BasicPitch transcribes audio files with the Basic Pitch command line tool.
// At most workers transcriptions run at the same time.
type BasicPitch struct {
	logs    *zap.SugaredLogger
	runner  CommandRunner
	bin     string
	slots   *semaphore.Weighted
	timeout time.Duration
}

// NewBasicPitch creates a transcriber running bin. A zero timeout lets a run
// take as long as the model needs.
func NewBasicPitch(logger *zap.SugaredLogger, runner CommandRunner, bin string, workers int64, timeout time.Duration) *BasicPitch {
	if workers < 1 {
		workers = 1
	}

	return &BasicPitch{
		logs:    logger,
		runner:  runner,
		bin:     bin,
		slots:   semaphore.NewWeighted(workers),
		timeout: timeout,
	}
}

// Transcribe converts audioPath into a MIDI file inside outputDir and returns
// the path of the produced file.
//
// Waiting for a free slot honours ctx. Once started, the run is detached from
// ctx cancellation so a client hanging up does not kill the model half way.
func (b *BasicPitch) Transcribe(ctx context.Context, audioPath, outputDir string) (string, error) {
	if err := b.slots.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("wait for transcription slot: %w", err)
	}
	defer b.slots.Release(1)

	runCtx := context.WithoutCancel(ctx)
	if b.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, b.timeout)
		defer cancel()
	}

	midiPath := OutputPath(audioPath, outputDir)

	// A file left by an earlier run would pass for this run's output.
	if err := removeOutput(midiPath); err != nil {
		return "", err
	}

	result, err := b.runner.Run(runCtx, b.bin, outputDir, audioPath)
	if err != nil {
		procErr := &ProcessError{
			Tool:  toolName,
			Cause: err,
		}
		if result != nil {
			procErr.ExitCode = result.ExitCode
			procErr.Stderr = strings.TrimSpace(result.Stderr)
		}
		if rmErr := removeOutput(midiPath); rmErr != nil {
			b.logs.Errorw("failed to remove partial output", "error", rmErr, "midi", midiPath)
		}
		return "", procErr
	}

	if _, err := os.Stat(midiPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutputMissing, midiPath)
	}

	b.logs.Infow("transcription finished",
		"audio", filepath.Base(audioPath),
		"midi", filepath.Base(midiPath),
		"duration", result.Duration,
	)

	return midiPath, nil
}

// OutputPath is where Transcribe leaves the MIDI file for audioPath.
func (b *BasicPitch) OutputPath(audioPath, outputDir string) string {
	return OutputPath(audioPath, outputDir)
}

func removeOutput(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale output: %w", err)
	}
	return nil
}

// OutputPath is where Basic Pitch writes the MIDI file for audioPath.
func OutputPath(audioPath, outputDir string) string {
	name := filepath.Base(audioPath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(outputDir, stem+outputSuffix)
}
