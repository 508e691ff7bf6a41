package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrUnsupportedMediaType  = errors.New("only MP3 and WAV files are supported")
	ErrInvalidCredentials    = errors.New("incorrect username or password")
	ErrInvalidOrExpiredToken = errors.New("could not validate credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrMidiNotFound          = errors.New("MIDI file not found")
	ErrModelFailure          = errors.New("transcription model failed")
)

// Conversion stages reported by ConversionError.
const (
	StageStoreUpload = "store upload"
	StageTranscribe  = "transcribe"
	StageReadMidi    = "read midi"
	StageSave        = "save midi"
)

// ConversionError is returned for any failure after an upload was accepted.
type ConversionError struct {
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
