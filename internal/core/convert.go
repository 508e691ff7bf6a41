package core

import (
	"audio2score/internal/repository"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var supportedContentTypes = map[string]struct{}{
	"audio/mpeg":  {},
	"audio/wav":   {},
	"audio/mp3":   {},
	"audio/x-wav": {},
	"audio/wave":  {},
}

var supportedExtensions = []string{".mp3", ".wav"}

// IsSupportedAudio accepts a file when either its declared content type or
// its extension names a supported format.
func IsSupportedAudio(contentType, filename string) bool {
	if _, ok := supportedContentTypes[contentType]; ok {
		return true
	}

	name := strings.ToLower(filename)
	for _, ext := range supportedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ConvertUpload transcribes the uploaded audio and stores the resulting MIDI
// file for userID. Scratch files are removed on every path. Once the upload is
// accepted, failures are returned as *ConversionError.
func (s *Scorer) ConvertUpload(ctx context.Context, userID uint, upload Upload) (MidiSummary, error) {
	if !IsSupportedAudio(upload.ContentType, upload.Filename) {
		return MidiSummary{}, ErrUnsupportedMediaType
	}

	name := fmt.Sprintf("audio_%d_%s", userID, filepath.Base(upload.Filename))
	file, err := s.scratch.Write(name, upload.Content)
	defer func() {
		if err := file.Release(); err != nil {
			s.logs.Errorw("failed to release scratch files", "error", err, "user_id", userID)
		}
	}()
	if err != nil {
		return MidiSummary{}, &ConversionError{Stage: StageStoreUpload, Err: err}
	}

	s.logs.Infow("converting audio to midi", "user_id", userID, "filename", upload.Filename)

	// The model may leave its output behind even when it fails.
	file.Track(s.transcriber.OutputPath(file.Path(), s.scratch.Dir()))

	midiPath, err := s.transcriber.Transcribe(ctx, file.Path(), s.scratch.Dir())
	if err != nil {
		return MidiSummary{}, &ConversionError{Stage: StageTranscribe, Err: fmt.Errorf("%w: %w", ErrModelFailure, err)}
	}
	file.Track(midiPath)

	data, err := os.ReadFile(midiPath)
	if err != nil {
		return MidiSummary{}, &ConversionError{Stage: StageReadMidi, Err: err}
	}

	noteCount := CountNoteOns(data)

	// The model already ran; keep its result even if the client went away.
	saveCtx := context.WithoutCancel(ctx)
	midi, err := s.repo.CreateMidiFile(saveCtx, repository.MidiFile{
		UserID:           userID,
		Filename:         filepath.Base(midiPath),
		OriginalFilename: upload.Filename,
		MidiData:         data,
		NoteCount:        &noteCount,
	})
	if err != nil {
		return MidiSummary{}, &ConversionError{Stage: StageSave, Err: err}
	}

	key := mirrorKey(midi)
	if err := s.mirror.Put(saveCtx, key, data); err != nil {
		s.logs.Errorw("failed to mirror midi file", "error", err, "key", key)
	}

	s.logs.Infow("midi file created",
		"user_id", userID,
		"midi_id", midi.ID,
		"filename", midi.Filename,
		"note_count", noteCount,
	)

	return toSummary(midi), nil
}
