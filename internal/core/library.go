package core

import (
	"audio2score/internal/repository"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
)

func (s *Scorer) ListMidis(ctx context.Context, userID uint) ([]MidiSummary, error) {
	midis, err := s.repo.ListMidiFiles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list midi files: %w", err)
	}

	summaries := make([]MidiSummary, 0, len(midis))
	for _, midi := range midis {
		summaries = append(summaries, toSummary(midi))
	}

	return summaries, nil
}

func (s *Scorer) GetMidi(ctx context.Context, userID, id uint) (MidiDetail, error) {
	midi, err := s.getMidi(ctx, userID, id)
	if err != nil {
		return MidiDetail{}, err
	}

	return MidiDetail{
		MidiSummary: toSummary(midi),
		MidiData:    base64.StdEncoding.EncodeToString(midi.MidiData),
	}, nil
}

// DownloadMidi returns the stored bytes with the name offered to the client.
func (s *Scorer) DownloadMidi(ctx context.Context, userID, id uint) (MidiDownload, error) {
	midi, err := s.getMidi(ctx, userID, id)
	if err != nil {
		return MidiDownload{}, err
	}

	return MidiDownload{
		Filename: midi.OriginalFilename + ".mid",
		Data:     midi.MidiData,
	}, nil
}

func (s *Scorer) DeleteMidi(ctx context.Context, userID, id uint) error {
	midi, err := s.repo.GetMidiFileInfo(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrMidiFileNotFound) {
			return ErrMidiNotFound
		}
		return fmt.Errorf("get midi file: %w", err)
	}

	if err := s.repo.DeleteMidiFile(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrMidiFileNotFound) {
			return ErrMidiNotFound
		}
		return fmt.Errorf("delete midi file: %w", err)
	}

	key := mirrorKey(midi)
	if err := s.mirror.Delete(ctx, key); err != nil {
		s.logs.Errorw("failed to remove mirrored midi file", "error", err, "key", key)
	}

	s.logs.Infow("midi file deleted", "user_id", userID, "midi_id", id)
	return nil
}

func (s *Scorer) getMidi(ctx context.Context, userID, id uint) (repository.MidiFile, error) {
	midi, err := s.repo.GetMidiFile(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrMidiFileNotFound) {
			return repository.MidiFile{}, ErrMidiNotFound
		}
		return repository.MidiFile{}, fmt.Errorf("get midi file: %w", err)
	}

	return midi, nil
}

func toSummary(midi repository.MidiFile) MidiSummary {
	return MidiSummary{
		ID:               midi.ID,
		Filename:         midi.Filename,
		OriginalFilename: midi.OriginalFilename,
		Duration:         midi.Duration,
		NoteCount:        midi.NoteCount,
		CreatedAt:        midi.CreatedAt,
	}
}

func mirrorKey(midi repository.MidiFile) string {
	return fmt.Sprintf("midi/%d/%d/%s", midi.UserID, midi.ID, midi.Filename)
}
