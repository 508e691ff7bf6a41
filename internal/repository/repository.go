package repository

import (
	"audio2score/internal/db"
	"context"
	"errors"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrMidiFileNotFound error = errors.New("midi file not found")
var ErrUserExists error = errors.New("user already exists")

// libraryOrder lists newest first; id breaks ties between rows created in the
// same instant.
const (
	libraryOrder  = "created_at desc, id desc"
	payloadColumn = "midi_data"
)

type Store struct {
	db Storage
}

func NewStore(db Storage) *Store {
	return &Store{
		db: db,
	}
}

func (r *Store) Migrate() error {
	err := r.db.MigrateTable(&User{}, &MidiFile{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *Store) CreateUser(ctx context.Context, user User) (User, error) {
	if err := r.db.Create(ctx, &user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *Store) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUser(ctx, db.Conditions{"username": username})
}

func (r *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return r.getUser(ctx, db.Conditions{"email": email})
}

func (r *Store) GetUserByID(ctx context.Context, id uint) (User, error) {
	return r.getUser(ctx, db.Conditions{"id": id})
}

func (r *Store) getUser(ctx context.Context, conds db.Conditions) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, conds, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

func (r *Store) CreateMidiFile(ctx context.Context, midi MidiFile) (MidiFile, error) {
	if err := r.db.Create(ctx, &midi); err != nil {
		return MidiFile{}, fmt.Errorf("create midi file: %w", err)
	}

	return midi, nil
}

// ListMidiFiles returns the owner's files without their payload.
func (r *Store) ListMidiFiles(ctx context.Context, userID uint) ([]MidiFile, error) {
	midis := []MidiFile{}

	err := r.db.GetAllBy(ctx, db.Conditions{"user_id": userID}, libraryOrder, &midis, payloadColumn)
	if err != nil {
		return nil, fmt.Errorf("list midi files: %w", err)
	}

	return midis, nil
}

func (r *Store) GetMidiFile(ctx context.Context, userID, id uint) (MidiFile, error) {
	return r.getMidiFile(ctx, userID, id)
}

// GetMidiFileInfo is GetMidiFile without the payload.
func (r *Store) GetMidiFileInfo(ctx context.Context, userID, id uint) (MidiFile, error) {
	return r.getMidiFile(ctx, userID, id, payloadColumn)
}

func (r *Store) getMidiFile(ctx context.Context, userID, id uint, omit ...string) (MidiFile, error) {
	var midi MidiFile

	err := r.db.GetOneBy(ctx, db.Conditions{"id": id, "user_id": userID}, &midi, omit...)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return MidiFile{}, ErrMidiFileNotFound
		}
		return MidiFile{}, fmt.Errorf("get midi file: %w", err)
	}

	return midi, nil
}

func (r *Store) DeleteMidiFile(ctx context.Context, userID, id uint) error {
	err := r.db.DeleteBy(ctx, db.Conditions{"id": id, "user_id": userID}, &MidiFile{})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrMidiFileNotFound
		}
		return fmt.Errorf("delete midi file: %w", err)
	}

	return nil
}
