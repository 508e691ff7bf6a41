package core

import (
	"io"
	"time"
)

type RegisterMessage struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserProfile struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the result of a successful registration or login.
type Session struct {
	Token string
	User  UserProfile
}

// Upload is an audio file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type MidiSummary struct {
	ID               uint      `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	Duration         *float64  `json:"duration"`
	NoteCount        *int      `json:"note_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type MidiDetail struct {
	MidiSummary
	MidiData string `json:"midi_data"` // base64
}

type MidiDownload struct {
	Filename string
	Data     []byte
}
