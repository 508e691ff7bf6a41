package handler

import "audio2score/internal/core"

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

type AuthResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    core.UserProfile `json:"user"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type LibraryResponse struct {
	Midis []core.MidiSummary `json:"midis"`
	Count int                `json:"count"`
}

type RootResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Framework string `json:"framework"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	API      string `json:"api"`
}
