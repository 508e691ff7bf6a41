package handler

import (
	"net/http"
)

// Authenticator guards the routes that need a signed in user.
type Authenticator interface {
	Authenticate(next http.Handler) http.Handler
}

// NewRouter registers every route of the API. docs may be nil.
func NewRouter(h *ScoreHandler, auth Authenticator, docs http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	protected := func(fn http.HandlerFunc) http.Handler {
		return auth.Authenticate(fn)
	}

	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(Token, h.HandleToken)
	mux.Handle(Me, protected(h.HandleMe))

	mux.Handle(Upload, protected(h.HandleUpload))
	mux.Handle(Library, protected(h.HandleLibrary))
	mux.Handle(GetMidi, protected(h.HandleGetMidi))
	mux.Handle(DownloadMidi, protected(h.HandleDownloadMidi))
	mux.Handle(DeleteMidi, protected(h.HandleDeleteMidi))

	mux.HandleFunc(Root, h.HandleRoot)
	mux.HandleFunc(Health, h.HandleHealth)
	if docs != nil {
		mux.Handle(Docs, docs)
	}

	return mux
}
