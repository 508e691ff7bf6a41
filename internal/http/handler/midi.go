package handler

import (
	"audio2score/internal/core"
	"audio2score/internal/http/handler/middleware"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// HandleUpload converts an uploaded MP3 or WAV file into a stored MIDI file.
// The request stays open until the transcription finishes.
//
// @Summary Convert audio to MIDI
// @Tags MIDI
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param audio formData file true "MP3 or WAV file"
// @Success 201 {object} core.MidiSummary
// @Failure 400 {object} Response "Unsupported file type"
// @Failure 413 {object} Response "Upload too large"
// @Failure 500 {object} Response "Conversion failed"
// @Router /api/midi/upload [post]
func (h *ScoreHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, ok := h.currentUser(w, r, requestId)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		h.respond(w, Response{
			Message: "Upload failed",
			Error:   fmt.Errorf("parse multipart form: %w", err).Error(),
		}, code,
			requestId)
		h.logs.Errorw("failed to parse upload",
			"error", err,
			"handler", Upload,
			"request_id", requestId)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logs.Errorw("failed to remove multipart files",
				"error", err,
				"handler", Upload,
				"request_id", requestId)
		}
	}()

	file, header, err := r.FormFile("audio")
	if err != nil {
		h.respond(w, Response{
			Message: "Upload failed",
			Error:   fmt.Errorf("audio field: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing audio file",
			"error", err,
			"handler", Upload,
			"request_id", requestId)
		return
	}
	defer file.Close()

	h.logs.Infow("audio upload received",
		"user_id", user.ID,
		"filename", header.Filename,
		"size", header.Size,
		"handler", Upload,
		"request_id", requestId)

	summary, err := h.scorer.ConvertUpload(r.Context(), user.ID, core.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		code := statusFor(err)
		resp := Response{
			Message: "Upload failed",
			Error:   err.Error(),
		}
		if code == http.StatusInternalServerError {
			resp.Error = "Failed to convert audio to MIDI: " + err.Error()
		}
		h.respond(w, resp, code, requestId)
		h.logs.Errorw("conversion failed",
			"error", err,
			"user_id", user.ID,
			"handler", Upload,
			"request_id", requestId)
		return
	}

	h.respond(w, summary, http.StatusCreated, requestId)
}

// HandleLibrary lists the caller's MIDI files, newest first.
//
// @Summary List MIDI files
// @Tags MIDI
// @Produce json
// @Security BearerAuth
// @Success 200 {object} LibraryResponse
// @Router /api/midi/library [get]
func (h *ScoreHandler) HandleLibrary(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, ok := h.currentUser(w, r, requestId)
	if !ok {
		return
	}

	midis, err := h.scorer.ListMidis(r.Context(), user.ID)
	if err != nil {
		h.fail(w, "Could not retrieve library", err, requestId)
		h.logs.Errorw("failed to list midi files",
			"error", err,
			"user_id", user.ID,
			"handler", Library,
			"request_id", requestId)
		return
	}

	h.respond(w, LibraryResponse{
		Midis: midis,
		Count: len(midis),
	}, http.StatusOK, requestId)
}

// HandleGetMidi returns one MIDI file with its base64 payload.
//
// @Summary Get a MIDI file
// @Tags MIDI
// @Produce json
// @Security BearerAuth
// @Param id path int true "MIDI file id"
// @Success 200 {object} core.MidiDetail
// @Failure 404 {object} Response
// @Router /api/midi/{id} [get]
func (h *ScoreHandler) HandleGetMidi(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, ok := h.currentUser(w, r, requestId)
	if !ok {
		return
	}

	id, err := midiID(r)
	if err == nil {
		var detail core.MidiDetail
		detail, err = h.scorer.GetMidi(r.Context(), user.ID, id)
		if err == nil {
			h.respond(w, detail, http.StatusOK, requestId)
			return
		}
	}

	h.fail(w, "Could not retrieve MIDI file", err, requestId)
	h.logs.Errorw("failed to get midi file",
		"error", err,
		"id", r.PathValue("id"),
		"user_id", user.ID,
		"handler", GetMidi,
		"request_id", requestId)
}

// HandleDownloadMidi streams the stored MIDI bytes as an attachment.
//
// @Summary Download a MIDI file
// @Tags MIDI
// @Produce audio/midi
// @Security BearerAuth
// @Param id path int true "MIDI file id"
// @Success 200 {file} binary
// @Failure 404 {object} Response
// @Router /api/midi/{id}/download [get]
func (h *ScoreHandler) HandleDownloadMidi(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, ok := h.currentUser(w, r, requestId)
	if !ok {
		return
	}

	id, err := midiID(r)
	if err == nil {
		var download core.MidiDownload
		download, err = h.scorer.DownloadMidi(r.Context(), user.ID, id)
		if err == nil {
			w.Header().Set("Content-Type", "audio/midi")
			w.Header().Set("Content-Disposition", attachment(download.Filename))
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(download.Data); err != nil {
				h.logs.Errorw("failed to write midi bytes",
					"error", err,
					"handler", DownloadMidi,
					"request_id", requestId)
			}
			return
		}
	}

	h.fail(w, "Could not download MIDI file", err, requestId)
	h.logs.Errorw("failed to download midi file",
		"error", err,
		"id", r.PathValue("id"),
		"user_id", user.ID,
		"handler", DownloadMidi,
		"request_id", requestId)
}

// HandleDeleteMidi removes one of the caller's MIDI files.
//
// @Summary Delete a MIDI file
// @Tags MIDI
// @Produce json
// @Security BearerAuth
// @Param id path int true "MIDI file id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/midi/{id} [delete]
func (h *ScoreHandler) HandleDeleteMidi(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, ok := h.currentUser(w, r, requestId)
	if !ok {
		return
	}

	id, err := midiID(r)
	if err == nil {
		err = h.scorer.DeleteMidi(r.Context(), user.ID, id)
	}
	if err != nil {
		h.fail(w, "Could not delete MIDI file", err, requestId)
		h.logs.Errorw("failed to delete midi file",
			"error", err,
			"id", r.PathValue("id"),
			"user_id", user.ID,
			"handler", DeleteMidi,
			"request_id", requestId)
		return
	}

	h.logs.Infow("midi file deleted",
		"id", id,
		"user_id", user.ID,
		"handler", DeleteMidi,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "MIDI file deleted successfully",
	}, http.StatusOK, requestId)
}

// attachment builds a Content-Disposition value. Non-ASCII names are sent as
// an RFC 2231 filename* parameter.
func attachment(filename string) string {
	value := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if value == "" {
		return "attachment"
	}
	return value
}
