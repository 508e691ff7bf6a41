package handler_test

import (
	"audio2score/internal/core"
	"audio2score/internal/http/handler"
	"audio2score/internal/http/handler/fake"
	"audio2score/internal/http/handler/middleware"
	mwfake "audio2score/internal/http/handler/middleware/fake"
	"audio2score/internal/http/payload"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func multipartBody(field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(content)
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())

	return body, writer.FormDataContentType()
}

func decodeBody(rec *httptest.ResponseRecorder, out any) {
	Expect(json.Unmarshal(rec.Body.Bytes(), out)).To(Succeed())
}

var _ = Describe("ScoreHandler", func() {
	var (
		fakeService  *fake.ScoreService
		fakeHealth   *fake.HealthChecker
		fakeVerifier *mwfake.TokenVerifier
		router       http.Handler
		rec          *httptest.ResponseRecorder
		req          *http.Request
		alice        core.UserProfile
		fakeErr      error
	)

	BeforeEach(func() {
		fakeService = new(fake.ScoreService)
		fakeHealth = new(fake.HealthChecker)
		fakeVerifier = new(mwfake.TokenVerifier)
		fakeErr = errors.New("fake error")
		logger := zap.NewNop().Sugar()

		alice = core.UserProfile{
			ID:        7,
			Username:  "alice",
			Email:     "alice@example.com",
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		fakeVerifier.VerifyTokenReturns(alice, nil)

		h := handler.NewScoreHandler(logger, payload.Decoder{}, fakeService, fakeHealth, 1<<20)
		auth := middleware.NewAuthMiddleware(logger, fakeVerifier)
		router = middleware.NewRequestIDMiddleware().RequestID(handler.NewRouter(h, auth, nil))
		rec = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		router.ServeHTTP(rec, req)
	})

	authorize := func(r *http.Request) *http.Request {
		r.Header.Set("Authorization", "Bearer good-token")
		return r
	}

	Describe("register", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
				strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret1"}`))
			fakeService.RegisterReturns(core.Session{Token: "tkn", User: alice}, nil)
		})

		It("should respond with 201 and the session", func() {
			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp handler.AuthResponse
			decodeBody(rec, &resp)
			Expect(resp.Message).To(Equal("User registered successfully"))
			Expect(resp.Token).To(Equal("tkn"))
			Expect(resp.User).To(Equal(alice))

			_, msg := fakeService.RegisterArgsForCall(0)
			Expect(msg).To(Equal(core.RegisterMessage{Username: "alice", Email: "alice@example.com", Password: "secret1"}))
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
					strings.NewReader(`{"username":"al","email":"nope","password":"1"}`))
			})

			It("should respond with 400 without calling the service", func() {
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Session{}, core.ErrUserAlreadyExists)
			})

			It("should respond with 400", func() {
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				var resp handler.Response
				decodeBody(rec, &resp)
				Expect(resp.Error).To(Equal("user already exists"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Session{}, fakeErr)
			})

			It("should hide the cause", func() {
				Expect(rec.Code).To(Equal(http.StatusInternalServerError))
				Expect(rec.Body.String()).NotTo(ContainSubstring("fake error"))
			})
		})
	})

	Describe("login", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/auth/login",
				strings.NewReader(`{"username":"alice","password":"secret1"}`))
			fakeService.AuthenticateReturns(core.Session{Token: "tkn", User: alice}, nil)
		})

		It("should respond with 200 and the session", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp handler.AuthResponse
			decodeBody(rec, &resp)
			Expect(resp.Message).To(Equal("Login successful"))
			Expect(resp.Token).To(Equal("tkn"))
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{}, core.ErrInvalidCredentials)
			})

			It("should respond with 401", func() {
				Expect(rec.Code).To(Equal(http.StatusUnauthorized))
				Expect(rec.Header().Get("WWW-Authenticate")).To(Equal("Bearer"))
			})
		})
	})

	Describe("token", func() {
		BeforeEach(func() {
			form := url.Values{"username": {"alice"}, "password": {"secret1"}}
			req = httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			fakeService.AuthenticateReturns(core.Session{Token: "tkn", User: alice}, nil)
		})

		It("should return a bearer token", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp handler.TokenResponse
			decodeBody(rec, &resp)
			Expect(resp).To(Equal(handler.TokenResponse{AccessToken: "tkn", TokenType: "bearer"}))
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader("username=alice"))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			})

			It("should respond with 400", func() {
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("me", func() {
		BeforeEach(func() {
			req = authorize(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
		})

		It("should return the current user", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			var user core.UserProfile
			decodeBody(rec, &user)
			Expect(user).To(Equal(alice))
		})

		When("no credentials are sent", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			})

			It("should respond with 403", func() {
				Expect(rec.Code).To(Equal(http.StatusForbidden))
				Expect(fakeVerifier.VerifyTokenCallCount()).To(Equal(0))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeVerifier.VerifyTokenReturns(core.UserProfile{}, core.ErrInvalidOrExpiredToken)
			})

			It("should respond with 401", func() {
				Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("upload", func() {
		var received []byte

		BeforeEach(func() {
			body, contentType := multipartBody("audio", "take.wav", "audio/wav", []byte("RIFF....WAVE"))
			req = authorize(httptest.NewRequest(http.MethodPost, "/api/midi/upload", body))
			req.Header.Set("Content-Type", contentType)

			received = nil
			notes := 3
			fakeService.ConvertUploadStub = func(_ context.Context, _ uint, upload core.Upload) (core.MidiSummary, error) {
				content, err := io.ReadAll(upload.Content)
				if err != nil {
					return core.MidiSummary{}, err
				}
				received = content
				return core.MidiSummary{ID: 1, Filename: "take.mid", OriginalFilename: "take", NoteCount: &notes}, nil
			}
		})

		It("should convert the file for the current user", func() {
			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Body.String()).To(ContainSubstring(`"duration":null`))
			Expect(rec.Body.String()).To(ContainSubstring(`"note_count":3`))

			_, userID, upload := fakeService.ConvertUploadArgsForCall(0)
			Expect(userID).To(Equal(alice.ID))
			Expect(upload.Filename).To(Equal("take.wav"))
			Expect(upload.ContentType).To(Equal("audio/wav"))
			Expect(string(received)).To(Equal("RIFF....WAVE"))
		})

		When("the file type is unsupported", func() {
			BeforeEach(func() {
				fakeService.ConvertUploadStub = nil
				fakeService.ConvertUploadReturns(core.MidiSummary{}, core.ErrUnsupportedMediaType)
			})

			It("should respond with 400", func() {
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				var resp handler.Response
				decodeBody(rec, &resp)
				Expect(resp.Error).To(Equal("only MP3 and WAV files are supported"))
			})
		})

		When("the conversion fails", func() {
			BeforeEach(func() {
				fakeService.ConvertUploadStub = nil
				fakeService.ConvertUploadReturns(core.MidiSummary{}, &core.ConversionError{
					Stage: core.StageTranscribe,
					Err:   core.ErrModelFailure,
				})
			})

			It("should respond with 500 and the cause", func() {
				Expect(rec.Code).To(Equal(http.StatusInternalServerError))
				var resp handler.Response
				decodeBody(rec, &resp)
				Expect(resp.Error).To(Equal("Failed to convert audio to MIDI: transcribe: transcription model failed"))
			})
		})

		When("the audio field is missing", func() {
			BeforeEach(func() {
				body, contentType := multipartBody("file", "take.wav", "audio/wav", []byte("RIFF"))
				req = authorize(httptest.NewRequest(http.MethodPost, "/api/midi/upload", body))
				req.Header.Set("Content-Type", contentType)
			})

			It("should respond with 400", func() {
				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ConvertUploadCallCount()).To(Equal(0))
			})
		})

		When("the upload is too large", func() {
			BeforeEach(func() {
				body, contentType := multipartBody("audio", "take.wav", "audio/wav", bytes.Repeat([]byte{1}, 2<<20))
				req = authorize(httptest.NewRequest(http.MethodPost, "/api/midi/upload", body))
				req.Header.Set("Content-Type", contentType)
			})

			It("should respond with 413", func() {
				Expect(rec.Code).To(Equal(http.StatusRequestEntityTooLarge))
				Expect(fakeService.ConvertUploadCallCount()).To(Equal(0))
			})
		})
	})

	Describe("library", func() {
		BeforeEach(func() {
			req = authorize(httptest.NewRequest(http.MethodGet, "/api/midi/library", nil))
			fakeService.ListMidisReturns([]core.MidiSummary{{ID: 2}, {ID: 1}}, nil)
		})

		It("should list the user's files with a count", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp handler.LibraryResponse
			decodeBody(rec, &resp)
			Expect(resp.Count).To(Equal(2))
			Expect(resp.Midis).To(HaveLen(2))

			_, userID := fakeService.ListMidisArgsForCall(0)
			Expect(userID).To(Equal(alice.ID))
		})

		When("the library is empty", func() {
			BeforeEach(func() {
				fakeService.ListMidisReturns([]core.MidiSummary{}, nil)
			})

			It("should return an empty list", func() {
				Expect(rec.Body.String()).To(MatchJSON(`{"midis":[],"count":0}`))
			})
		})
	})

	Describe("get midi", func() {
		BeforeEach(func() {
			req = authorize(httptest.NewRequest(http.MethodGet, "/api/midi/4", nil))
			fakeService.GetMidiReturns(core.MidiDetail{MidiSummary: core.MidiSummary{ID: 4}, MidiData: "TVRoZA=="}, nil)
		})

		It("should return the detail", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			var detail core.MidiDetail
			decodeBody(rec, &detail)
			Expect(detail.ID).To(Equal(uint(4)))
			Expect(detail.MidiData).To(Equal("TVRoZA=="))

			_, userID, id := fakeService.GetMidiArgsForCall(0)
			Expect(userID).To(Equal(alice.ID))
			Expect(id).To(Equal(uint(4)))
		})

		When("the id is not numeric", func() {
			BeforeEach(func() {
				req = authorize(httptest.NewRequest(http.MethodGet, "/api/midi/abc", nil))
			})

			It("should respond with 404", func() {
				Expect(rec.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.GetMidiCallCount()).To(Equal(0))
			})
		})

		When("the file does not exist", func() {
			BeforeEach(func() {
				fakeService.GetMidiReturns(core.MidiDetail{}, core.ErrMidiNotFound)
			})

			It("should respond with 404", func() {
				Expect(rec.Code).To(Equal(http.StatusNotFound))
				var resp handler.Response
				decodeBody(rec, &resp)
				Expect(resp.Error).To(Equal("MIDI file not found"))
			})
		})
	})

	Describe("download midi", func() {
		BeforeEach(func() {
			req = authorize(httptest.NewRequest(http.MethodGet, "/api/midi/4/download", nil))
			fakeService.DownloadMidiReturns(core.MidiDownload{Filename: "take.mid", Data: []byte("MThd")}, nil)
		})

		It("should send the bytes as an attachment", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("audio/midi"))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal(`attachment; filename=take.mid`))
			Expect(rec.Body.String()).To(Equal("MThd"))
		})

		DescribeTable("names the attachment after the stored file",
			func(filename, header string) {
				fakeService.DownloadMidiReturns(core.MidiDownload{Filename: filename, Data: []byte("MThd")}, nil)
				rec = httptest.NewRecorder()
				router.ServeHTTP(rec, authorize(httptest.NewRequest(http.MethodGet, "/api/midi/4/download", nil)))

				Expect(rec.Header().Get("Content-Disposition")).To(Equal(header))
				disposition, params, err := mime.ParseMediaType(header)
				Expect(err).NotTo(HaveOccurred())
				Expect(disposition).To(Equal("attachment"))
				Expect(params).To(HaveKeyWithValue("filename", filename))
			},
			Entry("with spaces", "my take.wav.mid", `attachment; filename="my take.wav.mid"`),
			Entry("with quotes", `say "hi".mid`, `attachment; filename="say \"hi\".mid"`),
			Entry("with non-ASCII runes", "café.mid", `attachment; filename*=utf-8''caf%C3%A9.mid`),
		)

		When("the file does not exist", func() {
			BeforeEach(func() {
				fakeService.DownloadMidiReturns(core.MidiDownload{}, core.ErrMidiNotFound)
			})

			It("should respond with 404", func() {
				Expect(rec.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("delete midi", func() {
		BeforeEach(func() {
			req = authorize(httptest.NewRequest(http.MethodDelete, "/api/midi/4", nil))
		})

		It("should delete the file", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"message":"MIDI file deleted successfully"}`))

			_, userID, id := fakeService.DeleteMidiArgsForCall(0)
			Expect(userID).To(Equal(alice.ID))
			Expect(id).To(Equal(uint(4)))
		})

		When("the file does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteMidiReturns(core.ErrMidiNotFound)
			})

			It("should respond with 404", func() {
				Expect(rec.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("root", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/", nil)
		})

		It("should describe the service", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{
				"message": "Audio2Score Backend API",
				"version": "1.0.0",
				"status": "running",
				"framework": "net/http"
			}`))
		})
	})

	Describe("health", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/health", nil)
		})

		It("should report a connected database", func() {
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"status":"healthy","database":"connected","api":"operational"}`))
		})

		When("the database is down", func() {
			BeforeEach(func() {
				fakeHealth.PingReturns(fakeErr)
			})

			It("should respond with 503", func() {
				Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(rec.Body.String()).To(MatchJSON(`{"status":"unhealthy","database":"disconnected","api":"operational"}`))
			})
		})
	})
})
