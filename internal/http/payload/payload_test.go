package payload_test

import (
	"audio2score/internal/core"
	"audio2score/internal/http/payload"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegisterRequest", func() {
	valid := payload.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	}

	It("should accept a well formed request", func() {
		Expect(valid.Validate()).To(Succeed())
	})

	DescribeTable("rejects",
		func(mutate func(*payload.RegisterRequest), field string) {
			req := valid
			mutate(&req)
			Expect(req.Validate()).To(MatchError(ContainSubstring(field)))
		},
		Entry("short username", func(r *payload.RegisterRequest) { r.Username = "al" }, "username"),
		Entry("long username", func(r *payload.RegisterRequest) { r.Username = strings.Repeat("a", 51) }, "username"),
		Entry("bad email", func(r *payload.RegisterRequest) { r.Email = "not-an-email" }, "email"),
		Entry("missing email", func(r *payload.RegisterRequest) { r.Email = "" }, "email"),
		Entry("short password", func(r *payload.RegisterRequest) { r.Password = "12345" }, "password"),
	)

	It("should map to a core message", func() {
		Expect(valid.ToMessage()).To(Equal(core.RegisterMessage{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1",
		}))
	})
})

var _ = Describe("LoginRequest", func() {
	It("should require both fields", func() {
		Expect(payload.LoginRequest{Username: "alice"}.Validate()).To(MatchError(ContainSubstring("password")))
		Expect(payload.LoginRequest{Password: "x"}.Validate()).To(MatchError(ContainSubstring("username")))
		Expect(payload.LoginRequest{Username: "alice", Password: "x"}.Validate()).To(Succeed())
	})
})

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	newRequest := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	}

	It("should decode and validate", func() {
		var req payload.LoginRequest
		Expect(decoder.DecodeJSONPayload(newRequest(`{"username":"alice","password":"pw"}`), &req)).To(Succeed())
		Expect(req.Username).To(Equal("alice"))
	})

	It("should reject unknown fields", func() {
		var req payload.LoginRequest
		err := decoder.DecodeJSONPayload(newRequest(`{"username":"alice","password":"pw","admin":true}`), &req)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should reject malformed json", func() {
		var req payload.LoginRequest
		Expect(decoder.DecodeJSONPayload(newRequest(`{`), &req)).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should report validation errors", func() {
		var req payload.RegisterRequest
		err := decoder.DecodeJSONPayload(newRequest(`{"username":"al","email":"a@b.co","password":"secret1"}`), &req)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})

	It("should skip validation for plain types", func() {
		var out map[string]any
		Expect(decoder.DecodeJSONPayload(newRequest(`{"anything":1}`), &out)).To(Succeed())
	})
})
