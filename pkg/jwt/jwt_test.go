package jwt_test

import (
	"time"

	tokenIssuer "audio2score/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		secret  []byte
		info    tokenIssuer.TokenInfo
		err     error
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "42",
			Expiration: 7 * 24 * time.Hour,
		}
		service, err = tokenIssuer.NewJWTService(secret, "HS256")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("NewJWTService", func() {
		It("rejects non HMAC algorithms", func() {
			_, err := tokenIssuer.NewJWTService(secret, "RS256")
			Expect(err).To(MatchError(tokenIssuer.ErrUnsupportedAlgorithm))
		})

		It("rejects unknown algorithms", func() {
			_, err := tokenIssuer.NewJWTService(secret, "none")
			Expect(err).To(MatchError(tokenIssuer.ErrUnsupportedAlgorithm))
		})
	})

	Describe("Generate and Validate", func() {
		var signed string

		JustBeforeEach(func() {
			signed, err = service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is fresh", func() {
			It("returns the encoded claims", func() {
				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("42"))
				Expect(claims["username"]).To(Equal("alice"))
			})

			It("uses the configured algorithm", func() {
				parsed, _, err := new(jwt.Parser).ParseUnverified(signed, jwt.MapClaims{})
				Expect(err).NotTo(HaveOccurred())
				Expect(parsed.Method.Alg()).To(Equal("HS256"))
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(-8 * 24 * time.Hour)
				}
			})

			It("returns ErrTokenExpired", func() {
				tokenIssuer.TimeNow = time.Now
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the token was signed with another secret", func() {
			It("returns ErrTokenNotValid", func() {
				other, err := tokenIssuer.NewJWTService([]byte("other-secret"), "HS256")
				Expect(err).NotTo(HaveOccurred())
				_, err = other.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token was signed with another algorithm", func() {
			It("returns ErrTokenNotValid", func() {
				other, err := tokenIssuer.NewJWTService(secret, "HS512")
				Expect(err).NotTo(HaveOccurred())
				_, err = other.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})

	Describe("Validate", func() {
		It("rejects malformed tokens", func() {
			_, err := service.Validate("not-a-token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("rejects tokens without exp", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"})
			signed, err := token.SignedString(secret)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
