package config_test

import (
	"os"
	"path/filepath"
	"time"

	"audio2score/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envKeys = []string{
	"ENV_FILE", "DATABASE_URL", "SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES",
	"PORT", "ENV", "NODE_ENV", "ALLOWED_ORIGINS", "UPLOAD_DIR", "BASIC_PITCH_BIN",
	"TRANSCRIBE_WORKERS", "TRANSCRIBE_TIMEOUT", "MAX_UPLOAD_MB", "MIRROR_ENDPOINT",
	"MIRROR_ACCESS_KEY_ID", "MIRROR_SECRET_ACCESS_KEY", "MIRROR_BUCKET", "MIRROR_REGION",
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		saved := map[string]string{}
		for _, key := range envKeys {
			if v, ok := os.LookupEnv(key); ok {
				saved[key] = v
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}
		DeferCleanup(func() {
			for _, key := range envKeys {
				_ = os.Unsetenv(key)
			}
			for key, v := range saved {
				_ = os.Setenv(key, v)
			}
		})
		setEnv("ENV_FILE", filepath.Join(GinkgoT().TempDir(), "missing.env"))
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("nothing is set", func() {
		It("falls back to defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8000"))
			Expect(app.JWTAlgorithm).To(Equal("HS256"))
			Expect(app.TokenExpiration).To(Equal(7 * 24 * time.Hour))
			Expect(app.AllowedOrigins).To(Equal([]string{"*"}))
			Expect(app.UploadDir).To(Equal("uploads"))
			Expect(app.BasicPitchBin).To(Equal("basic-pitch"))
			Expect(app.TranscribeWorkers).To(Equal(int64(2)))
			Expect(app.TranscribeTimeout).To(BeZero())
			Expect(app.MaxUploadSizeBytes).To(Equal(int64(100 << 20)))
			Expect(app.IsProduction()).To(BeFalse())
			Expect(app.Mirror.Enabled()).To(BeFalse())
		})
	})

	When("a .env file is present", func() {
		BeforeEach(func() {
			envFile := filepath.Join(GinkgoT().TempDir(), "test.env")
			Expect(os.WriteFile(envFile, []byte("PORT=9100\nSECRET_KEY=from-file\n"), 0o600)).To(Succeed())
			setEnv("ENV_FILE", envFile)
			setEnv("SECRET_KEY", "from-env")
		})

		It("loads it without overriding the environment", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9100"))
			Expect(app.JWTSecret).To(Equal("from-env"))
		})
	})

	When("values are overridden", func() {
		BeforeEach(func() {
			setEnv("ALGORITHM", "hs512")
			setEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
			setEnv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
			setEnv("NODE_ENV", "production")
			setEnv("TRANSCRIBE_TIMEOUT", "90s")
			setEnv("MIRROR_BUCKET", "midis")
		})

		It("parses them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.JWTAlgorithm).To(Equal("HS512"))
			Expect(app.TokenExpiration).To(Equal(30 * time.Minute))
			Expect(app.AllowedOrigins).To(Equal([]string{"http://a.test", "http://b.test"}))
			Expect(app.IsProduction()).To(BeTrue())
			Expect(app.TranscribeTimeout).To(Equal(90 * time.Second))
			Expect(app.Mirror.Enabled()).To(BeTrue())
			Expect(app.Mirror.Region).To(Equal("auto"))
		})
	})

	When("ENV and NODE_ENV disagree", func() {
		BeforeEach(func() {
			setEnv("ENV", "staging")
			setEnv("NODE_ENV", "production")
		})

		It("prefers ENV", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Environment).To(Equal("staging"))
		})
	})

	When("the origin list contains a wildcard", func() {
		BeforeEach(func() {
			setEnv("ALLOWED_ORIGINS", "http://a.test,*")
		})

		It("collapses to the wildcard", func() {
			Expect(app.AllowedOrigins).To(Equal([]string{"*"}))
		})
	})

	DescribeTable("rejects malformed values",
		func(key, value string) {
			setEnv(key, value)
			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring(key)))
		},
		Entry("token lifetime", "ACCESS_TOKEN_EXPIRE_MINUTES", "week"),
		Entry("algorithm", "ALGORITHM", "RS256"),
		Entry("worker count", "TRANSCRIBE_WORKERS", "0"),
		Entry("timeout", "TRANSCRIBE_TIMEOUT", "soon"),
		Entry("upload size", "MAX_UPLOAD_MB", "lots"),
		Entry("negative token lifetime", "ACCESS_TOKEN_EXPIRE_MINUTES", "-5"),
		Entry("zero token lifetime", "ACCESS_TOKEN_EXPIRE_MINUTES", "0"),
		Entry("zero upload size", "MAX_UPLOAD_MB", "0"),
		Entry("negative upload size", "MAX_UPLOAD_MB", "-1"),
	)
})
