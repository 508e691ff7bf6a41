package mirror_test

import (
	"audio2score/internal/config"
	"audio2score/internal/mirror"
	"audio2score/internal/mirror/fake"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("S3Mirror", func() {
	var (
		fakeAPI *fake.ObjectAPI
		m       *mirror.S3Mirror
		ctx     context.Context
	)

	BeforeEach(func() {
		fakeAPI = new(fake.ObjectAPI)
		m = mirror.NewS3Mirror(fakeAPI, "scores")
		ctx = context.Background()
	})

	Describe("Put", func() {
		It("should upload the bytes as audio/midi", func() {
			Expect(m.Put(ctx, "midi/1/2/song_basic_pitch.mid", []byte("MThd"))).To(Succeed())

			Expect(fakeAPI.PutObjectCallCount()).To(Equal(1))
			_, input, _ := fakeAPI.PutObjectArgsForCall(0)
			Expect(aws.ToString(input.Bucket)).To(Equal("scores"))
			Expect(aws.ToString(input.Key)).To(Equal("midi/1/2/song_basic_pitch.mid"))
			Expect(aws.ToString(input.ContentType)).To(Equal("audio/midi"))
			Expect(aws.ToInt64(input.ContentLength)).To(Equal(int64(4)))

			body, err := io.ReadAll(input.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(Equal("MThd"))
		})

		It("should wrap upload errors", func() {
			fakeAPI.PutObjectReturns(nil, errors.New("access denied"))

			err := m.Put(ctx, "midi/1/2/a.mid", []byte("MThd"))
			Expect(err).To(MatchError("put object midi/1/2/a.mid: access denied"))
		})
	})

	Describe("Delete", func() {
		It("should remove the key from the bucket", func() {
			Expect(m.Delete(ctx, "midi/1/2/a.mid")).To(Succeed())

			_, input, _ := fakeAPI.DeleteObjectArgsForCall(0)
			Expect(aws.ToString(input.Bucket)).To(Equal("scores"))
			Expect(aws.ToString(input.Key)).To(Equal("midi/1/2/a.mid"))
		})

		It("should wrap delete errors", func() {
			fakeAPI.DeleteObjectReturns(nil, errors.New("timeout"))

			Expect(m.Delete(ctx, "k")).To(MatchError("delete object k: timeout"))
		})
	})
})

var _ = Describe("NewS3Client", func() {
	It("should use path style against a custom endpoint", func() {
		client := mirror.NewS3Client(config.Mirror{
			Endpoint:        "http://localhost:9000",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			Bucket:          "scores",
			Region:          "auto",
		})

		opts := client.Options()
		Expect(aws.ToString(opts.BaseEndpoint)).To(Equal("http://localhost:9000"))
		Expect(opts.UsePathStyle).To(BeTrue())
		Expect(opts.Region).To(Equal("auto"))

		creds, err := opts.Credentials.Retrieve(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(creds.AccessKeyID).To(Equal("key"))
	})

	It("should keep the default endpoint resolution without one", func() {
		client := mirror.NewS3Client(config.Mirror{Region: "eu-west-1"})

		opts := client.Options()
		Expect(opts.BaseEndpoint).To(BeNil())
		Expect(opts.UsePathStyle).To(BeFalse())
	})
})

var _ = Describe("Nop", func() {
	It("should accept everything", func() {
		var m mirror.Nop
		Expect(m.Put(context.Background(), "k", nil)).To(Succeed())
		Expect(m.Delete(context.Background(), "k")).To(Succeed())
	})
})

var _ mirror.ObjectAPI = (*s3.Client)(nil)
