package scratch_test

import (
	"audio2score/internal/scratch"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Area", func() {
	var (
		dir  string
		area *scratch.Area
	)

	BeforeEach(func() {
		dir = filepath.Join(GinkgoT().TempDir(), "uploads")

		var err error
		area, err = scratch.NewArea(dir)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should create the directory", func() {
		Expect(dir).To(BeADirectory())
		Expect(area.Dir()).To(Equal(dir))
	})

	Describe("Write", func() {
		It("should store the content under the given name", func() {
			file, err := area.Write("audio_1_song.wav", strings.NewReader("RIFF"))
			Expect(err).NotTo(HaveOccurred())

			Expect(file.Path()).To(Equal(filepath.Join(dir, "audio_1_song.wav")))
			content, err := os.ReadFile(file.Path())
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("RIFF"))
		})

		It("should keep the file inside the area", func() {
			file, err := area.Write("../../etc/song.wav", strings.NewReader("x"))
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Dir(file.Path())).To(Equal(dir))
		})

		It("should still track a partially written file", func() {
			file, err := area.Write("broken.wav", &failingReader{})
			Expect(err).To(MatchError(ContainSubstring("write scratch file")))

			Expect(file.Release()).To(Succeed())
			Expect(filepath.Join(dir, "broken.wav")).NotTo(BeAnExistingFile())
		})
	})

	Describe("Release", func() {
		It("should remove every tracked path", func() {
			file, err := area.Write("audio_1_song.wav", strings.NewReader("RIFF"))
			Expect(err).NotTo(HaveOccurred())

			output := filepath.Join(dir, "audio_1_song_basic_pitch.mid")
			Expect(os.WriteFile(output, []byte("MThd"), 0o644)).To(Succeed())
			file.Track(output)

			Expect(file.Release()).To(Succeed())
			Expect(file.Path()).NotTo(BeAnExistingFile())
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("should ignore empty paths", func() {
			file, err := area.Write("audio_1_song.wav", strings.NewReader("RIFF"))
			Expect(err).NotTo(HaveOccurred())
			file.Track("")

			Expect(file.Release()).To(Succeed())
			Expect(file.Path()).NotTo(BeAnExistingFile())
		})

		It("should ignore paths that never appeared", func() {
			file, err := area.Write("audio_1_song.wav", strings.NewReader("RIFF"))
			Expect(err).NotTo(HaveOccurred())
			file.Track(filepath.Join(dir, "missing.mid"))

			Expect(file.Release()).To(Succeed())
		})

		It("should be safe to call twice", func() {
			file, err := area.Write("audio_1_song.wav", strings.NewReader("RIFF"))
			Expect(err).NotTo(HaveOccurred())

			Expect(file.Release()).To(Succeed())
			Expect(file.Release()).To(Succeed())
		})

		It("should report paths it could not remove", func() {
			file, err := area.Write("audio_1_song.wav", strings.NewReader("RIFF"))
			Expect(err).NotTo(HaveOccurred())

			nonEmpty := filepath.Join(dir, "nested")
			Expect(os.MkdirAll(filepath.Join(nonEmpty, "child"), 0o755)).To(Succeed())
			file.Track(nonEmpty)

			err = file.Release()
			Expect(err).To(MatchError(ContainSubstring("remove " + nonEmpty)))
			Expect(file.Path()).NotTo(BeAnExistingFile())
		})
	})
})

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}
