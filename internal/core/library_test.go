package core_test

import (
	"audio2score/internal/core"
	"audio2score/internal/core/fake"
	"audio2score/internal/repository"
	"audio2score/internal/scratch"
	"context"
	"encoding/base64"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Scorer library", func() {
	var (
		fakeRepo   *fake.Repository
		fakeMirror *fake.Mirror
		ctx        context.Context
		scorer     *core.Scorer
		stored     repository.MidiFile
		fakeErr    error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeMirror = new(fake.Mirror)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		area, err := scratch.NewArea(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())

		scorer = core.NewScorer(zap.NewNop().Sugar(), fakeRepo, new(fake.JWTIssuer), new(fake.Transcriber), fakeMirror, area, time.Hour)

		noteCount := 3
		stored = repository.MidiFile{
			ID:               9,
			UserID:           5,
			Filename:         "audio_5_take_basic_pitch.mid",
			OriginalFilename: "take.wav",
			MidiData:         midiFixture(60, 64, 67),
			NoteCount:        &noteCount,
			CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}
	})

	Describe("ListMidis", func() {
		It("should map the owner's rows to summaries", func() {
			fakeRepo.ListMidiFilesReturns([]repository.MidiFile{stored, {ID: 8, UserID: 5}}, nil)

			midis, err := scorer.ListMidis(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(midis).To(HaveLen(2))
			Expect(midis[0].ID).To(Equal(uint(9)))
			Expect(midis[0].OriginalFilename).To(Equal("take.wav"))
			Expect(*midis[0].NoteCount).To(Equal(3))
			Expect(midis[0].Duration).To(BeNil())

			_, userID := fakeRepo.ListMidiFilesArgsForCall(0)
			Expect(userID).To(Equal(uint(5)))
		})

		It("should return an empty list for a new user", func() {
			fakeRepo.ListMidiFilesReturns([]repository.MidiFile{}, nil)

			midis, err := scorer.ListMidis(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(midis).NotTo(BeNil())
			Expect(midis).To(BeEmpty())
		})

		It("should wrap errors", func() {
			fakeRepo.ListMidiFilesReturns(nil, fakeErr)

			_, err := scorer.ListMidis(ctx, 5)
			Expect(err).To(MatchError("list midi files: fake error"))
		})
	})

	Describe("GetMidi", func() {
		It("should encode the payload as base64", func() {
			fakeRepo.GetMidiFileReturns(stored, nil)

			detail, err := scorer.GetMidi(ctx, 5, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.ID).To(Equal(uint(9)))

			decoded, err := base64.StdEncoding.DecodeString(detail.MidiData)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(stored.MidiData))

			_, userID, id := fakeRepo.GetMidiFileArgsForCall(0)
			Expect(userID).To(Equal(uint(5)))
			Expect(id).To(Equal(uint(9)))
		})

		It("should return ErrMidiNotFound for rows of other users", func() {
			fakeRepo.GetMidiFileReturns(repository.MidiFile{}, repository.ErrMidiFileNotFound)

			_, err := scorer.GetMidi(ctx, 6, 9)
			Expect(err).To(MatchError(core.ErrMidiNotFound))
		})

		It("should wrap other errors", func() {
			fakeRepo.GetMidiFileReturns(repository.MidiFile{}, fakeErr)

			_, err := scorer.GetMidi(ctx, 5, 9)
			Expect(err).To(MatchError("get midi file: fake error"))
		})
	})

	Describe("DownloadMidi", func() {
		It("should return the stored bytes under the original name", func() {
			fakeRepo.GetMidiFileReturns(stored, nil)

			download, err := scorer.DownloadMidi(ctx, 5, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(download.Filename).To(Equal("take.wav.mid"))
			Expect(download.Data).To(Equal(stored.MidiData))
			Expect(download.Data).To(HavePrefix("MThd"))
		})

		It("should return ErrMidiNotFound", func() {
			fakeRepo.GetMidiFileReturns(repository.MidiFile{}, repository.ErrMidiFileNotFound)

			_, err := scorer.DownloadMidi(ctx, 5, 9)
			Expect(err).To(MatchError(core.ErrMidiNotFound))
		})
	})

	Describe("DeleteMidi", func() {
		BeforeEach(func() {
			info := stored
			info.MidiData = nil
			fakeRepo.GetMidiFileInfoReturns(info, nil)
		})

		It("should delete the row and its mirrored copy", func() {
			Expect(scorer.DeleteMidi(ctx, 5, 9)).To(Succeed())

			_, userID, id := fakeRepo.DeleteMidiFileArgsForCall(0)
			Expect(userID).To(Equal(uint(5)))
			Expect(id).To(Equal(uint(9)))

			Expect(fakeMirror.DeleteCallCount()).To(Equal(1))
			_, key := fakeMirror.DeleteArgsForCall(0)
			Expect(key).To(Equal("midi/5/9/audio_5_take_basic_pitch.mid"))
		})

		It("should not load the payload", func() {
			Expect(scorer.DeleteMidi(ctx, 5, 9)).To(Succeed())

			Expect(fakeRepo.GetMidiFileCallCount()).To(BeZero())
			_, userID, id := fakeRepo.GetMidiFileInfoArgsForCall(0)
			Expect(userID).To(Equal(uint(5)))
			Expect(id).To(Equal(uint(9)))
		})

		It("should wrap lookup errors", func() {
			fakeRepo.GetMidiFileInfoReturns(repository.MidiFile{}, fakeErr)

			Expect(scorer.DeleteMidi(ctx, 5, 9)).To(MatchError("get midi file: fake error"))
			Expect(fakeRepo.DeleteMidiFileCallCount()).To(BeZero())
		})

		It("should ignore mirror failures", func() {
			fakeMirror.DeleteReturns(fakeErr)

			Expect(scorer.DeleteMidi(ctx, 5, 9)).To(Succeed())
		})

		It("should return ErrMidiNotFound when the row is missing", func() {
			fakeRepo.GetMidiFileInfoReturns(repository.MidiFile{}, repository.ErrMidiFileNotFound)

			Expect(scorer.DeleteMidi(ctx, 5, 9)).To(MatchError(core.ErrMidiNotFound))
			Expect(fakeRepo.DeleteMidiFileCallCount()).To(BeZero())
			Expect(fakeMirror.DeleteCallCount()).To(BeZero())
		})

		It("should return ErrMidiNotFound when a concurrent delete won", func() {
			fakeRepo.DeleteMidiFileReturns(repository.ErrMidiFileNotFound)

			Expect(scorer.DeleteMidi(ctx, 5, 9)).To(MatchError(core.ErrMidiNotFound))
			Expect(fakeMirror.DeleteCallCount()).To(BeZero())
		})

		It("should wrap delete errors", func() {
			fakeRepo.DeleteMidiFileReturns(fakeErr)

			Expect(scorer.DeleteMidi(ctx, 5, 9)).To(MatchError("delete midi file: fake error"))
		})
	})
})
