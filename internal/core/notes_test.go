package core_test

import (
	"audio2score/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CountNoteOns", func() {
	DescribeTable("byte scan",
		func(data []byte, expected int) {
			Expect(core.CountNoteOns(data)).To(Equal(expected))
		},
		Entry("empty input", []byte{}, 0),
		Entry("shorter than an event", []byte{0x90, 0x3C}, 0),
		Entry("single note on", []byte{0x90, 0x3C, 0x64}, 1),
		Entry("note on with zero velocity", []byte{0x90, 0x3C, 0x00}, 0),
		Entry("any channel", []byte{0x9F, 0x3C, 0x01}, 1),
		Entry("note off is ignored", []byte{0x80, 0x3C, 0x40}, 0),
		Entry("two events", []byte{0x90, 0x3C, 0x64, 0x90, 0x40, 0x64}, 2),
	)

	It("should count every note of a rendered file", func() {
		Expect(core.CountNoteOns(midiFixture(60, 62, 64, 65))).To(Equal(4))
	})
})

var _ = Describe("IsSupportedAudio", func() {
	DescribeTable("accepts by content type or extension",
		func(contentType, filename string, expected bool) {
			Expect(core.IsSupportedAudio(contentType, filename)).To(Equal(expected))
		},
		Entry("mpeg", "audio/mpeg", "a.bin", true),
		Entry("wav", "audio/wav", "a", true),
		Entry("mp3", "audio/mp3", "a", true),
		Entry("x-wav", "audio/x-wav", "a", true),
		Entry("wave", "audio/wave", "a", true),
		Entry("octet stream with .wav", "application/octet-stream", "take.wav", true),
		Entry("upper case extension", "", "TAKE.MP3", true),
		Entry("flac", "audio/flac", "take.flac", false),
		Entry("text", "text/plain", "notes.txt", false),
		Entry("extension in the middle", "text/plain", "take.wav.txt", false),
	)
})
