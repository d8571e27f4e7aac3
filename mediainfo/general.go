package mediainfo

import (
	"net/url"
	"time"
)

// Public types (alphabetical)

// GeneralStream is the typed facade over the container-level stream. Every
// parsed file has exactly one, at index 0.
type GeneralStream struct {
	Stream
}

// Public functions (alphabetical)

// General returns the facade over the container-level stream.
func (f *File) General() *GeneralStream {
	return &GeneralStream{Stream{file: f, kind: StreamGeneral, index: 0}}
}

// Public methods (alphabetical)

// AudioCount returns the number of audio streams in the container.
func (g *GeneralStream) AudioCount() int {
	return g.paramInt(ParamAudioCount)
}

// ChaptersCount returns the number of chapters streams in the container.
func (g *GeneralStream) ChaptersCount() int {
	return g.paramInt(ParamOtherCount)
}

// CompleteName returns the full path of the parsed file.
func (g *GeneralStream) CompleteName() string {
	return g.param(ParamCompleteName)
}

// DurationEnd returns the recording end position for captures that carry
// one, as rendered by the library.
func (g *GeneralStream) DurationEnd() string {
	return g.param(ParamDurationEnd)
}

// DurationStart returns the recording start position for captures that
// carry one, as rendered by the library.
func (g *GeneralStream) DurationStart() string {
	return g.param(ParamDurationStart)
}

// EncodedApplication returns the name of the application that wrote the
// file.
func (g *GeneralStream) EncodedApplication() string {
	return g.param(ParamEncodedApplication)
}

// EncodedApplicationURL returns the download URL of the writing
// application, or nil.
func (g *GeneralStream) EncodedApplicationURL() *url.URL {
	return g.file.GetURL(StreamGeneral, 0, ParamEncodedApplicationURL)
}

// EncodedDate returns the time the file was encoded, or the zero time.
func (g *GeneralStream) EncodedDate() time.Time {
	return g.paramTime(ParamEncodedDate)
}

// EncodedLibrary returns the name and version of the encoding library.
func (g *GeneralStream) EncodedLibrary() string {
	return g.param(ParamEncodedLibrary)
}

// EncodedLibraryDate returns the release date of the encoding library, or
// the zero time.
func (g *GeneralStream) EncodedLibraryDate() time.Time {
	return g.paramTime(ParamEncodedLibraryDate)
}

// EncodedLibraryName returns the bare name of the encoding library.
func (g *GeneralStream) EncodedLibraryName() string {
	return g.param(ParamEncodedLibraryName)
}

// EncodedLibrarySettings returns the settings line of the encoding
// library, e.g. an x264 option dump.
func (g *GeneralStream) EncodedLibrarySettings() string {
	return g.param(ParamEncodedLibrarySettings)
}

// EncodedLibraryVersion returns the version of the encoding library.
func (g *GeneralStream) EncodedLibraryVersion() string {
	return g.param(ParamEncodedLibraryVersion)
}

// FileCreatedDate returns the creation time recorded by the file system,
// or the zero time.
func (g *GeneralStream) FileCreatedDate() time.Time {
	return g.paramTime(ParamFileCreatedDate)
}

// FileExtension returns the extension of the parsed file, without the dot.
func (g *GeneralStream) FileExtension() string {
	return g.param(ParamFileExtension)
}

// FileModifiedDate returns the last modification time recorded by the
// file system, or the zero time.
func (g *GeneralStream) FileModifiedDate() time.Time {
	return g.paramTime(ParamFileModifiedDate)
}

// FileName returns the name of the parsed file, without extension.
func (g *GeneralStream) FileName() string {
	return g.param(ParamFileName)
}

// FileSize returns the file size in bytes.
func (g *GeneralStream) FileSize() int64 {
	return g.paramInt64(ParamFileSize)
}

// FileSizeString returns the file size with units, as rendered by the
// library (e.g. "1.35 GiB").
func (g *GeneralStream) FileSizeString() string {
	return g.param(ParamFileSizeString)
}

// FolderName returns the directory holding the parsed file.
func (g *GeneralStream) FolderName() string {
	return g.param(ParamFolderName)
}

// FormatExtensions returns the file extensions usually seen for the
// container format.
func (g *GeneralStream) FormatExtensions() []string {
	return splitExtensions(g.param(ParamFormatExtensions))
}

// FormatList returns the formats of all streams of a kind, in stream
// order.
func (g *GeneralStream) FormatList(kind StreamKind) []string {
	return splitList(g.param(nativeKindName(kind) + "_Format_List"))
}

// FormatWithHintList returns the formats of all streams of a kind with
// their codec hints appended in parentheses.
func (g *GeneralStream) FormatWithHintList(kind StreamKind) []string {
	return splitList(g.param(nativeKindName(kind) + "_Format_WithHint_List"))
}

// GeneralCount returns the number of general streams, which is 1 for any
// parsed file.
func (g *GeneralStream) GeneralCount() int {
	return g.paramInt(ParamGeneralCount)
}

// ImageCount returns the number of image streams in the container.
func (g *GeneralStream) ImageCount() int {
	return g.paramInt(ParamImageCount)
}

// Interleaved reports whether audio and video payloads are interleaved.
func (g *GeneralStream) Interleaved() bool {
	return g.paramBool(ParamInterleaved)
}

// InternetMediaType returns the MIME type of the container, e.g.
// "video/mp4".
func (g *GeneralStream) InternetMediaType() string {
	return g.param(ParamInternetMediaType)
}

// LanguageList returns the languages of all streams of a kind, in stream
// order.
func (g *GeneralStream) LanguageList(kind StreamKind) []string {
	return splitList(g.param(nativeKindName(kind) + "_Language_List"))
}

// MenuCount returns the number of menu streams in the container.
func (g *GeneralStream) MenuCount() int {
	return g.paramInt(ParamMenuCount)
}

// OverallBitRate returns the overall bit rate of the container in bits
// per second.
func (g *GeneralStream) OverallBitRate() int64 {
	return g.paramInt64(ParamOverallBitRate)
}

// OverallBitRateMaximum returns the maximum overall bit rate in bits per
// second.
func (g *GeneralStream) OverallBitRateMaximum() int64 {
	return g.paramInt64(ParamOverallBitRateMaximum)
}

// OverallBitRateMinimum returns the minimum overall bit rate in bits per
// second.
func (g *GeneralStream) OverallBitRateMinimum() int64 {
	return g.paramInt64(ParamOverallBitRateMinimum)
}

// OverallBitRateMode returns the overall bit rate mode ("CBR" or "VBR").
func (g *GeneralStream) OverallBitRateMode() string {
	return g.param(ParamOverallBitRateMode)
}

// OverallBitRateNominal returns the nominal overall bit rate in bits per
// second.
func (g *GeneralStream) OverallBitRateNominal() int64 {
	return g.paramInt64(ParamOverallBitRateNominal)
}

// OverallBitRateString returns the overall bit rate with units, as
// rendered by the library.
func (g *GeneralStream) OverallBitRateString() string {
	return g.param(ParamOverallBitRateString)
}

// RecordedDate returns the time the content was recorded, or the zero
// time.
func (g *GeneralStream) RecordedDate() time.Time {
	return g.paramTime(ParamRecordedDate)
}

// Streamable reports whether the container is arranged for progressive
// playback.
func (g *GeneralStream) Streamable() bool {
	return g.paramBool(ParamIsStreamable)
}

// StreamSizeProportion returns the share of the file occupied by
// container overhead, between 0 and 1.
func (g *GeneralStream) StreamSizeProportion() float64 {
	return g.paramFloat(ParamStreamSizeProportion)
}

// TaggedDate returns the time the file was last tagged, or the zero time.
func (g *GeneralStream) TaggedDate() time.Time {
	return g.paramTime(ParamTaggedDate)
}

// TextCount returns the number of text streams in the container.
func (g *GeneralStream) TextCount() int {
	return g.paramInt(ParamTextCount)
}

// VideoCount returns the number of video streams in the container.
func (g *GeneralStream) VideoCount() int {
	return g.paramInt(ParamVideoCount)
}
