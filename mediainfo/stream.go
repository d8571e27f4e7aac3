package mediainfo

import (
	"math/big"
	"net/url"
	"time"
)

// Public types (alphabetical)

// Stream is the typed accessor facade shared by every stream kind. It
// holds no data of its own: each getter forwards one parameter lookup to
// the File and coerces the returned text. Kind-specific facades such as
// VideoStream embed it.
//
// Getters return the zero value (or nil for pointer results) when the
// parameter is absent or unparseable; Parameter gives access to the raw
// text of any key.
type Stream struct {
	file  *File
	kind  StreamKind
	index int
}

// Public functions (alphabetical)

// Stream returns the generic facade for any stream, including kinds
// without a dedicated facade such as StreamChapters.
func (f *File) Stream(kind StreamKind, index int) *Stream {
	return &Stream{file: f, kind: kind, index: index}
}

// Public methods (alphabetical)

// BitRate returns the stream bit rate in bits per second.
func (s *Stream) BitRate() int64 {
	return s.paramInt64(ParamBitRate)
}

// BitRateMaximum returns the maximum bit rate in bits per second.
func (s *Stream) BitRateMaximum() int64 {
	return s.paramInt64(ParamBitRateMaximum)
}

// BitRateMinimum returns the minimum bit rate in bits per second.
func (s *Stream) BitRateMinimum() int64 {
	return s.paramInt64(ParamBitRateMinimum)
}

// BitRateMode returns the bit rate mode ("CBR" or "VBR").
func (s *Stream) BitRateMode() string {
	return s.param(ParamBitRateMode)
}

// BitRateNominal returns the nominal bit rate in bits per second.
func (s *Stream) BitRateNominal() int64 {
	return s.paramInt64(ParamBitRateNominal)
}

// BitRateString returns the bit rate with units, as rendered by the
// library (e.g. "1 509 kb/s").
func (s *Stream) BitRateString() string {
	return s.param(ParamBitRateString)
}

// CodecID returns the codec identifier as stored in the container, e.g.
// "V_MPEG4/ISO/AVC" or "mp4a-40-2".
func (s *Stream) CodecID() string {
	return s.param(ParamCodecID)
}

// CodecIDDescription returns the manufacturer's description of the codec.
func (s *Stream) CodecIDDescription() string {
	return s.param(ParamCodecIDDescription)
}

// CodecIDHint returns the codec hint stored alongside the identifier.
func (s *Stream) CodecIDHint() string {
	return s.param(ParamCodecIDHint)
}

// CodecIDInfo returns the human-readable expansion of the codec
// identifier.
func (s *Stream) CodecIDInfo() string {
	return s.param(ParamCodecIDInfo)
}

// CodecIDURL returns a vendor URL for the codec, or nil when none is
// published.
func (s *Stream) CodecIDURL() *url.URL {
	return s.file.GetURL(s.kind, s.index, ParamCodecIDURL)
}

// Count returns the number of parameters the parser filled for this
// stream.
func (s *Stream) Count() int {
	return s.file.ParamCount(s.kind, s.index)
}

// Default reports whether the stream is flagged as the default of its
// kind.
func (s *Stream) Default() bool {
	return s.paramBool(ParamDefault)
}

// Delay returns the stream delay relative to the container timeline.
func (s *Stream) Delay() time.Duration {
	return s.paramDuration(ParamDelay)
}

// Duration returns the play time of the stream.
func (s *Stream) Duration() time.Duration {
	return s.paramDuration(ParamDuration)
}

// DurationString returns the play time as rendered by the library (e.g.
// "1 h 29 min").
func (s *Stream) DurationString() string {
	return s.param(ParamDurationString)
}

// Forced reports whether the stream is flagged as forced.
func (s *Stream) Forced() bool {
	return s.paramBool(ParamForced)
}

// Format returns the format name, e.g. "AVC" or "FLAC".
func (s *Stream) Format() string {
	return s.param(ParamFormat)
}

// FormatCommercial returns the commercial format name, e.g. "HDV 720p".
func (s *Stream) FormatCommercial() string {
	return s.param(ParamFormatCommercial)
}

// FormatCommercialIfAny returns the commercial name only when it differs
// from the technical one.
func (s *Stream) FormatCommercialIfAny() string {
	return s.param(ParamFormatCommercialIfAny)
}

// FormatCompression returns the compression mode of the format.
func (s *Stream) FormatCompression() string {
	return s.param(ParamFormatCompression)
}

// FormatInfo returns the long name of the format.
func (s *Stream) FormatInfo() string {
	return s.param(ParamFormatInfo)
}

// FormatProfile returns the format profile, e.g. "High@L4.1".
func (s *Stream) FormatProfile() string {
	return s.param(ParamFormatProfile)
}

// FormatSettings returns the summary of format settings.
func (s *Stream) FormatSettings() string {
	return s.param(ParamFormatSettings)
}

// FormatURL returns the URL of the format specification, or nil.
func (s *Stream) FormatURL() *url.URL {
	return s.file.GetURL(s.kind, s.index, ParamFormatURL)
}

// FormatVersion returns the format version, e.g. "Version 2".
func (s *Stream) FormatVersion() string {
	return s.param(ParamFormatVersion)
}

// ID returns the container identifier of the stream as a number. Textual
// forms such as "189 (0xBD)" coerce to their leading number.
func (s *Stream) ID() int64 {
	return s.paramInt64(ParamID)
}

// IDString returns the container identifier as rendered by the library.
func (s *Stream) IDString() string {
	return s.param(ParamIDString)
}

// Index returns the zero-based index of the stream within its kind.
func (s *Stream) Index() int {
	return s.index
}

// Kind returns the stream kind this facade queries.
func (s *Stream) Kind() StreamKind {
	return s.kind
}

// Language returns the language code of the stream, e.g. "en".
func (s *Stream) Language() string {
	return s.param(ParamLanguage)
}

// LanguageString returns the display form of the language, e.g. "English".
func (s *Stream) LanguageString() string {
	return s.param(ParamLanguageString)
}

// MenuID returns the menu identifier the stream belongs to, as a number.
func (s *Stream) MenuID() int64 {
	return s.paramInt64(ParamMenuID)
}

// Parameter returns the raw text of any parameter by name, without
// coercion. It is the escape hatch for keys without a dedicated getter.
func (s *Stream) Parameter(name string) string {
	return s.param(name)
}

// StreamKindID returns the zero-based index of the stream within its kind
// as reported by the library.
func (s *Stream) StreamKindID() int {
	return s.paramInt(ParamStreamKindID)
}

// StreamKindPosition returns the one-based position of the stream within
// its kind as reported by the library.
func (s *Stream) StreamKindPosition() int {
	return s.paramInt(ParamStreamKindPos)
}

// StreamOrder returns the position of the stream in the container, across
// kinds.
func (s *Stream) StreamOrder() int {
	return s.paramInt(ParamStreamOrder)
}

// StreamSize returns the size of the stream payload in bytes.
func (s *Stream) StreamSize() int64 {
	return s.paramInt64(ParamStreamSize)
}

// Title returns the stream title tag.
func (s *Stream) Title() string {
	return s.param(ParamTitle)
}

// UniqueID returns the container-unique identifier of the stream, or nil.
// Matroska unique IDs overflow int64, hence the big integer.
func (s *Stream) UniqueID() *big.Int {
	return s.file.GetBigInt(s.kind, s.index, ParamUniqueID)
}

// UniqueIDString returns the unique identifier as rendered by the library.
func (s *Stream) UniqueIDString() string {
	return s.param(ParamUniqueIDString)
}

// Private methods (alphabetical)

// param looks one parameter up as raw text.
func (s *Stream) param(name string) string {
	return s.file.Get(s.kind, s.index, name)
}

// paramBool looks one parameter up as a boolean.
func (s *Stream) paramBool(name string) bool {
	return s.file.GetBool(s.kind, s.index, name)
}

// paramDuration looks one parameter up as a duration.
func (s *Stream) paramDuration(name string) time.Duration {
	return s.file.GetDuration(s.kind, s.index, name)
}

// paramFloat looks one parameter up as a float64.
func (s *Stream) paramFloat(name string) float64 {
	return s.file.GetFloat64(s.kind, s.index, name)
}

// paramInt looks one parameter up as an int.
func (s *Stream) paramInt(name string) int {
	return s.file.GetInt(s.kind, s.index, name)
}

// paramInt64 looks one parameter up as an int64.
func (s *Stream) paramInt64(name string) int64 {
	return s.file.GetInt64(s.kind, s.index, name)
}

// paramTime looks one parameter up as a timestamp.
func (s *Stream) paramTime(name string) time.Time {
	return s.file.GetTime(s.kind, s.index, name)
}
