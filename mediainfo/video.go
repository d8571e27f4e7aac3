package mediainfo

import "strings"

// Private variables (alphabetical)

// hdrTransferNames lists the transfer characteristics that mark a stream
// as high dynamic range.
var hdrTransferNames = []string{
	"ARIB STD-B67",
	"HLG",
	"PQ",
	"SMPTE ST 2084",
}

// Public types (alphabetical)

// VideoStream is the typed facade over one video stream.
type VideoStream struct {
	Stream
}

// Public functions (alphabetical)

// Video returns the facade over the video stream at index.
func (f *File) Video(index int) *VideoStream {
	return &VideoStream{Stream{file: f, kind: StreamVideo, index: index}}
}

// Videos returns facades over every video stream in the container.
func (f *File) Videos() []*VideoStream {
	streams := make([]*VideoStream, f.StreamCount(StreamVideo))
	for i := range streams {
		streams[i] = f.Video(i)
	}
	return streams
}

// Public methods (alphabetical)

// BitDepth returns the bit depth of the stream, e.g. 8 or 10.
func (v *VideoStream) BitDepth() int {
	return v.paramInt(ParamBitDepth)
}

// ChromaSubsampling returns the chroma subsampling scheme, e.g. "4:2:0".
func (v *VideoStream) ChromaSubsampling() string {
	return v.param(ParamChromaSubsampling)
}

// Codec returns the video codec of the stream, matched from its codec ID
// and format name.
func (v *VideoStream) Codec() VideoCodec {
	if codec := LookupVideoCodec(v.CodecID()); codec != VideoCodecUnknown {
		return codec
	}
	return LookupVideoCodec(v.Format())
}

// ColorSpace returns the color space, e.g. "YUV".
func (v *VideoStream) ColorSpace() string {
	return v.param(ParamColorSpace)
}

// ColourPrimaries returns the colour primaries, e.g. "BT.709" or
// "BT.2020".
func (v *VideoStream) ColourPrimaries() string {
	return v.param(ParamColourPrimaries)
}

// DisplayAspectRatio returns the display aspect ratio as a ratio, e.g.
// 1.778.
func (v *VideoStream) DisplayAspectRatio() float64 {
	return v.paramFloat(ParamDisplayAspectRatio)
}

// DisplayAspectRatioString returns the display aspect ratio as rendered
// by the library, e.g. "16:9".
func (v *VideoStream) DisplayAspectRatioString() string {
	return v.param(ParamDisplayAspectRatioString)
}

// FrameCount returns the number of frames in the stream.
func (v *VideoStream) FrameCount() int64 {
	return v.paramInt64(ParamFrameCount)
}

// FrameRate returns the frame rate in frames per second.
func (v *VideoStream) FrameRate() float64 {
	return v.paramFloat(ParamFrameRate)
}

// FrameRateMode returns the frame rate mode ("CFR" or "VFR").
func (v *VideoStream) FrameRateMode() string {
	return v.param(ParamFrameRateMode)
}

// FrameRateOriginal returns the frame rate before any container-level
// override, in frames per second.
func (v *VideoStream) FrameRateOriginal() float64 {
	return v.paramFloat(ParamFrameRateOriginal)
}

// HDRFormat returns the HDR format name, e.g. "Dolby Vision" or
// "SMPTE ST 2086", or the empty string for SDR streams.
func (v *VideoStream) HDRFormat() string {
	return v.param(ParamHDRFormat)
}

// Height returns the display height in pixels.
func (v *VideoStream) Height() int {
	return v.paramInt(ParamHeight)
}

// HeightOriginal returns the stored height in pixels before cropping or
// rotation.
func (v *VideoStream) HeightOriginal() int {
	return v.paramInt(ParamHeightOriginal)
}

// IsHDR reports whether the stream carries high dynamic range content,
// detected from the HDR format field or the transfer characteristics.
func (v *VideoStream) IsHDR() bool {
	if v.HDRFormat() != "" {
		return true
	}
	transfer := v.TransferCharacteristics()
	for _, name := range hdrTransferNames {
		if strings.EqualFold(transfer, name) {
			return true
		}
	}
	return false
}

// MatrixCoefficients returns the matrix coefficients, e.g.
// "BT.709".
func (v *VideoStream) MatrixCoefficients() string {
	return v.param(ParamMatrixCoefficients)
}

// MultiViewCount returns the number of views for stereoscopic streams,
// or 0.
func (v *VideoStream) MultiViewCount() int {
	return v.paramInt(ParamMultiViewCount)
}

// MultiViewLayout returns the view layout for stereoscopic streams, e.g.
// "Side by Side (left eye first)".
func (v *VideoStream) MultiViewLayout() string {
	return v.param(ParamMultiViewLayout)
}

// MuxingMode returns how the stream is wrapped in the container, e.g.
// "Header stripping".
func (v *VideoStream) MuxingMode() string {
	return v.param(ParamMuxingMode)
}

// PixelAspectRatio returns the pixel aspect ratio, 1 for square pixels.
func (v *VideoStream) PixelAspectRatio() float64 {
	return v.paramFloat(ParamPixelAspectRatio)
}

// Rotation returns the rotation to apply at playback, in degrees.
func (v *VideoStream) Rotation() float64 {
	return v.paramFloat(ParamRotation)
}

// ScanOrder returns the field order for interlaced streams, e.g. "TFF".
func (v *VideoStream) ScanOrder() string {
	return v.param(ParamScanOrder)
}

// ScanType returns the scan type ("Progressive" or "Interlaced").
func (v *VideoStream) ScanType() string {
	return v.param(ParamScanType)
}

// Standard returns the analog standard of the stream ("NTSC" or "PAL"),
// when one applies.
func (v *VideoStream) Standard() string {
	return v.param(ParamStandard)
}

// TransferCharacteristics returns the transfer characteristics, e.g.
// "BT.709" or "PQ".
func (v *VideoStream) TransferCharacteristics() string {
	return v.param(ParamTransferCharacteristics)
}

// Width returns the display width in pixels.
func (v *VideoStream) Width() int {
	return v.paramInt(ParamWidth)
}

// WidthOriginal returns the stored width in pixels before cropping or
// rotation.
func (v *VideoStream) WidthOriginal() int {
	return v.paramInt(ParamWidthOriginal)
}
