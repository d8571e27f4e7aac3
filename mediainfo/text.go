package mediainfo

// Public types (alphabetical)

// TextStream is the typed facade over one text (subtitle) stream.
type TextStream struct {
	Stream
}

// Public functions (alphabetical)

// Text returns the facade over the text stream at index.
func (f *File) Text(index int) *TextStream {
	return &TextStream{Stream{file: f, kind: StreamText, index: index}}
}

// Texts returns facades over every text stream in the container.
func (f *File) Texts() []*TextStream {
	streams := make([]*TextStream, f.StreamCount(StreamText))
	for i := range streams {
		streams[i] = f.Text(i)
	}
	return streams
}

// Public methods (alphabetical)

// ElementCount returns the number of subtitle events in the stream.
func (t *TextStream) ElementCount() int {
	return t.paramInt(ParamElementCount)
}

// FrameRate returns the frame rate of image-based subtitles in frames per
// second, or 0 for text-based ones.
func (t *TextStream) FrameRate() float64 {
	return t.paramFloat(ParamFrameRate)
}

// MuxingMode returns how the stream is wrapped in the container, e.g.
// "zlib".
func (t *TextStream) MuxingMode() string {
	return t.param(ParamMuxingMode)
}
