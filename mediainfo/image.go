package mediainfo

// Public types (alphabetical)

// ImageStream is the typed facade over one image stream, such as embedded
// cover art.
type ImageStream struct {
	Stream
}

// Public functions (alphabetical)

// Image returns the facade over the image stream at index.
func (f *File) Image(index int) *ImageStream {
	return &ImageStream{Stream{file: f, kind: StreamImage, index: index}}
}

// Images returns facades over every image stream in the container.
func (f *File) Images() []*ImageStream {
	streams := make([]*ImageStream, f.StreamCount(StreamImage))
	for i := range streams {
		streams[i] = f.Image(i)
	}
	return streams
}

// Public methods (alphabetical)

// BitDepth returns the bit depth of the image, e.g. 8.
func (i *ImageStream) BitDepth() int {
	return i.paramInt(ParamBitDepth)
}

// ChromaSubsampling returns the chroma subsampling scheme, e.g. "4:2:0".
func (i *ImageStream) ChromaSubsampling() string {
	return i.param(ParamChromaSubsampling)
}

// ColorSpace returns the color space, e.g. "YUV" or "RGB".
func (i *ImageStream) ColorSpace() string {
	return i.param(ParamColorSpace)
}

// Height returns the image height in pixels.
func (i *ImageStream) Height() int {
	return i.paramInt(ParamHeight)
}

// Width returns the image width in pixels.
func (i *ImageStream) Width() int {
	return i.paramInt(ParamWidth)
}
