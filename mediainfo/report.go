package mediainfo

import "time"

// Public types (alphabetical)

// AudioInfo is the materialized snapshot of one audio stream.
type AudioInfo struct {
	// ID is the container identifier of the stream.
	ID string `json:"id" bson:"id"`

	// Format is the format of the audio stream.
	Format string `json:"format" bson:"format"`

	// FormatInfo is the long name of the format.
	FormatInfo string `json:"format_info,omitempty" bson:"format_info,omitempty"`

	// CommercialName is the commercial name of the format.
	CommercialName string `json:"commercial_name,omitempty" bson:"commercial_name,omitempty"`

	// CodecID is the codec identifier as stored in the container.
	CodecID string `json:"codec_id,omitempty" bson:"codec_id,omitempty"`

	// Codec is the display name of the matched audio codec.
	Codec string `json:"codec" bson:"codec"`

	// Duration is the duration of the audio stream in seconds.
	Duration float64 `json:"duration" bson:"duration"`

	// BitRate is the bit rate of the audio stream in bits per second.
	BitRate int64 `json:"bit_rate" bson:"bit_rate"`

	// BitRateMode is the mode of the bit rate.
	BitRateMode string `json:"bit_rate_mode,omitempty" bson:"bit_rate_mode,omitempty"`

	// Channels is the number of channels in the audio stream.
	Channels int `json:"channels" bson:"channels"`

	// ChannelLayout is the layout of the channels.
	ChannelLayout string `json:"channel_layout,omitempty" bson:"channel_layout,omitempty"`

	// SamplingRate is the sampling rate of the audio stream in hertz.
	SamplingRate int `json:"sampling_rate" bson:"sampling_rate"`

	// BitDepth is the bit depth of the samples.
	BitDepth int `json:"bit_depth,omitempty" bson:"bit_depth,omitempty"`

	// CompressionMode is the compression mode ("Lossy" or "Lossless").
	CompressionMode string `json:"compression_mode,omitempty" bson:"compression_mode,omitempty"`

	// StreamSize is the size of the audio stream in bytes.
	StreamSize int64 `json:"stream_size" bson:"stream_size"`

	// Title is the title of the audio stream.
	Title string `json:"title,omitempty" bson:"title,omitempty"`

	// Language is the language of the audio stream.
	Language string `json:"language,omitempty" bson:"language,omitempty"`

	// Default indicates whether this is the default audio stream.
	Default bool `json:"default" bson:"default"`

	// Forced indicates whether this stream is forced.
	Forced bool `json:"forced" bson:"forced"`
}

// ChapterInfo is the materialized snapshot of one chapter entry.
type ChapterInfo struct {
	// Position is the chapter start offset in seconds.
	Position float64 `json:"position" bson:"position"`

	// Language is the language code of the title, when the container
	// stores one.
	Language string `json:"language,omitempty" bson:"language,omitempty"`

	// Title is the chapter title.
	Title string `json:"title,omitempty" bson:"title,omitempty"`
}

// ContainerInfo is the materialized snapshot of a parsed media container.
// It projects the facade surface into a plain serializable value for
// reporting and storage; building it drains every stream of the file.
type ContainerInfo struct {
	// General contains general information about the container.
	General GeneralInfo `json:"general" bson:"general"`

	// VideoStreams contains information about the video streams in the container.
	VideoStreams []VideoInfo `json:"video_streams,omitempty" bson:"video_streams,omitempty"`

	// AudioStreams contains information about the audio streams in the container.
	AudioStreams []AudioInfo `json:"audio_streams,omitempty" bson:"audio_streams,omitempty"`

	// SubtitleStreams contains information about the subtitle streams in the container.
	SubtitleStreams []SubtitleInfo `json:"subtitle_streams,omitempty" bson:"subtitle_streams,omitempty"`

	// ImageStreams contains information about the image streams in the container.
	ImageStreams []ImageInfo `json:"image_streams,omitempty" bson:"image_streams,omitempty"`

	// MenuStreams contains information about the menu streams in the container.
	MenuStreams []MenuInfo `json:"menu_streams,omitempty" bson:"menu_streams,omitempty"`
}

// GeneralInfo contains general information about a media container.
type GeneralInfo struct {
	// UniqueID is the unique identifier of the container.
	UniqueID string `json:"unique_id,omitempty" bson:"unique_id,omitempty"`

	// CompleteName is the complete name of the file.
	CompleteName string `json:"complete_name" bson:"complete_name"`

	// FileName is the name of the file, without extension.
	FileName string `json:"file_name" bson:"file_name"`

	// FileExtension is the extension of the file.
	FileExtension string `json:"file_extension,omitempty" bson:"file_extension,omitempty"`

	// Format is the container format.
	Format string `json:"format" bson:"format"`

	// FormatVersion is the version of the container format.
	FormatVersion string `json:"format_version,omitempty" bson:"format_version,omitempty"`

	// FileSize is the size of the file in bytes.
	FileSize int64 `json:"file_size" bson:"file_size"`

	// Duration is the duration of the media in seconds.
	Duration float64 `json:"duration" bson:"duration"`

	// OverallBitRate is the overall bit rate of the container in bits per second.
	OverallBitRate int64 `json:"overall_bit_rate" bson:"overall_bit_rate"`

	// FrameRate is the frame rate of the container.
	FrameRate float64 `json:"frame_rate,omitempty" bson:"frame_rate,omitempty"`

	// Streamable indicates whether the container is arranged for
	// progressive playback.
	Streamable bool `json:"streamable" bson:"streamable"`

	// Title is the title of the container.
	Title string `json:"title,omitempty" bson:"title,omitempty"`

	// EncodedDate is the date when the file was encoded, the zero time when
	// the container stores none.
	EncodedDate time.Time `json:"encoded_date" bson:"encoded_date"`

	// WritingApplication is the application used to write the file.
	WritingApplication string `json:"writing_application,omitempty" bson:"writing_application,omitempty"`

	// WritingLibrary is the library used to write the file.
	WritingLibrary string `json:"writing_library,omitempty" bson:"writing_library,omitempty"`
}

// ImageInfo is the materialized snapshot of one image stream.
type ImageInfo struct {
	// ID is the container identifier of the stream.
	ID string `json:"id" bson:"id"`

	// Format is the format of the image stream.
	Format string `json:"format" bson:"format"`

	// CodecID is the codec identifier as stored in the container.
	CodecID string `json:"codec_id,omitempty" bson:"codec_id,omitempty"`

	// Width is the image width in pixels.
	Width int `json:"width" bson:"width"`

	// Height is the image height in pixels.
	Height int `json:"height" bson:"height"`

	// BitDepth is the bit depth of the image.
	BitDepth int `json:"bit_depth,omitempty" bson:"bit_depth,omitempty"`

	// ColorSpace is the color space of the image.
	ColorSpace string `json:"color_space,omitempty" bson:"color_space,omitempty"`

	// StreamSize is the size of the image stream in bytes.
	StreamSize int64 `json:"stream_size" bson:"stream_size"`

	// Title is the title of the image stream.
	Title string `json:"title,omitempty" bson:"title,omitempty"`

	// Language is the language of the image stream.
	Language string `json:"language,omitempty" bson:"language,omitempty"`
}

// MenuInfo is the materialized snapshot of one menu stream.
type MenuInfo struct {
	// ID is the container identifier of the stream.
	ID string `json:"id,omitempty" bson:"id,omitempty"`

	// Format is the format of the menu stream.
	Format string `json:"format,omitempty" bson:"format,omitempty"`

	// Language is the language of the menu stream.
	Language string `json:"language,omitempty" bson:"language,omitempty"`

	// Chapters is the chapter table of the menu, in timeline order.
	Chapters []ChapterInfo `json:"chapters,omitempty" bson:"chapters,omitempty"`
}

// SubtitleInfo is the materialized snapshot of one text stream.
type SubtitleInfo struct {
	// ID is the container identifier of the stream.
	ID string `json:"id" bson:"id"`

	// Format is the format of the subtitle stream.
	Format string `json:"format" bson:"format"`

	// CodecID is the codec identifier as stored in the container.
	CodecID string `json:"codec_id,omitempty" bson:"codec_id,omitempty"`

	// CodecIDInfo is the human-readable expansion of the codec identifier.
	CodecIDInfo string `json:"codec_id_info,omitempty" bson:"codec_id_info,omitempty"`

	// Duration is the duration of the subtitle stream in seconds.
	Duration float64 `json:"duration,omitempty" bson:"duration,omitempty"`

	// ElementCount is the number of subtitle events in the stream.
	ElementCount int `json:"element_count,omitempty" bson:"element_count,omitempty"`

	// MuxingMode is how the stream is wrapped in the container.
	MuxingMode string `json:"muxing_mode,omitempty" bson:"muxing_mode,omitempty"`

	// StreamSize is the size of the subtitle stream in bytes.
	StreamSize int64 `json:"stream_size,omitempty" bson:"stream_size,omitempty"`

	// Title is the title of the subtitle stream.
	Title string `json:"title,omitempty" bson:"title,omitempty"`

	// Language is the language of the subtitle stream.
	Language string `json:"language,omitempty" bson:"language,omitempty"`

	// Default indicates whether this is the default subtitle stream.
	Default bool `json:"default" bson:"default"`

	// Forced indicates whether this stream is forced.
	Forced bool `json:"forced" bson:"forced"`
}

// VideoInfo is the materialized snapshot of one video stream.
type VideoInfo struct {
	// ID is the container identifier of the stream.
	ID string `json:"id" bson:"id"`

	// Format is the format of the video stream.
	Format string `json:"format" bson:"format"`

	// FormatInfo is the long name of the format.
	FormatInfo string `json:"format_info,omitempty" bson:"format_info,omitempty"`

	// FormatProfile is the profile of the format.
	FormatProfile string `json:"format_profile,omitempty" bson:"format_profile,omitempty"`

	// CodecID is the codec identifier as stored in the container.
	CodecID string `json:"codec_id,omitempty" bson:"codec_id,omitempty"`

	// Codec is the display name of the matched video codec.
	Codec string `json:"codec" bson:"codec"`

	// Duration is the duration of the video stream in seconds.
	Duration float64 `json:"duration" bson:"duration"`

	// BitRate is the bit rate of the video stream in bits per second.
	BitRate int64 `json:"bit_rate" bson:"bit_rate"`

	// Width is the display width in pixels.
	Width int `json:"width" bson:"width"`

	// Height is the display height in pixels.
	Height int `json:"height" bson:"height"`

	// DisplayAspectRatio is the display aspect ratio as a ratio.
	DisplayAspectRatio float64 `json:"display_aspect_ratio" bson:"display_aspect_ratio"`

	// PixelAspectRatio is the pixel aspect ratio, 1 for square pixels.
	PixelAspectRatio float64 `json:"pixel_aspect_ratio,omitempty" bson:"pixel_aspect_ratio,omitempty"`

	// FrameRate is the frame rate in frames per second.
	FrameRate float64 `json:"frame_rate" bson:"frame_rate"`

	// FrameRateMode is the frame rate mode ("CFR" or "VFR").
	FrameRateMode string `json:"frame_rate_mode,omitempty" bson:"frame_rate_mode,omitempty"`

	// FrameCount is the number of frames in the stream.
	FrameCount int64 `json:"frame_count,omitempty" bson:"frame_count,omitempty"`

	// BitDepth is the bit depth of the stream.
	BitDepth int `json:"bit_depth,omitempty" bson:"bit_depth,omitempty"`

	// ColorSpace is the color space of the stream.
	ColorSpace string `json:"color_space,omitempty" bson:"color_space,omitempty"`

	// ChromaSubsampling is the chroma subsampling scheme.
	ChromaSubsampling string `json:"chroma_subsampling,omitempty" bson:"chroma_subsampling,omitempty"`

	// ScanType is the scan type ("Progressive" or "Interlaced").
	ScanType string `json:"scan_type,omitempty" bson:"scan_type,omitempty"`

	// HDRFormat is the HDR format name, empty for SDR streams.
	HDRFormat string `json:"hdr_format,omitempty" bson:"hdr_format,omitempty"`

	// HDR indicates whether the stream carries high dynamic range content.
	HDR bool `json:"hdr" bson:"hdr"`

	// ColourPrimaries is the colour primaries of the stream.
	ColourPrimaries string `json:"colour_primaries,omitempty" bson:"colour_primaries,omitempty"`

	// TransferCharacteristics is the transfer characteristics of the stream.
	TransferCharacteristics string `json:"transfer_characteristics,omitempty" bson:"transfer_characteristics,omitempty"`

	// StreamSize is the size of the video stream in bytes.
	StreamSize int64 `json:"stream_size" bson:"stream_size"`

	// Title is the title of the video stream.
	Title string `json:"title,omitempty" bson:"title,omitempty"`

	// Language is the language of the video stream.
	Language string `json:"language,omitempty" bson:"language,omitempty"`

	// Default indicates whether this is the default video stream.
	Default bool `json:"default" bson:"default"`

	// Forced indicates whether this stream is forced.
	Forced bool `json:"forced" bson:"forced"`
}

// Public functions (alphabetical)

// AnalyzeFile opens a media file, materializes its container snapshot, and
// closes it again.
func AnalyzeFile(path string) (*ContainerInfo, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return file.ContainerInfo(), nil
}

// Public methods (alphabetical)

// ContainerInfo materializes the snapshot of the parsed file by draining
// every stream through the typed facades.
func (f *File) ContainerInfo() *ContainerInfo {
	info := &ContainerInfo{General: buildGeneralInfo(f.General())}
	for _, v := range f.Videos() {
		info.VideoStreams = append(info.VideoStreams, buildVideoInfo(v))
	}
	for _, a := range f.Audios() {
		info.AudioStreams = append(info.AudioStreams, buildAudioInfo(a))
	}
	for _, t := range f.Texts() {
		info.SubtitleStreams = append(info.SubtitleStreams, buildSubtitleInfo(t))
	}
	for _, i := range f.Images() {
		info.ImageStreams = append(info.ImageStreams, buildImageInfo(i))
	}
	for _, m := range f.Menus() {
		info.MenuStreams = append(info.MenuStreams, buildMenuInfo(m))
	}
	return info
}

// Private functions (alphabetical)

// buildAudioInfo snapshots one audio stream facade.
func buildAudioInfo(a *AudioStream) AudioInfo {
	return AudioInfo{
		ID:              a.IDString(),
		Format:          a.Format(),
		FormatInfo:      a.FormatInfo(),
		CommercialName:  a.FormatCommercialIfAny(),
		CodecID:         a.CodecID(),
		Codec:           a.Codec().String(),
		Duration:        a.Duration().Seconds(),
		BitRate:         a.BitRate(),
		BitRateMode:     a.BitRateMode(),
		Channels:        a.Channels(),
		ChannelLayout:   a.ChannelLayout(),
		SamplingRate:    a.SamplingRate(),
		BitDepth:        a.BitDepth(),
		CompressionMode: a.CompressionMode(),
		StreamSize:      a.StreamSize(),
		Title:           a.Title(),
		Language:        a.Language(),
		Default:         a.Default(),
		Forced:          a.Forced(),
	}
}

// buildGeneralInfo snapshots the container-level facade.
func buildGeneralInfo(g *GeneralStream) GeneralInfo {
	uniqueID := ""
	if id := g.UniqueID(); id != nil {
		uniqueID = id.String()
	}
	return GeneralInfo{
		UniqueID:           uniqueID,
		CompleteName:       g.CompleteName(),
		FileName:           g.FileName(),
		FileExtension:      g.FileExtension(),
		Format:             g.Format(),
		FormatVersion:      g.FormatVersion(),
		FileSize:           g.FileSize(),
		Duration:           g.Duration().Seconds(),
		OverallBitRate:     g.OverallBitRate(),
		FrameRate:          g.paramFloat(ParamFrameRate),
		Streamable:         g.Streamable(),
		Title:              g.Title(),
		EncodedDate:        g.EncodedDate(),
		WritingApplication: g.EncodedApplication(),
		WritingLibrary:     g.EncodedLibrary(),
	}
}

// buildImageInfo snapshots one image stream facade.
func buildImageInfo(i *ImageStream) ImageInfo {
	return ImageInfo{
		ID:         i.IDString(),
		Format:     i.Format(),
		CodecID:    i.CodecID(),
		Width:      i.Width(),
		Height:     i.Height(),
		BitDepth:   i.BitDepth(),
		ColorSpace: i.ColorSpace(),
		StreamSize: i.StreamSize(),
		Title:      i.Title(),
		Language:   i.Language(),
	}
}

// buildMenuInfo snapshots one menu stream facade, chapter table included.
func buildMenuInfo(m *MenuStream) MenuInfo {
	info := MenuInfo{
		ID:       m.IDString(),
		Format:   m.Format(),
		Language: m.Language(),
	}
	for _, chapter := range m.Chapters() {
		info.Chapters = append(info.Chapters, ChapterInfo{
			Position: chapter.Position.Seconds(),
			Language: chapter.Language,
			Title:    chapter.Title,
		})
	}
	return info
}

// buildSubtitleInfo snapshots one text stream facade.
func buildSubtitleInfo(t *TextStream) SubtitleInfo {
	return SubtitleInfo{
		ID:           t.IDString(),
		Format:       t.Format(),
		CodecID:      t.CodecID(),
		CodecIDInfo:  t.CodecIDInfo(),
		Duration:     t.Duration().Seconds(),
		ElementCount: t.ElementCount(),
		MuxingMode:   t.MuxingMode(),
		StreamSize:   t.StreamSize(),
		Title:        t.Title(),
		Language:     t.Language(),
		Default:      t.Default(),
		Forced:       t.Forced(),
	}
}

// buildVideoInfo snapshots one video stream facade.
func buildVideoInfo(v *VideoStream) VideoInfo {
	return VideoInfo{
		ID:                      v.IDString(),
		Format:                  v.Format(),
		FormatInfo:              v.FormatInfo(),
		FormatProfile:           v.FormatProfile(),
		CodecID:                 v.CodecID(),
		Codec:                   v.Codec().String(),
		Duration:                v.Duration().Seconds(),
		BitRate:                 v.BitRate(),
		Width:                   v.Width(),
		Height:                  v.Height(),
		DisplayAspectRatio:      v.DisplayAspectRatio(),
		PixelAspectRatio:        v.PixelAspectRatio(),
		FrameRate:               v.FrameRate(),
		FrameRateMode:           v.FrameRateMode(),
		FrameCount:              v.FrameCount(),
		BitDepth:                v.BitDepth(),
		ColorSpace:              v.ColorSpace(),
		ChromaSubsampling:       v.ChromaSubsampling(),
		ScanType:                v.ScanType(),
		HDRFormat:               v.HDRFormat(),
		HDR:                     v.IsHDR(),
		ColourPrimaries:         v.ColourPrimaries(),
		TransferCharacteristics: v.TransferCharacteristics(),
		StreamSize:              v.StreamSize(),
		Title:                   v.Title(),
		Language:                v.Language(),
		Default:                 v.Default(),
		Forced:                  v.Forced(),
	}
}
