package mediainfo

// Public types (alphabetical)

// AudioStream is the typed facade over one audio stream.
type AudioStream struct {
	Stream
}

// Public functions (alphabetical)

// Audio returns the facade over the audio stream at index.
func (f *File) Audio(index int) *AudioStream {
	return &AudioStream{Stream{file: f, kind: StreamAudio, index: index}}
}

// Audios returns facades over every audio stream in the container.
func (f *File) Audios() []*AudioStream {
	streams := make([]*AudioStream, f.StreamCount(StreamAudio))
	for i := range streams {
		streams[i] = f.Audio(i)
	}
	return streams
}

// Public methods (alphabetical)

// BitDepth returns the bit depth of the samples, e.g. 16 or 24.
func (a *AudioStream) BitDepth() int {
	return a.paramInt(ParamBitDepth)
}

// ChannelLayout returns the channel layout, e.g. "L R C LFE Ls Rs".
func (a *AudioStream) ChannelLayout() string {
	return a.param(ParamChannelLayout)
}

// ChannelPositions returns the channel positions, e.g.
// "Front: L C R, Side: L R, LFE".
func (a *AudioStream) ChannelPositions() string {
	return a.param(ParamChannelPositions)
}

// Channels returns the channel count. Streams with a core and an
// extension report both ("8 / 6"); the first count wins.
func (a *AudioStream) Channels() int {
	return a.paramInt(ParamChannels)
}

// Codec returns the audio codec of the stream, matched from its codec ID
// and format name.
func (a *AudioStream) Codec() AudioCodec {
	if codec := LookupAudioCodec(a.CodecID()); codec != AudioCodecUnknown {
		return codec
	}
	return LookupAudioCodec(a.Format())
}

// CompressionMode returns the compression mode ("Lossy" or "Lossless").
func (a *AudioStream) CompressionMode() string {
	return a.param(ParamCompressionMode)
}

// ReplayGainGain returns the ReplayGain track gain in decibels, or 0 when
// the stream carries none.
func (a *AudioStream) ReplayGainGain() float64 {
	return a.paramFloat(ParamReplayGainGain)
}

// ReplayGainPeak returns the ReplayGain track peak, or 0 when the stream
// carries none.
func (a *AudioStream) ReplayGainPeak() float64 {
	return a.paramFloat(ParamReplayGainPeak)
}

// SamplingCount returns the number of audio samples in the stream.
func (a *AudioStream) SamplingCount() int64 {
	return a.paramInt64(ParamSamplingCount)
}

// SamplingRate returns the sampling rate in hertz, e.g. 48000.
func (a *AudioStream) SamplingRate() int {
	return a.paramInt(ParamSamplingRate)
}
