package mediainfo

import "strings"

// Codec identifier tables. Containers report codecs under many spellings
// (FourCCs, Matroska IDs, MP4 sample entries, RealMedia IDs, WMA format
// tags); these enumerations collapse the aliases into one value per codec.

// Public types (alphabetical)

// AudioCodec identifies an audio compression format independently of the
// container-specific codec ID spelling.
type AudioCodec int

// VideoCodec identifies a video compression format independently of the
// container-specific codec ID spelling.
type VideoCodec int

// Public constants

// Audio codecs. AudioCodecUnknown is the zero value, returned for codec
// IDs outside the alias tables.
const (
	AudioCodecUnknown AudioCodec = iota
	AudioCodecAAC
	AudioCodecAC3
	AudioCodecACELP
	AudioCodecALAC
	AudioCodecAMR
	AudioCodecATRAC3
	AudioCodecCook
	AudioCodecDTS
	AudioCodecEAC3
	AudioCodecFLAC
	AudioCodecG728
	AudioCodecMP2
	AudioCodecMP3
	AudioCodecOpus
	AudioCodecPCM
	AudioCodecRealAudio8
	AudioCodecRealAudioLossless
	AudioCodecRealAudioMulti
	AudioCodecTrueHD
	AudioCodecVorbis
	AudioCodecVSELP
	AudioCodecWMA
)

// Video codecs. VideoCodecUnknown is the zero value, returned for codec
// IDs outside the alias tables.
const (
	VideoCodecUnknown VideoCodec = iota
	VideoCodecAV1
	VideoCodecAVC
	VideoCodecDV
	VideoCodecFFV1
	VideoCodecH263
	VideoCodecHEVC
	VideoCodecMJPEG
	VideoCodecMPEG1
	VideoCodecMPEG2
	VideoCodecMPEG4
	VideoCodecProRes
	VideoCodecRealVideo
	VideoCodecTheora
	VideoCodecVC1
	VideoCodecVP8
	VideoCodecVP9
	VideoCodecWMV
)

// Private variables (alphabetical)

// audioCodecTable maps each audio codec to the codec ID spellings seen in
// the wild. RealMedia IDs ("raac", "dnet", "14_4") and WAVE format tags
// ("161", "2000") are the least guessable entries.
var audioCodecTable = []struct {
	codec   AudioCodec
	aliases []string
}{
	{AudioCodecAAC, []string{"AAC", "A_AAC", "A_AAC/MPEG4/LC", "A_AAC/MPEG4/LC/SBR", "mp4a", "mp4a-40-2", "mp4a-40-5", "raac", "racp"}},
	{AudioCodecAC3, []string{"AC-3", "AC3", "A_AC3", "ac-3", "dnet", "2000"}},
	{AudioCodecACELP, []string{"ACELP", "sipr"}},
	{AudioCodecALAC, []string{"ALAC", "A_ALAC", "alac"}},
	{AudioCodecAMR, []string{"AMR", "samr", "sawb"}},
	{AudioCodecATRAC3, []string{"ATRAC3", "Atrac", "atrc", "270"}},
	{AudioCodecCook, []string{"Cook", "Cooker", "cook"}},
	{AudioCodecDTS, []string{"DTS", "A_DTS", "dtsc", "dtse", "dtsh", "dtsl", "8"}},
	{AudioCodecEAC3, []string{"E-AC-3", "EAC3", "A_EAC3", "ec-3"}},
	{AudioCodecFLAC, []string{"FLAC", "A_FLAC", "flac"}},
	{AudioCodecG728, []string{"G.728", "28_8", "_28_8", "28.8", "_28.8"}},
	{AudioCodecMP2, []string{"MP2", "A_MPEG/L2", "mp2"}},
	{AudioCodecMP3, []string{"MP3", "A_MPEG/L3", "mp3", "55", "audio/X-MP3-draft-00"}},
	{AudioCodecOpus, []string{"Opus", "A_OPUS", "opus"}},
	{AudioCodecPCM, []string{"PCM", "A_PCM/INT/LIT", "A_PCM/INT/BIG", "A_PCM/FLOAT/IEEE", "lpcm", "sowt", "twos", "1"}},
	{AudioCodecRealAudio8, []string{"RealAudio 8", "rtrc"}},
	{AudioCodecRealAudioLossless, []string{"RealAudio Lossless", "ralf", "audio/x-ralf-mpeg4", "audio/x-ralf-mpeg4-generic"}},
	{AudioCodecRealAudioMulti, []string{"RealAudio Multi-Channel", "whrl"}},
	{AudioCodecTrueHD, []string{"TrueHD", "A_TRUEHD", "mlpa"}},
	{AudioCodecVorbis, []string{"Vorbis", "A_VORBIS", "vorb"}},
	{AudioCodecVSELP, []string{"VSELP", "14_4", "_14_4", "14.4", "_14.4", "lpcJ"}},
	{AudioCodecWMA, []string{"WMA", "160", "161", "162", "163"}},
}

// videoCodecTable maps each video codec to the codec ID spellings seen in
// the wild.
var videoCodecTable = []struct {
	codec   VideoCodec
	aliases []string
}{
	{VideoCodecAV1, []string{"AV1", "V_AV1", "av01"}},
	{VideoCodecAVC, []string{"AVC", "H264", "H.264", "V_MPEG4/ISO/AVC", "avc1", "avc3", "X264", "27"}},
	{VideoCodecDV, []string{"DV", "dvsd", "dvhd", "dvsl"}},
	{VideoCodecFFV1, []string{"FFV1", "V_FFV1"}},
	{VideoCodecH263, []string{"H.263", "H263", "h263", "s263"}},
	{VideoCodecHEVC, []string{"HEVC", "H265", "H.265", "V_MPEGH/ISO/HEVC", "hvc1", "hev1", "X265", "36"}},
	{VideoCodecMJPEG, []string{"M-JPEG", "MJPG", "mjpa", "mjpb", "jpeg"}},
	{VideoCodecMPEG1, []string{"MPEG-1 Video", "V_MPEG1", "mpg1", "mp1v"}},
	{VideoCodecMPEG2, []string{"MPEG-2 Video", "V_MPEG2", "mp2v", "2"}},
	{VideoCodecMPEG4, []string{"MPEG-4 Visual", "V_MPEG4/ISO/ASP", "V_MPEG4/ISO/SP", "V_MPEG4/ISO/AP", "V_MPEG4/MS/V3", "mp4v", "mp4v-20", "XVID", "DIVX", "DX50", "FMP4"}},
	{VideoCodecProRes, []string{"ProRes", "apch", "apcn", "apco", "apcs", "ap4h", "ap4x"}},
	{VideoCodecRealVideo, []string{"RealVideo", "RV10", "RV13", "RV20", "RV30", "RV40", "V_REAL/RV40"}},
	{VideoCodecTheora, []string{"Theora", "V_THEORA", "theo"}},
	{VideoCodecVC1, []string{"VC-1", "VC1", "WVC1", "WMVA"}},
	{VideoCodecVP8, []string{"VP8", "V_VP8", "VP80"}},
	{VideoCodecVP9, []string{"VP9", "V_VP9", "VP90", "vp09"}},
	{VideoCodecWMV, []string{"WMV", "WMV1", "WMV2", "WMV3"}},
}

// Public functions (alphabetical)

// LookupAudioCodec matches a codec ID, format name, or alias against the
// audio codec table. Matching trims whitespace and ignores case; unknown
// IDs return AudioCodecUnknown.
func LookupAudioCodec(codecID string) AudioCodec {
	trimmed := strings.TrimSpace(codecID)
	if trimmed == "" {
		return AudioCodecUnknown
	}
	for _, entry := range audioCodecTable {
		for _, alias := range entry.aliases {
			if strings.EqualFold(trimmed, alias) {
				return entry.codec
			}
		}
	}
	return AudioCodecUnknown
}

// LookupVideoCodec matches a codec ID, format name, or alias against the
// video codec table. Matching trims whitespace and ignores case; unknown
// IDs return VideoCodecUnknown.
func LookupVideoCodec(codecID string) VideoCodec {
	trimmed := strings.TrimSpace(codecID)
	if trimmed == "" {
		return VideoCodecUnknown
	}
	for _, entry := range videoCodecTable {
		for _, alias := range entry.aliases {
			if strings.EqualFold(trimmed, alias) {
				return entry.codec
			}
		}
	}
	return VideoCodecUnknown
}

// Public methods (alphabetical)

// String returns the display name of the codec.
func (c AudioCodec) String() string {
	switch c {
	case AudioCodecAAC:
		return "AAC"
	case AudioCodecAC3:
		return "AC-3"
	case AudioCodecACELP:
		return "ACELP"
	case AudioCodecALAC:
		return "ALAC"
	case AudioCodecAMR:
		return "AMR"
	case AudioCodecATRAC3:
		return "ATRAC3"
	case AudioCodecCook:
		return "Cook"
	case AudioCodecDTS:
		return "DTS"
	case AudioCodecEAC3:
		return "E-AC-3"
	case AudioCodecFLAC:
		return "FLAC"
	case AudioCodecG728:
		return "G.728"
	case AudioCodecMP2:
		return "MP2"
	case AudioCodecMP3:
		return "MP3"
	case AudioCodecOpus:
		return "Opus"
	case AudioCodecPCM:
		return "PCM"
	case AudioCodecRealAudio8:
		return "RealAudio 8"
	case AudioCodecRealAudioLossless:
		return "RealAudio Lossless"
	case AudioCodecRealAudioMulti:
		return "RealAudio Multi-Channel"
	case AudioCodecTrueHD:
		return "TrueHD"
	case AudioCodecVorbis:
		return "Vorbis"
	case AudioCodecVSELP:
		return "VSELP"
	case AudioCodecWMA:
		return "WMA"
	default:
		return "Unknown"
	}
}

// String returns the display name of the codec.
func (c VideoCodec) String() string {
	switch c {
	case VideoCodecAV1:
		return "AV1"
	case VideoCodecAVC:
		return "AVC"
	case VideoCodecDV:
		return "DV"
	case VideoCodecFFV1:
		return "FFV1"
	case VideoCodecH263:
		return "H.263"
	case VideoCodecHEVC:
		return "HEVC"
	case VideoCodecMJPEG:
		return "M-JPEG"
	case VideoCodecMPEG1:
		return "MPEG-1 Video"
	case VideoCodecMPEG2:
		return "MPEG-2 Video"
	case VideoCodecMPEG4:
		return "MPEG-4 Visual"
	case VideoCodecProRes:
		return "ProRes"
	case VideoCodecRealVideo:
		return "RealVideo"
	case VideoCodecTheora:
		return "Theora"
	case VideoCodecVC1:
		return "VC-1"
	case VideoCodecVP8:
		return "VP8"
	case VideoCodecVP9:
		return "VP9"
	case VideoCodecWMV:
		return "WMV"
	default:
		return "Unknown"
	}
}
