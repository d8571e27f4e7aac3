package mediainfo

// Parameter names accepted by Get. These are the keys of the native
// parameter table; the full table of the loaded library is available from
// InfoParameters. Names ending in "/String" select the display rendering
// of the machine-readable base parameter.

// Public constants: parameters shared by every stream kind (alphabetical)
const (
	ParamBitRate               = "BitRate"
	ParamBitRateMaximum        = "BitRate_Maximum"
	ParamBitRateMinimum        = "BitRate_Minimum"
	ParamBitRateMode           = "BitRate_Mode"
	ParamBitRateNominal        = "BitRate_Nominal"
	ParamBitRateString         = "BitRate/String"
	ParamCodecID               = "CodecID"
	ParamCodecIDDescription    = "CodecID/Description"
	ParamCodecIDHint           = "CodecID/Hint"
	ParamCodecIDInfo           = "CodecID/Info"
	ParamCodecIDString         = "CodecID/String"
	ParamCodecIDURL            = "CodecID/Url"
	ParamDefault               = "Default"
	ParamDelay                 = "Delay"
	ParamDuration              = "Duration"
	ParamDurationString        = "Duration/String"
	ParamForced                = "Forced"
	ParamFormat                = "Format"
	ParamFormatCommercial      = "Format_Commercial"
	ParamFormatCommercialIfAny = "Format_Commercial_IfAny"
	ParamFormatCompression     = "Format_Compression"
	ParamFormatInfo            = "Format/Info"
	ParamFormatProfile         = "Format_Profile"
	ParamFormatSettings        = "Format_Settings"
	ParamFormatURL             = "Format/Url"
	ParamFormatVersion         = "Format_Version"
	ParamID                    = "ID"
	ParamIDString              = "ID/String"
	ParamLanguage              = "Language"
	ParamLanguageString        = "Language/String"
	ParamMenuID                = "MenuID"
	ParamStreamKind            = "StreamKind"
	ParamStreamKindID          = "StreamKindID"
	ParamStreamKindPos         = "StreamKindPos"
	ParamStreamKindString      = "StreamKind/String"
	ParamStreamOrder           = "StreamOrder"
	ParamStreamSize            = "StreamSize"
	ParamTitle                 = "Title"
	ParamUniqueID              = "UniqueID"
	ParamUniqueIDString        = "UniqueID/String"
)

// Public constants: general stream parameters (alphabetical)
const (
	ParamAudioCount             = "AudioCount"
	ParamCompleteName           = "CompleteName"
	ParamDurationEnd            = "Duration_End"
	ParamDurationStart          = "Duration_Start"
	ParamEncodedApplication     = "Encoded_Application"
	ParamEncodedApplicationURL  = "Encoded_Application/Url"
	ParamEncodedDate            = "Encoded_Date"
	ParamEncodedLibrary         = "Encoded_Library"
	ParamEncodedLibraryDate     = "Encoded_Library_Date"
	ParamEncodedLibraryName     = "Encoded_Library_Name"
	ParamEncodedLibrarySettings = "Encoded_Library_Settings"
	ParamEncodedLibraryString   = "Encoded_Library/String"
	ParamEncodedLibraryVersion  = "Encoded_Library_Version"
	ParamFileCreatedDate        = "File_Created_Date"
	ParamFileExtension          = "FileExtension"
	ParamFileModifiedDate       = "File_Modified_Date"
	ParamFileName               = "FileName"
	ParamFileSize               = "FileSize"
	ParamFileSizeString         = "FileSize/String"
	ParamFolderName             = "FolderName"
	ParamFormatExtensions       = "Format/Extensions"
	ParamGeneralCount           = "GeneralCount"
	ParamImageCount             = "ImageCount"
	ParamInterleaved            = "Interleaved"
	ParamInternetMediaType      = "InternetMediaType"
	ParamIsStreamable           = "IsStreamable"
	ParamMenuCount              = "MenuCount"

	// ParamOtherCount counts the streams of the kind this package calls
	// Chapters; the native parameter table uses "Other" for that slot.
	ParamOtherCount = "OtherCount"

	ParamOverallBitRate        = "OverallBitRate"
	ParamOverallBitRateMaximum = "OverallBitRate_Maximum"
	ParamOverallBitRateMinimum = "OverallBitRate_Minimum"
	ParamOverallBitRateMode    = "OverallBitRate_Mode"
	ParamOverallBitRateNominal = "OverallBitRate_Nominal"
	ParamOverallBitRateString  = "OverallBitRate/String"
	ParamRecordedDate          = "Recorded_Date"
	ParamStreamSizeProportion  = "StreamSize_Proportion"
	ParamTaggedDate            = "Tagged_Date"
	ParamTextCount             = "TextCount"
	ParamVideoCount            = "VideoCount"
)

// Public constants: video stream parameters (alphabetical)
const (
	ParamBitDepth                 = "BitDepth"
	ParamChromaSubsampling        = "ChromaSubsampling"
	ParamColorSpace               = "ColorSpace"
	ParamDisplayAspectRatio       = "DisplayAspectRatio"
	ParamDisplayAspectRatioString = "DisplayAspectRatio/String"
	ParamFrameCount               = "FrameCount"
	ParamFrameRate                = "FrameRate"
	ParamFrameRateMode            = "FrameRate_Mode"
	ParamFrameRateOriginal        = "FrameRate_Original"
	ParamHDRFormat                = "HDR_Format"
	ParamHeight                   = "Height"
	ParamHeightOriginal           = "Height_Original"
	ParamMultiViewCount           = "MultiView_Count"
	ParamMultiViewLayout          = "MultiView_Layout"
	ParamMuxingMode               = "MuxingMode"
	ParamPixelAspectRatio         = "PixelAspectRatio"
	ParamRotation                 = "Rotation"
	ParamScanOrder                = "ScanOrder"
	ParamScanType                 = "ScanType"
	ParamStandard                 = "Standard"
	ParamWidth                    = "Width"
	ParamWidthOriginal            = "Width_Original"

	// Colour description parameters keep the lowercase spelling of the
	// native table.
	ParamColourPrimaries         = "colour_primaries"
	ParamMatrixCoefficients      = "matrix_coefficients"
	ParamTransferCharacteristics = "transfer_characteristics"
)

// Public constants: audio stream parameters (alphabetical)
const (
	ParamChannelLayout    = "ChannelLayout"
	ParamChannelPositions = "ChannelPositions"

	// ParamChannels carries the native spelling "Channel(s)". Multi-value
	// renderings such as "8 / 6" coerce to their first number.
	ParamChannels = "Channel(s)"

	ParamCompressionMode = "Compression_Mode"
	ParamReplayGainGain  = "ReplayGain_Gain"
	ParamReplayGainPeak  = "ReplayGain_Peak"
	ParamSamplingCount   = "SamplingCount"
	ParamSamplingRate    = "SamplingRate"
)

// Public constants: text stream parameters (alphabetical)
const (
	ParamElementCount = "ElementCount"
)

// Public constants: menu stream parameters (alphabetical)
const (
	ParamChaptersPosBegin = "Chapters_Pos_Begin"
	ParamChaptersPosEnd   = "Chapters_Pos_End"
)

// Private variables (alphabetical)

// commonParams are the parameters present on every stream kind.
var commonParams = []string{
	ParamBitRate,
	ParamBitRateMaximum,
	ParamBitRateMinimum,
	ParamBitRateMode,
	ParamBitRateNominal,
	ParamBitRateString,
	ParamCodecID,
	ParamCodecIDDescription,
	ParamCodecIDHint,
	ParamCodecIDInfo,
	ParamCodecIDString,
	ParamCodecIDURL,
	ParamDefault,
	ParamDelay,
	ParamDuration,
	ParamDurationString,
	ParamForced,
	ParamFormat,
	ParamFormatCommercial,
	ParamFormatCommercialIfAny,
	ParamFormatCompression,
	ParamFormatInfo,
	ParamFormatProfile,
	ParamFormatSettings,
	ParamFormatURL,
	ParamFormatVersion,
	ParamID,
	ParamIDString,
	ParamLanguage,
	ParamLanguageString,
	ParamMenuID,
	ParamStreamKind,
	ParamStreamKindID,
	ParamStreamKindPos,
	ParamStreamKindString,
	ParamStreamOrder,
	ParamStreamSize,
	ParamTitle,
	ParamUniqueID,
	ParamUniqueIDString,
}

// kindParams are the parameters specific to one stream kind.
var kindParams = map[StreamKind][]string{
	StreamGeneral: {
		ParamAudioCount,
		ParamCompleteName,
		ParamDurationEnd,
		ParamDurationStart,
		ParamEncodedApplication,
		ParamEncodedApplicationURL,
		ParamEncodedDate,
		ParamEncodedLibrary,
		ParamEncodedLibraryDate,
		ParamEncodedLibraryName,
		ParamEncodedLibrarySettings,
		ParamEncodedLibraryString,
		ParamEncodedLibraryVersion,
		ParamFileCreatedDate,
		ParamFileExtension,
		ParamFileModifiedDate,
		ParamFileName,
		ParamFileSize,
		ParamFileSizeString,
		ParamFolderName,
		ParamFormatExtensions,
		ParamGeneralCount,
		ParamImageCount,
		ParamInterleaved,
		ParamInternetMediaType,
		ParamIsStreamable,
		ParamMenuCount,
		ParamOtherCount,
		ParamOverallBitRate,
		ParamOverallBitRateMaximum,
		ParamOverallBitRateMinimum,
		ParamOverallBitRateMode,
		ParamOverallBitRateNominal,
		ParamOverallBitRateString,
		ParamRecordedDate,
		ParamStreamSizeProportion,
		ParamTaggedDate,
		ParamTextCount,
		ParamVideoCount,
	},
	StreamVideo: {
		ParamBitDepth,
		ParamChromaSubsampling,
		ParamColorSpace,
		ParamColourPrimaries,
		ParamDisplayAspectRatio,
		ParamDisplayAspectRatioString,
		ParamFrameCount,
		ParamFrameRate,
		ParamFrameRateMode,
		ParamFrameRateOriginal,
		ParamHDRFormat,
		ParamHeight,
		ParamHeightOriginal,
		ParamMatrixCoefficients,
		ParamMultiViewCount,
		ParamMultiViewLayout,
		ParamMuxingMode,
		ParamPixelAspectRatio,
		ParamRotation,
		ParamScanOrder,
		ParamScanType,
		ParamStandard,
		ParamTransferCharacteristics,
		ParamWidth,
		ParamWidthOriginal,
	},
	StreamAudio: {
		ParamBitDepth,
		ParamChannelLayout,
		ParamChannelPositions,
		ParamChannels,
		ParamCompressionMode,
		ParamReplayGainGain,
		ParamReplayGainPeak,
		ParamSamplingCount,
		ParamSamplingRate,
	},
	StreamText: {
		ParamElementCount,
		ParamFrameRate,
		ParamMuxingMode,
	},
	StreamChapters: {},
	StreamImage: {
		ParamBitDepth,
		ParamChromaSubsampling,
		ParamColorSpace,
		ParamHeight,
		ParamWidth,
	},
	StreamMenu: {
		ParamChaptersPosBegin,
		ParamChaptersPosEnd,
	},
}

// nativeKindNames maps StreamKind to the spelling used inside general
// parameter names such as "Video_Format_List". The Chapters slot is
// "Other" in the native table.
var nativeKindNames = map[StreamKind]string{
	StreamGeneral:  "General",
	StreamVideo:    "Video",
	StreamAudio:    "Audio",
	StreamText:     "Text",
	StreamChapters: "Other",
	StreamImage:    "Image",
	StreamMenu:     "Menu",
}

// Public functions (alphabetical)

// KnownParameters returns the curated parameter names this package knows
// for a stream kind, shared parameters included. The native library knows
// more; InfoParameters dumps its full table.
func KnownParameters(kind StreamKind) []string {
	specific := kindParams[kind]
	names := make([]string, 0, len(commonParams)+len(specific))
	names = append(names, commonParams...)
	names = append(names, specific...)
	return names
}

// Private functions (alphabetical)

// nativeKindName returns the native spelling of a kind for use inside
// composed general parameter names.
func nativeKindName(kind StreamKind) string {
	if name, ok := nativeKindNames[kind]; ok {
		return name
	}
	return kind.String()
}
