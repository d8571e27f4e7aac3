package mediainfo

import (
	"strconv"
	"strings"
)

// Public types (alphabetical)

// InfoKind selects which facet of a parameter a query returns.
// The values mirror the native MediaInfo_info_C enumeration and are passed
// through to the library unchanged.
type InfoKind int

// Public constants (alphabetical by type)

// InfoKind values accepted by Get and GetWithOptions.
const (
	// InfoName requests the parameter name itself.
	InfoName InfoKind = iota

	// InfoText requests the parameter value. This is the facet almost
	// every lookup wants and the default used by Get.
	InfoText

	// InfoMeasure requests the unit of the parameter (e.g. " ms").
	InfoMeasure

	// InfoOptions requests the parameter option flags.
	InfoOptions

	// InfoNameText requests the localized parameter name.
	InfoNameText

	// InfoMeasureText requests the localized unit.
	InfoMeasureText

	// InfoInfo requests the human-readable description of the parameter.
	InfoInfo

	// InfoHowTo requests usage information for the parameter.
	InfoHowTo

	// InfoDomain requests the domain of the parameter.
	InfoDomain
)

// StreamKind identifies a category of media track inside a container.
// The values mirror the native MediaInfo_stream_C enumeration and are used
// as query keys into the library.
type StreamKind int

// StreamKind values accepted by stream queries.
const (
	// StreamGeneral is the container-level pseudo stream. Every opened
	// file has exactly one.
	StreamGeneral StreamKind = iota

	// StreamVideo covers video tracks.
	StreamVideo

	// StreamAudio covers audio tracks.
	StreamAudio

	// StreamText covers subtitle and caption tracks.
	StreamText

	// StreamChapters covers chapter tracks (the slot the native library
	// also labels "Other").
	StreamChapters

	// StreamImage covers still images such as embedded cover art.
	StreamImage

	// StreamMenu covers menu tracks, including DVD/Matroska chapter menus.
	StreamMenu
)

// Private variables (alphabetical)

// streamKindNames maps StreamKind ordinals to their display names.
var streamKindNames = [...]string{
	StreamGeneral:  "General",
	StreamVideo:    "Video",
	StreamAudio:    "Audio",
	StreamText:     "Text",
	StreamChapters: "Chapters",
	StreamImage:    "Image",
	StreamMenu:     "Menu",
}

// Public functions (alphabetical)

// AllStreamKinds returns every stream kind in native ordinal order.
// It is handy for callers that iterate a whole container.
func AllStreamKinds() []StreamKind {
	return []StreamKind{
		StreamGeneral,
		StreamVideo,
		StreamAudio,
		StreamText,
		StreamChapters,
		StreamImage,
		StreamMenu,
	}
}

// ParseStreamKind converts a kind name such as "Video" or "audio" into a
// StreamKind. The second return value reports whether the name was known.
func ParseStreamKind(name string) (StreamKind, bool) {
	trimmed := strings.TrimSpace(name)
	for kind, known := range streamKindNames {
		if strings.EqualFold(trimmed, known) {
			return StreamKind(kind), true
		}
	}
	return StreamGeneral, false
}

// String returns the display name of the stream kind (e.g. "Video").
// Unknown values format as "StreamKind(n)".
func (k StreamKind) String() string {
	if k >= 0 && int(k) < len(streamKindNames) {
		return streamKindNames[k]
	}
	return "StreamKind(" + strconv.Itoa(int(k)) + ")"
}
