package mediainfo

import "sync"

// fakeEntry is one indexed parameter of a fake stream, as returned by the
// native GetI entry point.
type fakeEntry struct {
	name string
	text string
}

// fakeMedia is an in-memory stand-in for the native library. Installing it
// swaps the binding function pointers, so File and the facades can be
// exercised without a shared library on the machine.
type fakeMedia struct {
	mu sync.Mutex

	// params holds the named parameters of every stream, per kind and
	// stream index.
	params map[StreamKind][]map[string]string

	// entries holds the indexed parameters of every stream, keyed by the
	// parameter table position. Menu chapter tables live here.
	entries map[StreamKind][]map[int]fakeEntry

	// inform and informJSON are the canned Inform renderings.
	inform     string
	informJSON string

	// openOK controls whether the native open succeeds.
	openOK bool

	// options records every option set through a handle or globally.
	options map[string]string

	newCount    int
	deleteCount int
	closeCount  int

	// Buffered open behavior.
	bufferSupported bool
	bufferAccept    bool
	pendingSeek     *uint64
	bufferInits     []uint64
	bufferReceived  int
}

// newFakeMedia returns an empty fake that opens successfully.
func newFakeMedia() *fakeMedia {
	return &fakeMedia{
		params:  map[StreamKind][]map[string]string{},
		entries: map[StreamKind][]map[int]fakeEntry{},
		openOK:  true,
		options: map[string]string{},
	}
}

// install swaps the binding function pointers for the fake and marks the
// loader as loaded. The returned function restores the pristine state and
// must be deferred or registered as test cleanup.
func (m *fakeMedia) install() func() {
	loadMu.Lock()
	loaded = true
	loadedPath = "fake://mediainfo"
	loadMu.Unlock()

	mediaInfoNew = func() uintptr {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.newCount++
		return uintptr(m.newCount)
	}
	mediaInfoDelete = func(handle uintptr) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.deleteCount++
	}
	mediaInfoOpen = func(handle uintptr, path string) uintptr {
		if m.openOK {
			return 1
		}
		return 0
	}
	mediaInfoClose = func(handle uintptr) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.closeCount++
	}
	mediaInfoInform = func(handle uintptr, reserved uintptr) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.options["Inform"] == "JSON" {
			return m.informJSON
		}
		return m.inform
	}
	mediaInfoGet = func(handle uintptr, kind uintptr, stream uintptr, parameter string, infoKind uintptr, searchKind uintptr) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		streams := m.params[StreamKind(kind)]
		if int(stream) >= len(streams) {
			return ""
		}
		return streams[stream][parameter]
	}
	mediaInfoGetI = func(handle uintptr, kind uintptr, stream uintptr, parameter uintptr, infoKind uintptr) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		streams := m.entries[StreamKind(kind)]
		if int(stream) >= len(streams) {
			return ""
		}
		entry, ok := streams[stream][int(parameter)]
		if !ok {
			return ""
		}
		if InfoKind(infoKind) == InfoName {
			return entry.name
		}
		return entry.text
	}
	mediaInfoCountGet = func(handle uintptr, kind uintptr, stream uintptr) uintptr {
		m.mu.Lock()
		defer m.mu.Unlock()
		streams := m.params[StreamKind(kind)]
		if stream == allStreams {
			return uintptr(len(streams))
		}
		if int(stream) >= len(streams) {
			return 0
		}
		return uintptr(len(streams[stream]))
	}
	mediaInfoOption = func(handle uintptr, option string, value string) string {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.options[option] = value
		if option == "Info_Version" {
			return "MediaInfoLib - v24.01 (fake)"
		}
		return ""
	}

	if m.bufferSupported {
		mediaInfoOpenBufferInit = func(handle uintptr, size uint64, offset uint64) uintptr {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.bufferInits = append(m.bufferInits, offset)
			return 1
		}
		mediaInfoOpenBufferContinue = func(handle uintptr, buffer *byte, size uintptr) uintptr {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.bufferReceived += int(size)
			if m.bufferAccept {
				return bufferStatusAccepted
			}
			return 0
		}
		mediaInfoOpenBufferContinueGoToGet = func(handle uintptr) uint64 {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.pendingSeek != nil {
				goTo := *m.pendingSeek
				m.pendingSeek = nil
				return goTo
			}
			return noSeekRequest
		}
		mediaInfoOpenBufferFinalize = func(handle uintptr) uintptr {
			return 1
		}
	}

	return func() {
		resetBindings()
		loadMu.Lock()
		loaded = false
		loadedPath = ""
		loadMu.Unlock()
	}
}

// sampleMedia returns a fake populated like a typical Matroska movie: one
// HDR video stream, two audio streams, one subtitle, cover art, and a
// chapter menu.
func sampleMedia() *fakeMedia {
	m := newFakeMedia()
	m.inform = "General\nComplete name : /media/sample.mkv\n"
	m.informJSON = `{"media":{"@ref":"/media/sample.mkv"}}`

	m.params[StreamGeneral] = []map[string]string{{
		"CompleteName":        "/media/sample.mkv",
		"FolderName":          "/media",
		"FileName":            "sample",
		"FileExtension":       "mkv",
		"Format":              "Matroska",
		"Format_Version":      "Version 4",
		"Format/Extensions":   "mkv mk3d mka mks",
		"FileSize":            "1234567890",
		"FileSize/String":     "1.15 GiB",
		"Duration":            "5400000",
		"Duration/String":     "1 h 30 min",
		"OverallBitRate":      "1828962",
		"OverallBitRate/String": "1 829 kb/s",
		"OverallBitRate_Mode": "VBR",
		"FrameRate":           "23.976",
		"GeneralCount":        "1",
		"VideoCount":          "1",
		"AudioCount":          "2",
		"TextCount":           "1",
		"OtherCount":          "0",
		"ImageCount":          "1",
		"MenuCount":           "1",
		"IsStreamable":        "Yes",
		"Interleaved":         "No",
		"InternetMediaType":   "video/x-matroska",
		"Title":               "Sample Movie",
		"UniqueID":            "203902186524291758386621404849666670557",
		"Encoded_Date":        "UTC 2024-03-01 12:00:00",
		"Tagged_Date":         "UTC 2024-03-01 12:05:00",
		"Encoded_Application": "mkvmerge v80.0 ('Appetite') 64-bit",
		"Encoded_Library":     "libebml v1.4.4 + libmatroska v1.7.1",
		"Audio_Format_List":   "AAC / AC-3",
		"Audio_Language_List": "English / French",
	}}

	m.params[StreamVideo] = []map[string]string{{
		"ID":                       "1",
		"ID/String":                "1",
		"Format":                   "AVC",
		"Format/Info":              "Advanced Video Codec",
		"Format_Profile":           "High@L4.1",
		"CodecID":                  "V_MPEG4/ISO/AVC",
		"Width":                    "1920",
		"Height":                   "1080",
		"DisplayAspectRatio":       "1.778",
		"DisplayAspectRatio/String": "16:9",
		"PixelAspectRatio":         "1.000",
		"FrameRate":                "23.976 fps",
		"FrameRate_Mode":           "CFR",
		"FrameCount":               "129437",
		"BitRate":                  "1500000",
		"BitDepth":                 "10",
		"ColorSpace":               "YUV",
		"ChromaSubsampling":        "4:2:0",
		"ScanType":                 "Progressive",
		"colour_primaries":         "BT.2020",
		"transfer_characteristics": "PQ",
		"matrix_coefficients":      "BT.2020 non-constant",
		"HDR_Format":               "SMPTE ST 2086",
		"Duration":                 "5400000",
		"StreamSize":               "1012500000",
		"Language":                 "en",
		"Language/String":          "English",
		"Default":                  "Yes",
		"Forced":                   "No",
	}}

	m.params[StreamAudio] = []map[string]string{
		{
			"ID":               "2",
			"ID/String":        "2",
			"Format":           "AAC",
			"Format/Info":      "Advanced Audio Codec",
			"CodecID":          "A_AAC",
			"Channel(s)":       "2",
			"ChannelLayout":    "L R",
			"ChannelPositions": "Front: L R",
			"SamplingRate":     "48000",
			"SamplingCount":    "259200000",
			"BitRate":          "192000",
			"BitRate_Mode":     "CBR",
			"Compression_Mode": "Lossy",
			"Duration":         "5400000",
			"Language":         "en",
			"Default":          "Yes",
			"Forced":           "No",
		},
		{
			"ID":         "3",
			"Format":     "AC-3",
			"CodecID":    "A_AC3",
			"Channel(s)": "6",
			"SamplingRate": "48000",
			"BitRate":    "448000",
			"Language":   "fr",
			"Default":    "No",
			"Forced":     "No",
		},
	}

	m.params[StreamText] = []map[string]string{{
		"ID":           "4",
		"Format":       "UTF-8",
		"CodecID":      "S_TEXT/UTF8",
		"CodecID/Info": "UTF-8 Plain Text",
		"ElementCount": "542",
		"Title":        "English",
		"Language":     "en",
		"Default":      "No",
		"Forced":       "No",
	}}

	m.params[StreamImage] = []map[string]string{{
		"Format":     "JPEG",
		"Width":      "600",
		"Height":     "882",
		"BitDepth":   "8",
		"ColorSpace": "YUV",
		"StreamSize": "153600",
	}}

	m.params[StreamMenu] = []map[string]string{{
		"Chapters_Pos_Begin": "87",
		"Chapters_Pos_End":   "89",
	}}
	m.entries[StreamMenu] = []map[int]fakeEntry{{
		87: {name: "00:00:00.000", text: "en:Opening"},
		88: {name: "01:00:00.000", text: "Part Two"},
	}}

	return m
}
