package mediainfo

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/url"
	"runtime"
	"sync"
	"time"
)

// Private constants (alphabetical)
const (
	// allStreams is the native sentinel stream number selecting every
	// stream of a kind in a count query.
	allStreams = ^uintptr(0)

	// bufferStatusAccepted is set once the parser recognized the format
	// of a buffered open.
	bufferStatusAccepted = 0x01

	// bufferStatusFinalized is set once the parser needs no more data.
	bufferStatusFinalized = 0x08

	// noSeekRequest is returned by the buffered open when the parser
	// does not want to seek.
	noSeekRequest = ^uint64(0)

	// readChunkSize is the chunk size fed to a buffered open.
	readChunkSize = 64 * 1024
)

// Public types (alphabetical)

// File is an opened media file. It owns exactly one native handle and
// forwards every lookup to it. A File must be released with Close; a
// finalizer backstops leaked handles.
//
// Methods on a closed File return zero values rather than panicking.
type File struct {
	mu     sync.Mutex
	handle uintptr
	path   string
	closed bool
}

// Public functions (alphabetical)

// Open analyzes the media file at path through the native library, loading
// the library first if needed. The returned File must be closed.
func Open(path string) (*File, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	f, err := newFile(path)
	if err != nil {
		return nil, err
	}
	if mediaInfoOpen(f.handle, path) == 0 {
		f.release()
		return nil, fmt.Errorf("%w: %s", ErrOpenFailed, path)
	}
	return f, nil
}

// OpenReader analyzes media read from r instead of a file on disk, using
// the native library's buffered open. size is the total length of the
// source when known and helps the parser; pass 0 when unknown. Seek
// requests from the parser are honored through r, so sources that cannot
// seek may fail on formats with trailing headers.
//
// OpenReader returns ErrBufferAPIUnavailable when the loaded library build
// does not export the buffered entry points.
func OpenReader(r io.ReadSeeker, size int64) (*File, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	if mediaInfoOpenBufferInit == nil || mediaInfoOpenBufferContinue == nil ||
		mediaInfoOpenBufferContinueGoToGet == nil || mediaInfoOpenBufferFinalize == nil {
		return nil, ErrBufferAPIUnavailable
	}

	f, err := newFile("")
	if err != nil {
		return nil, err
	}
	if err := f.feedFrom(r, size); err != nil {
		f.release()
		return nil, err
	}
	return f, nil
}

// Public methods (alphabetical)

// Close releases the native handle. It is idempotent and safe to call on a
// nil File.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	runtime.SetFinalizer(f, nil)
	mediaInfoClose(f.handle)
	mediaInfoDelete(f.handle)
	f.handle = 0
	return nil
}

// Get returns the text value of a named parameter for one stream, e.g.
// Get(StreamVideo, 0, "Width"). Absent parameters return an empty string.
func (f *File) Get(kind StreamKind, stream int, parameter string) string {
	return f.GetWithOptions(kind, stream, parameter, InfoText, InfoName)
}

// GetBigInt returns a parameter as a big integer, for values such as
// unique IDs that overflow int64. It returns nil when the parameter is
// absent or not numeric.
func (f *File) GetBigInt(kind StreamKind, stream int, parameter string) *big.Int {
	n, ok := parseBigInt(f.Get(kind, stream, parameter))
	if !ok {
		return nil
	}
	return n
}

// GetBool returns a parameter as a boolean. The library reports flags as
// "Yes" or "No"; anything but "Yes" is false.
func (f *File) GetBool(kind StreamKind, stream int, parameter string) bool {
	return parseBool(f.Get(kind, stream, parameter))
}

// GetByIndex returns a parameter facet addressed by its position in the
// native parameter table instead of by name. Menu chapter entries are only
// reachable this way.
func (f *File) GetByIndex(kind StreamKind, stream, parameter int, info InfoKind) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ""
	}
	return mediaInfoGetI(f.handle, uintptr(kind), uintptr(stream), uintptr(parameter), uintptr(info))
}

// GetDuration returns a duration parameter. The library reports durations
// in milliseconds.
func (f *File) GetDuration(kind StreamKind, stream int, parameter string) time.Duration {
	d, ok := parseDurationMillis(f.Get(kind, stream, parameter))
	if !ok {
		return 0
	}
	return d
}

// GetFloat64 returns a parameter as a float64, trimming any unit suffix.
// Absent or non-numeric parameters return 0.
func (f *File) GetFloat64(kind StreamKind, stream int, parameter string) float64 {
	v, ok := parseFloat(f.Get(kind, stream, parameter))
	if !ok {
		return 0
	}
	return v
}

// GetInt returns a parameter as an int. Absent or non-numeric parameters
// return 0.
func (f *File) GetInt(kind StreamKind, stream int, parameter string) int {
	v, ok := parseInt(f.Get(kind, stream, parameter))
	if !ok {
		return 0
	}
	return v
}

// GetInt64 returns a parameter as an int64. Absent or non-numeric
// parameters return 0.
func (f *File) GetInt64(kind StreamKind, stream int, parameter string) int64 {
	v, ok := parseInt64(f.Get(kind, stream, parameter))
	if !ok {
		return 0
	}
	return v
}

// GetTime returns a date parameter such as "Encoded_Date". The zero time
// is returned when the parameter is absent or in an unknown shape.
func (f *File) GetTime(kind StreamKind, stream int, parameter string) time.Time {
	t, _ := parseTime(f.Get(kind, stream, parameter))
	return t
}

// GetURL returns a URL parameter such as "Format/Url". It returns nil when
// the parameter is absent or unparseable.
func (f *File) GetURL(kind StreamKind, stream int, parameter string) *url.URL {
	return parseURL(f.Get(kind, stream, parameter))
}

// GetWithKind returns a chosen facet of a parameter, e.g. its unit via
// InfoMeasure, searching by name.
func (f *File) GetWithKind(kind StreamKind, stream int, parameter string, info InfoKind) string {
	return f.GetWithOptions(kind, stream, parameter, info, InfoName)
}

// GetWithOptions is the full form of Get, selecting which facet of the
// parameter to return and how to search for it.
func (f *File) GetWithOptions(kind StreamKind, stream int, parameter string, info, search InfoKind) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ""
	}
	return mediaInfoGet(f.handle, uintptr(kind), uintptr(stream), parameter, uintptr(info), uintptr(search))
}

// Inform returns the native library's own rendering of the whole analysis
// in its currently configured inform format (text by default).
func (f *File) Inform() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ""
	}
	return mediaInfoInform(f.handle, 0)
}

// InformJSON returns the native JSON rendering of the whole analysis and
// restores the previous inform format afterwards.
func (f *File) InformJSON() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ""
	}
	mediaInfoOption(f.handle, "Inform", "JSON")
	out := mediaInfoInform(f.handle, 0)
	mediaInfoOption(f.handle, "Inform", "")
	return out
}

// Option sets or queries a per-file native option, e.g.
// Option("Complete", "1") to expose every parameter the parser found.
func (f *File) Option(option, value string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ""
	}
	return mediaInfoOption(f.handle, option, value)
}

// ParamCount returns the number of parameters the parser filled for one
// stream, or 0 for a stream that does not exist.
func (f *File) ParamCount(kind StreamKind, stream int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0
	}
	return int(mediaInfoCountGet(f.handle, uintptr(kind), uintptr(stream)))
}

// Path returns the path the File was opened from, or an empty string for
// a File opened from a reader.
func (f *File) Path() string {
	return f.path
}

// StreamCount returns how many streams of a kind the container holds.
func (f *File) StreamCount(kind StreamKind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0
	}
	return int(mediaInfoCountGet(f.handle, uintptr(kind), allStreams))
}

// Private functions (alphabetical)

// newFile allocates a native handle configured for UTF-8 exchange.
func newFile(path string) (*File, error) {
	handle := mediaInfoNew()
	if handle == 0 {
		return nil, FormatError("native handle allocation failed")
	}
	mediaInfoOption(handle, "CharSet", "UTF-8")
	f := &File{handle: handle, path: path}
	runtime.SetFinalizer(f, (*File).finalize)
	return f, nil
}

// Private methods (alphabetical)

// feedFrom drives a buffered open: it streams chunks into the parser,
// follows its seek requests, and finalizes. The open fails when the parser
// never accepted the format.
func (f *File) feedFrom(r io.ReadSeeker, size int64) error {
	if size < 0 {
		size = 0
	}
	if mediaInfoOpenBufferInit(f.handle, uint64(size), 0) == 0 {
		return fmt.Errorf("%w: buffered open rejected", ErrOpenFailed)
	}

	accepted := false
	buf := make([]byte, readChunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			status := mediaInfoOpenBufferContinue(f.handle, &buf[0], uintptr(n))
			if status&bufferStatusAccepted != 0 {
				accepted = true
			}
			if status&bufferStatusFinalized != 0 {
				break
			}
			if goTo := mediaInfoOpenBufferContinueGoToGet(f.handle); goTo != noSeekRequest {
				if _, err := r.Seek(int64(goTo), io.SeekStart); err != nil {
					return FormatError("parser seek to %d: %w", goTo, err)
				}
				if mediaInfoOpenBufferInit(f.handle, uint64(size), goTo) == 0 {
					return fmt.Errorf("%w: buffered open rejected after seek", ErrOpenFailed)
				}
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return FormatError("reading source: %w", readErr)
		}
	}

	mediaInfoOpenBufferFinalize(f.handle)
	if !accepted {
		return fmt.Errorf("%w: format not recognized", ErrOpenFailed)
	}
	return nil
}

// finalize is the finalizer backstop for a leaked File.
func (f *File) finalize() {
	_ = f.Close()
}

// release frees a handle that never finished opening.
func (f *File) release() {
	runtime.SetFinalizer(f, nil)
	mediaInfoDelete(f.handle)
	f.handle = 0
	f.closed = true
}
