// Package mediainfo binds the native MediaInfo shared library and exposes
// its media analysis as typed Go accessors. The library performs all real
// work (demuxing, codec identification, tag extraction); this package loads
// it, forwards calls for opening files, counting streams, and looking up
// parameters, and coerces the returned text into Go values.
//
// Call Load once (or let Open do it lazily), then Open a file and read it
// through the typed stream facades:
//
//	f, err := mediainfo.Open("movie.mkv")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	fmt.Println(f.General().Format(), f.General().Duration())
//	for _, v := range f.Videos() {
//		fmt.Println(v.Width(), v.Height(), v.CodecID())
//	}
package mediainfo

import (
	"errors"
	"fmt"
)

// Private constants (alphabetical)
const (
	// errorPrefix is used as a prefix for all error messages from this
	// package. This ensures consistent error formatting across the package.
	errorPrefix = "mediainfo: "
)

// Public variables (alphabetical)
var (
	// ErrBufferAPIUnavailable reports that the loaded library build does
	// not export the buffered open entry points needed by OpenReader.
	ErrBufferAPIUnavailable = errors.New(errorPrefix + "buffered open not supported by the loaded library")

	// ErrClosed reports an operation on a File whose handle was already
	// released by Close.
	ErrClosed = errors.New(errorPrefix + "file already closed")

	// ErrLibraryNotFound reports that no candidate shared library could
	// be resolved on this system.
	ErrLibraryNotFound = errors.New(errorPrefix + "native library not found")

	// ErrNotLoaded reports that the native library has not been loaded
	// yet and lazy loading was not possible.
	ErrNotLoaded = errors.New(errorPrefix + "native library not loaded")

	// ErrOpenFailed reports that the native library refused to open a
	// file, usually because it does not exist or is not a media file.
	ErrOpenFailed = errors.New(errorPrefix + "could not open file")
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can
// be easily identified as originating from the mediainfo package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}
