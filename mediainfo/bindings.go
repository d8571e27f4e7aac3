package mediainfo

import "github.com/ebitengine/purego"

// Private constants (alphabetical)

// nativePrefix is the naming convention shared by every exported symbol of
// the native library's byte-oriented interface. Symbol names are formed by
// prefixing the bare operation name, e.g. "Open" -> "MediaInfoA_Open".
const nativePrefix = "MediaInfoA_"

// Private variables (alphabetical)
//
// One function pointer per native entry point. The loader registers them
// against the shared library; tests may install fakes. A nil pointer means
// the symbol is not available in the loaded library.
var (
	// mediaInfoClose closes the media file behind a handle.
	mediaInfoClose func(handle uintptr)

	// mediaInfoCountGet counts streams of a kind, or parameters of one
	// stream when the stream number is not the all-streams sentinel.
	mediaInfoCountGet func(handle uintptr, kind uintptr, stream uintptr) uintptr

	// mediaInfoDelete releases a handle created by mediaInfoNew.
	mediaInfoDelete func(handle uintptr)

	// mediaInfoGet looks a parameter up by name.
	mediaInfoGet func(handle uintptr, kind uintptr, stream uintptr, parameter string, infoKind uintptr, searchKind uintptr) string

	// mediaInfoGetI looks a parameter up by table index.
	mediaInfoGetI func(handle uintptr, kind uintptr, stream uintptr, parameter uintptr, infoKind uintptr) string

	// mediaInfoInform renders the whole analysis in the configured
	// inform format. The second argument is reserved and must be zero.
	mediaInfoInform func(handle uintptr, reserved uintptr) string

	// mediaInfoNew creates a fresh native handle.
	mediaInfoNew func() uintptr

	// mediaInfoOpen opens a file by path. A zero return means failure.
	mediaInfoOpen func(handle uintptr, path string) uintptr

	// mediaInfoOpenBufferContinue feeds a chunk of bytes to a buffered
	// open and returns the native status bitfield. Optional symbol.
	mediaInfoOpenBufferContinue func(handle uintptr, buffer *byte, size uintptr) uintptr

	// mediaInfoOpenBufferContinueGoToGet reports the absolute offset the
	// parser wants to seek to, or the no-seek sentinel. Optional symbol.
	mediaInfoOpenBufferContinueGoToGet func(handle uintptr) uint64

	// mediaInfoOpenBufferFinalize ends a buffered open. Optional symbol.
	mediaInfoOpenBufferFinalize func(handle uintptr) uintptr

	// mediaInfoOpenBufferInit starts a buffered open with the estimated
	// total size and the offset of the first chunk. Optional symbol.
	mediaInfoOpenBufferInit func(handle uintptr, size uint64, offset uint64) uintptr

	// mediaInfoOption sets or queries a per-handle option. A zero handle
	// addresses the library-global option table.
	mediaInfoOption func(handle uintptr, option string, value string) string
)

// Private functions (alphabetical)

// registerBindings resolves every required native entry point from the
// loaded library. Optional symbols are registered tolerantly afterwards.
// purego panics on a missing symbol, surfaced here as an error so a partial
// or foreign library fails the load instead of the first call.
func registerBindings(lib uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = FormatError("registering native symbols: %v", r)
		}
	}()

	registerNativeFunc(&mediaInfoNew, lib, "New")
	registerNativeFunc(&mediaInfoDelete, lib, "Delete")
	registerNativeFunc(&mediaInfoOpen, lib, "Open")
	registerNativeFunc(&mediaInfoClose, lib, "Close")
	registerNativeFunc(&mediaInfoInform, lib, "Inform")
	registerNativeFunc(&mediaInfoGet, lib, "Get")
	registerNativeFunc(&mediaInfoGetI, lib, "GetI")
	registerNativeFunc(&mediaInfoCountGet, lib, "Count_Get")
	registerNativeFunc(&mediaInfoOption, lib, "Option")

	registerOptionalNativeFunc(&mediaInfoOpenBufferInit, lib, "Open_Buffer_Init")
	registerOptionalNativeFunc(&mediaInfoOpenBufferContinue, lib, "Open_Buffer_Continue")
	registerOptionalNativeFunc(&mediaInfoOpenBufferContinueGoToGet, lib, "Open_Buffer_Continue_GoTo_Get")
	registerOptionalNativeFunc(&mediaInfoOpenBufferFinalize, lib, "Open_Buffer_Finalize")

	return nil
}

// registerNativeFunc binds one required entry point, applying the naming
// convention to the bare operation name.
func registerNativeFunc(fptr interface{}, lib uintptr, name string) {
	purego.RegisterLibFunc(fptr, lib, nativePrefix+name)
}

// registerOptionalNativeFunc binds one entry point that older library
// builds may lack. The function pointer stays nil when the symbol is
// missing and callers gate on that.
func registerOptionalNativeFunc(fptr interface{}, lib uintptr, name string) {
	defer func() {
		// Missing optional symbol: leave the pointer nil.
		_ = recover()
	}()
	purego.RegisterLibFunc(fptr, lib, nativePrefix+name)
}

// resetBindings clears every function pointer. Used when a load attempt
// fails partway so a retry starts from a clean table.
func resetBindings() {
	mediaInfoNew = nil
	mediaInfoDelete = nil
	mediaInfoOpen = nil
	mediaInfoClose = nil
	mediaInfoInform = nil
	mediaInfoGet = nil
	mediaInfoGetI = nil
	mediaInfoCountGet = nil
	mediaInfoOption = nil
	mediaInfoOpenBufferInit = nil
	mediaInfoOpenBufferContinue = nil
	mediaInfoOpenBufferContinueGoToGet = nil
	mediaInfoOpenBufferFinalize = nil
}
