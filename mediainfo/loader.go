package mediainfo

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Private constants (alphabetical)
const (
	// libraryPathEnv overrides library resolution with an explicit path
	// to the shared object, taking precedence over the search order.
	libraryPathEnv = "MEDIAINFO_LIBRARY"
)

// Private variables (alphabetical)
var (
	// loadMu serializes Load attempts and guards the loader state below.
	loadMu sync.Mutex

	// loadedLib is the handle of the shared library once loaded.
	loadedLib uintptr

	// loadedPath is the name or path the library was resolved from.
	loadedPath string

	// loaded reports whether the native symbols are registered and
	// usable. A failed Load leaves it false so the call can be retried.
	loaded bool
)

// Public types (alphabetical)

// LoadOption adjusts how Load resolves and opens the native library.
type LoadOption func(*loadConfig)

// Private types (alphabetical)

// loadConfig collects the resolution settings built from LoadOptions.
type loadConfig struct {
	libraryPath string
	logger      zerolog.Logger
	searchDirs  []string
}

// Public functions (alphabetical)

// IsLoaded reports whether the native library is loaded and its symbols
// are registered.
func IsLoaded() bool {
	loadMu.Lock()
	defer loadMu.Unlock()
	return loaded
}

// LibraryPath returns the name or path the native library was resolved
// from, or an empty string when it is not loaded.
func LibraryPath() string {
	loadMu.Lock()
	defer loadMu.Unlock()
	return loadedPath
}

// Load resolves and opens the native MediaInfo shared library and registers
// its entry points. It is safe to call from multiple goroutines and returns
// immediately once a previous call succeeded; options of later calls are
// then ignored. A failed Load may be retried.
//
// Resolution order: WithLibraryPath, the MEDIAINFO_LIBRARY environment
// variable, WithSearchDirs joined with the platform library names, the bare
// platform names (delegating to the system loader search path), and finally
// a set of common install directories.
func Load(opts ...LoadOption) error {
	cfg := loadConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	loadMu.Lock()
	defer loadMu.Unlock()
	if loaded {
		return nil
	}

	preloadCompanions(runtime.GOOS, cfg.logger)

	candidates := libraryCandidates(runtime.GOOS, runtime.GOARCH, cfg.libraryPath, os.Getenv(libraryPathEnv), cfg.searchDirs)
	var openErrs []string
	for _, candidate := range candidates {
		lib, err := openLibrary(candidate)
		if err != nil {
			cfg.logger.Debug().Str("candidate", candidate).Err(err).Msg("library candidate rejected")
			openErrs = append(openErrs, fmt.Sprintf("%s: %v", candidate, err))
			continue
		}
		if err := registerBindings(lib); err != nil {
			resetBindings()
			return fmt.Errorf("%s: %w", candidate, err)
		}
		loadedLib = lib
		loadedPath = candidate
		loaded = true
		version := mediaInfoOption(0, "Info_Version", "")
		cfg.logger.Info().Str("library", candidate).Str("version", version).Msg("native library loaded")
		return nil
	}

	if len(openErrs) > 0 {
		return fmt.Errorf("%w (tried %s)", ErrLibraryNotFound, strings.Join(openErrs, "; "))
	}
	return ErrLibraryNotFound
}

// OptionStatic sets or queries a library-global option, such as
// "Info_Version" or "Inform". It returns the native response, or an empty
// string when the library is not loaded.
func OptionStatic(option, value string) string {
	if !IsLoaded() {
		return ""
	}
	return mediaInfoOption(0, option, value)
}

// InfoParameters returns the native library's own dump of every parameter
// it knows, grouped by stream kind.
func InfoParameters() (string, error) {
	if err := Load(); err != nil {
		return "", err
	}
	return mediaInfoOption(0, "Info_Parameters", ""), nil
}

// Version returns the version string of the loaded native library, loading
// it first if necessary.
func Version() (string, error) {
	if err := Load(); err != nil {
		return "", err
	}
	return mediaInfoOption(0, "Info_Version", ""), nil
}

// WithLibraryPath makes Load open exactly the given shared object instead
// of searching for one.
func WithLibraryPath(path string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.libraryPath = path
	}
}

// WithLogger routes loader diagnostics (resolution attempts, the native
// version banner, preload warnings) to the given logger. The default
// discards them.
func WithLogger(logger zerolog.Logger) LoadOption {
	return func(cfg *loadConfig) {
		cfg.logger = logger
	}
}

// WithSearchDirs prepends directories to search for the platform library
// names, ahead of the system loader path.
func WithSearchDirs(dirs ...string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.searchDirs = append(cfg.searchDirs, dirs...)
	}
}

// Private functions (alphabetical)

// commonInstallDirs returns directories where the library is commonly
// installed on the given platform, checked after the system loader path.
func commonInstallDirs(goos, goarch string) []string {
	switch goos {
	case "windows":
		dirs := []string{
			filepath.Join("C:\\", "Program Files", "MediaInfo"),
			filepath.Join("C:\\", "Program Files (x86)", "MediaInfo"),
		}
		if programFiles := os.Getenv("ProgramFiles"); programFiles != "" {
			dirs = append(dirs, filepath.Join(programFiles, "MediaInfo"))
		}
		return dirs
	case "darwin":
		return []string{
			filepath.Join("/usr", "local", "lib"),
			filepath.Join("/opt", "homebrew", "lib"),
			filepath.Join("/opt", "local", "lib"),
		}
	default:
		dirs := []string{
			filepath.Join("/usr", "lib"),
			filepath.Join("/usr", "local", "lib"),
		}
		switch goarch {
		case "amd64":
			dirs = append(dirs, filepath.Join("/usr", "lib", "x86_64-linux-gnu"))
		case "arm64":
			dirs = append(dirs, filepath.Join("/usr", "lib", "aarch64-linux-gnu"))
		}
		return dirs
	}
}

// libraryCandidates builds the ordered list of library names and paths Load
// will try. Explicit settings short-circuit the search.
func libraryCandidates(goos, goarch, explicitPath, envPath string, searchDirs []string) []string {
	if explicitPath != "" {
		return []string{explicitPath}
	}
	if envPath != "" {
		return []string{envPath}
	}

	names := libraryNames(goos, goarch)
	var candidates []string
	for _, dir := range searchDirs {
		for _, name := range names {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	// Bare names delegate to the system loader search path.
	candidates = append(candidates, names...)

	for _, dir := range commonInstallDirs(goos, goarch) {
		for _, name := range names {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	return candidates
}

// libraryNames returns the platform file names of the MediaInfo shared
// library, most specific first.
func libraryNames(goos, goarch string) []string {
	switch goos {
	case "windows":
		if goarch == "amd64" || goarch == "arm64" {
			return []string{"MediaInfo.dll", "mediainfo64.dll", "mediainfo.dll"}
		}
		return []string{"MediaInfo.dll", "mediainfo.dll"}
	case "darwin":
		return []string{"libmediainfo.0.dylib", "libmediainfo.dylib"}
	default:
		return []string{"libmediainfo.so.0", "libmediainfo.so"}
	}
}

// preloadCompanions loads libraries MediaInfo depends on where the system
// loader will not resolve them on its own. Linux builds link against
// libzen, which may live outside the default path; failure to preload it
// is only a warning because many distributions bundle it correctly.
func preloadCompanions(goos string, logger zerolog.Logger) {
	if goos == "windows" || goos == "darwin" {
		return
	}
	for _, name := range []string{"libzen.so.0", "libzen.so"} {
		if _, err := openLibrary(name); err == nil {
			return
		}
	}
	logger.Warn().Msg("libzen preload failed; continuing, the library may still resolve it")
}
