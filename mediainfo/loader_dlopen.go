//go:build darwin || freebsd || linux

package mediainfo

import "github.com/ebitengine/purego"

// openLibrary opens a shared object through the system dynamic loader.
// RTLD_GLOBAL keeps preloaded companions such as libzen visible to the
// library's own symbol resolution.
func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
