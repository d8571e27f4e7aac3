package mediainfo

import "golang.org/x/sys/windows"

// openLibrary loads a DLL by name or path through the Windows loader.
func openLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}
