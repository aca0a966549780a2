//go:build !(darwin || freebsd || linux)

package whisper

import "fmt"

// purego exposes dlopen only on unix-like platforms; elsewhere the
// bridge reports the library as unavailable.
func loadNative() (api, error) {
	return nil, fmt.Errorf("%w: platform not supported", ErrLibraryNotFound)
}
