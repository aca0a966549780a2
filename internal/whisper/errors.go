package whisper

import "errors"

// Errors are split so callers can tell a broken installation apart
// from a bad model file or a single failed recording.
var (
	// ErrLibraryNotFound means no candidate path produced a loadable
	// native library. Not retryable without fixing the installation.
	ErrLibraryNotFound = errors.New("whisper: native library not found")

	// ErrSymbolNotFound means the library loaded but is missing one of
	// the required entry points (version mismatch).
	ErrSymbolNotFound = errors.New("whisper: native symbol not found")

	// ErrModelNotFound means the model file does not exist or is not
	// readable. Checked before the native boundary is crossed.
	ErrModelNotFound = errors.New("whisper: model file not found")

	// ErrInitFailed means the model file exists but the native library
	// could not load it (corrupt or incompatible format).
	ErrInitFailed = errors.New("whisper: native init failed")

	// ErrTranscribeFailed means the native transcribe call returned no
	// result. The session stays usable; callers may retry.
	ErrTranscribeFailed = errors.New("whisper: native transcribe failed")

	// ErrNotInitialized means Transcribe was called before a successful
	// Initialize. Programmer error; the native boundary is never reached.
	ErrNotInitialized = errors.New("whisper: session not initialized")
)
