// Package whisper drives the native whisper_ffi wrapper library.
//
// The library (libwhisper_ffi.so / .dylib, built from native/) exports
// four C symbols: init, transcribe, free-context and free-string. This
// package loads it at runtime, resolves those symbols once per process,
// and wraps them in a Session that owns the opaque model context and
// keeps every native allocation paired with exactly one free.
package whisper

import "sync"

// api is the resolved native function table. The real implementation
// sits behind purego; tests substitute a counting fake.
type api interface {
	// initContext loads a model and returns an opaque context, 0 on failure.
	initContext(modelPath string) uintptr
	// transcribe runs inference and returns a native string buffer, 0 on failure.
	transcribe(ctx uintptr, audioPath string) uintptr
	// result decodes a non-zero native string buffer into a Go string.
	result(ptr uintptr) string
	// freeContext releases a context returned by initContext.
	freeContext(ctx uintptr)
	// freeString releases a buffer returned by transcribe.
	freeString(ptr uintptr)
}

var (
	nativeOnce sync.Once
	nativeAPI  api
	nativeErr  error
)

// sharedAPI loads the native library and resolves its symbols once per
// process. The handle is never closed; the resolved table is immutable
// and shared read-only by every Session.
func sharedAPI() (api, error) {
	nativeOnce.Do(func() {
		nativeAPI, nativeErr = loadNative()
	})
	return nativeAPI, nativeErr
}
