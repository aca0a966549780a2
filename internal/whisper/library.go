//go:build darwin || freebsd || linux

package whisper

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"
)

// libraryEnv overrides the search chain entirely when set.
const libraryEnv = "MEMOVOX_WHISPER_LIBRARY"

// soname returns the platform-specific library file name.
func soname() string {
	if runtime.GOOS == "darwin" {
		return "libwhisper_ffi.dylib"
	}
	return "libwhisper_ffi.so"
}

// candidatePaths lists the locations tried in order. Packaging differs
// between dev trees and installed builds, so resolution is a fallback
// chain rather than one hardcoded path: env override, dynamic-linker
// search path, next to the executable, working directory, dev tree.
func candidatePaths() []string {
	if p := os.Getenv(libraryEnv); p != "" {
		return []string{p}
	}

	name := soname()
	paths := []string{name}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, name),
			filepath.Join(dir, "lib", name),
		)
	}

	return append(paths,
		filepath.Join(".", name),
		filepath.Join("build", "native", name),
	)
}

// loadNative opens the library and binds its symbols.
func loadNative() (api, error) {
	lib, err := openLibrary()
	if err != nil {
		return nil, err
	}
	return bind(lib)
}

// openLibrary dlopens the first candidate that loads.
func openLibrary() (uintptr, error) {
	var attempts []string
	for _, path := range candidatePaths() {
		lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return lib, nil
		}
		attempts = append(attempts, fmt.Sprintf("%s (%v)", path, err))
	}
	return 0, fmt.Errorf("%w: tried %s", ErrLibraryNotFound, strings.Join(attempts, ", "))
}

// libBindings is the purego-backed function table.
type libBindings struct {
	initFn       func(modelPath string) uintptr
	transcribeFn func(ctx uintptr, audioPath string) uintptr
	freeCtxFn    func(ctx uintptr)
	freeStrFn    func(str uintptr)
}

// bind resolves the four required symbols. All four must resolve; a
// partial table means the installed library does not match this build,
// so the error names the missing symbol.
func bind(lib uintptr) (*libBindings, error) {
	b := &libBindings{}
	symbols := []struct {
		name string
		fptr any
	}{
		{"whisper_ffi_init", &b.initFn},
		{"whisper_ffi_transcribe", &b.transcribeFn},
		{"whisper_ffi_free", &b.freeCtxFn},
		{"whisper_ffi_free_string", &b.freeStrFn},
	}
	for _, s := range symbols {
		addr, err := purego.Dlsym(lib, s.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, s.name)
		}
		purego.RegisterFunc(s.fptr, addr)
	}
	return b, nil
}

// purego marshals the string arguments into NUL-terminated C buffers
// scoped to each call, so the path strings need no manual free. The
// returned char* stays a raw uintptr: freeing it is the caller's job.

func (b *libBindings) initContext(modelPath string) uintptr {
	return b.initFn(modelPath)
}

func (b *libBindings) transcribe(ctx uintptr, audioPath string) uintptr {
	return b.transcribeFn(ctx, audioPath)
}

func (b *libBindings) freeContext(ctx uintptr) { b.freeCtxFn(ctx) }

func (b *libBindings) freeString(ptr uintptr) { b.freeStrFn(ptr) }

// result copies the NUL-terminated native buffer at ptr into a Go
// string. ptr is C memory, never Go memory, so the pointer arithmetic
// is safe; the buffer is freed via freeString right after the copy.
func (b *libBindings) result(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(ptr + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
}
