package whisper

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Session owns one native whisper context for the lifetime of a loaded
// model. It is the only code that touches the context handle. Calls are
// serialized on an internal mutex because the native library is not
// reentrant: a second Transcribe blocks until the first returns.
//
// A Session with no context (never initialized, failed initialization,
// or closed) rejects Transcribe without crossing the native boundary.
type Session struct {
	mu      sync.Mutex
	resolve func() (api, error)
	native  api
	ctx     uintptr
}

// NewSession returns an uninitialized session backed by the
// process-wide native library.
func NewSession() *Session {
	return &Session{resolve: sharedAPI}
}

// newSessionWith builds a session over a caller-supplied function
// table. Test seam.
func newSessionWith(native api) *Session {
	return &Session{resolve: func() (api, error) { return native, nil }}
}

// Initialize loads the model at modelPath and makes the session ready
// for Transcribe. Calling it again with a different model frees the
// previous context first. The model file is stat-checked here so a bad
// path never reaches native code.
func (s *Session) Initialize(modelPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(modelPath); err != nil {
		return fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
	}

	if s.native == nil {
		native, err := s.resolve()
		if err != nil {
			return err
		}
		s.native = native
	}

	if s.ctx != 0 {
		s.native.freeContext(s.ctx)
		s.ctx = 0
	}

	ctx := s.native.initContext(modelPath)
	if ctx == 0 {
		return fmt.Errorf("%w: model %s", ErrInitFailed, modelPath)
	}
	s.ctx = ctx
	return nil
}

// IsInitialized reports whether the session holds a live context.
func (s *Session) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx != 0
}

// Transcribe runs the native recognizer over the audio file at
// audioPath and returns the transcript, trimmed of surrounding
// whitespace. An empty transcript is a valid result (silence), not an
// error. On ErrTranscribeFailed the context stays valid and later
// calls may still succeed.
func (s *Session) Transcribe(audioPath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == 0 {
		return "", ErrNotInitialized
	}
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("whisper: audio file %s: %w", audioPath, err)
	}

	res := s.native.transcribe(s.ctx, audioPath)
	if res == 0 {
		return "", fmt.Errorf("%w: %s", ErrTranscribeFailed, audioPath)
	}
	defer s.native.freeString(res)

	return strings.TrimSpace(s.native.result(res)), nil
}

// Close frees the native context. Idempotent: extra calls are no-ops.
// The library itself stays loaded for later sessions.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != 0 {
		s.native.freeContext(s.ctx)
		s.ctx = 0
	}
	return nil
}
