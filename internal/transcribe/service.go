// Package transcribe turns recorded memo audio into text.
//
// A Service owns one whisper session on a dedicated worker goroutine.
// Callers hand over an audio file path and wait on a reply channel, so
// the long blocking native call never runs on a caller's goroutine and
// never runs twice concurrently.
package transcribe

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"memovox/internal/whisper"
)

// ErrClosed is returned for requests submitted after Close.
var ErrClosed = errors.New("transcribe: service closed")

// engine is the session surface the worker drives. *whisper.Session
// implements it; tests substitute a fake.
type engine interface {
	Transcribe(audioPath string) (string, error)
	Close() error
}

type request struct {
	audioPath string
	reply     chan response
}

type response struct {
	text string
	err  error
}

// Service serializes transcription requests onto a single worker that
// exclusively owns the native session.
type Service struct {
	log      zerolog.Logger
	requests chan request

	closeOnce sync.Once
	closing   chan struct{}
	done      chan struct{}
}

// NewService loads the model at modelPath and starts the worker. The
// returned service must be closed to release the native context.
func NewService(modelPath string, log zerolog.Logger) (*Service, error) {
	sess := whisper.NewSession()
	if err := sess.Initialize(modelPath); err != nil {
		return nil, err
	}
	return newService(sess, log), nil
}

func newService(eng engine, log zerolog.Logger) *Service {
	s := &Service{
		log:      log,
		requests: make(chan request),
		closing:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.run(eng)
	return s
}

func (s *Service) run(eng engine) {
	defer close(s.done)
	defer eng.Close()

	for {
		select {
		case <-s.closing:
			return
		case req := <-s.requests:
			start := time.Now()
			text, err := eng.Transcribe(req.audioPath)
			if err != nil {
				s.log.Error().Err(err).Str("audio", req.audioPath).Msg("transcription failed")
			} else {
				s.log.Debug().
					Str("audio", req.audioPath).
					Dur("elapsed", time.Since(start)).
					Int("chars", len(text)).
					Msg("transcription done")
			}
			// reply is buffered; never blocks on a caller that gave up.
			req.reply <- response{text: text, err: err}
		}
	}
}

// Transcribe submits audioPath to the worker and waits for the
// transcript. Requests queue behind an in-flight call. There is no way
// to cancel native inference once started: if ctx expires mid-call the
// caller gets ctx.Err() immediately, while the worker finishes the
// call and discards the result.
func (s *Service) Transcribe(ctx context.Context, audioPath string) (string, error) {
	req := request{audioPath: audioPath, reply: make(chan response, 1)}

	select {
	case s.requests <- req:
	case <-s.closing:
		return "", ErrClosed
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp.text, resp.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the worker and releases the native session. A call
// already running finishes first. Idempotent.
func (s *Service) Close() {
	s.closeOnce.Do(func() { close(s.closing) })
	<-s.done
}
