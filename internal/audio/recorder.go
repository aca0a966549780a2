// Package audio captures microphone input for voice memos and writes
// it out as WAV files the transcription bridge can consume.
package audio

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
)

// Recorder captures audio from the default microphone as 16-bit PCM.
type Recorder struct {
	ctx        *malgo.AllocatedContext
	device     *malgo.Device
	sampleRate uint32
	channels   uint32

	mu        sync.Mutex
	buf       []int16
	recording bool
}

// NewRecorder creates a new audio recorder. Call Close() when done.
func NewRecorder(sampleRate, channels uint32) (*Recorder, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("audio: initializing context: %w", err)
	}

	return &Recorder{
		ctx:        ctx,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

// Start begins capturing from the default microphone into an internal
// buffer.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return fmt.Errorf("audio: already recording")
	}
	r.buf = r.buf[:0]
	r.recording = true
	r.mu.Unlock()

	deviceCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceCfg.Capture.Format = malgo.FormatS16
	deviceCfg.Capture.Channels = r.channels
	deviceCfg.SampleRate = r.sampleRate

	device, err := malgo.InitDevice(r.ctx.Context, deviceCfg, malgo.DeviceCallbacks{
		Data: r.onData,
	})
	if err != nil {
		r.abort()
		return fmt.Errorf("audio: initializing capture device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		r.abort()
		return fmt.Errorf("audio: starting capture device: %w", err)
	}

	r.mu.Lock()
	r.device = device
	r.mu.Unlock()

	return nil
}

func (r *Recorder) abort() {
	r.mu.Lock()
	r.recording = false
	r.mu.Unlock()
}

// Stop ends the capture and returns a copy of the recorded samples.
// Returns nil if the recorder was not recording.
func (r *Recorder) Stop() []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil
	}

	if r.device != nil {
		r.device.Uninit()
		r.device = nil
	}
	r.recording = false

	out := make([]int16, len(r.buf))
	copy(out, r.buf)
	return out
}

// IsRecording reports whether a capture is in progress.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Close releases all audio resources.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.device != nil {
		r.device.Uninit()
		r.device = nil
	}
	r.recording = false
	r.mu.Unlock()

	if r.ctx != nil {
		if err := r.ctx.Uninit(); err != nil {
			return fmt.Errorf("audio: uninitializing context: %w", err)
		}
		r.ctx.Free()
	}
	return nil
}

// onData is the malgo callback invoked with captured frames as raw
// little-endian int16 bytes.
func (r *Recorder) onData(_, pSample []byte, frameCount uint32) {
	samples := bytesToInt16(pSample, frameCount*r.channels)

	r.mu.Lock()
	r.buf = append(r.buf, samples...)
	r.mu.Unlock()
}

func bytesToInt16(data []byte, sampleCount uint32) []int16 {
	samples := make([]int16, 0, sampleCount)
	for i := uint32(0); i < sampleCount; i++ {
		off := i * 2
		if off+2 > uint32(len(data)) {
			break
		}
		samples = append(samples, int16(binary.LittleEndian.Uint16(data[off:off+2])))
	}
	return samples
}
