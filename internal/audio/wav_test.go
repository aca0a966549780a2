package audio

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func sineWave(seconds float64, freq float64, sampleRate int) []int16 {
	n := int(seconds * float64(sampleRate))
	samples := make([]int16, n)
	for i := range samples {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		samples[i] = int16(v * 16000)
	}
	return samples
}

func TestWriteReadWAVRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	in := sineWave(0.5, 440, 16000)

	if err := WriteWAV(path, in, 16000, 1); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	out, rate, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}
	if rate != 16000 {
		t.Errorf("sample rate = %d, want 16000", rate)
	}
	if len(out) != len(in) {
		t.Fatalf("sample count = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Fatalf("sample %d = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestWriteWAVBadPath(t *testing.T) {
	err := WriteWAV("/nonexistent/dir/out.wav", []int16{0}, 16000, 1)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		samples  int
		rate     uint32
		channels uint32
		want     time.Duration
	}{
		{"one second mono", 16000, 16000, 1, time.Second},
		{"one second stereo", 32000, 16000, 2, time.Second},
		{"half second", 8000, 16000, 1, 500 * time.Millisecond},
		{"zero rate", 16000, 0, 1, 0},
		{"empty", 0, 16000, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.samples, tt.rate, tt.channels); got != tt.want {
				t.Errorf("Duration = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBytesToInt16(t *testing.T) {
	// -2 and 513 little-endian
	data := []byte{0xFE, 0xFF, 0x01, 0x02}
	samples := bytesToInt16(data, 2)
	if len(samples) != 2 || samples[0] != -2 || samples[1] != 513 {
		t.Errorf("bytesToInt16 = %v, want [-2 513]", samples)
	}

	// Truncated trailing byte is dropped, not misread.
	samples = bytesToInt16(data[:3], 2)
	if len(samples) != 1 || samples[0] != -2 {
		t.Errorf("bytesToInt16 truncated = %v, want [-2]", samples)
	}
}
