// Package models manages local whisper model files: a registry of
// known checkpoints and a downloader that fetches them from
// HuggingFace.
package models

// Model describes a downloadable whisper checkpoint.
type Model struct {
	Name     string // registry key, e.g. "base.en"
	Filename string
	URL      string
	Size     int64 // approximate bytes, for progress display
}

const hfBase = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/"

// registry lists the checkpoints memovox knows how to fetch. Quantized
// variants are preferred for CPU-only machines.
var registry = []Model{
	{
		Name:     "tiny.en-q5",
		Filename: "ggml-tiny.en-q5_1.bin",
		URL:      hfBase + "ggml-tiny.en-q5_1.bin",
		Size:     32 * 1024 * 1024,
	},
	{
		Name:     "tiny-q5",
		Filename: "ggml-tiny-q5_1.bin",
		URL:      hfBase + "ggml-tiny-q5_1.bin",
		Size:     32 * 1024 * 1024,
	},
	{
		Name:     "base.en",
		Filename: "ggml-base.en.bin",
		URL:      hfBase + "ggml-base.en.bin",
		Size:     148 * 1024 * 1024,
	},
	{
		Name:     "base-q5",
		Filename: "ggml-base-q5_1.bin",
		URL:      hfBase + "ggml-base-q5_1.bin",
		Size:     60 * 1024 * 1024,
	},
	{
		Name:     "small-q5",
		Filename: "ggml-small-q5_1.bin",
		URL:      hfBase + "ggml-small-q5_1.bin",
		Size:     190 * 1024 * 1024,
	},
	{
		Name:     "large-v3-turbo-q5",
		Filename: "ggml-large-v3-turbo-q5_0.bin",
		URL:      hfBase + "ggml-large-v3-turbo-q5_0.bin",
		Size:     574 * 1024 * 1024,
	},
}

// All returns the registry in declaration order.
func All() []Model {
	out := make([]Model, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a registry entry by name.
func Lookup(name string) (Model, bool) {
	for _, m := range registry {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}
