package models

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	m, ok := Lookup("base.en")
	if !ok {
		t.Fatal("base.en missing from registry")
	}
	if m.Filename != "ggml-base.en.bin" {
		t.Errorf("Filename = %q", m.Filename)
	}
	if !strings.HasPrefix(m.URL, "https://huggingface.co/") {
		t.Errorf("URL = %q", m.URL)
	}

	if _, ok := Lookup("bogus"); ok {
		t.Error("Lookup(bogus) succeeded")
	}
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("empty registry")
	}
	all[0].Name = "mutated"
	if registry[0].Name == "mutated" {
		t.Error("All() exposes the registry backing array")
	}
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.bin")
	if err := os.WriteFile(path, []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(path, dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != path {
		t.Errorf("Resolve = %q, want %q", got, path)
	}

	if _, err := Resolve(filepath.Join(dir, "missing.bin"), dir); err == nil {
		t.Error("Resolve succeeded for a missing explicit path")
	}
}

func TestResolveRegistryName(t *testing.T) {
	dir := t.TempDir()

	// Not downloaded yet: error mentions how to fix it.
	_, err := Resolve("base.en", dir)
	if err == nil || !strings.Contains(err.Error(), "models pull") {
		t.Fatalf("Resolve before download = %v", err)
	}

	m, _ := Lookup("base.en")
	path := filepath.Join(dir, m.Filename)
	if err := os.WriteFile(path, []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve("base.en", dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != path {
		t.Errorf("Resolve = %q, want %q", got, path)
	}
}

func TestResolveUnknownName(t *testing.T) {
	_, err := Resolve("huge-v9", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unknown model") {
		t.Fatalf("err = %v, want unknown model error", err)
	}
}

func TestDownload(t *testing.T) {
	payload := strings.Repeat("w", 4096)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	dir := t.TempDir()
	m := Model{Name: "test", Filename: "ggml-test.bin", URL: srv.URL, Size: int64(len(payload))}

	path, err := download(m, dir)
	if err != nil {
		t.Fatalf("download: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != payload {
		t.Errorf("downloaded %d bytes, want %d", len(data), len(payload))
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	m := Model{Name: "test", Filename: "ggml-test.bin", URL: srv.URL}

	if _, err := download(m, dir); err == nil {
		t.Fatal("download succeeded on HTTP 404")
	}
	if _, err := os.Stat(filepath.Join(dir, m.Filename)); !os.IsNotExist(err) {
		t.Error("model file created despite failed download")
	}
}

func TestEnsureAlreadyPresent(t *testing.T) {
	dir := t.TempDir()
	m, _ := Lookup("tiny-q5")
	path := filepath.Join(dir, m.Filename)
	if err := os.WriteFile(path, []byte("cached"), 0o644); err != nil {
		t.Fatal(err)
	}

	// No server involved: an existing file short-circuits the download.
	got, err := Ensure("tiny-q5", dir)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if got != path {
		t.Errorf("Ensure = %q, want %q", got, path)
	}
}
