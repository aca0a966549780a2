package models

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Resolve maps the configured model setting to a model file path. The
// setting is either a registry name or an explicit path to a .bin file.
// Resolve never downloads; a registry model that is not on disk yet is
// an error telling the user to pull it.
func Resolve(model, dir string) (string, error) {
	if strings.ContainsRune(model, os.PathSeparator) || strings.HasSuffix(model, ".bin") {
		if _, err := os.Stat(model); err != nil {
			return "", fmt.Errorf("models: model file %s: %w", model, err)
		}
		return model, nil
	}

	m, ok := Lookup(model)
	if !ok {
		return "", fmt.Errorf("models: unknown model %q (known: %s)", model, strings.Join(names(), ", "))
	}

	path := filepath.Join(dir, m.Filename)
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		return "", fmt.Errorf("models: %s not downloaded yet, run 'memovox models pull %s'", model, model)
	}
	return path, nil
}

func names() []string {
	out := make([]string, len(registry))
	for i, m := range registry {
		out[i] = m.Name
	}
	return out
}

// Ensure makes sure the named model exists under dir, downloading it
// if necessary, and returns its path.
func Ensure(name, dir string) (string, error) {
	m, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("models: unknown model %q (known: %s)", name, strings.Join(names(), ", "))
	}

	path := filepath.Join(dir, m.Filename)
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		fmt.Printf("  %s already present: %s (%.0f MB)\n", m.Name, path, float64(info.Size())/(1024*1024))
		return path, nil
	}

	return download(m, dir)
}

// download fetches a model into dir, writing to a temp file first and
// renaming on success so a partial download never looks like a model.
func download(m Model, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("models: creating models dir: %w", err)
	}

	destPath := filepath.Join(dir, m.Filename)

	fmt.Printf("  Downloading %s\n", m.Name)
	fmt.Printf("  URL: %s\n", m.URL)
	fmt.Printf("  Destination: %s\n", destPath)

	resp, err := http.Get(m.URL)
	if err != nil {
		return "", fmt.Errorf("models: downloading %s: %w", m.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("models: downloading %s: HTTP %d", m.Name, resp.StatusCode)
	}

	tmpPath := destPath + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("models: creating temp file: %w", err)
	}

	pr := &progressWriter{
		writer: f,
		total:  resp.ContentLength,
		label:  m.Filename,
	}

	written, err := io.Copy(pr, resp.Body)
	f.Close()
	if err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("models: writing %s: %w", m.Filename, err)
	}

	fmt.Printf("\n  Downloaded %.1f MB\n", float64(written)/(1024*1024))

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("models: moving model file: %w", err)
	}

	return destPath, nil
}

// progressWriter wraps an io.Writer and prints download progress.
type progressWriter struct {
	writer  io.Writer
	total   int64
	written int64
	label   string
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.writer.Write(p)
	pw.written += int64(n)
	if pw.total > 0 {
		pct := float64(pw.written) / float64(pw.total) * 100
		fmt.Printf("\r  %s: %.1f MB / %.1f MB (%.0f%%)",
			pw.label,
			float64(pw.written)/(1024*1024),
			float64(pw.total)/(1024*1024),
			pct)
	} else {
		fmt.Printf("\r  %s: %.1f MB downloaded",
			pw.label,
			float64(pw.written)/(1024*1024))
	}
	return n, err
}
