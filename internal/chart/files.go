package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

// FileWriter saves rendered charts as plain-text files in Dir.
type FileWriter struct {
	Dir string
	Log logrus.FieldLogger
}

// Renderer returns a renderer that emits no ANSI sequences, for files.
func (w FileWriter) Renderer() *lipgloss.Renderer {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// Write stores content under Dir/name, creating Dir if needed, and returns
// the written path.
func (w FileWriter) Write(name, content string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o750); err != nil {
		return "", fmt.Errorf("creating chart dir: %w", err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("writing chart %s: %w", name, err)
	}
	if w.Log != nil {
		w.Log.WithField("path", path).Info("chart saved")
	}
	return path, nil
}
