// Package integration provides integration testing utilities for slideshowgen.
package integration

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/agleyzer/slideshowgen/pkg/background"
)

// TestHarness manages the test environment for integration tests.
type TestHarness struct {
	t          *testing.T
	binaryPath string
	imageDir   string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
}

// NewTestHarness creates a new test harness with an empty image directory
// named dirName.
func NewTestHarness(t *testing.T, dirName string) *TestHarness {
	t.Helper()

	imageDir := filepath.Join(t.TempDir(), dirName)
	if err := os.Mkdir(imageDir, 0o755); err != nil {
		t.Fatalf("failed to create image directory: %v", err)
	}

	return &TestHarness{
		t:          t,
		binaryPath: findSlideshowgenBinary(t),
		imageDir:   imageDir,
	}
}

// ImageDir returns the directory the harness fills with images.
func (h *TestHarness) ImageDir() string {
	return h.imageDir
}

// AddPNG writes a small real PNG image.
func (h *TestHarness) AddPNG(name string) string {
	h.t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, sampleImage()); err != nil {
		h.t.Fatalf("failed to encode png: %v", err)
	}
	return h.AddFile(name, buf.Bytes())
}

// AddJPEG writes a small real JPEG image.
func (h *TestHarness) AddJPEG(name string) string {
	h.t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, sampleImage(), nil); err != nil {
		h.t.Fatalf("failed to encode jpeg: %v", err)
	}
	return h.AddFile(name, buf.Bytes())
}

// AddFile writes arbitrary content into the image directory.
func (h *TestHarness) AddFile(name string, content []byte) string {
	h.t.Helper()

	path := filepath.Join(h.imageDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		h.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// Run executes slideshowgen with args and returns its exit code.
func (h *TestHarness) Run(args ...string) int {
	h.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	h.stdout.Reset()
	h.stderr.Reset()

	cmd := exec.CommandContext(ctx, h.binaryPath, args...)
	cmd.Dir = h.t.TempDir()
	cmd.Stdout = &h.stdout
	cmd.Stderr = &h.stderr

	err := cmd.Run()
	h.t.Logf("slideshowgen output:\n%s%s", h.stdout.String(), h.stderr.String())

	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	h.t.Fatalf("failed to run slideshowgen: %v", err)
	return -1
}

// Stdout returns the standard output of the last run.
func (h *TestHarness) Stdout() string {
	return h.stdout.String()
}

// OutputPath returns where slideshowgen writes the slideshow for ImageDir.
func (h *TestHarness) OutputPath() string {
	return filepath.Join(h.imageDir, filepath.Base(h.imageDir)+".xml")
}

// ReadSlideshow parses the written slideshow.
func (h *TestHarness) ReadSlideshow() *background.Background {
	h.t.Helper()

	f, err := os.Open(h.OutputPath())
	if err != nil {
		h.t.Fatalf("failed to open slideshow: %v", err)
	}
	defer f.Close()

	doc, err := background.Decode(f)
	if err != nil {
		h.t.Fatalf("failed to parse slideshow: %v", err)
	}
	return doc
}

// findSlideshowgenBinary locates the slideshowgen binary, skipping the test
// when it has not been built.
func findSlideshowgenBinary(t *testing.T) string {
	t.Helper()

	// Try several possible locations
	candidates := []string{
		"../../slideshowgen",              // From test/integration
		"./slideshowgen",                  // From project root
		"../slideshowgen",                 // From test directory
		"./cmd/slideshowgen/slideshowgen", // Built in place
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			absPath, _ := filepath.Abs(path)
			t.Logf("Found slideshowgen binary at: %s", absPath)
			return absPath
		}
	}

	t.Skip("slideshowgen binary not found. Run 'go build -o slideshowgen ./cmd/slideshowgen' first")
	return ""
}

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	return img
}
