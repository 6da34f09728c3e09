// Package discover finds slideshow images in a directory.
package discover

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/agleyzer/slideshowgen/internal/config"
	"github.com/agleyzer/slideshowgen/internal/slide"
	"github.com/agleyzer/slideshowgen/pkg/background"
)

// ErrNoImages is returned when a directory holds no allow-listed images.
var ErrNoImages = errors.New("no images were found in the directory path")

// AllowedTypes lists the MIME types accepted into a slideshow.
var AllowedTypes = []string{"image/jpeg", "image/png"}

// IsAllowed reports whether mimeType is in AllowedTypes.
func IsAllowed(mimeType string) bool {
	for _, t := range AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// Find returns the allow-listed images directly inside dir.
// Slides keep the order in which the directory enumerates them. A dir that is
// not an existing directory yields config.ErrInvalidPath.
func Find(dir string, classifier Classifier, logger *slog.Logger) ([]slide.Slide, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", config.ErrInvalidPath, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", config.ErrInvalidPath, dir)
	}

	entries, err := readDirUnsorted(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	var slides []slide.Slide
	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())

		// Paths the slideshow document cannot carry unchanged are left out.
		if !background.ValidText(fullPath) {
			logger.Debug("skipping file with unrepresentable name", "path", fmt.Sprintf("%q", fullPath))
			continue
		}

		// Stat follows symlinks, so a link to an image counts as a file.
		fi, err := os.Stat(fullPath)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		mimeType, err := classifier.Classify(fullPath)
		if err != nil {
			if errors.Is(err, ErrClassifierUnavailable) {
				return nil, err
			}
			logger.Debug("skipping unclassifiable file", "path", fullPath, "error", err)
			continue
		}

		if !IsAllowed(mimeType) {
			logger.Debug("skipping file", "path", fullPath, "mimeType", mimeType)
			continue
		}

		slides = append(slides, slide.Slide{
			Path:     fullPath,
			MIMEType: mimeType,
			Sequence: len(slides),
		})
	}

	if len(slides) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoImages, dir)
	}

	return slides, nil
}

// readDirUnsorted lists dir in the order the filesystem returns entries.
// os.ReadDir would sort them by name.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}
