// Package slideshow builds looping GNOME background slideshows from a list of images.
package slideshow

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/agleyzer/slideshowgen/internal/duration"
	"github.com/agleyzer/slideshowgen/internal/slide"
	"github.com/agleyzer/slideshowgen/pkg/background"
)

// ErrEmpty is returned when a slideshow is created without images.
var ErrEmpty = errors.New("cannot create slideshow with zero images")

// WriteError reports a failure to create or write the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write slideshow %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Slideshow is a cyclic sequence of timed images.
type Slideshow struct {
	slides     []slide.Slide
	display    int
	transition int
	logger     *slog.Logger
}

// New creates a slideshow that shows each slide for display seconds and
// fades to the next one over transition seconds.
func New(slides []slide.Slide, display, transition int, logger *slog.Logger) (*Slideshow, error) {
	if len(slides) == 0 {
		return nil, ErrEmpty
	}

	if display <= 0 {
		return nil, fmt.Errorf("display %w: %d", duration.ErrInvalidDuration, display)
	}
	if transition <= 0 {
		return nil, fmt.Errorf("transition %w: %d", duration.ErrInvalidDuration, transition)
	}

	// One full cycle must fit in an int.
	if display > math.MaxInt-transition || display+transition > math.MaxInt/len(slides) {
		return nil, fmt.Errorf("cycle %w: %d images of %d+%d seconds overflows",
			duration.ErrInvalidDuration, len(slides), display, transition)
	}

	return &Slideshow{
		slides:     slides,
		display:    display,
		transition: transition,
		logger:     logger,
	}, nil
}

// Document returns the slideshow as alternating static and transition
// entries. The last transition fades back to the first slide.
func (s *Slideshow) Document() *background.Background {
	total := len(s.slides)
	displayText := duration.Format(s.display)
	transitionText := duration.Format(s.transition)

	entries := make([]background.Entry, 0, 2*total)
	for i, current := range s.slides {
		next := s.slides[(i+1)%total]

		entries = append(entries,
			&background.Static{
				Duration: displayText,
				File:     current.Path,
			},
			&background.Transition{
				Duration: transitionText,
				From:     current.Path,
				To:       next.Path,
			},
		)
	}

	return &background.Background{Entries: entries}
}

// Generate renders the slideshow document.
func (s *Slideshow) Generate() ([]byte, error) {
	var b bytes.Buffer
	if err := background.Encode(&b, s.Document()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// WriteFile renders the slideshow into path, replacing any existing file.
func (s *Slideshow) WriteFile(path string) (err error) {
	data, err := s.Generate()
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &WriteError{Path: path, Err: closeErr}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	s.logger.Debug("wrote slideshow",
		"path", path,
		"bytes", len(data),
	)
	return nil
}

// GetStats returns current statistics about the slideshow.
func (s *Slideshow) GetStats() map[string]any {
	total := len(s.slides)
	return map[string]any{
		"images":        total,
		"display":       s.display,
		"transition":    s.transition,
		"cycle_seconds": total * (s.display + s.transition),
	}
}

// OutputPath returns where the slideshow for dir is written: a file named
// after the directory, inside it.
func OutputPath(dir string) string {
	return filepath.Join(dir, filepath.Base(dir)+".xml")
}
