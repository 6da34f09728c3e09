package discover

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrClassifierUnavailable is returned when the classifier cannot run at all.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// Classifier maps a file path to its MIME type.
type Classifier interface {
	Classify(path string) (string, error)
}

// ClassifierFunc adapts an ordinary function to a Classifier.
type ClassifierFunc func(path string) (string, error)

// Classify calls f(path).
func (f ClassifierFunc) Classify(path string) (string, error) {
	return f(path)
}

// ClassifyError reports a file that could not be classified.
type ClassifyError struct {
	Path string
	Err  error
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classify %s: %v", e.Path, e.Err)
}

func (e *ClassifyError) Unwrap() error {
	return e.Err
}

// DefaultFileCommand is the name of the file(1) utility.
const DefaultFileCommand = "file"

// FileCommand classifies files by running the file(1) utility.
type FileCommand struct {
	// Name is the program to run; empty means DefaultFileCommand
	Name string
}

// Classify runs `file --brief --mime-type` on path.
func (fc FileCommand) Classify(path string) (string, error) {
	name := fc.Name
	if name == "" {
		name = DefaultFileCommand
	}

	out, err := exec.Command(name, "--brief", "--mime-type", "--", path).CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
		}
		return "", &ClassifyError{
			Path: path,
			Err:  fmt.Errorf("%w (%s)", err, strings.TrimSpace(string(out))),
		}
	}

	mimeType := strings.TrimSpace(string(out))
	if mimeType == "" {
		return "", &ClassifyError{Path: path, Err: errors.New("empty mime type")}
	}
	return mimeType, nil
}

// Sniffer classifies files by inspecting their leading bytes in-process.
type Sniffer struct{}

// Classify detects the MIME type of path from its content.
func (Sniffer) Classify(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", &ClassifyError{Path: path, Err: err}
	}

	// Drop parameters such as "; charset=utf-8".
	mimeType, _, _ := strings.Cut(mtype.String(), ";")
	return strings.TrimSpace(mimeType), nil
}

// NewClassifier returns a FileCommand when file(1) is installed and a
// Sniffer otherwise.
func NewClassifier() Classifier {
	if _, err := exec.LookPath(DefaultFileCommand); err == nil {
		return FileCommand{}
	}
	return Sniffer{}
}
