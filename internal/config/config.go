// Package config resolves slideshowgen settings from the environment and
// command-line values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

// ErrInvalidPath is returned when the source path does not resolve to a directory.
// discover.Find reports the same error for a directory it cannot scan.
var ErrInvalidPath = errors.New("path is not a valid directory")

// Environment variables that override the built-in defaults.
const (
	EnvPath       = "SLIDESHOW_PATH"
	EnvDuration   = "SLIDESHOW_DURATION"
	EnvTransition = "SLIDESHOW_TRANSITION"
)

// Built-in defaults.
const (
	DefaultPath       = "~/Pictures"
	DefaultDuration   = "3600"
	DefaultTransition = "2"
)

// Options holds the raw, unvalidated settings.
type Options struct {
	// Path is the image directory; "~" is expanded
	Path string
	// Duration is how long each image is shown, e.g. "1h"
	Duration string
	// Transition is how long the cross-fade lasts, e.g. "2s"
	Transition string
}

// Defaults reads .env (if present) and returns the environment overrides,
// falling back to the built-in defaults.
func Defaults() Options {
	_ = godotenv.Load()

	return Options{
		Path:       getenv(EnvPath, DefaultPath),
		Duration:   getenv(EnvDuration, DefaultDuration),
		Transition: getenv(EnvTransition, DefaultTransition),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// ResolveDir expands a leading "~", strips trailing slashes and returns the
// absolute path of an existing directory. Only the current user's home is
// expanded; "~name/..." is rejected with ErrInvalidPath.
func ResolveDir(raw string) (string, error) {
	expanded, err := homedir.Expand(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidPath, raw, err)
	}

	trimmed := strings.TrimRight(expanded, "/")
	if trimmed == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}

	info, err := os.Stat(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidPath, raw, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidPath, raw, err)
	}
	return abs, nil
}
