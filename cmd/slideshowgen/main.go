// The slideshowgen command turns a directory of images into a looping GNOME background slideshow.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/agleyzer/slideshowgen/internal/config"
	"github.com/agleyzer/slideshowgen/internal/discover"
	"github.com/agleyzer/slideshowgen/internal/duration"
	"github.com/agleyzer/slideshowgen/internal/slideshow"
)

const (
	version = "1.0.0"
)

// cliOptions are the parsed command-line values.
type cliOptions struct {
	config.Options
	verbose     bool
	showVersion bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("slideshowgen v%s\n", version)
		os.Exit(0)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	if opts.verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(opts.Options, discover.NewClassifier(), logger); err != nil {
		logger.Error("slideshow not generated", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	defaults := config.Defaults()

	fs := flag.NewFlagSet("slideshowgen", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts cliOptions
	pathHelp := "Directory of images to add to the slideshow; only jpeg and png files are used"
	durationHelp := "How long each image is displayed, in d[ays], h[ours], m[inutes] or s[econds] (e.g. 15m)"
	transitionHelp := "How long one image cross-fades into the next, in seconds"

	fs.StringVar(&opts.Path, "path", defaults.Path, pathHelp)
	fs.StringVar(&opts.Path, "p", defaults.Path, pathHelp+" (shorthand)")
	fs.StringVar(&opts.Duration, "duration", defaults.Duration, durationHelp)
	fs.StringVar(&opts.Duration, "d", defaults.Duration, durationHelp+" (shorthand)")
	fs.StringVar(&opts.Transition, "transition", defaults.Transition, transitionHelp)
	fs.StringVar(&opts.Transition, "t", defaults.Transition, transitionHelp+" (shorthand)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "slideshowgen - GNOME slideshow wallpaper generator v%s\n\n", version)
		fmt.Fprintf(fs.Output(), "Usage: slideshowgen [options]\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nEnvironment: %s, %s and %s override the defaults; a .env file is read if present.\n",
			config.EnvPath, config.EnvDuration, config.EnvTransition)
		fmt.Fprintf(fs.Output(), "\nExamples:\n")
		fmt.Fprintf(fs.Output(), "  slideshowgen --path ~/Pictures/Wallpapers\n")
		fmt.Fprintf(fs.Output(), "  slideshowgen -p ~/Pictures -d 15m -t 3\n")
	}

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return cliOptions{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

// run validates opts, finds the images and writes the slideshow into the
// image directory. Nothing is written unless every check passes.
func run(opts config.Options, classifier discover.Classifier, logger *slog.Logger) error {
	display, err := duration.Parse(opts.Duration)
	if err != nil {
		return fmt.Errorf("duration time is invalid: %w", err)
	}
	logger.Info("slide duration time", "seconds", display)

	transition, err := duration.Parse(opts.Transition)
	if err != nil {
		return fmt.Errorf("transition time is invalid: %w", err)
	}
	logger.Info("slide transition time", "seconds", transition)

	dir, err := config.ResolveDir(opts.Path)
	if err != nil {
		return err
	}
	logger.Info("slide image directory", "path", dir)

	slides, err := discover.Find(dir, classifier, logger)
	if err != nil {
		return err
	}
	for _, s := range slides {
		logger.Info("added image", "path", s.Path, "mimeType", s.MIMEType)
	}

	show, err := slideshow.New(slides, display, transition, logger)
	if err != nil {
		return fmt.Errorf("failed to create slideshow: %w", err)
	}

	outputPath := slideshow.OutputPath(dir)
	if err := show.WriteFile(outputPath); err != nil {
		return err
	}

	stats := show.GetStats()
	logger.Info("slideshow written",
		"path", outputPath,
		"images", stats["images"],
		"cycleSeconds", stats["cycle_seconds"],
	)
	return nil
}
