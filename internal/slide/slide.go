// Package slide defines data structures for slideshow images.
package slide

// Slide represents a single image eligible for the slideshow.
type Slide struct {
	// Path is the absolute path of the image file
	Path string

	// MIMEType is the type reported by the classifier (e.g., "image/jpeg")
	MIMEType string

	// Sequence is the position in the slideshow, following directory order
	Sequence int
}
