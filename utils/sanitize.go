package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips unsafe markup from post titles and content before they are
// stored. The UGC policy keeps basic formatting tags.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
