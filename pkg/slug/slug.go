package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize turns free-form user input into the canonical slug form used by
// course URLs: lowercase, hyphen-separated, alphanumeric only.
//
// Examples:
//   - "Go Basics" → "go-basics"
//   - "  REST & gRPC!  " → "rest-grpc"
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
