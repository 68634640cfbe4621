// Package export renders downloadable documents: certificates, cheat sheets,
// resources, progress reports, and state snapshots.
package export

import (
	"fmt"
	"regexp"
	"strings"
)

// Format selects markdown or rendered HTML output for text documents.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat accepts "md", "markdown", or "html".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "md", "markdown", "":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want md or html)", s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// separators matches whitespace and path separator runs.
var separators = regexp.MustCompile(`[\s/\\]+`)

// Slug lowercases title and replaces each run of whitespace or path
// separators with a hyphen, so the result is always a single path element.
func Slug(title string) string {
	return strings.ToLower(separators.ReplaceAllString(title, "-"))
}

// CertificateFilename is the download name for a course certificate.
func CertificateFilename(courseTitle string) string {
	return Slug(courseTitle) + "-certificate.html"
}

// CheatSheetFilename is the download name for a course cheat sheet.
func CheatSheetFilename(courseTitle string, f Format) string {
	return Slug(courseTitle) + "-cheatsheet" + f.Ext()
}

// ResourceFilename is the download name for a reference resource.
func ResourceFilename(resourceTitle string, f Format) string {
	return Slug(resourceTitle) + f.Ext()
}
