package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every HTML tag and attribute from input text.
var strictPolicy = bluemonday.StrictPolicy()

var wsRE = regexp.MustCompile(`\s{2,}`)

// unsafePatterns is the blacklist applied by ValidateContentSafety.
// Matching is case-insensitive; a single hit rejects the whole input.
var unsafePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*script`),
	regexp.MustCompile(`(?i)<\s*iframe`),
	regexp.MustCompile(`(?i)<\s*object`),
	regexp.MustCompile(`(?i)<\s*embed`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
	regexp.MustCompile(`(?i)expression\s*\(`),
}

// ValidateContentSafety reports whether user-submitted text is free of
// known dangerous constructs. It is a gate, not a cleaner: callers
// reject the request when this returns false.
func ValidateContentSafety(text string) bool {
	for _, re := range unsafePatterns {
		if re.MatchString(text) {
			return false
		}
	}
	return true
}

// SanitizePlainText strips all HTML from user-submitted text and
// collapses the whitespace left behind by removed tags.
func SanitizePlainText(text string) string {
	cleaned := strictPolicy.Sanitize(text)
	// bluemonday entity-escapes remaining text; comments etc. are plain text here
	cleaned = html.UnescapeString(cleaned)
	cleaned = wsRE.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
