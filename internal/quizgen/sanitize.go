package quizgen

import "regexp"

// illegalChars matches control characters that are invalid in XML documents
// (and therefore in the spreadsheet export). Tab, LF, and CR are kept.
var illegalChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

// CleanText strips illegal control characters from untrusted text.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return illegalChars.ReplaceAllString(s, "")
}
