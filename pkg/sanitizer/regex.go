package sanitizer

import "regexp"

// lineBreakRegex matches CRLF, CR and LF line endings.
var lineBreakRegex = regexp.MustCompile(`\r\n?|\n`)
