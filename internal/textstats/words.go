// Package textstats computes auxiliary statistics over extracted document
// text. It is never on the decode/encode round-trip path; a bug here cannot
// corrupt a document.
package textstats

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// WordCount segments s on Unicode word boundaries (UAX #29) and counts the
// segments that contain at least one letter or digit, so that runs of
// whitespace or punctuation between words are not counted as words. This
// handles mixed Hangul/Latin/digit text correctly, unlike a naive
// strings.Fields split on ASCII whitespace.
func WordCount(s string) int {
	count := 0
	seg := words.FromString(s)
	for seg.Next() {
		if isWordlike(seg.Value()) {
			count++
		}
	}
	return count
}

func isWordlike(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
