// Package retrieval implements the extract_text_for_retrieval surface
// (spec.md §6): dispatch on file extension, extract text through the
// appropriate codec, normalize it for downstream indexing, and enforce the
// minimum-length floor that keeps near-empty documents out of a retrieval
// corpus.
package retrieval

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/hwpv5"
	"github.com/gohwp/hwpdoc/internal/hwpx"
)

// minNormalizedLength is the floor spec.md §6 names: a normalized result
// shorter than this is treated as invalid-format rather than returned.
const minNormalizedLength = 50

// ExtractTextForRetrieval reads the document at path, extracts its text, and
// normalizes it: each line is trimmed, empty lines are dropped, the
// remaining lines are joined with "\n", and the whole result is trimmed
// again. It fails with KindInvalidFormat if the extension is unrecognized or
// the normalized text is shorter than 50 characters.
func ExtractTextForRetrieval(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	switch ext {
	case ".hwp":
		f, err := os.Open(path)
		if err != nil {
			return "", herror.Wrap(herror.KindIOError, "open "+path, err)
		}
		defer f.Close()
		doc, err := hwpv5.ReadDocument(f)
		if err != nil {
			return "", err
		}
		text = doc.ExtractText()
	case ".hwpx":
		f, err := os.Open(path)
		if err != nil {
			return "", herror.Wrap(herror.KindIOError, "open "+path, err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return "", herror.Wrap(herror.KindIOError, "stat "+path, err)
		}
		doc, err := hwpx.ReadDocument(f, info.Size())
		if err != nil {
			return "", err
		}
		text = doc.ExtractText()
	default:
		return "", herror.Newf(herror.KindInvalidFormat, "unrecognized file extension %q", ext)
	}

	normalized := normalize(text)
	if n := utf8.RuneCountInString(normalized); n < minNormalizedLength {
		return "", herror.Newf(herror.KindInvalidFormat, "normalized text is %d characters, below the %d-character minimum", n, minNormalizedLength)
	}
	return normalized, nil
}

func normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
