package retrieval_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hwp "github.com/gohwp/hwpdoc"
	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/retrieval"
)

func longParagraph(label string) string {
	return strings.Repeat(label+" ", 20)
}

func TestExtractTextForRetrievalHWP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.hwp")
	require.NoError(t, hwp.NewHWPWriter().
		AddParagraph(longParagraph("문단 내용 1")).
		AddParagraph(longParagraph("문단 내용 2")).
		Save(path))

	text, err := retrieval.ExtractTextForRetrieval(path)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.NotContains(t, text, "  ")
}

func TestExtractTextForRetrievalHWPX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.hwpx")
	require.NoError(t, hwp.NewHWPXWriter().
		AddParagraph(longParagraph("hwpx paragraph content")).
		Save(path))

	text, err := retrieval.ExtractTextForRetrieval(path)
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestExtractTextForRetrievalUnrecognizedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")

	_, err := retrieval.ExtractTextForRetrieval(path)
	require.Error(t, err)

	var herr *herror.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, herror.KindInvalidFormat, herr.Kind)
}

func TestExtractTextForRetrievalTooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.hwp")
	require.NoError(t, hwp.NewHWPWriter().AddParagraph("short").Save(path))

	_, err := retrieval.ExtractTextForRetrieval(path)
	require.Error(t, err)

	var herr *herror.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, herror.KindInvalidFormat, herr.Kind)
}
