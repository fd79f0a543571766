package hwp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohwp/hwpdoc/internal/herror"
)

func TestHWPWriterRoundTrip(t *testing.T) {
	data, err := NewHWPWriter().
		AddParagraph("첫 번째 문단입니다").
		AddParagraph("second plain paragraph").
		AddParagraphStyled("강조된 문단", Style{Bold: true, FontSize: 12}).
		ToBytes()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	doc, err := ParseHWP(data)
	require.NoError(t, err)

	text := doc.ExtractText()
	assert.Contains(t, text, "첫 번째 문단입니다")
	assert.Contains(t, text, "second plain paragraph")
	assert.Contains(t, text, "강조된 문단")

	require.Len(t, doc.DocInfo.CharShapes, 2)
	assert.True(t, doc.DocInfo.CharShapes[1].Bold)
	assert.Equal(t, 24, doc.DocInfo.CharShapes[1].FontSizeHalfPoints)
}

func TestHWPWriterEmptyDocument(t *testing.T) {
	data, err := NewHWPWriter().ToBytes()
	require.NoError(t, err)

	doc, err := ParseHWP(data)
	require.NoError(t, err)
	assert.Equal(t, "", doc.ExtractText())
}

func TestHWPXWriterRoundTrip(t *testing.T) {
	data, err := NewHWPXWriter().
		AddParagraph("hwpx 문서입니다").
		AddParagraphStyled("기울임", Style{Italic: true}).
		ToBytes()
	require.NoError(t, err)

	doc, err := ParseHWPX(data)
	require.NoError(t, err)

	text := doc.ExtractText()
	assert.Contains(t, text, "hwpx 문서입니다")
	assert.Contains(t, text, "기울임")
}

func TestParseHWPRejectsCorruptedSignature(t *testing.T) {
	data, err := NewHWPWriter().AddParagraph("doesn't matter").ToBytes()
	require.NoError(t, err)

	corrupted := bytes.Replace(data, []byte("HWP Document File"), []byte("NOT AN HWP FILE!!"), 1)
	require.NotEqual(t, data, corrupted)

	_, err = ParseHWP(corrupted)
	require.Error(t, err)

	var herr *herror.Error
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, herror.KindNotHWPFile, herr.Kind)
}

func TestParseHWPRejectsGarbage(t *testing.T) {
	_, err := ParseHWP([]byte("this is not a compound file at all"))
	assert.Error(t, err)
}
