package hwpv5

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohwp/hwpdoc/internal/model"
)

func TestEncodeDecodeSectionRoundTrip(t *testing.T) {
	sec := model.Section{
		Paragraphs: []model.Paragraph{
			{Runs: []model.Run{{Text: "첫 번째 문단", CharShapeID: 0}}, ParaShapeID: 0},
			{Runs: []model.Run{{Text: "second paragraph", CharShapeID: 1}}, ParaShapeID: 1},
		},
	}

	raw := EncodeSection(sec)
	decoded, err := DecodeSection(raw)
	require.NoError(t, err)
	require.Len(t, decoded.Paragraphs, 2)
	assert.Equal(t, "첫 번째 문단", decoded.Paragraphs[0].Text())
	assert.Equal(t, "second paragraph", decoded.Paragraphs[1].Text())
}

func TestDecodeSectionKeepsTrailingParagraphWithoutClosingRecord(t *testing.T) {
	// A ParaHeader + ParaText with no following ParaCharShape/ParaLineSeg
	// still has to surface as a paragraph rather than being silently dropped.
	records := []Record{
		{Tag: recTagParaHeader, Level: 0, Payload: make([]byte, 22)},
		{Tag: recTagParaText, Level: 1, Payload: encodeUTF16("trailing text")},
	}
	raw := EncodeRecords(records)

	decoded, err := DecodeSection(raw)
	require.NoError(t, err)
	require.Len(t, decoded.Paragraphs, 1)
	assert.Equal(t, "trailing text", decoded.Paragraphs[0].Text())
}

func TestDecodeSectionSkipsControlChildren(t *testing.T) {
	// A control header's nested records (e.g. table cell paragraphs) must
	// not surface as top-level paragraphs.
	records := []Record{
		{Tag: recTagParaHeader, Level: 0, Payload: make([]byte, 22)},
		{Tag: recTagParaText, Level: 1, Payload: encodeUTF16("before table")},
		{Tag: recTagParaCharShape, Level: 1, Payload: make([]byte, 8)},
		{Tag: recTagParaLineSeg, Level: 1, Payload: make([]byte, 36)},

		{Tag: recTagCtrlHeader, Level: 1, Payload: make([]byte, 4)},
		{Tag: recTagParaHeader, Level: 2, Payload: make([]byte, 22)},
		{Tag: recTagParaText, Level: 3, Payload: encodeUTF16("inside cell")},
		{Tag: recTagParaCharShape, Level: 3, Payload: make([]byte, 8)},
		{Tag: recTagParaLineSeg, Level: 3, Payload: make([]byte, 36)},
	}
	raw := EncodeRecords(records)

	decoded, err := DecodeSection(raw)
	require.NoError(t, err)
	require.Len(t, decoded.Paragraphs, 1)
	assert.Equal(t, "before table", decoded.Paragraphs[0].Text())
}

func encodeUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		buf[i*2] = byte(u)
		buf[i*2+1] = byte(u >> 8)
	}
	return buf
}
