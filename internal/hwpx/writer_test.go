package hwpx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gohwp/hwpdoc/internal/model"
)

func TestEncodeDocumentDeterministic(t *testing.T) {
	doc := &model.Document{
		Header: model.Header{Version: model.Version{Major: 5, Minor: 1}},
		Sections: []model.Section{
			{Paragraphs: []model.Paragraph{{Runs: []model.Run{{Text: "hello"}}}}},
		},
	}

	a, err := EncodeDocument(doc)
	require.NoError(t, err)
	b, err := EncodeDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeDocumentReadDocumentRoundTripMultiSection(t *testing.T) {
	doc := &model.Document{
		Header: model.Header{Version: model.Version{Major: 5}},
		Sections: []model.Section{
			{Paragraphs: []model.Paragraph{{Runs: []model.Run{{Text: "section zero"}}}}},
			{Paragraphs: []model.Paragraph{{Runs: []model.Run{{Text: "section one"}}}}},
		},
	}

	data, err := EncodeDocument(doc)
	require.NoError(t, err)

	got, err := ReadDocument(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "section zero", got.Sections[0].Paragraphs[0].Text())
	assert.Equal(t, "section one", got.Sections[1].Paragraphs[0].Text())
}
