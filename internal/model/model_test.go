package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextJoinsParagraphsAcrossSections(t *testing.T) {
	doc := Document{
		Sections: []Section{
			{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "first"}, {Text: " run"}}},
				{Runs: []Run{{Text: "second paragraph"}}},
			}},
			{Paragraphs: []Paragraph{
				{Runs: []Run{{Text: "third, in section two"}}},
			}},
		},
	}

	assert.Equal(t, "first run\nsecond paragraph\nthird, in section two", doc.ExtractText())
}

func TestExtractTextEmptyDocument(t *testing.T) {
	var doc Document
	assert.Equal(t, "", doc.ExtractText())
}

func TestIsEncryptedAndIsDistributionDocument(t *testing.T) {
	doc := Document{Header: Header{Flags: HeaderFlags{Password: true, Distribute: true}}}
	assert.True(t, doc.IsEncrypted())
	assert.True(t, doc.IsDistributionDocument())

	var plain Document
	assert.False(t, plain.IsEncrypted())
	assert.False(t, plain.IsDistributionDocument())
}

func TestWordCountIgnoresWhitespaceAndPunctuation(t *testing.T) {
	doc := Document{
		Sections: []Section{{Paragraphs: []Paragraph{
			{Runs: []Run{{Text: "hello, world! 123"}}},
		}}},
	}
	assert.Equal(t, 3, doc.WordCount())
}

func TestWordCountHandlesKoreanText(t *testing.T) {
	doc := Document{
		Sections: []Section{{Paragraphs: []Paragraph{
			{Runs: []Run{{Text: "안녕하세요 반갑습니다"}}},
		}}},
	}
	assert.Greater(t, doc.WordCount(), 0)
}
