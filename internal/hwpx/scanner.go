package hwpx

import (
	"encoding/xml"
	"strings"
)

// ParagraphElement, Run and TextNode mirror just enough of the OWPML <hp:p>
// schema to recover plain text: a paragraph is a sequence of runs, a run is
// a sequence of text nodes plus an optional line break. Table and drawing
// content nested under a run is not captured: a Run maps only its direct
// <t> and <lineBreak> children, so decoding a paragraph discards a nested
// <tbl> and the paragraphs inside it. decodeSectionXML separately skips a
// <tbl> that appears outside any <p>.
type ParagraphElement struct {
	XMLName xml.Name `xml:"p"`
	ID      string   `xml:"id,attr"`
	Runs    []Run    `xml:"run"`
}

func (p *ParagraphElement) extractText() string {
	var parts []string
	for _, run := range p.Runs {
		if text := run.extractText(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "")
}

type Run struct {
	XMLName   xml.Name   `xml:"run"`
	TextNodes []TextNode `xml:"t"`
	LineBreak *LineBreak `xml:"lineBreak"`
}

func (r *Run) extractText() string {
	var parts []string
	for _, t := range r.TextNodes {
		parts = append(parts, t.Text)
	}
	if r.LineBreak != nil {
		parts = append(parts, "\n")
	}
	return strings.Join(parts, "")
}

type TextNode struct {
	XMLName xml.Name `xml:"t"`
	Text    string   `xml:",chardata"`
}

type LineBreak struct {
	XMLName xml.Name `xml:"lineBreak"`
}
