package hwpv5

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf16"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/model"
)

// DecodeSection decodes one already-inflated/decrypted BodyText/ViewText
// section stream into the ordered paragraph list spec.md §4.7 describes.
// Paragraphs nested inside a table cell or drawing-object control are
// skipped (not part of DocumentModel's scope — see model.Section's doc
// comment: a Section is a flat sequence of paragraphs, not a tree).
func DecodeSection(data []byte) (model.Section, error) {
	var sec model.Section
	scanner := NewRecScanner(bytes.NewReader(data))

	var pending *paragraphAccumulator
	// carried is the record that ended a control's subtree skip; it is
	// dispatched before the scanner is asked for another one.
	var carried Rec

	for {
		rec := carried
		carried = nil
		if rec == nil {
			var err error
			if rec, err = scanner.ScanNext(); err != nil {
				if err == io.EOF {
					break
				}
				return sec, herror.Wrap(herror.KindParseError, "decode section records", err)
			}
		}

		switch r := rec.(type) {
		case RecParaHeader:
			pending = &paragraphAccumulator{}

		case RecParaText:
			if pending == nil {
				continue
			}
			for _, el := range r.Els {
				switch e := el.(type) {
				case ParaTextString:
					pending.text = append(pending.text, []rune(e.Value)...)
					pending.trailingBreak = false
				case ParaTextLineBreak:
					pending.text = append(pending.text, '\n')
					pending.trailingBreak = true
				case ParaTextTab:
					pending.text = append(pending.text, '\t')
					pending.trailingBreak = false
				}
			}

		case RecParaCharShape, RecParaLineSeg:
			if pending == nil {
				continue
			}
			sec.Paragraphs = append(sec.Paragraphs, pending.finish())
			pending = nil

		case RecCtrlHeader:
			// Table and drawing-object contents are not modeled; the
			// records between this control header and the next sibling
			// at or below its level are consumed by scanning past them
			// without building paragraphs from them; that sibling is then
			// dispatched normally.
			carried = skipControlChildren(scanner, r.Lvl())
		}
	}

	// A trailing paragraph with no closing CharShape/LineSeg record still
	// carries real text (malformed or truncated producers do this); keep it
	// rather than silently dropping the last paragraph.
	if pending != nil {
		sec.Paragraphs = append(sec.Paragraphs, pending.finish())
	}

	return sec, nil
}

type paragraphAccumulator struct {
	text          []rune
	trailingBreak bool
}

func (p *paragraphAccumulator) finish() model.Paragraph {
	return model.Paragraph{
		Runs:      []model.Run{{Text: string(p.text)}},
		LineBreak: p.trailingBreak,
	}
}

// skipControlChildren reads and discards records deeper than parentLevel
// and returns the first record at or below parentLevel (the control's next
// sibling, or the next paragraph's header) so the caller can dispatch it.
// It returns nil at end of stream or on a read error.
func skipControlChildren(scanner *RecScanner, parentLevel uint16) Rec {
	for {
		rec, err := scanner.ScanNext()
		if err != nil {
			return nil
		}
		if rec.Lvl() <= parentLevel {
			return rec
		}
	}
}

// EncodeSection emits a minimum-viable section stream for a writer-built
// document: one paragraph-header, paragraph-text, paragraph-char-shape (one
// span) and paragraph-line-segment (one placeholder segment) per paragraph,
// per spec.md §4.7's encoder contract.
func EncodeSection(sec model.Section) []byte {
	var records []Record
	for _, p := range sec.Paragraphs {
		text := p.Text()
		units := utf16.Encode([]rune(text))

		header := make([]byte, 22)
		binary.LittleEndian.PutUint32(header[0:4], uint32(len(units)))
		binary.LittleEndian.PutUint16(header[8:10], p.ParaShapeID)
		header[10] = byte(p.StyleID)
		records = append(records, Record{Tag: recTagParaHeader, Level: 0, Payload: header})

		textPayload := make([]byte, len(units)*2)
		for i, u := range units {
			binary.LittleEndian.PutUint16(textPayload[i*2:], u)
		}
		records = append(records, Record{Tag: recTagParaText, Level: 1, Payload: textPayload})

		charShapePayload := make([]byte, 8)
		binary.LittleEndian.PutUint32(charShapePayload[4:8], uint32(charShapeIDOf(p)))
		records = append(records, Record{Tag: recTagParaCharShape, Level: 1, Payload: charShapePayload})

		records = append(records, Record{Tag: recTagParaLineSeg, Level: 1, Payload: make([]byte, 36)})
	}
	return EncodeRecords(records)
}

func charShapeIDOf(p model.Paragraph) uint16 {
	if len(p.Runs) == 0 {
		return 0
	}
	return p.Runs[0].CharShapeID
}
