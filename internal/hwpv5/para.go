package hwpv5

import (
	"encoding/binary"
	"io"
)

// paraTextExtra gives the extra-byte payload each inline/extended control
// code (anything below 32) carries after its 2-byte code word, in bytes.
// Char controls (line break, paragraph break, hyphen, bundle/fixed space)
// carry none; every inline/extended control carries 7 more WCHARs (14
// bytes). Codes with no entry here are reserved and carry none either.
var paraTextExtra = map[uint16]int{
	2: 14, 3: 14, 4: 14,
	5: 14, 6: 14, 7: 14, 8: 14, 9: 14,
	11: 14,
	12: 14,
	14: 14, 15: 14, 16: 14, 17: 14, 18: 14,
	19: 14, 20: 14,
	21: 14, 22: 14, 23: 14,
}

// ParaTextElement is one piece of a paragraph's text run: a literal string
// of characters, or an inline control code. The format's control codes
// (field markers, page breaks, drawing-object anchors, …) outnumber what
// DocumentModel's flat Paragraph/Run pair can represent, so every code this
// package doesn't need for text extraction still round-trips through the
// stream via ParaTextControl rather than getting its own type.
type ParaTextElement interface {
	isParaTextElement()
}

type (
	// ParaTextString is a run of literal UTF-16 code units (code >= 32).
	ParaTextString struct{ Value string }

	// ParaTextLineBreak is code 10: a soft line break within a paragraph.
	ParaTextLineBreak struct{}

	// ParaTextTab is code 9.
	ParaTextTab struct{}

	// ParaTextControl is any other control code below 32; its extra
	// payload (if paraTextExtra names one) has already been consumed from
	// the stream and discarded.
	ParaTextControl struct{ Code uint16 }
)

func (ParaTextString) isParaTextElement()    {}
func (ParaTextLineBreak) isParaTextElement() {}
func (ParaTextTab) isParaTextElement()       {}
func (ParaTextControl) isParaTextElement()   {}

type paraTextDecoder struct {
	data io.Reader
}

func (d *paraTextDecoder) decodeParaTextElements() []ParaTextElement {
	var elements []ParaTextElement
	var run []rune

	flush := func() {
		if len(run) > 0 {
			elements = append(elements, ParaTextString{Value: string(run)})
			run = run[:0]
		}
	}

	for {
		var code uint16
		if err := binary.Read(d.data, binary.LittleEndian, &code); err != nil {
			break
		}

		if code >= 32 {
			run = append(run, rune(code))
			continue
		}
		flush()

		if n := paraTextExtra[code]; n > 0 {
			d.skipBytes(n)
		}

		switch code {
		case 10:
			elements = append(elements, ParaTextLineBreak{})
		case 9:
			elements = append(elements, ParaTextTab{})
		case 0, 1, 13, 25, 26, 27, 28, 29:
			// Unusable/reserved/paragraph-break codes carry no element of
			// their own; the stream position is already past them.
		default:
			elements = append(elements, ParaTextControl{Code: code})
		}
	}

	flush()
	return elements
}

func (d *paraTextDecoder) skipBytes(n int) {
	io.CopyN(io.Discard, d.data, int64(n))
}
