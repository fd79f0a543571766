// Package hwp reads and writes Korean Hangul Word Processor documents, both
// the legacy binary HWP v5 format (.hwp, an OLE Compound File container) and
// the packaged HWPX format (.hwpx, a ZIP of OWPML XML parts).
//
// Both formats decode into the same container-agnostic Document, so callers
// that only need text or metadata do not need to know which container a
// given file uses:
//
//	doc, err := hwp.Open("document.hwp") // or "document.hwpx"
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.ExtractText())
package hwp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/hwpv5"
	"github.com/gohwp/hwpdoc/internal/hwpx"
	"github.com/gohwp/hwpdoc/internal/model"
	"github.com/gohwp/hwpdoc/internal/retrieval"
)

// Document is the container-agnostic document model both codecs decode into
// and encode out of (spec.md §4.9's DocumentModel).
type Document = model.Document

// OpenHWP reads a binary HWP v5 file from disk into a Document.
func OpenHWP(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "open "+path, err)
	}
	defer f.Close()
	return hwpv5.ReadDocument(f)
}

// ParseHWP decodes a binary HWP v5 document already held in memory.
func ParseHWP(data []byte) (*Document, error) {
	return hwpv5.ReadDocument(bytes.NewReader(data))
}

// OpenHWPX reads a packaged HWPX file from disk into a Document.
func OpenHWPX(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "open "+path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "stat "+path, err)
	}
	return hwpx.ReadDocument(f, info.Size())
}

// ParseHWPX decodes a packaged HWPX document already held in memory.
func ParseHWPX(data []byte) (*Document, error) {
	return hwpx.ReadDocument(bytes.NewReader(data), int64(len(data)))
}

// Open auto-detects format from path's extension (.hwpx vs. anything else)
// and returns a Document.
func Open(path string) (*Document, error) {
	if strings.ToLower(filepath.Ext(path)) == ".hwpx" {
		return OpenHWPX(path)
	}
	return OpenHWP(path)
}

// ExtractTextForRetrieval reads the document at path, extracts its text, and
// normalizes it for downstream indexing (spec.md §6). It fails if the
// extension is unrecognized or the normalized text is below the minimum
// length.
func ExtractTextForRetrieval(path string) (string, error) {
	return retrieval.ExtractTextForRetrieval(path)
}

// Style carries the run-level formatting add_paragraph_styled exposes:
// bold, italic, underline, and font size in points (stored internally at the
// format's native points-times-two resolution).
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	FontSize  float64 // points; 0 means "use the writer's default size"
}

const defaultFontSizePt = 10.0

func (s Style) charShape() model.CharShape {
	size := s.FontSize
	if size <= 0 {
		size = defaultFontSizePt
	}
	return model.CharShape{
		Bold:               s.Bold,
		Italic:             s.Italic,
		Underline:          s.Underline,
		FontSizeHalfPoints: int(size * 2),
	}
}

// charShapeKey is the comparable projection of model.CharShape used for map
// lookups; CharShape itself carries a Raw []byte field and so is not a valid
// map key.
type charShapeKey struct {
	bold, italic, underline bool
	fontSizeHalfPoints      int
}

// docWriter accumulates paragraphs for either container's builder, deduping
// CharShapes by value so repeated styles share one DocInfo entry the way a
// real document's id-mapping tables do.
type docWriter struct {
	doc        model.Document
	charShapes map[charShapeKey]uint16
}

func newDocWriter() docWriter {
	return docWriter{
		doc: model.Document{
			Header: model.Header{
				Flags: model.HeaderFlags{Compressed: true},
			},
			Sections: []model.Section{{}},
		},
		charShapes: make(map[charShapeKey]uint16),
	}
}

func (w *docWriter) charShapeID(shape model.CharShape) uint16 {
	key := charShapeKey{shape.Bold, shape.Italic, shape.Underline, shape.FontSizeHalfPoints}
	if id, ok := w.charShapes[key]; ok {
		return id
	}
	id := uint16(len(w.doc.DocInfo.CharShapes))
	w.doc.DocInfo.CharShapes = append(w.doc.DocInfo.CharShapes, shape)
	// Every paragraph reuses its run's CharShape id as its ParaShape id too,
	// so ParaShapes stays the same length as CharShapes and every id a
	// paragraph emits resolves in both arenas.
	w.doc.DocInfo.ParaShapes = append(w.doc.DocInfo.ParaShapes, model.ParaShape{})
	w.charShapes[key] = id
	return id
}

func (w *docWriter) addParagraph(text string, style Style) {
	shape := style.charShape()
	id := w.charShapeID(shape)
	if len(w.doc.Sections) == 0 {
		w.doc.Sections = append(w.doc.Sections, model.Section{})
	}
	sec := &w.doc.Sections[len(w.doc.Sections)-1]
	sec.Paragraphs = append(sec.Paragraphs, model.Paragraph{
		Runs:        []model.Run{{Text: text, CharShapeID: id}},
		ParaShapeID: id,
	})
}

// HWPWriter builds a binary HWP v5 document from scratch (the CFB-backed
// encoder spec.md §1 requires a minimum-viable document from).
type HWPWriter struct{ w docWriter }

// NewHWPWriter starts an empty HWP v5 document with one section.
func NewHWPWriter() *HWPWriter {
	return &HWPWriter{w: newDocWriter()}
}

// AddParagraph appends a plain paragraph using the writer's default style.
func (b *HWPWriter) AddParagraph(text string) *HWPWriter {
	b.w.addParagraph(text, Style{})
	return b
}

// AddParagraphStyled appends a paragraph carrying bold/italic/underline/size.
func (b *HWPWriter) AddParagraphStyled(text string, style Style) *HWPWriter {
	b.w.addParagraph(text, style)
	return b
}

// ToBytes encodes the accumulated document into a CFB byte image.
func (b *HWPWriter) ToBytes() ([]byte, error) {
	return hwpv5.EncodeDocument(&b.w.doc)
}

// Save encodes and writes the document to path.
func (b *HWPWriter) Save(path string) error {
	data, err := b.ToBytes()
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// HWPXWriter builds a packaged HWPX document from scratch.
type HWPXWriter struct{ w docWriter }

// NewHWPXWriter starts an empty HWPX document with one section.
func NewHWPXWriter() *HWPXWriter {
	return &HWPXWriter{w: newDocWriter()}
}

// AddParagraph appends a plain paragraph using the writer's default style.
func (b *HWPXWriter) AddParagraph(text string) *HWPXWriter {
	b.w.addParagraph(text, Style{})
	return b
}

// AddParagraphStyled appends a paragraph carrying bold/italic/underline/size.
func (b *HWPXWriter) AddParagraphStyled(text string, style Style) *HWPXWriter {
	b.w.addParagraph(text, style)
	return b
}

// ToBytes encodes the accumulated document into a ZIP byte image.
func (b *HWPXWriter) ToBytes() ([]byte, error) {
	return hwpx.EncodeDocument(&b.w.doc)
}

// Save encodes and writes the document to path.
func (b *HWPXWriter) Save(path string) error {
	data, err := b.ToBytes()
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return herror.Wrap(herror.KindIOError, "create "+path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return herror.Wrap(herror.KindIOError, "write "+path, err)
	}
	return nil
}
