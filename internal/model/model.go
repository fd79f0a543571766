// Package model defines the in-memory document representation shared by the
// legacy HWP (hwpv5) and packaged HWPX (hwpx) codecs. Neither codec owns this
// type: both decode into it and both can encode it back out, so it carries no
// container-specific fields (no CFB directory paths, no ZIP part names).
package model

import (
	"strings"

	"github.com/gohwp/hwpdoc/internal/textstats"
)

// Version is the four-part HWP/HWPX format version (major.minor.micro.build).
type Version struct {
	Major uint8
	Minor uint8
	Micro uint8
	Build uint8
}

// HeaderFlags mirrors the boolean bits the core distinguishes in the 32-bit
// FileHeader property word. Bits outside these are preserved verbatim in
// Header.RawProperties so round-tripping never loses information the core
// does not itself interpret.
type HeaderFlags struct {
	Compressed bool
	Password   bool
	Distribute bool
}

// Header is the logical 32-byte HWP FileHeader stream.
type Header struct {
	Signature      string
	Version        Version
	Flags          HeaderFlags
	RawProperties  uint32 // full flag word, for bits the core does not name
	RawSecondFlags uint32
	Raw            []byte // full on-wire bytes when decoded from a file, nil when built fresh
}

// Face, BorderFill, CharShape, TabDef, Numbering, Bullet, ParaShape and Style
// are the DocInfo arenas: small-integer-indexed tables referenced by id from
// paragraphs and runs. The core only needs enough of each to keep id spaces
// coherent and to pass bytes through unchanged; it does not interpret fonts,
// borders or numbering schemes.
type (
	Face struct{ Name string }

	BorderFill struct{ Raw []byte }

	CharShape struct {
		Bold      bool
		Italic    bool
		Underline bool
		// FontSizeHalfPoints is the HWP convention of point-size times two.
		FontSizeHalfPoints int
		Raw                []byte
	}

	TabDef struct{ Raw []byte }

	Numbering struct{ Raw []byte }

	Bullet struct{ Raw []byte }

	ParaShape struct {
		AlignmentID uint8
		Raw         []byte
	}

	Style struct {
		Name string
		Raw  []byte
	}
)

// OpaqueRecord preserves a DocInfo or BodyText record this codec does not
// interpret, so re-encoding a document read from disk does not drop tags it
// does not know about.
type OpaqueRecord struct {
	Tag     uint16
	Level   uint16
	Payload []byte
}

// DocInfo holds the document-global tables every section's paragraphs and
// runs reference by index.
type DocInfo struct {
	Faces       []Face
	BorderFills []BorderFill
	CharShapes  []CharShape
	TabDefs     []TabDef
	Numberings  []Numbering
	Bullets     []Bullet
	ParaShapes  []ParaShape
	Styles      []Style

	SectionCount int

	// Unknown holds opaque records preserved verbatim between decode and
	// encode of a loaded document. A document built fresh by a writer
	// leaves this empty; only the library's own minimum table is emitted.
	Unknown []OpaqueRecord
}

// Run is a maximal run of characters sharing one character-shape id.
type Run struct {
	Text        string
	CharShapeID uint16
}

// Paragraph owns an ordered sequence of runs plus paragraph-level properties.
type Paragraph struct {
	Runs        []Run
	StyleID     uint16
	ParaShapeID uint16
	// LineBreak marks a paragraph that ends with an explicit in-band line
	// break control code rather than a paragraph break.
	LineBreak bool
}

// Text concatenates the paragraph's run text with no separator, the plain
// code units a reader sees between inline-object controls.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Section is an ordered, non-empty-in-a-valid-document sequence of paragraphs.
type Section struct {
	Paragraphs []Paragraph
}

// PreviewImage is the raw PrvImage stream plus a sniffed format hint.
type PreviewImage struct {
	Format string // "png", "jpeg", "bmp", or "" if unrecognized
	Data   []byte
}

// SummaryInfo mirrors the handful of OLE property-set fields the core cares
// about from \x05HwpSummaryInformation.
type SummaryInfo struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Document is the sole owner of every section, paragraph and run decoded
// from, or destined for, either container format.
type Document struct {
	Header      Header
	DocInfo     DocInfo
	Sections    []Section
	PreviewText string // empty if absent; "" is a valid value too, so readers must consult HasPreview for presence
	HasPreview  bool

	PreviewImage *PreviewImage
	SummaryInfo  *SummaryInfo
}

// ExtractText concatenates every paragraph's run text across every section,
// in section and paragraph order, separating paragraphs with "\n". It is a
// pure function of the model: calling it twice on the same Document yields
// the same string.
func (d *Document) ExtractText() string {
	var sb strings.Builder
	first := true
	for _, sec := range d.Sections {
		for _, p := range sec.Paragraphs {
			if !first {
				sb.WriteByte('\n')
			}
			first = false
			sb.WriteString(p.Text())
		}
	}
	return sb.String()
}

// IsEncrypted reports whether the document declared password encryption in
// its header. The core never decodes such a document; the flag survives only
// for callers that inspected a header without attempting a full parse.
func (d *Document) IsEncrypted() bool { return d.Header.Flags.Password }

// IsDistributionDocument reports whether body streams were AES-encrypted
// under the distribution scheme (BodyText renamed to ViewText on disk).
func (d *Document) IsDistributionDocument() bool { return d.Header.Flags.Distribute }

// WordCount segments the extracted text on Unicode word boundaries and
// reports how many segments contain at least one letter or digit. It is an
// auxiliary statistic for retrieval glue, not part of the round-trip
// contract.
func (d *Document) WordCount() int {
	return textstats.WordCount(d.ExtractText())
}
