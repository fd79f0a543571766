package hwpx

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/model"
)

// ReadDocument decodes an HWPX archive into the same DocumentModel the
// legacy hwpv5 codec produces, reading every Contents/section<N>.xml part
// in numeric order (spec.md §5's section-ordering invariant applies to both
// containers).
func ReadDocument(r io.ReaderAt, size int64) (*model.Document, error) {
	reader, err := Open(r, size)
	if err != nil {
		return nil, herror.Wrap(herror.KindInvalidFormat, "open HWPX package", err)
	}

	names := sortedSectionNames(reader)
	if len(names) == 0 {
		return nil, herror.New(herror.KindInvalidFormat, "no section files found in Contents/")
	}

	doc := &model.Document{
		Header: model.Header{
			Signature: "HWPX",
			Version: model.Version{
				Major: uint8(reader.version.Major),
				Minor: uint8(reader.version.Minor),
				Micro: uint8(reader.version.Micro),
				Build: uint8(reader.version.BuildNumber),
			},
		},
	}

	for _, name := range names {
		file, err := reader.zipReader.Open(name)
		if err != nil {
			return nil, herror.Wrap(herror.KindIOError, "open section part "+name, err)
		}
		sec, err := decodeSectionXML(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, sec)
	}

	return doc, nil
}

func sortedSectionNames(r *Reader) []string {
	names := make([]string, 0, len(r.sections))
	for _, s := range r.sections {
		names = append(names, s.name)
	}
	sort.Slice(names, func(i, j int) bool {
		return sectionIndex(names[i]) < sectionIndex(names[j])
	})
	return names
}

// sectionIndex extracts N out of "Contents/sectionN.xml" so sections sort
// numerically (section9 before section10) rather than lexicographically.
func sectionIndex(name string) int {
	base := strings.TrimPrefix(name, "Contents/section")
	base = strings.TrimSuffix(base, ".xml")
	n, err := strconv.Atoi(base)
	if err != nil {
		return -1
	}
	return n
}

// decodeSectionXML walks one section part's XML into a flat list of
// paragraphs via its <p>/<run>/<t> elements. Paragraphs nested inside a
// <tbl> are skipped — out of DocumentModel's scope, exactly as
// hwpv5.DecodeSection skips table/drawing-object content.
func decodeSectionXML(r io.Reader) (model.Section, error) {
	var sec model.Section
	decoder := xml.NewDecoder(r)

	var insideTable int
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sec, herror.Wrap(herror.KindInvalidFormat, "parse section XML", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "tbl":
			insideTable++
			if err := decoder.Skip(); err != nil {
				return sec, herror.Wrap(herror.KindInvalidFormat, "skip table element", err)
			}
			insideTable--
		case "p":
			if insideTable > 0 {
				if err := decoder.Skip(); err != nil {
					return sec, herror.Wrap(herror.KindInvalidFormat, "skip paragraph element", err)
				}
				continue
			}
			var para ParagraphElement
			if err := decoder.DecodeElement(&para, &start); err != nil {
				return sec, herror.Wrap(herror.KindInvalidFormat, "decode paragraph element", err)
			}
			sec.Paragraphs = append(sec.Paragraphs, model.Paragraph{
				Runs: []model.Run{{Text: para.extractText()}},
			})
		}
	}
	return sec, nil
}
