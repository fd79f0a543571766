package hwpx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/model"
)

// EncodeDocument builds an HWPX archive byte image from a writer-constructed
// document, implementing the write half of spec.md §2 for the packaged
// container: DocumentModel -> XmlPartCodec -> OPCWriter. Parts are written
// in a fixed order (mimetype, META-INF/container.xml, version.xml,
// Contents/header.xml, Contents/content.hpf, Contents/section<N>.xml) with
// every zip.FileHeader.Modified left at its zero value, so two calls over
// the same DocumentModel produce byte-identical archives (spec.md §4.8).
func EncodeDocument(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if err := writeStored(zw, "mimetype", []byte(mimetypeLiteral)); err != nil {
		return nil, err
	}
	if err := writeDeflated(zw, "META-INF/container.xml", []byte(containerXML)); err != nil {
		return nil, err
	}

	versionBytes, err := xml.MarshalIndent(versionXML{
		Major:       int(doc.Header.Version.Major),
		Minor:       int(doc.Header.Version.Minor),
		Micro:       int(doc.Header.Version.Micro),
		BuildNumber: int(doc.Header.Version.Build),
		XMLVersion:  "1.0",
	}, "", "  ")
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "marshal version.xml", err)
	}
	if err := writeDeflated(zw, "version.xml", withXMLProlog(versionBytes)); err != nil {
		return nil, err
	}

	if err := writeDeflated(zw, "Contents/header.xml", []byte(headerXMLStub)); err != nil {
		return nil, err
	}

	manifest := buildManifest(len(doc.Sections))
	manifestBytes, err := xml.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "marshal content.hpf", err)
	}
	if err := writeDeflated(zw, "Contents/content.hpf", withXMLProlog(manifestBytes)); err != nil {
		return nil, err
	}

	for i, sec := range doc.Sections {
		secBytes, err := xml.MarshalIndent(buildSectionXML(sec), "", "  ")
		if err != nil {
			return nil, herror.Wrapf(herror.KindIOError, err, "marshal section %d", i)
		}
		name := "Contents/section" + strconv.Itoa(i) + ".xml"
		if err := writeDeflated(zw, name, withXMLProlog(secBytes)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, herror.Wrap(herror.KindIOError, "finalize HWPX archive", err)
	}
	return buf.Bytes(), nil
}

func withXMLProlog(body []byte) []byte {
	prolog := []byte(xml.Header)
	out := make([]byte, 0, len(prolog)+len(body)+1)
	out = append(out, prolog...)
	out = append(out, body...)
	out = append(out, '\n')
	return out
}

func writeStored(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	if err != nil {
		return herror.Wrap(herror.KindIOError, "create archive entry "+name, err)
	}
	if _, err := w.Write(data); err != nil {
		return herror.Wrap(herror.KindIOError, "write archive entry "+name, err)
	}
	return nil
}

func writeDeflated(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return herror.Wrap(herror.KindIOError, "create archive entry "+name, err)
	}
	if _, err := w.Write(data); err != nil {
		return herror.Wrap(herror.KindIOError, "write archive entry "+name, err)
	}
	return nil
}

func buildManifest(sectionCount int) contentHPF {
	m := contentHPF{
		Xmlns: hwpmlPackageNS,
	}
	m.Manifest.Items = append(m.Manifest.Items, hpfItem{ID: "header", Href: "Contents/header.xml", MediaType: "application/xml"})
	for i := 0; i < sectionCount; i++ {
		id := "section" + strconv.Itoa(i)
		m.Manifest.Items = append(m.Manifest.Items, hpfItem{
			ID:        id,
			Href:      "Contents/section" + strconv.Itoa(i) + ".xml",
			MediaType: "application/xml",
		})
		m.Spine.ItemRefs = append(m.Spine.ItemRefs, hpfItemRef{IDRef: id})
	}
	return m
}

func buildSectionXML(sec model.Section) sectionXML {
	out := sectionXML{Xmlns: hwpmlParagraphNS}
	for i, p := range sec.Paragraphs {
		wp := writerParagraph{ID: i}
		for _, run := range p.Runs {
			wp.Runs = append(wp.Runs, writerRun{
				CharPrIDRef: strconv.Itoa(int(run.CharShapeID)),
				Text:        &writerTextNode{Value: run.Text},
			})
		}
		out.Paras = append(out.Paras, wp)
	}
	return out
}
