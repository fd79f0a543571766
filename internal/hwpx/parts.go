package hwpx

import "encoding/xml"

// mimetypeLiteral is the literal, stored-uncompressed first entry every
// HWPX archive carries (spec.md §6).
const mimetypeLiteral = "application/hwp+zip"

// containerXML is the fixed OCF-style container part pointing at the
// package's root manifest.
const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<ocf:container xmlns:ocf="urn:oasis:names:tc:opendocument:xmlns:container" xmlns:hpf="http://www.hancom.co.kr/schema/2011/hpf">
  <ocf:rootfiles>
    <ocf:rootfile full-path="Contents/content.hpf" media-type="application/hwp+ml"/>
  </ocf:rootfiles>
</ocf:container>
`

// headerXMLStub is a minimal, schema-valid Contents/header.xml. Neither this
// writer nor Reader interprets header.xml's contents (DocInfo-equivalent
// metadata for HWPX is out of scope, same as spec.md's Non-goal on full
// record-tag fidelity), so it is emitted as an empty root element a
// conformant HWPX consumer still recognizes as well-formed.
const headerXMLStub = `<?xml version="1.0" encoding="UTF-8"?>
<hh:head xmlns:hh="http://www.hancom.co.kr/hwpml/2011/head"/>
`

// versionXML is the version.xml part, written with the fixed attribute
// order Reader.parseVersion expects when reading it back.
type versionXML struct {
	XMLName     xml.Name `xml:"HCFVersion"`
	Major       int      `xml:"major,attr"`
	Minor       int      `xml:"minor,attr"`
	Micro       int      `xml:"micro,attr"`
	BuildNumber int      `xml:"buildNumber,attr"`
	XMLVersion  string   `xml:"xmlVersion,attr"`
}

// contentHPF is the minimal package manifest (OPF-like) referencing every
// part this writer emits.
type contentHPF struct {
	XMLName  xml.Name       `xml:"HCFDocument"`
	Xmlns    string         `xml:"xmlns,attr"`
	Manifest hpfManifest    `xml:"manifest"`
	Spine    hpfSpine       `xml:"spine"`
}

type hpfManifest struct {
	Items []hpfItem `xml:"item"`
}

type hpfItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

type hpfSpine struct {
	ItemRefs []hpfItemRef `xml:"itemref"`
}

type hpfItemRef struct {
	IDRef string `xml:"idref,attr"`
}

// sectionXML is the minimal <sec> root a section part needs; paragraphs and
// runs are built as writerParagraph/writerRun/writerTextNode, which use the
// same element names as scanner.go's ParagraphElement/Run/TextNode so the
// writer and reader share one wire shape.
type sectionXML struct {
	XMLName xml.Name           `xml:"sec"`
	Xmlns   string             `xml:"xmlns,attr"`
	Paras   []writerParagraph `xml:"p"`
}

type writerParagraph struct {
	XMLName xml.Name    `xml:"p"`
	ID      int         `xml:"id,attr"`
	Runs    []writerRun `xml:"run"`
}

type writerRun struct {
	XMLName    xml.Name         `xml:"run"`
	CharPrIDRef string          `xml:"charPrIDRef,attr,omitempty"`
	Text       *writerTextNode `xml:"t"`
}

type writerTextNode struct {
	Value string `xml:",chardata"`
}

const (
	hwpmlParagraphNS = "http://www.hancom.co.kr/hwpml/2011/paragraph"
	hwpmlPackageNS   = "http://www.hancom.co.kr/schema/2011/hpf"
)
