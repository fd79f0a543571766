package hwpv5

import (
	"encoding/binary"
	"strconv"

	"github.com/gohwp/hwpdoc/internal/cfb"
	"github.com/gohwp/hwpdoc/internal/model"
)

// EncodeDocument builds the CFB byte image for a writer-constructed
// document, implementing the write half of spec.md §2: DocumentModel ->
// DocInfoCodec/BodyTextCodec -> RecordStream -> Compressor (if the header's
// compressed flag is set) -> CompoundWriter. The library never produces
// distribution documents (spec.md §4.4), so this path only ever emits
// BodyText/Section<N>, never ViewText.
func EncodeDocument(doc *model.Document) ([]byte, error) {
	w := cfb.NewWriter()

	if err := w.AddStream("FileHeader", encodeFileHeader(doc.Header)); err != nil {
		return nil, err
	}

	docInfo := doc.DocInfo
	docInfo.SectionCount = len(doc.Sections)
	docInfoRaw := EncodeDocInfo(docInfo)
	if doc.Header.Flags.Compressed {
		compressed, err := deflate(docInfoRaw)
		if err != nil {
			return nil, err
		}
		docInfoRaw = compressed
	}
	if err := w.AddStream("DocInfo", docInfoRaw); err != nil {
		return nil, err
	}

	for i, sec := range doc.Sections {
		raw := EncodeSection(sec)
		if doc.Header.Flags.Compressed {
			compressed, err := deflate(raw)
			if err != nil {
				return nil, err
			}
			raw = compressed
		}
		name := sectionStreamName(i)
		if err := w.AddStream(name, raw); err != nil {
			return nil, err
		}
	}

	return w.Finalize()
}

func sectionStreamName(index int) string {
	return "BodyText/Section" + strconv.Itoa(index)
}

// encodeFileHeader emits the full 256-byte physical FileHeader stream
// (32-byte signature field, 4-byte version, property words, and a
// 207-byte reserved tail) a conformant HWP reader expects, even though
// spec.md §4.5 describes only the logical 32-byte header (signature,
// version, flags) the core itself interprets.
func encodeFileHeader(h model.Header) []byte {
	buf := make([]byte, 256)
	copy(buf[0:32], []byte(signatureText))

	version := uint32(h.Version.Major)<<24 | uint32(h.Version.Minor)<<16 | uint32(h.Version.Micro)<<8 | uint32(h.Version.Build)
	binary.LittleEndian.PutUint32(buf[32:36], version)

	properties := h.RawProperties
	properties = setFlagBit(properties, 0, h.Flags.Compressed)
	properties = setFlagBit(properties, 1, h.Flags.Password)
	properties = setFlagBit(properties, 2, h.Flags.Distribute)
	binary.LittleEndian.PutUint32(buf[36:40], properties)

	binary.LittleEndian.PutUint32(buf[40:44], h.RawSecondFlags)
	// EncryptVersion (44:48) and KoglLicenseCode (48) stay zero; reserved
	// tail (49:256) stays zero.
	return buf
}

func setFlagBit(word uint32, bit uint, set bool) uint32 {
	if set {
		return word | (1 << bit)
	}
	return word &^ (1 << bit)
}
