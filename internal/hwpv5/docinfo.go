package hwpv5

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/model"
)

// DocInfo record tags, relative to recTagBegin (0x10) the same way the
// BodyText tags in record.go are.
const (
	docInfoTagDocumentProperties = recTagBegin + 0
	docInfoTagIDMappings         = recTagBegin + 1
	docInfoTagBinData            = recTagBegin + 2
	docInfoTagFaceName           = recTagBegin + 3
	docInfoTagBorderFill         = recTagBegin + 4
	docInfoTagCharShape          = recTagBegin + 5
	docInfoTagTabDef             = recTagBegin + 6
	docInfoTagNumbering          = recTagBegin + 7
	docInfoTagBullet             = recTagBegin + 8
	docInfoTagParaShape          = recTagBegin + 9
	docInfoTagStyle              = recTagBegin + 10
)

// charShapeMinLen is the prefix every CharShape record this decoder reads
// must have to extract bold/italic/size: 7 face ids (14B) + 4 7-byte arrays
// (28B) + a 4-byte base size + a 4-byte property word.
const charShapeMinLen = 14 + 28 + 4 + 4

// DecodeDocInfo decodes the (already inflated, already past any
// distribution prologue) DocInfo record stream into the arenas the rest of
// the core needs, preserving every record it does not itself interpret in
// DocInfo.Unknown so re-encoding a loaded document does not drop tags.
func DecodeDocInfo(data []byte) (model.DocInfo, error) {
	var info model.DocInfo

	records, err := DecodeRecords(data)
	if err != nil {
		return info, herror.Wrap(herror.KindParseError, "decode DocInfo records", err)
	}

	for _, r := range records {
		switch r.Tag {
		case docInfoTagDocumentProperties:
			if len(r.Payload) >= 2 {
				info.SectionCount = int(binary.LittleEndian.Uint16(r.Payload[0:2]))
			}
		case docInfoTagFaceName:
			info.Faces = append(info.Faces, decodeFaceName(r.Payload))
		case docInfoTagBorderFill:
			info.BorderFills = append(info.BorderFills, model.BorderFill{Raw: r.Payload})
		case docInfoTagCharShape:
			info.CharShapes = append(info.CharShapes, decodeCharShape(r.Payload))
		case docInfoTagTabDef:
			info.TabDefs = append(info.TabDefs, model.TabDef{Raw: r.Payload})
		case docInfoTagNumbering:
			info.Numberings = append(info.Numberings, model.Numbering{Raw: r.Payload})
		case docInfoTagBullet:
			info.Bullets = append(info.Bullets, model.Bullet{Raw: r.Payload})
		case docInfoTagParaShape:
			info.ParaShapes = append(info.ParaShapes, decodeParaShape(r.Payload))
		case docInfoTagStyle:
			info.Styles = append(info.Styles, decodeStyle(r.Payload))
		case docInfoTagIDMappings, docInfoTagBinData:
			// Counts/bin-data table: not needed to resolve ids into the
			// arenas above (every arena is self-describing by record
			// order), kept opaque so it survives re-encode untouched.
			info.Unknown = append(info.Unknown, model.OpaqueRecord{Tag: r.Tag, Level: r.Level, Payload: r.Payload})
		default:
			info.Unknown = append(info.Unknown, model.OpaqueRecord{Tag: r.Tag, Level: r.Level, Payload: r.Payload})
		}
	}

	if info.SectionCount == 0 {
		info.SectionCount = 1
	}

	return info, nil
}

func decodeFaceName(payload []byte) model.Face {
	if len(payload) < 3 {
		return model.Face{}
	}
	nameLen := int(binary.LittleEndian.Uint16(payload[1:3]))
	start := 3
	end := start + nameLen*2
	if end > len(payload) {
		return model.Face{}
	}
	units := make([]uint16, nameLen)
	for i := 0; i < nameLen; i++ {
		units[i] = binary.LittleEndian.Uint16(payload[start+i*2:])
	}
	return model.Face{Name: string(utf16.Decode(units))}
}

func decodeCharShape(payload []byte) model.CharShape {
	cs := model.CharShape{Raw: payload}
	if len(payload) < charShapeMinLen {
		return cs
	}
	baseSize := binary.LittleEndian.Uint32(payload[42:46])
	property := binary.LittleEndian.Uint32(payload[46:50])

	cs.FontSizeHalfPoints = int(baseSize / 50)
	cs.Italic = property&0x1 != 0
	cs.Bold = property&0x2 != 0
	cs.Underline = (property>>2)&0x3 != 0
	return cs
}

func decodeParaShape(payload []byte) model.ParaShape {
	ps := model.ParaShape{Raw: payload}
	if len(payload) >= 4 {
		// Property1's low bits carry the alignment enum in the format's
		// paragraph-shape record.
		property1 := binary.LittleEndian.Uint32(payload[0:4])
		ps.AlignmentID = uint8((property1 >> 2) & 0x7)
	}
	return ps
}

func decodeStyle(payload []byte) model.Style {
	st := model.Style{Raw: payload}
	if len(payload) < 3 {
		return st
	}
	nameLen := int(binary.LittleEndian.Uint16(payload[1:3]))
	start := 3
	end := start + nameLen*2
	if end > len(payload) {
		return st
	}
	units := make([]uint16, nameLen)
	for i := 0; i < nameLen; i++ {
		units[i] = binary.LittleEndian.Uint16(payload[start+i*2:])
	}
	st.Name = string(utf16.Decode(units))
	return st
}

// EncodeDocInfo emits one DocumentProperties record followed by every arena
// entry info carries, in arena order, then every record the caller
// preserved from a loaded document (DocInfo.Unknown). Unknown records are
// appended after the known arenas rather than reinterleaved at their
// original position, which a conformant reader tolerates since it indexes
// each arena independently by record order within its own tag, not by
// interleaving. A writer-built document's DocInfo is expected to already
// carry one CharShape/ParaShape per distinct style its paragraphs use.
func EncodeDocInfo(info model.DocInfo) []byte {
	var records []Record

	propPayload := make([]byte, 24)
	binary.LittleEndian.PutUint16(propPayload[0:2], uint16(info.SectionCount))
	records = append(records, Record{Tag: docInfoTagDocumentProperties, Level: 0, Payload: propPayload})

	for _, f := range info.Faces {
		records = append(records, Record{Tag: docInfoTagFaceName, Level: 0, Payload: encodeFaceName(f)})
	}
	for _, bf := range info.BorderFills {
		records = append(records, Record{Tag: docInfoTagBorderFill, Level: 0, Payload: bf.Raw})
	}
	for _, cs := range info.CharShapes {
		records = append(records, Record{Tag: docInfoTagCharShape, Level: 0, Payload: encodeCharShape(cs)})
	}
	for _, td := range info.TabDefs {
		records = append(records, Record{Tag: docInfoTagTabDef, Level: 0, Payload: td.Raw})
	}
	for _, n := range info.Numberings {
		records = append(records, Record{Tag: docInfoTagNumbering, Level: 0, Payload: n.Raw})
	}
	for _, b := range info.Bullets {
		records = append(records, Record{Tag: docInfoTagBullet, Level: 0, Payload: b.Raw})
	}
	for _, ps := range info.ParaShapes {
		records = append(records, Record{Tag: docInfoTagParaShape, Level: 0, Payload: encodeParaShape(ps)})
	}
	for _, st := range info.Styles {
		records = append(records, Record{Tag: docInfoTagStyle, Level: 0, Payload: encodeStyle(st)})
	}
	for _, u := range info.Unknown {
		records = append(records, Record{Tag: u.Tag, Level: u.Level, Payload: u.Payload})
	}

	return EncodeRecords(records)
}

func encodeFaceName(f model.Face) []byte {
	units := utf16.Encode([]rune(f.Name))
	payload := make([]byte, 3+len(units)*2)
	payload[0] = 0 // properties: no substitute/type-info font name follows
	binary.LittleEndian.PutUint16(payload[1:3], uint16(len(units)))
	for i, u := range units {
		binary.LittleEndian.PutUint16(payload[3+i*2:], u)
	}
	return payload
}

func encodeCharShape(cs model.CharShape) []byte {
	payload := make([]byte, 64)
	// ids[7], ratio[7]=100, spacing[7]=0, relSize[7]=100, offset[7]=0
	for i := 0; i < 7; i++ {
		payload[14+i] = 100          // RatioCharWidth
		payload[14+7+7+i] = 100      // RelSizeChar
	}
	binary.LittleEndian.PutUint32(payload[42:46], uint32(cs.FontSizeHalfPoints)*50)

	var property uint32
	if cs.Italic {
		property |= 0x1
	}
	if cs.Bold {
		property |= 0x2
	}
	if cs.Underline {
		property |= 0x1 << 2
	}
	binary.LittleEndian.PutUint32(payload[46:50], property)
	// CharColor/UnderlineColor/ShadeColor left at zero (black text, no shading).
	return payload
}

func encodeParaShape(ps model.ParaShape) []byte {
	payload := make([]byte, 54)
	property1 := uint32(ps.AlignmentID&0x7) << 2
	binary.LittleEndian.PutUint32(payload[0:4], property1)
	return payload
}

func encodeStyle(st model.Style) []byte {
	units := utf16.Encode([]rune(st.Name))
	payload := make([]byte, 3+len(units)*2)
	binary.LittleEndian.PutUint16(payload[1:3], uint16(len(units)))
	for i, u := range units {
		binary.LittleEndian.PutUint16(payload[3+i*2:], u)
	}
	return payload
}
