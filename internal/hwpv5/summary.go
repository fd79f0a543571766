package hwpv5

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/model"
)

// Property IDs from the Summary Information property set (MS-OLEPS /
// MS-OSHARED PIDSI_* constants) that the core surfaces on model.SummaryInfo.
const (
	pidsiTitle    = 0x02
	pidsiSubject  = 0x03
	pidsiAuthor   = 0x04
	pidsiKeywords = 0x05
)

const (
	vtLPSTR  = 30
	vtLPWSTR = 31
)

// DecodeSummaryInfo decodes the \x05HwpSummaryInformation OLE property-set
// stream into the handful of fields model.SummaryInfo exposes. It never
// fails loudly: per spec.md §7, optional streams swallow their errors and
// yield an absent value, so a malformed or unrecognized property set simply
// returns a zero-value SummaryInfo rather than aborting the whole decode.
func DecodeSummaryInfo(data []byte) *model.SummaryInfo {
	props, err := decodePropertySet(data)
	if err != nil {
		return &model.SummaryInfo{}
	}

	info := &model.SummaryInfo{}
	for id, v := range props {
		switch id {
		case pidsiTitle:
			info.Title = v
		case pidsiSubject:
			info.Subject = v
		case pidsiAuthor:
			info.Author = v
		case pidsiKeywords:
			info.Keywords = v
		}
	}
	return info
}

// decodePropertySet parses the MS-OLEPS PropertySetStream header and its
// first PropertySet section into a map of property id to string value.
// Only the string-typed variants (VT_LPSTR, VT_LPWSTR) are decoded, the
// only types the Summary Information section actually uses for the fields
// this core cares about.
func decodePropertySet(data []byte) (map[uint32]string, error) {
	// Header: ByteOrder(2) Version(2) SystemIdentifier(4) CLSID(16)
	// NumPropertySets(4), then FMTID0(16) Offset0(4).
	const headerLen = 2 + 2 + 4 + 16 + 4
	if len(data) < headerLen+16+4 {
		return nil, herror.New(herror.KindParseError, "summary info stream too short")
	}
	offset0 := binary.LittleEndian.Uint32(data[headerLen+16 : headerLen+20])
	if int(offset0) >= len(data) {
		return nil, herror.New(herror.KindParseError, "summary info property set offset out of range")
	}

	set := data[offset0:]
	// PropertySet: Size(4) NumProperties(4), then NumProperties *
	// (PropertyID(4) Offset(4)) pairs, offsets relative to offset0.
	if len(set) < 8 {
		return nil, herror.New(herror.KindParseError, "summary info property set header too short")
	}
	numProps := binary.LittleEndian.Uint32(set[4:8])

	result := make(map[uint32]string, numProps)
	pairsStart := 8
	for i := uint32(0); i < numProps; i++ {
		pairOff := pairsStart + int(i)*8
		if pairOff+8 > len(set) {
			break
		}
		propID := binary.LittleEndian.Uint32(set[pairOff : pairOff+4])
		propOff := binary.LittleEndian.Uint32(set[pairOff+4 : pairOff+8])
		if int(propOff) >= len(set) {
			continue
		}
		if v, ok := decodeStringProperty(set[propOff:]); ok {
			result[propID] = v
		}
	}
	return result, nil
}

func decodeStringProperty(data []byte) (string, bool) {
	if len(data) < 8 {
		return "", false
	}
	vtype := binary.LittleEndian.Uint32(data[0:4])
	length := binary.LittleEndian.Uint32(data[4:8])
	body := data[8:]

	switch vtype {
	case vtLPSTR:
		if uint64(length) > uint64(len(body)) {
			return "", false
		}
		return trimNUL(string(body[:length])), true
	case vtLPWSTR:
		// length counts UTF-16 code units including the terminating NUL.
		byteLen := uint64(length) * 2
		if byteLen > uint64(len(body)) {
			return "", false
		}
		units := make([]uint16, length)
		for i := uint32(0); i < length; i++ {
			units[i] = binary.LittleEndian.Uint16(body[i*2:])
		}
		return trimNUL(string(utf16.Decode(units))), true
	default:
		return "", false
	}
}

func trimNUL(s string) string {
	for i, r := range s {
		if r == 0 {
			return s[:i]
		}
	}
	return s
}
