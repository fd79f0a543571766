package hwpv5

import (
	"bytes"
	"unicode/utf16"

	"github.com/gohwp/hwpdoc/internal/model"
)

// decodePreviewText decodes the null-terminated UTF-16LE PrvText stream
// (spec.md §6).
func decodePreviewText(data []byte) string {
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		u := uint16(data[i]) | uint16(data[i+1])<<8
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

// decodePreviewImage sniffs PrvImage's magic bytes into the three formats
// spec.md §9 names explicitly; any other magic yields an empty Format hint
// while still returning the raw bytes opaquely, per spec.md §6.
func decodePreviewImage(data []byte) *model.PreviewImage {
	if len(data) == 0 {
		return nil
	}
	return &model.PreviewImage{Format: sniffImageFormat(data), Data: data}
}

func sniffImageFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return "png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case bytes.HasPrefix(data, []byte{'B', 'M'}):
		return "bmp"
	default:
		return ""
	}
}
