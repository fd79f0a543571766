package hwpv5

import (
	"io"

	"github.com/gohwp/hwpdoc/internal/herror"
	"github.com/gohwp/hwpdoc/internal/model"
)

// ReadDocument reads a complete HWP v5 document into the container-agnostic
// model, implementing the read half of spec.md §2's control flow:
// CompoundReader -> distribution/compression handling -> RecordStream ->
// DocInfoCodec/BodyTextCodec -> DocumentModel.
func ReadDocument(ra io.ReaderAt) (*model.Document, error) {
	r, err := OpenReader(ra)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	docInfoBytes, err := r.DocInfoBytes()
	if err != nil {
		return nil, herror.Wrap(herror.KindIOError, "read DocInfo stream", err)
	}
	docInfo, err := DecodeDocInfo(docInfoBytes)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		Header: model.Header{
			Signature: r.Header.Signature,
			Version: model.Version{
				Major: r.Header.Version.Major,
				Minor: r.Header.Version.Minor,
				Micro: r.Header.Version.Patch,
				Build: r.Header.Version.Rev,
			},
			Flags: model.HeaderFlags{
				Compressed: r.Header.Properties.Compressed(),
				Password:   r.Header.Properties.Encrypted(),
				Distribute: r.IsDistributionDoc(),
			},
			RawProperties:  r.Header.Properties.Raw,
			RawSecondFlags: r.Header.SecondFlags,
			Raw:            r.HeaderRaw,
		},
		DocInfo: docInfo,
	}

	sectionCount := docInfo.SectionCount
	if sectionCount == 0 {
		return nil, herror.New(herror.KindInvalidFormat, "document declares zero sections")
	}

	for i := 0; i < sectionCount; i++ {
		sectionReader, err := r.OpenSection(i)
		if err != nil {
			return nil, herror.Wrapf(herror.KindParseError, err, "open section %d", i)
		}
		raw, err := io.ReadAll(sectionReader)
		sectionReader.Close()
		if err != nil {
			return nil, herror.Wrapf(herror.KindIOError, err, "read section %d", i)
		}
		sec, err := DecodeSection(raw)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if raw, ok := r.StreamBytes("PrvText"); ok {
		doc.PreviewText = decodePreviewText(raw)
		doc.HasPreview = true
	}
	if raw, ok := r.StreamBytes("PrvImage"); ok {
		doc.PreviewImage = decodePreviewImage(raw)
	}
	if raw, ok := r.StreamBytes("\x05HwpSummaryInformation"); ok {
		doc.SummaryInfo = DecodeSummaryInfo(raw)
	}

	return doc, nil
}
