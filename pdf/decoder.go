// Package pdf provides a PDF implementation of policyprism.Decoder
// built on github.com/ledongthuc/pdf. The underlying reader panics on
// malformed input, so every entry point recovers and converts panics
// into decode errors.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/policyprism"
	"github.com/ledongthuc/pdf"
)

// Ensure Decoder implements policyprism.Decoder at compile time.
var _ policyprism.Decoder = (*Decoder)(nil)

// Decoder parses PDF payloads into documents. The zero value is ready to use.
type Decoder struct{}

// NewDecoder creates a new PDF Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses the payload as a PDF document.
func (d *Decoder) Decode(data []byte) (doc policyprism.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = policyprism.Errorf(policyprism.EDECODE, "cannot decode document: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, policyprism.Errorf(policyprism.EDECODE, "cannot decode document: %v", err)
	}

	return &document{reader: reader}, nil
}

// Ensure document implements policyprism.Document at compile time.
var _ policyprism.Document = (*document)(nil)

// document wraps a parsed PDF and exposes page text fragments.
type document struct {
	reader *pdf.Reader
}

// PageCount returns the number of pages in the document.
func (d *document) PageCount() int {
	return d.reader.NumPage()
}

// PageFragments returns the text fragments of the page at pageNumber
// (1-based). Fragment order follows the PDF content stream.
func (d *document) PageFragments(pageNumber int) (fragments []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("extract page %d: %v", pageNumber, r)
		}
	}()

	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range", pageNumber)
	}

	page := d.reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d has no content", pageNumber)
	}

	content := page.Content()
	fragments = make([]string, 0, len(content.Text))
	for _, t := range content.Text {
		fragments = append(fragments, t.S)
	}
	return fragments, nil
}

// Metadata returns the document information dictionary as a flat string
// map. Non-string values are skipped.
func (d *document) Metadata() (metadata map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			metadata = nil
			err = fmt.Errorf("extract metadata: %v", r)
		}
	}()

	metadata = map[string]string{}

	info := d.reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return metadata, nil
	}

	for _, key := range info.Keys() {
		value := info.Key(key)
		if value.Kind() != pdf.String {
			continue
		}
		metadata[key] = value.Text()
	}

	return metadata, nil
}
