package mock

import (
	"github.com/fwojciec/policyprism"
)

var _ policyprism.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of policyprism.Decoder.
type Decoder struct {
	DecodeFn func(data []byte) (policyprism.Document, error)
}

func (d *Decoder) Decode(data []byte) (policyprism.Document, error) {
	return d.DecodeFn(data)
}

var _ policyprism.Document = (*Document)(nil)

// Document is a mock implementation of policyprism.Document.
type Document struct {
	PageCountFn     func() int
	PageFragmentsFn func(pageNumber int) ([]string, error)
	MetadataFn      func() (map[string]string, error)
}

func (d *Document) PageCount() int {
	return d.PageCountFn()
}

func (d *Document) PageFragments(pageNumber int) ([]string, error) {
	return d.PageFragmentsFn(pageNumber)
}

func (d *Document) Metadata() (map[string]string, error) {
	return d.MetadataFn()
}
