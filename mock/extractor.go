package mock

import "github.com/fwojciec/xhsimport"

var _ xhsimport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of xhsimport.Extractor.
type Extractor struct {
	ExtractFn func(html string) *xhsimport.Note
}

func (e *Extractor) Extract(html string) *xhsimport.Note {
	return e.ExtractFn(html)
}
