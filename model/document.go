package model

import (
	"errors"
	"fmt"
)

// ErrPageOutOfRange is returned by Document.Page for an invalid index.
var ErrPageOutOfRange = errors.New("page index out of range")

// Document is a fully materialised, randomly accessible list of pages
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and numbers it
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Page returns the page at the 0-based index i
func (d *Document) Page(i int) (*Page, error) {
	if i < 0 || i >= len(d.Pages) {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, i, len(d.Pages))
	}
	return d.Pages[i], nil
}

// Select returns a document holding only the given 1-indexed pages, in the
// order requested. Unknown page numbers are skipped. Pages keep their
// original numbers.
func (d *Document) Select(numbers ...int) *Document {
	if len(numbers) == 0 {
		return d
	}
	selected := &Document{Pages: make([]*Page, 0, len(numbers))}
	for _, n := range numbers {
		if n < 1 || n > len(d.Pages) {
			continue
		}
		selected.Pages = append(selected.Pages, d.Pages[n-1])
	}
	return selected
}
