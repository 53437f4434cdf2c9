package extract

import "github.com/tsawler/orderlayout/model"

// PageSource provides random, repeatable access to the pages of one
// document. *model.Document implements it.
type PageSource interface {
	// PageCount returns the number of pages
	PageCount() int

	// Page returns the page at the 0-based index i
	Page(i int) (*model.Page, error)
}
