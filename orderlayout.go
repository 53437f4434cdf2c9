// Package orderlayout provides a fluent API for extracting purchase order
// fields from positioned page text: line items, the delivery address,
// order metadata and customer details.
//
// Basic usage:
//
//	order, err := orderlayout.Open("order.pdf").Order()
//	if err != nil {
//	    // handle error
//	}
//	for _, item := range order.Items {
//	    fmt.Println(item.PartNumber, item.Quantity, item.NetSummary)
//	}
//
// With options:
//
//	order, err := orderlayout.Open("scan.hocr").
//	    Pages(2, 3).
//	    YTolerance(4).
//	    LeftColumn(0.45).
//	    Order()
//
// PDF files, Tesseract hOCR files and (with the "ocr" build tag) raster
// images are accepted. For other token providers, build a model.Document
// or implement extract.PageSource and use FromSource.
package orderlayout

import (
	"github.com/tsawler/orderlayout/extract"
)

// Open returns an Extractor for the file at filename. Nothing is read
// until a terminal operation such as Order is called.
//
// Example:
//
//	order, err := orderlayout.Open("order.pdf").Order()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over pages that are already available,
// for example a model.Document built by another token provider.
//
// Example:
//
//	doc := model.NewDocument()
//	doc.AddPage(page)
//	order, err := orderlayout.FromSource(doc).Order()
func FromSource(src extract.PageSource) *Extractor {
	return &Extractor{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	order := orderlayout.Must(orderlayout.Open("order.pdf").Order())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
