// Package pdfsource turns PDF files into token pages.
//
// Glyphs reported by the PDF content stream are merged into whitespace
// separated words. Each word becomes a model.Token whose bottom edge is the
// glyph baseline and whose top edge is the baseline plus the font size, so
// the result uses the same coordinate system as the PDF itself (Y grows
// upward).
//
// Basic usage:
//
//	doc, err := pdfsource.Open("order.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	order, err := extract.NewAssembler().Extract(doc)
package pdfsource
