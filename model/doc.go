// Package model provides the data types shared by the token sources, the
// layout reconstruction and the field extractors.
//
// # Pages and Tokens
//
// A [Document] is an ordered list of [Page] values. Each page carries its
// dimensions and the positioned [Token] values produced by a token source
// (PDF, hOCR or OCR):
//
//	doc := model.NewDocument()
//	page := model.NewPage(612, 792)
//	page.AddToken(model.NewToken("100045", 36, 700, 9))
//	doc.AddPage(page)
//
// The vertical axis follows the PDF convention: larger Y values are higher
// on the page, so a token's Top is never below its Bottom and "first line"
// means the line with the greatest vertical midpoint.
//
// # Order Records
//
// Extraction produces an [OrderDocument], the aggregate root that owns the
// optional [DeliveryAddress], [OrderInfo] and [CustomerInfo] sections and the
// ordered list of [LineItem] values. Absent text fields are empty strings,
// absent sections are nil, and absent amounts are invalid
// decimal.NullDecimal values.
package model
