// Package amount parses short runs of raw tokens into decimal values.
//
// Tokens come straight from a page, so an amount may be split across
// several tokens ("(", "$120.00", ")") or glued into one ("($120.00)").
// A [Cursor] walks the token run and [Cursor.ReadCurrency] consumes exactly
// one amount per call, always advancing past the tokens it inspected:
//
//	c := amount.NewCursor([]string{"$12.50", "(", "$1,200.00", ")"})
//	retail := c.ReadCurrency() // 12.50
//	credit := c.ReadCurrency() // -1200.00
//
// Parse failures are never errors. A currency read that finds nothing
// parsable yields an invalid decimal.NullDecimal, and [ParsePercent] and
// [ParseQuantity] fall back to zero.
package amount
