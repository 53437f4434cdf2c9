// Package extract recovers order records from positioned page tokens.
//
// Nothing in the input is tagged; every field is found from layout and
// small text-shape heuristics:
//
//   - [ClassifyLine] turns one reconstructed line into a [model.LineItem]
//     by locating the quantity/discount-code/discount pivot
//   - [ExtractDeliveryAddress] reads the five rows under the delivery
//     anchor in the left column
//   - [ExtractCustomerInfo] applies a table of label rules to the rows of
//     the upper-right quadrant
//   - [ExtractOrderInfo] runs one label regular expression per field over
//     the page's flattened text
//
// The [Assembler] runs all of them over a [PageSource]:
//
//	assembler := extract.NewAssembler()
//	order, err := assembler.Extract(doc)
//	if errors.Is(err, extract.ErrInvalidInput) {
//	    // the source could not be read
//	}
//
// Only an unreadable source is an error. A line that is not an item, a
// page without an address anchor or a label that never appears simply
// leaves the corresponding value empty.
package extract
