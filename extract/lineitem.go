package extract

import (
	"regexp"
	"strings"

	"github.com/tsawler/orderlayout/amount"
	"github.com/tsawler/orderlayout/layout"
	"github.com/tsawler/orderlayout/model"
)

// minLineItemTokens is the fewest tokens an item line can have: part
// number, one description word, the three pivot tokens and three amounts.
const minLineItemTokens = 8

var (
	partNumberShape   = regexp.MustCompile(`^[0-9]{5,}$`)
	integerShape      = regexp.MustCompile(`^[0-9]+$`)
	alphanumericShape = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	percentShape      = regexp.MustCompile(`^[0-9]+(\.[0-9]*)?%?$`)
)

// ClassifyLine returns the line item on a reconstructed line, if any
func ClassifyLine(line *layout.Line) (model.LineItem, bool) {
	if line == nil {
		return model.LineItem{}, false
	}
	return ClassifyWords(line.Words())
}

// ClassifyWords recognises a line item in a row of token texts laid out as
//
//	<part number> <description...> <qty> <discount code> <discount %> <retail> <net> <net total>
//
// The boundary between the free-text description and the structured tail
// is the earliest integer / alphanumeric / percent triple after the part
// number. Header, footer and total rows fail either the part number shape
// or the pivot search.
func ClassifyWords(words []string) (model.LineItem, bool) {
	if len(words) < minLineItemTokens {
		return model.LineItem{}, false
	}

	cleaned := make([]string, len(words))
	for i, w := range words {
		cleaned[i] = strings.TrimSpace(w)
	}

	if !partNumberShape.MatchString(cleaned[0]) {
		return model.LineItem{}, false
	}

	pivot := findPivot(cleaned)
	if pivot < 0 {
		return model.LineItem{}, false
	}

	description := strings.TrimSpace(strings.Join(cleaned[1:pivot], " "))
	if description == "" {
		return model.LineItem{}, false
	}

	item := model.LineItem{
		PartNumber:   cleaned[0],
		Description:  description,
		Quantity:     amount.ParseQuantity(cleaned[pivot]),
		DiscountCode: cleaned[pivot+1],
		DiscountPct:  amount.ParsePercent(cleaned[pivot+2]),
	}

	prices := amount.NewCursor(cleaned[pivot+3:])
	item.RetailPerUnit = prices.ReadCurrency()
	item.NetPerUnit = prices.ReadCurrency()
	item.NetSummary = prices.ReadCurrency()

	return item, true
}

// findPivot returns the index of the earliest quantity token that starts a
// pivot triple, or -1
func findPivot(words []string) int {
	for j := 1; j+2 < len(words); j++ {
		if integerShape.MatchString(words[j]) &&
			alphanumericShape.MatchString(words[j+1]) &&
			percentShape.MatchString(words[j+2]) {
			return j
		}
	}
	return -1
}
