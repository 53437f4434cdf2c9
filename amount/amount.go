package amount

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cursor is a read position over a run of token texts
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor creates a cursor positioned at the first token
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Pos returns the index of the next unread token
func (c *Cursor) Pos() int {
	return c.pos
}

// Done reports whether every token has been consumed
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// peek returns the current token, trimmed, and whether one exists
func (c *Cursor) peek() (string, bool) {
	if c.Done() {
		return "", false
	}
	return strings.TrimSpace(c.tokens[c.pos]), true
}

// ReadCurrency consumes one signed amount. The rules are applied in order:
//
//   - a lone "(" token, or a token starting with "($" or "$(", marks the
//     amount negative
//   - a lone "$" token is skipped
//   - a "$" glued to the digits is stripped and "," separators are removed
//   - a lone ")" after the number is consumed
//
// A "(" glued to the digits without a "$" is not a sign marker, so
// "(120.00)" does not parse.
//
// The cursor always moves past the tokens it inspected, even when the
// numeric text does not parse.
func (c *Cursor) ReadCurrency() decimal.NullDecimal {
	tok, ok := c.next()
	if !ok {
		return decimal.NullDecimal{}
	}

	negative := false
	switch {
	case tok == "(":
		negative = true
		tok, ok = c.next()
	case strings.HasPrefix(tok, "($"), strings.HasPrefix(tok, "$("):
		negative = true
		tok = tok[2:]
		if tok == "" {
			tok, ok = c.next()
		}
	}

	if ok && tok == "$" {
		tok, ok = c.next()
	}
	if !ok {
		return decimal.NullDecimal{}
	}

	if strings.HasSuffix(tok, ")") {
		tok = strings.TrimSuffix(tok, ")")
	} else if next, ok := c.peek(); ok && next == ")" {
		c.pos++
	}

	value, ok := parseNumber(tok)
	if !ok {
		return decimal.NullDecimal{}
	}
	if negative {
		value = value.Neg()
	}
	return decimal.NewNullDecimal(value)
}

// next consumes and returns the current token
func (c *Cursor) next() (string, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// parseNumber strips currency decoration from s and parses what remains
func parseNumber(s string) (decimal.Decimal, bool) {
	if strings.HasPrefix(s, "-$") {
		s = "-" + s[2:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParsePercent parses "10%" or "12.5" as a decimal percentage.
// Anything that does not parse yields zero.
func ParsePercent(s string) decimal.Decimal {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	s = strings.TrimSuffix(s, ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity parses an integer quantity, yielding zero on failure
func ParseQuantity(s string) int32 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
