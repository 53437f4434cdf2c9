package model

import "strings"

// Page represents a single page of tokens supplied by a token source
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in source units
	Height float64 // Page height in source units
	Tokens []Token // Positioned tokens in the source's natural order

	// RawText is the source's unpositioned fallback text. It is only
	// consulted when Tokens is empty.
	RawText string
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Tokens: make([]Token, 0),
	}
}

// AddToken appends a token to the page
func (p *Page) AddToken(tok Token) {
	p.Tokens = append(p.Tokens, tok)
}

// Text joins all token texts with single spaces in source order
func (p *Page) Text() string {
	parts := make([]string, 0, len(p.Tokens))
	for _, tok := range p.Tokens {
		if s := strings.TrimSpace(tok.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// TokensInRegion returns the tokens whose left edge and top edge fall inside
// the given bounds (inclusive).
func (p *Page) TokensInRegion(minLeft, maxLeft, minTop, maxTop float64) []Token {
	var tokens []Token
	for _, tok := range p.Tokens {
		if tok.Left >= minLeft && tok.Left <= maxLeft && tok.Top >= minTop && tok.Top <= maxTop {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
