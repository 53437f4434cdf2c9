package model

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

// ============================================================================
// Token Tests
// ============================================================================

func TestTokenMidY(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		expected float64
	}{
		{"pdf orientation", Token{Top: 710, Bottom: 700}, 705},
		{"flat", Token{Top: 5, Bottom: 5}, 5},
		{"inverted box", Token{Top: 10, Bottom: 20}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.MidY(); math.Abs(got-tt.expected) > 0.0001 {
				t.Errorf("MidY() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewToken(t *testing.T) {
	tok := NewToken("ABCD", 100, 700, 10)

	if tok.Left != 100 || tok.Bottom != 700 || tok.Top != 710 {
		t.Errorf("unexpected box: %+v", tok)
	}
	if tok.Right != 120 {
		t.Errorf("Right = %v, want 120", tok.Right)
	}
	if tok.Height() != 10 {
		t.Errorf("Height() = %v, want 10", tok.Height())
	}
}

func TestNewImageToken(t *testing.T) {
	box := image.Rect(100, 200, 300, 240)
	tok := NewImageToken("Order", box, 1000, 0.5)

	if tok.Left != 50 || tok.Right != 150 {
		t.Errorf("x = [%v, %v], want [50, 150]", tok.Left, tok.Right)
	}
	// Row 200 from the top of a 1000 pixel image is 800 from the bottom
	if tok.Top != 400 || tok.Bottom != 380 {
		t.Errorf("y = [%v, %v], want top 400 bottom 380", tok.Top, tok.Bottom)
	}
	if tok.Text != "Order" {
		t.Errorf("Text = %q", tok.Text)
	}
}

func TestTokenBBox(t *testing.T) {
	tok := Token{Text: "x", Left: 10, Right: 30, Top: 50, Bottom: 40}
	b := tok.BBox()

	if b.Left() != 10 || b.Right() != 30 || b.Bottom() != 40 || b.Top() != 50 {
		t.Errorf("unexpected bbox: %+v", b)
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestBBoxUnion(t *testing.T) {
	b1 := NewBBox(0, 0, 10, 10)
	b2 := NewBBox(5, 5, 10, 10)
	u := b1.Union(b2)

	if u.X != 0 || u.Y != 0 || u.Width != 15 || u.Height != 15 {
		t.Errorf("Union() = %+v", u)
	}

	var empty BBox
	if got := empty.Union(b2); got != b2 {
		t.Errorf("zero box Union() = %+v, want %+v", got, b2)
	}
}

// ============================================================================
// Page and Document Tests
// ============================================================================

func TestPageText(t *testing.T) {
	page := NewPage(612, 792)
	page.AddToken(Token{Text: "Order"})
	page.AddToken(Token{Text: "  "})
	page.AddToken(Token{Text: "Number:"})
	page.AddToken(Token{Text: "42"})

	if got := page.Text(); got != "Order Number: 42" {
		t.Errorf("Text() = %q", got)
	}
}

func TestPageTokensInRegion(t *testing.T) {
	page := NewPage(600, 800)
	page.AddToken(Token{Text: "in", Left: 400, Top: 700})
	page.AddToken(Token{Text: "left", Left: 100, Top: 700})
	page.AddToken(Token{Text: "low", Left: 400, Top: 100})

	got := page.TokensInRegion(300, 600, 400, 800)
	if len(got) != 1 || got[0].Text != "in" {
		t.Errorf("TokensInRegion() = %+v", got)
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(612, 792))
	doc.AddPage(NewPage(612, 792))

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}

	p, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}
	if p.Number != 2 {
		t.Errorf("page number = %d, want 2", p.Number)
	}

	if _, err := doc.Page(2); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("Page(2) error = %v, want ErrPageOutOfRange", err)
	}
	if _, err := doc.Page(-1); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("Page(-1) error = %v, want ErrPageOutOfRange", err)
	}
}

func TestDocumentSelect(t *testing.T) {
	doc := NewDocument()
	for i := 0; i < 3; i++ {
		doc.AddPage(NewPage(612, 792))
	}

	sel := doc.Select(3, 1, 9)
	if sel.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", sel.PageCount())
	}
	if sel.Pages[0].Number != 3 || sel.Pages[1].Number != 1 {
		t.Errorf("unexpected order: %d, %d", sel.Pages[0].Number, sel.Pages[1].Number)
	}

	if doc.Select() != doc {
		t.Error("Select() without numbers should return the same document")
	}
}

// ============================================================================
// Order Tests
// ============================================================================

func TestOrderDocumentNetTotal(t *testing.T) {
	order := NewOrderDocument()
	order.AddItem(LineItem{NetSummary: decimal.NewNullDecimal(decimal.RequireFromString("44.00"))})
	order.AddItem(LineItem{})
	order.AddItem(LineItem{NetSummary: decimal.NewNullDecimal(decimal.RequireFromString("-4.50"))})

	if order.ItemCount() != 3 {
		t.Errorf("ItemCount() = %d, want 3", order.ItemCount())
	}
	want := decimal.RequireFromString("39.50")
	if got := order.NetTotal(); !got.Equal(want) {
		t.Errorf("NetTotal() = %s, want %s", got, want)
	}
}

func TestIsZero(t *testing.T) {
	if !(CustomerInfo{}).IsZero() {
		t.Error("empty CustomerInfo should be zero")
	}
	if (CustomerInfo{Email: "a@b.c"}).IsZero() {
		t.Error("CustomerInfo with email should not be zero")
	}
	if !(OrderInfo{}).IsZero() {
		t.Error("empty OrderInfo should be zero")
	}
	if (OrderInfo{OrderNumber: "1"}).IsZero() {
		t.Error("OrderInfo with number should not be zero")
	}
}
