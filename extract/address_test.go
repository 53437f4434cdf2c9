package extract

import (
	"testing"

	"github.com/tsawler/orderlayout/model"
)

func addressPage() *model.Page {
	page := newLetterPage()
	addRow(page, 36, 700, "Delivery", "address")
	addRow(page, 36, 686, "John", "Smith")
	addRow(page, 400, 686, "Invoice")
	addRow(page, 36, 672, "ACME", "Corp")
	addRow(page, 36, 658, "123", "Main", "St")
	addRow(page, 36, 644, "49311", "Byron", "Center,", "MI", "49315")
	addRow(page, 36, 630, "USA")
	addRow(page, 36, 616, "Notes")
	return page
}

func TestExtractDeliveryAddress(t *testing.T) {
	addr := ExtractDeliveryAddress(addressPage(), DefaultConfig())
	if addr == nil {
		t.Fatal("expected an address")
	}

	want := model.DeliveryAddress{
		RecipientName: "John Smith",
		CompanyName:   "ACME Corp",
		Street:        "123 Main St",
		City:          "Byron Center",
		State:         "MI",
		ZipCode:       "49311",
		Country:       "USA",
	}
	if *addr != want {
		t.Errorf("address = %+v, want %+v", *addr, want)
	}
}

func TestExtractDeliveryAddress_NoAnchor(t *testing.T) {
	page := newLetterPage()
	addRow(page, 36, 700, "Billing", "address")
	addRow(page, 36, 686, "John", "Smith")

	if addr := ExtractDeliveryAddress(page, DefaultConfig()); addr != nil {
		t.Errorf("expected nil, got %+v", addr)
	}
}

func TestExtractDeliveryAddress_AnchorOutsideColumn(t *testing.T) {
	page := newLetterPage()
	addRow(page, 400, 700, "Delivery", "address")
	addRow(page, 400, 686, "John", "Smith")

	if addr := ExtractDeliveryAddress(page, DefaultConfig()); addr != nil {
		t.Errorf("expected nil, got %+v", addr)
	}
}

func TestExtractDeliveryAddress_NoRecipient(t *testing.T) {
	page := newLetterPage()
	addRow(page, 36, 700, "DELIVERY", "ADDRESS:")

	if addr := ExtractDeliveryAddress(page, DefaultConfig()); addr != nil {
		t.Errorf("expected nil, got %+v", addr)
	}
}

func TestExtractDeliveryAddress_PartialBlock(t *testing.T) {
	page := newLetterPage()
	addRow(page, 36, 700, "Delivery", "address")
	addRow(page, 36, 686, "Jane", "Roe")
	addRow(page, 36, 672, "   ")
	addRow(page, 36, 658, "Roe", "Labs")

	addr := ExtractDeliveryAddress(page, DefaultConfig())
	if addr == nil {
		t.Fatal("expected an address")
	}
	if addr.RecipientName != "Jane Roe" || addr.CompanyName != "Roe Labs" {
		t.Errorf("unexpected address: %+v", addr)
	}
	if addr.Street != "" || addr.City != "" || addr.Country != "" {
		t.Errorf("missing rows should leave fields empty: %+v", addr)
	}
}

func TestExtractDeliveryAddress_CustomColumn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftColumnFraction = 0.05 // 30.6 units: excludes everything at 36

	if addr := ExtractDeliveryAddress(addressPage(), cfg); addr != nil {
		t.Errorf("expected nil, got %+v", addr)
	}

	if addr := ExtractDeliveryAddress(nil, DefaultConfig()); addr != nil {
		t.Errorf("nil page should give nil address")
	}
}

func TestParseCityLine(t *testing.T) {
	tests := []struct {
		line             string
		city, state, zip string
	}{
		{"49311 Byron Center, MI 49315", "Byron Center", "MI", "49311"},
		{"Grand Rapids, MI 49503", "Grand Rapids", "MI", "49503"},
		{"Springfield", "Springfield", "", ""},
		{"49311", "", "", "49311"},
		{"49311 Byron Center", "Byron Center", "", "49311"},
		{"Austin, TX", "Austin", "TX", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var addr model.DeliveryAddress
			parseCityLine(&addr, tt.line)

			if addr.City != tt.city || addr.State != tt.state || addr.ZipCode != tt.zip {
				t.Errorf("got city=%q state=%q zip=%q, want city=%q state=%q zip=%q",
					addr.City, addr.State, addr.ZipCode, tt.city, tt.state, tt.zip)
			}
		})
	}
}
