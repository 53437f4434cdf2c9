package extract

import (
	"testing"

	"github.com/tsawler/orderlayout/model"
)

func TestExtractOrderInfo(t *testing.T) {
	page := newLetterPage()
	addRow(page, 320, 760, "Order", "Number:", "SO-1001", "Order", "Date:", "2024-03-01")
	addRow(page, 320, 746, "Order", "Class", "-", "STD", "Delivery", "Way:", "UPS")
	addRow(page, 320, 732, "Payment", "Method:", "NET30")
	addRow(page, 320, 718, "Items", "Amount:", "$1,234.50", "Net", "Weight:", "12.5", "kg")

	info := ExtractOrderInfo(page)

	want := model.OrderInfo{
		OrderNumber:   "SO-1001",
		OrderDate:     "2024-03-01",
		OrderClass:    "STD",
		DeliveryWay:   "UPS",
		PaymentMethod: "NET30",
		ItemsAmount:   "$1,234.50",
		NetWeight:     "12.5 kg",
	}
	if *info != want {
		t.Errorf("order info = %+v, want %+v", *info, want)
	}
}

func TestExtractOrderInfo_Labels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.OrderInfo
	}{
		{"upper case no separator", "ORDER NUMBER 777", model.OrderInfo{OrderNumber: "777"}},
		{"order no", "Order No. A-9", model.OrderInfo{OrderNumber: "A-9"}},
		{"spaced colon", "Payment Method : CARD", model.OrderInfo{PaymentMethod: "CARD"}},
		{"weight without unit", "Net Weight: 4.2", model.OrderInfo{NetWeight: "4.2"}},
		{"order notes are not a number", "Order notes: fragile", model.OrderInfo{}},
		{"nothing", "Thank you for your business", model.OrderInfo{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &model.Page{Width: 612, Height: 792, RawText: tt.text}
			if got := ExtractOrderInfo(page); *got != tt.want {
				t.Errorf("ExtractOrderInfo(%q) = %+v, want %+v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestExtractOrderInfo_SourceOrder(t *testing.T) {
	// Tokens are joined in source order, not in layout order
	page := newLetterPage()
	page.AddToken(model.Token{Text: "Order", Left: 300, Top: 100, Bottom: 90})
	page.AddToken(model.Token{Text: "Number:", Left: 340, Top: 100, Bottom: 90})
	page.AddToken(model.Token{Text: "42", Left: 10, Top: 700, Bottom: 690})

	if got := ExtractOrderInfo(page); got.OrderNumber != "42" {
		t.Errorf("OrderNumber = %q, want 42", got.OrderNumber)
	}
}

func TestExtractOrderInfo_Empty(t *testing.T) {
	if info := ExtractOrderInfo(nil); info == nil || !info.IsZero() {
		t.Error("nil page should give an empty, non-nil order info")
	}
}
