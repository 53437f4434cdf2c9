package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/orderlayout/model"
)

func makeRowToken(txt string, left, top float64) model.Token {
	return model.Token{Text: txt, Left: left, Right: left + 10, Top: top, Bottom: top - 10}
}

func TestGroupRows(t *testing.T) {
	tokens := []model.Token{
		makeRowToken("Smith", 80, 600.2),
		makeRowToken("Delivery", 10, 620),
		makeRowToken("John", 10, 599.9),
		makeRowToken("address", 60, 620.4),
	}

	rows := GroupRows(tokens)

	want := []string{"Delivery address", "John Smith"}
	if got := RowTexts(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
	if rows[0].Top != 620 || rows[1].Top != 600 {
		t.Errorf("unexpected tops: %v, %v", rows[0].Top, rows[1].Top)
	}
}

func TestGroupRows_NoTolerance(t *testing.T) {
	rows := GroupRows([]model.Token{
		makeRowToken("a", 10, 600.4),
		makeRowToken("b", 20, 600.6),
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Text != "b" {
		t.Errorf("higher row first, got %q", rows[0].Text)
	}
}

func TestGroupRows_Empty(t *testing.T) {
	if rows := GroupRows(nil); rows != nil {
		t.Errorf("expected nil, got %v", rows)
	}
}
