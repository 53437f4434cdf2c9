package textnorm

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{"１２３４５", "12345"},
		{"ﬁlter", "filter"},
		{"A\u00a0B", "A B"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsAllFold(t *testing.T) {
	words := []string{"delivery", "address"}

	tests := []struct {
		in   string
		want bool
	}{
		{"Delivery address", true},
		{"ADDRESS FOR DELIVERY", true},
		{"Delivery", false},
		{"Invoice address", false},
	}

	for _, tt := range tests {
		if got := ContainsAllFold(tt.in, words); got != tt.want {
			t.Errorf("ContainsAllFold(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if ContainsAllFold("anything", nil) {
		t.Error("empty word list should never match")
	}
}

func TestTrimPrefixFold(t *testing.T) {
	tests := []struct {
		in, prefix string
		want       string
		ok         bool
	}{
		{"Company: ACME Corp", "Company", ": ACME Corp", true},
		{"  email foo@bar.com", "Email", "foo@bar.com", true},
		{"Phone", "Phone", "", true},
		{"Pho", "Phone", "Pho", false},
		{"Customer", "Company", "Customer", false},
	}

	for _, tt := range tests {
		got, ok := TrimPrefixFold(tt.in, tt.prefix)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TrimPrefixFold(%q, %q) = (%q, %v), want (%q, %v)", tt.in, tt.prefix, got, ok, tt.want, tt.ok)
		}
	}

	if !HasPrefixFold("ctdi id 77", "CTDI ID") {
		t.Error("HasPrefixFold should ignore case")
	}
}
