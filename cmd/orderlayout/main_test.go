package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeHOCR writes a one page hOCR file with an order number, a delivery
// address and one line item
func writeHOCR(t *testing.T) string {
	t.Helper()

	rows := [][]string{
		{"Order", "Number:", "SO-77"},
		{"Delivery", "address"},
		{"John", "Smith"},
		{"100045", "WIDGET", "4", "A1", "10%", "$12.50", "$11.00", "$44.00"},
	}

	var b strings.Builder
	b.WriteString(`<html><body><div class='ocr_page' title='bbox 0 0 612 792; scan_res 72 72'>`)
	for r, row := range rows {
		y := 60 + r*20
		for i, w := range row {
			x := 36 + i*60
			fmt.Fprintf(&b, `<span class='ocrx_word' title='bbox %d %d %d %d'>%s</span> `, x, y, x+50, y+12, w)
		}
	}
	b.WriteString(`</div></body></html>`)

	path := filepath.Join(t.TempDir(), "order.hocr")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Summary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{writeHOCR(t)}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"SO-77", "John Smith", "Items (1)", "100045", "Net total: 44.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-json", writeHOCR(t)}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	var decoded struct {
		OrderInfo struct {
			OrderNumber string `json:"order_number"`
		} `json:"order_info"`
		Items []struct {
			PartNumber string `json:"part_number"`
			NetSummary string `json:"net_summary"`
		} `json:"items"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout.String())
	}
	if decoded.OrderInfo.OrderNumber != "SO-77" {
		t.Errorf("order_number = %q", decoded.OrderInfo.OrderNumber)
	}
	if len(decoded.Items) != 1 || decoded.Items[0].NetSummary != "44" {
		t.Errorf("items = %+v", decoded.Items)
	}
}

func TestRun_Lines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-lines", "-pages", "1", writeHOCR(t)}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "--- page 1 (4 lines) ---") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no file", nil, 2},
		{"unknown flag", []string{"-nope", "x.pdf"}, 2},
		{"bad pages", []string{"-pages", "one", "x.pdf"}, 2},
		{"reversed page range", []string{"-pages", "4-3", "x.pdf"}, 2},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.pdf")}, 1},
		{"help", []string{"-h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("exit code = %d, want %d (stderr: %s)", got, tt.want, stderr.String())
			}
		})
	}
}

func TestParsePages(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1", []int{1}, false},
		{"1, 3,4", []int{1, 3, 4}, false},
		{"2,,", []int{2}, false},
		{",", nil, true},
		{"1,x", nil, true},
		{"1,3-4", []int{1, 3, 4}, false},
		{"2 - 4", []int{2, 3, 4}, false},
		{"5-5", []int{5}, false},
		{"4-3", nil, true},
		{"3-", nil, true},
		{"-2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePages(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePages(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePages(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
