//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	err := client.Close()
	if err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestRecognizeWithStubClient(t *testing.T) {
	var client *Client

	_, err := Recognize(client, createTestPNG(20, 10))
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
}

func TestStubClientMethods(t *testing.T) {
	client, err := NewWithConfig(Config{Language: "eng", PageSegMode: PSM_SINGLE_BLOCK})
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("NewWithConfig() error = %v, want ErrOCRNotEnabled", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}

	var stub *Client
	if err := stub.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage() error = %v", err)
	}
	if err := stub.SetPageSegMode(PSM_AUTO); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode() error = %v", err)
	}
}
