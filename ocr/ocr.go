//go:build ocr

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// NewWithConfig creates a client and applies the language and page
// segmentation mode from config
func NewWithConfig(config Config) (*Client, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}

	if langs := config.languages(); len(langs) > 0 {
		if err := c.SetLanguage(strings.Join(langs, "+")); err != nil {
			c.Close()
			return nil, fmt.Errorf("setting language: %w", err)
		}
	}
	if config.PageSegMode != PSM_OSD_ONLY {
		if err := c.SetPageSegMode(config.PageSegMode); err != nil {
			c.Close()
			return nil, fmt.Errorf("setting page segmentation mode: %w", err)
		}
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RecognizeWords performs OCR on image data and returns every recognized
// word with its pixel box, plus the full page text.
func (c *Client) RecognizeWords(imageData []byte) ([]Word, string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, "", fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, "", fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, Word{
			Text:       b.Word,
			Box:        b.Box,
			Confidence: b.Confidence,
		})
	}

	text, err := c.client.Text()
	if err != nil {
		return nil, "", fmt.Errorf("OCR failed: %w", err)
	}

	return words, text, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
