package ocr

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/tsawler/orderlayout/internal/textnorm"
	"github.com/tsawler/orderlayout/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as in Tesseract.
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Word is one recognized word and its box in image pixels
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// WordRecognizer recognizes positioned words in an image. *Client
// implements it.
type WordRecognizer interface {
	RecognizeWords(imageData []byte) ([]Word, string, error)
}

// Config controls page conversion
type Config struct {
	// DPI is the resolution the images were scanned at
	DPI float64

	// MinConfidence drops words recognized with lower confidence (0-100)
	MinConfidence float64

	// Language selects the Tesseract language data, "+" separated for
	// several (e.g. "eng+deu"). Empty keeps Tesseract's default.
	Language string

	// PageSegMode sets the page segmentation mode. The zero value keeps
	// Tesseract's default, since PSM_OSD_ONLY recognizes no words.
	PageSegMode PageSegMode
}

// languages splits Language into its non-empty parts
func (c Config) languages() []string {
	var langs []string
	for _, lang := range strings.Split(c.Language, "+") {
		if lang = strings.TrimSpace(lang); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// DefaultConfig returns the default conversion settings
func DefaultConfig() Config {
	return Config{
		DPI:           300,
		MinConfidence: 0,
	}
}

// Recognize runs rec over each image and returns one page per image
func Recognize(rec WordRecognizer, images ...[]byte) (*model.Document, error) {
	return RecognizeWithConfig(rec, DefaultConfig(), images...)
}

// RecognizeWithConfig is Recognize with custom conversion settings
func RecognizeWithConfig(rec WordRecognizer, config Config, images ...[]byte) (*model.Document, error) {
	if rec == nil {
		return nil, ErrOCRNotEnabled
	}
	if config.DPI <= 0 {
		config.DPI = DefaultConfig().DPI
	}

	doc := model.NewDocument()
	for i, data := range images {
		img, err := PrepareImage(data)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i+1, err)
		}

		words, raw, err := rec.RecognizeWords(img.Data)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i+1, err)
		}

		doc.AddPage(NewPage(words, raw, img.Width, img.Height, config))
	}
	return doc, nil
}

// NewPage converts recognized words on a width x height pixel image into a
// page measured in points
func NewPage(words []Word, raw string, width, height int, config Config) *model.Page {
	dpi := config.DPI
	if dpi <= 0 {
		dpi = DefaultConfig().DPI
	}
	scale := 72 / dpi

	page := model.NewPage(float64(width)*scale, float64(height)*scale)
	page.RawText = textnorm.Clean(raw)

	for _, w := range words {
		if w.Confidence < config.MinConfidence {
			continue
		}
		text := textnorm.Clean(w.Text)
		if text == "" {
			continue
		}
		page.AddToken(model.NewImageToken(text, w.Box, height, scale))
	}
	return page
}
