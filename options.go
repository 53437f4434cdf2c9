package orderlayout

import (
	"go.uber.org/zap"

	"github.com/tsawler/orderlayout/extract"
	"github.com/tsawler/orderlayout/ocr"
)

// ExtractOptions holds configuration for order extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Field extraction thresholds
	config extract.Config

	logger *zap.Logger

	// Recognizer used for image inputs; nil means a Tesseract client is
	// created on demand
	recognizer ocr.WordRecognizer
	ocrConfig  ocr.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:     nil, // nil means all pages
		config:    extract.DefaultConfig(),
		logger:    zap.NewNop(),
		ocrConfig: ocr.DefaultConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	// Deep copy slices
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.config.AnchorWords != nil {
		newOpts.config.AnchorWords = make([]string, len(o.config.AnchorWords))
		copy(newOpts.config.AnchorWords, o.config.AnchorWords)
	}

	return newOpts
}
