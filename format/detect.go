// Package format detects which token source can read an input file.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when an input is neither a PDF, an hOCR
// document nor a supported image
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document with a text layer.
	PDF
	// HOCR indicates Tesseract hOCR markup.
	HOCR
	// Image indicates a raster scan (PNG, JPEG, TIFF, BMP or WebP).
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case HOCR:
		return "hOCR"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case HOCR:
		return ".hocr"
	case Image:
		return ".png"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".hocr", ".html", ".htm":
		return HOCR
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".webp":
		return Image
	default:
		return Unknown
	}
}

// magic byte signatures of the supported image formats
var imageMagic = [][]byte{
	[]byte("\x89PNG\r\n\x1a\n"),
	{0xFF, 0xD8, 0xFF},
	[]byte("II*\x00"),
	[]byte("MM\x00*"),
	[]byte("BM"),
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
func DetectFromMagic(data []byte) Format {
	if len(data) < 2 {
		return Unknown
	}

	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	for _, m := range imageMagic {
		if bytes.HasPrefix(data, m) {
			return Image
		}
	}
	// WebP: RIFF....WEBP
	if len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP" {
		return Image
	}

	if detectHOCRMagic(data) {
		return HOCR
	}

	return Unknown
}

// detectHOCRMagic checks if the data looks like HTML or XHTML markup.
// Tesseract writes hOCR as XHTML with an XML declaration.
func detectHOCRMagic(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}

	head := strings.ToLower(string(trimmed[:min(len(trimmed), 4096)]))
	if strings.Contains(head, "ocr_page") {
		return true
	}
	if strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html") {
		return true
	}
	return strings.HasPrefix(head, "<?xml") && strings.Contains(head, "<html")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DetectFromReader inspects the content to determine format.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, min(4096, int(size)))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile determines the format of the file at path from its content,
// falling back to the extension. It returns ErrUnsupportedFormat when
// neither identifies a supported format.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, fmt.Errorf("failed to get file info: %w", err)
	}

	format, err := DetectFromReader(f, info.Size())
	if err != nil {
		return Unknown, fmt.Errorf("reading %s: %w", path, err)
	}
	if format == Unknown {
		format = Detect(path)
	}
	if format == Unknown {
		return Unknown, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	return format, nil
}
