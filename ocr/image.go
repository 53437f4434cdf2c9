package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is an image ready for recognition
type Image struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// PrepareImage reads the image dimensions and re-encodes formats that
// Tesseract does not read reliably (BMP, WebP) as PNG
func PrepareImage(data []byte) (Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("failed to read image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Image{}, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}

	img := Image{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}

	switch format {
	case "png", "jpeg", "tiff":
		return img, nil
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode %s image: %w", format, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return Image{}, fmt.Errorf("failed to convert %s image: %w", format, err)
	}
	img.Data = buf.Bytes()
	img.Format = "png"
	return img, nil
}
