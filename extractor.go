package orderlayout

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/tsawler/orderlayout/extract"
	"github.com/tsawler/orderlayout/format"
	"github.com/tsawler/orderlayout/hocr"
	"github.com/tsawler/orderlayout/layout"
	"github.com/tsawler/orderlayout/model"
	"github.com/tsawler/orderlayout/ocr"
	"github.com/tsawler/orderlayout/pdfsource"
)

// Extractor provides a fluent interface for extracting orders from PDF,
// hOCR and image files. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (one of the two is set)
	filename string
	source   extract.PageSource

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		source:   e.source,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative. The first selected page is the one the
// delivery address, order metadata and customer details are read from.
//
// Example:
//
//	order, err := orderlayout.Open("doc.pdf").Pages(2, 3).Order()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	order, err := orderlayout.Open("doc.pdf").PageRange(2, 4).Order()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// YTolerance sets how far apart (in page units) two token midpoints may
// be and still belong to the same line.
//
// Example:
//
//	order, err := orderlayout.Open("scan.hocr").YTolerance(5).Order()
func (e *Extractor) YTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	newExt.options.config.Line.YTolerance = tolerance
	return newExt
}

// LeftColumn sets the fraction of the page width searched for the
// delivery address block.
func (e *Extractor) LeftColumn(fraction float64) *Extractor {
	newExt := e.clone()
	newExt.options.config.LeftColumnFraction = fraction
	return newExt
}

// AnchorWords replaces the words that must all appear on the row that
// introduces the delivery address.
//
// Example:
//
//	order, err := orderlayout.Open("doc.pdf").AnchorWords("ship", "to").Order()
func (e *Extractor) AnchorWords(words ...string) *Extractor {
	newExt := e.clone()
	newExt.options.config.AnchorWords = append([]string(nil), words...)
	return newExt
}

// Config replaces the whole field extraction configuration.
func (e *Extractor) Config(config extract.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = config
	newExt.options = newExt.options.clone()
	return newExt
}

// ConfigFile loads the field extraction configuration from a YAML file.
// A load error is reported by the terminal operation.
//
// Example:
//
//	order, err := orderlayout.Open("doc.pdf").ConfigFile("layout.yaml").Order()
func (e *Extractor) ConfigFile(path string) *Extractor {
	newExt := e.clone()
	if newExt.err != nil {
		return newExt
	}

	config, err := extract.LoadConfig(path)
	if err != nil {
		newExt.err = err
		return newExt
	}
	newExt.options.config = config
	return newExt
}

// Logger sets the logger that receives debug records about extraction.
// A nil logger disables logging.
func (e *Extractor) Logger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newExt.options.logger = logger
	return newExt
}

// OCR sets the recognizer used for image inputs and the resolution the
// images were scanned at. Without it, image inputs use a Tesseract client,
// which requires the "ocr" build tag.
func (e *Extractor) OCR(rec ocr.WordRecognizer, config ocr.Config) *Extractor {
	newExt := e.clone()
	newExt.options.recognizer = rec
	newExt.options.ocrConfig = config
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Order extracts line items from every selected page and the delivery
// address, order metadata and customer details from the first selected
// page.
//
// Example:
//
//	order, err := orderlayout.Open("order.pdf").Order()
func (e *Extractor) Order() (*model.OrderDocument, error) {
	assembler, doc, err := e.prepare()
	if err != nil {
		return nil, err
	}
	return assembler.Extract(doc)
}

// Lines returns the reconstructed lines of every selected page. It is
// mostly useful to tune YTolerance.
//
// Example:
//
//	pages, err := orderlayout.Open("order.pdf").Lines()
//	for _, page := range pages {
//	    fmt.Println(page.GetText())
//	}
func (e *Extractor) Lines() ([]*layout.LineLayout, error) {
	assembler, doc, err := e.prepare()
	if err != nil {
		return nil, err
	}
	return assembler.Lines(doc)
}

// Document returns the selected pages as token pages.
func (e *Extractor) Document() (*model.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.document()
}

// PageCount returns the number of pages in the source, ignoring any page
// selection.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	doc, err := e.load()
	if err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}

// prepare validates the configuration and loads the selected pages
func (e *Extractor) prepare() (*extract.Assembler, *model.Document, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.options.config.Validate(); err != nil {
		return nil, nil, err
	}

	doc, err := e.document()
	if err != nil {
		return nil, nil, err
	}

	assembler := extract.NewAssemblerWithConfig(e.options.config).WithLogger(e.options.logger)
	return assembler, doc, nil
}

// document loads the source and applies the page selection
func (e *Extractor) document() (*model.Document, error) {
	doc, err := e.load()
	if err != nil {
		return nil, err
	}

	numbers, err := e.resolvePages(doc.PageCount())
	if err != nil {
		return nil, err
	}
	return doc.Select(numbers...), nil
}

// load materialises the source into a document
func (e *Extractor) load() (*model.Document, error) {
	if e.source != nil {
		return materialise(e.source)
	}
	if e.filename == "" {
		return nil, fmt.Errorf("%w: no filename specified", extract.ErrInvalidInput)
	}

	kind, err := format.DetectFile(e.filename)
	if err != nil {
		return nil, err
	}

	e.options.logger.Debug("opening input",
		zap.String("file", e.filename),
		zap.Stringer("format", kind),
	)

	switch kind {
	case format.PDF:
		return pdfsource.Open(e.filename)
	case format.HOCR:
		return hocr.Open(e.filename)
	case format.Image:
		return e.recognize()
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrUnsupportedFormat, kind)
	}
}

// recognize runs OCR over an image file
func (e *Extractor) recognize() (*model.Document, error) {
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	rec := e.options.recognizer
	if rec == nil {
		client, err := ocr.NewWithConfig(e.options.ocrConfig)
		if err != nil {
			return nil, err
		}
		defer client.Close()
		rec = client
	}

	return ocr.RecognizeWithConfig(rec, e.options.ocrConfig, data)
}

// materialise copies the pages of src into a document, reusing src when it
// already is one
func materialise(src extract.PageSource) (*model.Document, error) {
	if doc, ok := src.(*model.Document); ok {
		if doc == nil {
			return nil, fmt.Errorf("%w: nil document", extract.ErrInvalidInput)
		}
		return doc, nil
	}

	doc := model.NewDocument()
	for i := 0; i < src.PageCount(); i++ {
		page, err := src.Page(i)
		if err != nil {
			return nil, fmt.Errorf("%w: reading page %d: %w", extract.ErrInvalidInput, i+1, err)
		}
		if page == nil {
			return nil, fmt.Errorf("%w: page %d is nil", extract.ErrInvalidInput, i+1)
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// resolvePages returns the selected 1-indexed page numbers in ascending
// order, or nil when every page is selected
func (e *Extractor) resolvePages(pageCount int) ([]int, error) {
	if len(e.options.pages) == 0 {
		return nil, nil
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			numbers = append(numbers, p)
		}
	}

	sort.Ints(numbers)
	return numbers, nil
}
