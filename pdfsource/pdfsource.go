package pdfsource

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/orderlayout/internal/textnorm"
	"github.com/tsawler/orderlayout/model"
)

// Letter size in points, used when a page carries no usable MediaBox
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Config holds word merging parameters
type Config struct {
	// WordGapFactor is the largest horizontal gap between two glyphs of the
	// same word, as a fraction of the font size
	WordGapFactor float64

	// BaselineTolerance is how far two glyph baselines may differ (in points)
	// and still belong to the same word
	BaselineTolerance float64
}

// DefaultConfig returns sensible defaults for word merging
func DefaultConfig() Config {
	return Config{
		WordGapFactor:     0.25,
		BaselineTolerance: 1.0,
	}
}

// Reader converts PDF documents into model documents
type Reader struct {
	config Config
}

// NewReader creates a reader with default configuration
func NewReader() *Reader {
	return NewReaderWithConfig(DefaultConfig())
}

// NewReaderWithConfig creates a reader with custom configuration
func NewReaderWithConfig(config Config) *Reader {
	if config.WordGapFactor <= 0 {
		config.WordGapFactor = DefaultConfig().WordGapFactor
	}
	if config.BaselineTolerance <= 0 {
		config.BaselineTolerance = DefaultConfig().BaselineTolerance
	}
	return &Reader{config: config}
}

// Open reads the PDF file at path with default configuration
func Open(path string) (*model.Document, error) {
	return NewReader().Open(path)
}

// Read reads a PDF from r with default configuration
func Read(r io.ReaderAt, size int64) (*model.Document, error) {
	return NewReader().Read(r, size)
}

// Open reads the PDF file at path
func (rd *Reader) Open(path string) (doc *model.Document, err error) {
	defer recoverDecode(&doc, &err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return rd.convert(r)
}

// Read reads a PDF of the given size from r
func (rd *Reader) Read(r io.ReaderAt, size int64) (doc *model.Document, err error) {
	defer recoverDecode(&doc, &err)

	pr, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	return rd.convert(pr)
}

// recoverDecode turns a panic raised by the pdf package on malformed input
// into an error
func recoverDecode(doc **model.Document, err *error) {
	if rec := recover(); rec != nil {
		*doc = nil
		*err = fmt.Errorf("failed to decode PDF: %v", rec)
	}
}

func (rd *Reader) convert(r *pdf.Reader) (*model.Document, error) {
	doc := model.NewDocument()
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			doc.AddPage(model.NewPage(defaultPageWidth, defaultPageHeight))
			continue
		}

		width, height := pageSize(p)
		page := model.NewPage(width, height)
		for _, tok := range rd.MergeGlyphs(p.Content().Text) {
			page.AddToken(tok)
		}
		doc.AddPage(page)
	}
	return doc, nil
}

// pageSize reads the page's MediaBox, which may be inherited from an
// ancestor in the page tree
func pageSize(p pdf.Page) (float64, float64) {
	box := inherited(p.V, "MediaBox")
	if box.Len() != 4 {
		return defaultPageWidth, defaultPageHeight
	}

	width := box.Index(2).Float64() - box.Index(0).Float64()
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if width <= 0 || height <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return width, height
}

func inherited(v pdf.Value, key string) pdf.Value {
	for ; !v.IsNull(); v = v.Key("Parent") {
		if r := v.Key(key); !r.IsNull() {
			return r
		}
	}
	return pdf.Value{}
}

// word is a token under construction
type word struct {
	text     strings.Builder
	left     float64
	right    float64
	baseline float64
	size     float64
}

func (w *word) token() (model.Token, bool) {
	text := textnorm.Clean(w.text.String())
	if text == "" {
		return model.Token{}, false
	}
	return model.Token{
		Text:   text,
		Left:   w.left,
		Right:  w.right,
		Top:    w.baseline + w.size,
		Bottom: w.baseline,
	}, true
}

// MergeGlyphs joins glyphs into word tokens in content stream order.
// A glyph extends the current word when it sits on the same baseline and
// starts less than WordGapFactor font sizes after the word ends. Whitespace
// glyphs always end the current word.
func (rd *Reader) MergeGlyphs(glyphs []pdf.Text) []model.Token {
	var tokens []model.Token
	var cur *word

	flush := func() {
		if cur == nil {
			return
		}
		if tok, ok := cur.token(); ok {
			tokens = append(tokens, tok)
		}
		cur = nil
	}

	for _, g := range splitGlyphs(glyphs) {
		if strings.TrimSpace(g.S) == "" {
			flush()
			continue
		}

		size := g.FontSize
		if size <= 0 {
			size = 10
		}

		if cur != nil && !rd.continues(cur, g, size) {
			flush()
		}
		if cur == nil {
			cur = &word{left: g.X, right: g.X, baseline: g.Y, size: size}
		}

		cur.text.WriteString(g.S)
		cur.right = math.Max(cur.right, g.X+g.W)
		cur.size = math.Max(cur.size, size)
	}
	flush()

	return tokens
}

func (rd *Reader) continues(cur *word, g pdf.Text, size float64) bool {
	if math.Abs(g.Y-cur.baseline) > rd.config.BaselineTolerance {
		return false
	}
	gap := g.X - cur.right
	return gap > -0.5*size && gap < rd.config.WordGapFactor*size
}

// splitGlyphs breaks multi-character runs that contain whitespace into one
// entry per word and one per separator, sharing the run's width by rune
// count
func splitGlyphs(glyphs []pdf.Text) []pdf.Text {
	out := make([]pdf.Text, 0, len(glyphs))
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.S) <= 1 || !strings.ContainsAny(g.S, " \t\u00a0") {
			out = append(out, g)
			continue
		}

		runes := []rune(g.S)
		perRune := g.W / float64(len(runes))
		x := g.X
		start := 0
		for i := 0; i <= len(runes); i++ {
			if i < len(runes) && !isSpace(runes[i]) {
				continue
			}
			if i > start {
				part := g
				part.S = string(runes[start:i])
				part.X = x + float64(start)*perRune
				part.W = float64(i-start) * perRune
				out = append(out, part)
			}
			if i < len(runes) {
				sep := g
				sep.S = " "
				sep.X = x + float64(i)*perRune
				sep.W = perRune
				out = append(out, sep)
			}
			start = i + 1
		}
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\u00a0'
}
