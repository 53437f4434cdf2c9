package hocr

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/orderlayout/internal/textnorm"
	"github.com/tsawler/orderlayout/model"
)

// ErrNoPages is returned when the input contains no ocr_page element
var ErrNoPages = errors.New("hocr: no ocr_page elements")

// Config controls the conversion from pixels to page units
type Config struct {
	// DPI is the scan resolution assumed when a page has no scan_res
	// property
	DPI float64

	// MinConfidence drops words whose x_wconf is below this value (0-100)
	MinConfidence int
}

// DefaultConfig returns the default conversion settings
func DefaultConfig() Config {
	return Config{
		DPI:           300,
		MinConfidence: 0,
	}
}

// Reader parses hOCR documents
type Reader struct {
	config Config
}

// NewReader creates a reader with default configuration
func NewReader() *Reader {
	return NewReaderWithConfig(DefaultConfig())
}

// NewReaderWithConfig creates a reader with custom configuration
func NewReaderWithConfig(config Config) *Reader {
	if config.DPI <= 0 {
		config.DPI = DefaultConfig().DPI
	}
	return &Reader{config: config}
}

// Open parses the hOCR file at path with default configuration
func Open(path string) (*model.Document, error) {
	return NewReader().Open(path)
}

// Parse parses hOCR from r with default configuration
func Parse(r io.Reader) (*model.Document, error) {
	return NewReader().Parse(r)
}

// Open parses the hOCR file at path
func (rd *Reader) Open(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return rd.Parse(f)
}

// Parse parses hOCR markup
func (rd *Reader) Parse(r io.Reader) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var pageNodes []*html.Node
	findClass(root, "ocr_page", &pageNodes)
	if len(pageNodes) == 0 {
		return nil, ErrNoPages
	}

	doc := model.NewDocument()
	for i, n := range pageNodes {
		page, err := rd.convertPage(n)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		doc.AddPage(page)
	}
	return doc, nil
}

func (rd *Reader) convertPage(n *html.Node) (*model.Page, error) {
	props := parseTitle(attr(n, "title"))

	box, ok := props.bbox()
	if !ok || box.Dx() <= 0 || box.Dy() <= 0 {
		return nil, fmt.Errorf("missing or invalid page bbox %q", attr(n, "title"))
	}

	scale := 72 / rd.config.DPI
	if res, ok := props.scanRes(); ok {
		scale = 72 / res
	}

	page := model.NewPage(float64(box.Dx())*scale, float64(box.Dy())*scale)
	page.RawText = collapseSpace(textContent(n, true))

	var words []*html.Node
	findClass(n, "ocrx_word", &words)
	for _, w := range words {
		wprops := parseTitle(attr(w, "title"))
		wbox, ok := wprops.bbox()
		if !ok {
			continue
		}
		if conf, ok := wprops.intValue("x_wconf"); ok && conf < rd.config.MinConfidence {
			continue
		}

		text := textnorm.Clean(textContent(w, false))
		if text == "" {
			continue
		}

		// Boxes are relative to the page's own origin
		wbox = wbox.Sub(box.Min)
		page.AddToken(model.NewImageToken(text, wbox, box.Dy(), scale))
	}

	return page, nil
}

// properties holds the semicolon separated entries of an hOCR title
// attribute, keyed by their first word
type properties map[string][]string

func parseTitle(title string) properties {
	props := make(properties)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

func (p properties) bbox() (image.Rectangle, bool) {
	v := p["bbox"]
	if len(v) != 4 {
		return image.Rectangle{}, false
	}

	var n [4]int
	for i, s := range v {
		x, err := strconv.Atoi(s)
		if err != nil {
			return image.Rectangle{}, false
		}
		n[i] = x
	}
	return image.Rect(n[0], n[1], n[2], n[3]), true
}

func (p properties) intValue(key string) (int, bool) {
	v := p[key]
	if len(v) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(v[0])
	return n, err == nil
}

// scanRes returns the vertical scan resolution
func (p properties) scanRes() (float64, bool) {
	v := p["scan_res"]
	if len(v) == 0 {
		return 0, false
	}
	res, err := strconv.ParseFloat(v[len(v)-1], 64)
	if err != nil || res <= 0 {
		return 0, false
	}
	return res, true
}

// findClass collects elements carrying class name, without descending
// into matches
func findClass(n *html.Node, class string, out *[]*html.Node) {
	if n.Type == html.ElementNode && hasClass(n, class) {
		*out = append(*out, n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		findClass(c, class, out)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent returns all text below n. With spaced set, element
// boundaries are treated as spaces.
func textContent(n *html.Node, spaced bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if spaced && n.Type == html.ElementNode {
			b.WriteByte(' ')
		}
	}
	walk(n)
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
