// Package layout reconstructs visual lines and rows from positioned tokens.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/orderlayout/model"
)

// Line represents a single visual line of tokens on a page
type Line struct {
	// BBox is the bounding box of the line
	BBox model.BBox

	// Tokens that make up this line (sorted left to right)
	Tokens []model.Token

	// Text is the assembled text content of the line
	Text string

	// Index is the line's position on the page (0-based, top to bottom)
	Index int

	// Y is the reference vertical midpoint the line was clustered around
	Y float64

	// Height is the line height (max token height)
	Height float64
}

// LineLayout represents the detected line structure of a page
type LineLayout struct {
	// Lines are the detected text lines (sorted top to bottom)
	Lines []Line

	// PageWidth is the width of the page
	PageWidth float64

	// PageHeight is the height of the page
	PageHeight float64

	// Config is the configuration used for detection
	Config LineConfig
}

// LineConfig holds configuration for line detection
type LineConfig struct {
	// YTolerance is the maximum distance between a token's vertical midpoint
	// and the line's reference midpoint for the token to join the line
	// (default: 3 units). It absorbs baseline jitter within one printed line
	// while keeping adjacent table rows apart.
	YTolerance float64 `yaml:"y_tolerance"`
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		YTolerance: 3.0,
	}
}

// LineDetector detects text lines on a page
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration.
// A non-positive tolerance falls back to the default.
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	if config.YTolerance <= 0 {
		config.YTolerance = DefaultLineConfig().YTolerance
	}
	return &LineDetector{
		config: config,
	}
}

// Config returns the detector's configuration
func (d *LineDetector) Config() LineConfig {
	return d.config
}

// DetectPage detects the lines of a page. A page without tokens yields a
// single line made from the page's raw fallback text, or no lines at all
// when there is none.
func (d *LineDetector) DetectPage(page *model.Page) *LineLayout {
	if page == nil {
		return &LineLayout{Config: d.config}
	}
	if len(page.Tokens) > 0 {
		return d.Detect(page.Tokens, page.Width, page.Height)
	}

	raw := strings.TrimSpace(page.RawText)
	if raw == "" {
		return d.Detect(nil, page.Width, page.Height)
	}
	fallback := model.Token{
		Text:   raw,
		Left:   0,
		Right:  page.Width,
		Top:    page.Height,
		Bottom: page.Height,
	}
	return d.Detect([]model.Token{fallback}, page.Width, page.Height)
}

// Detect groups tokens into lines. The input slice is not modified.
func (d *LineDetector) Detect(tokens []model.Token, pageWidth, pageHeight float64) *LineLayout {
	if len(tokens) == 0 {
		return &LineLayout{
			Lines:      nil,
			PageWidth:  pageWidth,
			PageHeight: pageHeight,
			Config:     d.config,
		}
	}

	// Step 1: Cluster tokens into lines by vertical midpoint
	groups := d.groupIntoLines(tokens)

	// Step 2: Build Line objects with metadata
	lines := d.buildLines(groups)

	return &LineLayout{
		Lines:      lines,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Config:     d.config,
	}
}

// line under construction while walking the sorted tokens
type lineGroup struct {
	refY   float64
	tokens []model.Token
}

// groupIntoLines clusters tokens around the midpoint of each line's first
// token. Tokens are visited top to bottom, then left to right.
func (d *LineDetector) groupIntoLines(tokens []model.Token) []lineGroup {
	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		yi, yj := sorted[i].MidY(), sorted[j].MidY()
		if yi != yj {
			return yi > yj // Higher Y first (top of page)
		}
		return sorted[i].Left < sorted[j].Left
	})

	var groups []lineGroup
	var current lineGroup

	for _, tok := range sorted {
		if len(current.tokens) == 0 {
			current = lineGroup{refY: tok.MidY(), tokens: []model.Token{tok}}
			continue
		}

		if math.Abs(tok.MidY()-current.refY) <= d.config.YTolerance {
			current.tokens = append(current.tokens, tok)
			continue
		}

		groups = append(groups, closeLine(current))
		current = lineGroup{refY: tok.MidY(), tokens: []model.Token{tok}}
	}

	// Don't forget the last line
	if len(current.tokens) > 0 {
		groups = append(groups, closeLine(current))
	}

	return groups
}

// closeLine re-sorts a finished line into reading order
func closeLine(g lineGroup) lineGroup {
	sort.SliceStable(g.tokens, func(i, j int) bool {
		return g.tokens[i].Left < g.tokens[j].Left
	})
	return g
}

// buildLines creates Line objects from token groups
func (d *LineDetector) buildLines(groups []lineGroup) []Line {
	lines := make([]Line, 0, len(groups))

	for i, g := range groups {
		line := Line{
			Index:  i,
			Tokens: g.tokens,
			Y:      g.refY,
			Text:   joinTokens(g.tokens),
		}

		for _, tok := range g.tokens {
			line.BBox = line.BBox.Union(tok.BBox())
			if h := tok.Height(); h > line.Height {
				line.Height = h
			}
		}

		lines = append(lines, line)
	}

	return lines
}

// joinTokens joins the non-blank token texts with single spaces
func joinTokens(tokens []model.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if s := strings.TrimSpace(tok.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// LineLayout methods

// LineCount returns the number of detected lines
func (l *LineLayout) LineCount() int {
	if l == nil {
		return 0
	}
	return len(l.Lines)
}

// GetLine returns a specific line by index
func (l *LineLayout) GetLine(index int) *Line {
	if l == nil || index < 0 || index >= len(l.Lines) {
		return nil
	}
	return &l.Lines[index]
}

// GetText returns all text in line order, one line per row
func (l *LineLayout) GetText() string {
	if l == nil || len(l.Lines) == 0 {
		return ""
	}

	texts := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}

// Line methods

// Words returns the raw text of each token in reading order
func (line *Line) Words() []string {
	if line == nil {
		return nil
	}
	words := make([]string, len(line.Tokens))
	for i, tok := range line.Tokens {
		words[i] = tok.Text
	}
	return words
}
