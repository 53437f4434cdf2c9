package extract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/orderlayout/layout"
	"github.com/tsawler/orderlayout/model"
)

// Assembler extracts a complete order from every page of a document.
// An Assembler is immutable once built and may be shared between
// goroutines; each Extract call works on its own state.
type Assembler struct {
	config Config
	lines  *layout.LineDetector
	logger *zap.Logger
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
// Zero or out-of-range fields fall back to their defaults.
func NewAssemblerWithConfig(config Config) *Assembler {
	config = config.withDefaults()
	return &Assembler{
		config: config,
		lines:  layout.NewLineDetectorWithConfig(config.Line),
		logger: zap.NewNop(),
	}
}

// WithLogger returns a copy of the assembler that writes debug records to
// logger. A nil logger disables logging.
func (a *Assembler) WithLogger(logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	clone := *a
	clone.logger = logger
	return &clone
}

// Config returns the assembler's configuration
func (a *Assembler) Config() Config {
	return a.config
}

// Extract runs line-item classification on every page and header
// extraction (delivery address, order metadata, customer) on the first page
// only. It fails only when src is nil or a page cannot be read, in which
// case the error wraps ErrInvalidInput and no order is returned.
func (a *Assembler) Extract(src PageSource) (*model.OrderDocument, error) {
	if isNilSource(src) {
		return nil, fmt.Errorf("%w: nil page source", ErrInvalidInput)
	}

	count := src.PageCount()
	if count < 0 {
		return nil, fmt.Errorf("%w: negative page count %d", ErrInvalidInput, count)
	}

	order := model.NewOrderDocument()

	for i := 0; i < count; i++ {
		page, err := src.Page(i)
		if err != nil {
			return nil, fmt.Errorf("%w: reading page %d: %w", ErrInvalidInput, i+1, err)
		}
		if page == nil {
			return nil, fmt.Errorf("%w: page %d is nil", ErrInvalidInput, i+1)
		}

		matched := a.extractItems(page, order)

		if i == 0 {
			a.extractHeader(page, order)
		}

		a.logger.Debug("page extracted",
			zap.Int("page", i+1),
			zap.Int("tokens", len(page.Tokens)),
			zap.Int("items", matched),
		)
	}

	a.logger.Debug("document extracted",
		zap.Int("pages", count),
		zap.Int("items", order.ItemCount()),
		zap.Bool("delivery_address", order.DeliveryAddress != nil),
		zap.Bool("order_info", order.OrderInfo != nil),
		zap.Bool("customer_info", order.CustomerInfo != nil),
	)

	return order, nil
}

// Lines returns the reconstructed lines of every page, for inspection
func (a *Assembler) Lines(src PageSource) ([]*layout.LineLayout, error) {
	if isNilSource(src) {
		return nil, fmt.Errorf("%w: nil page source", ErrInvalidInput)
	}

	count := src.PageCount()
	if count < 0 {
		return nil, fmt.Errorf("%w: negative page count %d", ErrInvalidInput, count)
	}

	layouts := make([]*layout.LineLayout, 0, count)
	for i := 0; i < count; i++ {
		page, err := src.Page(i)
		if err != nil {
			return nil, fmt.Errorf("%w: reading page %d: %w", ErrInvalidInput, i+1, err)
		}
		if page == nil {
			return nil, fmt.Errorf("%w: page %d is nil", ErrInvalidInput, i+1)
		}
		layouts = append(layouts, a.lines.DetectPage(page))
	}
	return layouts, nil
}

// extractItems appends the page's line items in top-to-bottom order and
// returns how many were found
func (a *Assembler) extractItems(page *model.Page, order *model.OrderDocument) int {
	lineLayout := a.lines.DetectPage(page)

	matched := 0
	for i := 0; i < lineLayout.LineCount(); i++ {
		item, ok := ClassifyLine(lineLayout.GetLine(i))
		if !ok {
			continue
		}
		order.AddItem(item)
		matched++
	}
	return matched
}

// extractHeader fills the sections that only the first page provides.
// Empty customer and metadata records are left unset.
func (a *Assembler) extractHeader(page *model.Page, order *model.OrderDocument) {
	order.DeliveryAddress = ExtractDeliveryAddress(page, a.config)

	if info := ExtractOrderInfo(page); !info.IsZero() {
		order.OrderInfo = info
	}

	if customer := ExtractCustomerInfo(page, a.config); !customer.IsZero() {
		order.CustomerInfo = customer
	}
}

// isNilSource also catches a nil *model.Document stored in the interface
func isNilSource(src PageSource) bool {
	if src == nil {
		return true
	}
	doc, ok := src.(*model.Document)
	return ok && doc == nil
}
