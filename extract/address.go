package extract

import (
	"strings"

	"github.com/tsawler/orderlayout/internal/textnorm"
	"github.com/tsawler/orderlayout/layout"
	"github.com/tsawler/orderlayout/model"
)

// addressRows is the number of rows read below the anchor: recipient,
// company, street, city/state/zip and country
const addressRows = 5

// ExtractDeliveryAddress reads the delivery address block from the left
// column of a page. It returns nil when there is no anchor row or no
// non-blank row after it.
func ExtractDeliveryAddress(page *model.Page, cfg Config) *model.DeliveryAddress {
	if page == nil {
		return nil
	}

	limit := cfg.LeftColumnFraction * page.Width
	var column []model.Token
	for _, tok := range page.Tokens {
		if tok.Left <= limit {
			column = append(column, tok)
		}
	}

	rows := layout.RowTexts(layout.GroupRows(column))

	anchor := -1
	for i, row := range rows {
		if textnorm.ContainsAllFold(row, cfg.AnchorWords) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return nil
	}

	fields := make([]string, 0, addressRows)
	for _, row := range rows[anchor+1:] {
		if s := strings.TrimSpace(row); s != "" {
			fields = append(fields, s)
			if len(fields) == addressRows {
				break
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}

	addr := &model.DeliveryAddress{RecipientName: fields[0]}
	if len(fields) > 1 {
		addr.CompanyName = fields[1]
	}
	if len(fields) > 2 {
		addr.Street = fields[2]
	}
	if len(fields) > 3 {
		parseCityLine(addr, fields[3])
	}
	if len(fields) > 4 {
		addr.Country = fields[4]
	}

	return addr
}

// parseCityLine splits "City, ST 12345" or "12345 City, ST" into its parts.
// When the zip leads the line, a trailing zip after the state is ignored.
func parseCityLine(addr *model.DeliveryAddress, line string) {
	parts := strings.SplitN(line, ",", 2)

	first := strings.TrimSpace(parts[0])
	if first != "" && first[0] >= '0' && first[0] <= '9' {
		if zip, city, ok := strings.Cut(first, " "); ok {
			addr.ZipCode = zip
			addr.City = strings.TrimSpace(city)
		} else {
			addr.ZipCode = first
		}
	} else {
		addr.City = first
	}

	if len(parts) < 2 {
		return
	}

	rest := strings.Fields(parts[1])
	if len(rest) > 0 {
		addr.State = rest[0]
	}
	if len(rest) > 1 && addr.ZipCode == "" {
		addr.ZipCode = rest[1]
	}
}
