package extract

import (
	"math"
	"strings"

	"github.com/tsawler/orderlayout/internal/textnorm"
	"github.com/tsawler/orderlayout/layout"
	"github.com/tsawler/orderlayout/model"
)

// customerStopLabels end a multi-row customer name
var customerStopLabels = []string{"Company", "Email", "Phone", "CTDI"}

// customerRule pairs a row matcher with the field it sets. Rules see the
// whole row list so that a rule can look ahead.
type customerRule struct {
	name  string
	match func(rows []string, i int) bool
	apply func(info *model.CustomerInfo, rows []string, i int)
}

// customerRules are evaluated in order against every row
var customerRules = []customerRule{
	{
		name:  "dms number",
		match: hasLabel("DMS"),
		apply: func(info *model.CustomerInfo, rows []string, i int) {
			info.DMSNumber = lastField(rows[i])
		},
	},
	{
		name:  "customer",
		match: isCustomerContinuation,
		apply: func(info *model.CustomerInfo, rows []string, i int) {
			info.Customer = accumulateCustomer(rows, i+1)
		},
	},
	{
		name:  "company",
		match: hasLabel("Company"),
		apply: func(info *model.CustomerInfo, rows []string, i int) {
			info.Company = labelValue(rows[i], "Company")
		},
	},
	{
		name:  "email",
		match: hasLabel("Email"),
		apply: func(info *model.CustomerInfo, rows []string, i int) {
			info.Email = labelValue(rows[i], "Email")
		},
	},
	{
		name:  "phone",
		match: hasLabel("Phone"),
		apply: func(info *model.CustomerInfo, rows []string, i int) {
			info.Phone = labelValue(rows[i], "Phone")
		},
	},
	{
		name:  "ctdi id",
		match: hasLabel("CTDI ID"),
		apply: func(info *model.CustomerInfo, rows []string, i int) {
			info.CTDIID = lastField(rows[i])
		},
	},
}

// ExtractCustomerInfo reads the labelled customer fields from the page
// region configured by cfg.CustomerRegion. The result is never nil; fields
// that were not found are empty. Every rule runs on every row in one top
// to bottom pass, so a label that appears twice keeps its last value.
func ExtractCustomerInfo(page *model.Page, cfg Config) *model.CustomerInfo {
	info := &model.CustomerInfo{}
	if page == nil {
		return info
	}

	region := page.TokensInRegion(
		cfg.CustomerRegion.MinXFraction*page.Width, math.Inf(1),
		cfg.CustomerRegion.MinYFraction*page.Height, math.Inf(1),
	)
	rows := layout.RowTexts(layout.GroupRows(region))

	for i := range rows {
		for _, rule := range customerRules {
			if rule.match(rows, i) {
				rule.apply(info, rows, i)
			}
		}
	}

	return info
}

// hasLabel matches rows that start with label, ignoring case
func hasLabel(label string) func(rows []string, i int) bool {
	return func(rows []string, i int) bool {
		return textnorm.HasPrefixFold(rows[i], label)
	}
}

// isCustomerContinuation matches a lone "number" row (the wrapped tail of
// the DMS label) that is followed by the customer label
func isCustomerContinuation(rows []string, i int) bool {
	if !strings.EqualFold(strings.TrimSpace(rows[i]), "number") {
		return false
	}
	return i+1 < len(rows) && textnorm.HasPrefixFold(rows[i+1], "Customer")
}

// accumulateCustomer joins the customer label row (label stripped) and the
// rows after it up to the next stop label
func accumulateCustomer(rows []string, start int) string {
	var parts []string
	if first := labelValue(rows[start], "Customer"); first != "" {
		parts = append(parts, first)
	}

	for _, row := range rows[start+1:] {
		if startsWithAny(row, customerStopLabels) {
			break
		}
		if s := strings.TrimSpace(row); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, " ")
}

// labelValue strips label and an optional ":" separator from the row
func labelValue(row, label string) string {
	rest, _ := textnorm.TrimPrefixFold(row, label)
	rest = strings.TrimPrefix(rest, ":")
	return strings.TrimSpace(rest)
}

// lastField returns the last whitespace-delimited field of s
func lastField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func startsWithAny(s string, labels []string) bool {
	for _, label := range labels {
		if textnorm.HasPrefixFold(s, label) {
			return true
		}
	}
	return false
}
