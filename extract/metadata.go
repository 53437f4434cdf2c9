package extract

import (
	"regexp"
	"strings"

	"github.com/tsawler/orderlayout/model"
)

// orderInfoRule binds one label expression to the field it fills. The
// first capture group is the value.
type orderInfoRule struct {
	name    string
	pattern *regexp.Regexp
	set     func(info *model.OrderInfo, value string)
}

// labelPattern builds a case-insensitive "label [:|-] value" expression
func labelPattern(label, value string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + label + `\s*[:\-]?\s*(` + value + `)`)
}

var orderInfoRules = []orderInfoRule{
	{
		name:    "order number",
		pattern: labelPattern(`order\s+(?:number|no\b\.?)`, `[^\s:]\S*`),
		set:     func(info *model.OrderInfo, v string) { info.OrderNumber = v },
	},
	{
		name:    "order date",
		pattern: labelPattern(`order\s+date`, `[^\s:]\S*`),
		set:     func(info *model.OrderInfo, v string) { info.OrderDate = v },
	},
	{
		name:    "order class",
		pattern: labelPattern(`order\s+class`, `[^\s:]\S*`),
		set:     func(info *model.OrderInfo, v string) { info.OrderClass = v },
	},
	{
		name:    "delivery way",
		pattern: labelPattern(`delivery\s+way`, `[^\s:]\S*`),
		set:     func(info *model.OrderInfo, v string) { info.DeliveryWay = v },
	},
	{
		name:    "payment method",
		pattern: labelPattern(`payment\s+method`, `[^\s:]\S*`),
		set:     func(info *model.OrderInfo, v string) { info.PaymentMethod = v },
	},
	{
		name:    "items amount",
		pattern: labelPattern(`items?\s+amount`, `\$\s?[0-9][0-9,]*(?:\.[0-9]+)?|[^\s:]\S*`),
		set:     func(info *model.OrderInfo, v string) { info.ItemsAmount = v },
	},
	{
		name:    "net weight",
		pattern: labelPattern(`net\s+weight`, `[0-9][0-9,.]*(?:\s?(?:kgs?|lbs?|g)\b)?|[^\s:]\S*`),
		set:     func(info *model.OrderInfo, v string) { info.NetWeight = v },
	},
}

// ExtractOrderInfo applies the metadata label rules to the page's tokens
// joined in source order. The result is never nil; labels that do not
// appear leave their field empty.
func ExtractOrderInfo(page *model.Page) *model.OrderInfo {
	info := &model.OrderInfo{}
	if page == nil {
		return info
	}

	text := page.Text()
	if text == "" {
		text = strings.TrimSpace(page.RawText)
	}

	for _, rule := range orderInfoRules {
		if m := rule.pattern.FindStringSubmatch(text); m != nil {
			rule.set(info, strings.TrimSpace(m[1]))
		}
	}

	return info
}
