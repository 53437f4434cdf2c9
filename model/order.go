package model

import "github.com/shopspring/decimal"

// LineItem is one order line recognised on a single visual line of a page
type LineItem struct {
	PartNumber    string              `json:"part_number,omitempty"`
	Description   string              `json:"description,omitempty"`
	Quantity      int32               `json:"quantity"`
	DiscountCode  string              `json:"discount_code,omitempty"`
	DiscountPct   decimal.Decimal     `json:"discount_pct"`
	RetailPerUnit decimal.NullDecimal `json:"retail_per_unit"`
	NetPerUnit    decimal.NullDecimal `json:"net_per_unit"`
	NetSummary    decimal.NullDecimal `json:"net_summary"`
}

// DeliveryAddress is the address block found below the delivery anchor
type DeliveryAddress struct {
	RecipientName string `json:"recipient_name,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	Street        string `json:"street,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zip_code,omitempty"`
	Country       string `json:"country,omitempty"`
}

// CustomerInfo holds the labelled customer fields of the first page
type CustomerInfo struct {
	DMSNumber string `json:"dms_number,omitempty"`
	Customer  string `json:"customer,omitempty"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CTDIID    string `json:"ctdi_id,omitempty"`
}

// IsZero reports whether no customer field was found
func (c CustomerInfo) IsZero() bool {
	return c == CustomerInfo{}
}

// OrderInfo holds the order metadata found in the first page's text
type OrderInfo struct {
	OrderNumber   string `json:"order_number,omitempty"`
	OrderDate     string `json:"order_date,omitempty"`
	OrderClass    string `json:"order_class,omitempty"`
	DeliveryWay   string `json:"delivery_way,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	ItemsAmount   string `json:"items_amount,omitempty"`
	NetWeight     string `json:"net_weight,omitempty"`
}

// IsZero reports whether no metadata field was found
func (o OrderInfo) IsZero() bool {
	return o == OrderInfo{}
}

// OrderDocument is the aggregate result of extracting one document
type OrderDocument struct {
	DeliveryAddress *DeliveryAddress `json:"delivery_address,omitempty"`
	OrderInfo       *OrderInfo       `json:"order_info,omitempty"`
	CustomerInfo    *CustomerInfo    `json:"customer_info,omitempty"`

	// Items in page order, then top-to-bottom within a page
	Items []LineItem `json:"items"`
}

// NewOrderDocument creates an order with an empty, non-nil item list
func NewOrderDocument() *OrderDocument {
	return &OrderDocument{
		Items: make([]LineItem, 0),
	}
}

// AddItem appends a line item
func (o *OrderDocument) AddItem(item LineItem) {
	o.Items = append(o.Items, item)
}

// ItemCount returns the number of line items
func (o *OrderDocument) ItemCount() int {
	return len(o.Items)
}

// NetTotal sums the net summary of every item that has one
func (o *OrderDocument) NetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item.NetSummary.Valid {
			total = total.Add(item.NetSummary.Decimal)
		}
	}
	return total
}
