package conekta

import "encoding/json"

// List is the envelope the API wraps sub-resource collections in.
type List[T any] struct {
	Object  string `json:"object,omitempty"`
	HasMore bool   `json:"has_more"`
	Total   int    `json:"total"`
	Data    []T    `json:"data"`
}

// Payment status values reported on orders and charges. The remote system
// owns the lifecycle; the client never sets these.
const (
	PaymentStatusPendingPayment = "pending_payment"
	PaymentStatusPreAuthorized  = "pre_authorized"
	PaymentStatusPaid           = "paid"
	PaymentStatusRefunded       = "refunded"
	PaymentStatusDeclined       = "declined"
)

type CustomerInfo struct {
	Name          string   `json:"name,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Email         string   `json:"email,omitempty"`
	Corporate     bool     `json:"corporate,omitempty"`
	AntifraudInfo Metadata `json:"antifraud_info,omitempty"`
}

// Order is the root aggregate. Amount and PaymentStatus are server
// computed; identifiers are assigned remotely and never change. Unknown
// top-level response fields land in Extra so nothing is lost across a
// decode/encode round trip.
type Order struct {
	ID             string              `json:"id,omitempty"`
	Object         string              `json:"object,omitempty"`
	LiveMode       bool                `json:"livemode"`
	Amount         int64               `json:"amount"`
	AmountRefunded int64               `json:"amount_refunded,omitempty"`
	Currency       string              `json:"currency,omitempty"`
	PaymentStatus  string              `json:"payment_status,omitempty"`
	PreAuthorize   bool                `json:"pre_authorize,omitempty"`
	CustomerInfo   *CustomerInfo       `json:"customer_info,omitempty"`
	Metadata       Metadata            `json:"metadata,omitempty"`
	LineItems      *List[LineItem]     `json:"line_items,omitempty"`
	TaxLines       *List[TaxLine]      `json:"tax_lines,omitempty"`
	ShippingLines  *List[ShippingLine] `json:"shipping_lines,omitempty"`
	DiscountLines  *List[DiscountLine] `json:"discount_lines,omitempty"`
	Charges        *List[Charge]       `json:"charges,omitempty"`
	CreatedAt      int64               `json:"created_at,omitempty"`
	UpdatedAt      int64               `json:"updated_at,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*o = Order(a)
	o.Extra = extra
	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return encodeWithExtra(alias(o), o.Extra)
}

// OrderRequest is the create/update payload. Absent optional fields are
// omitted from the wire, never sent as null, so a partial update does not
// clobber unset remote fields. ID is only used to address the item
// endpoint on updates and is not part of the body.
type OrderRequest struct {
	ID            string          `json:"-"`
	Currency      string          `json:"currency,omitempty"`
	LineItems     []LineItem      `json:"line_items,omitempty"`
	TaxLines      []TaxLine       `json:"tax_lines,omitempty"`
	ShippingLines []ShippingLine  `json:"shipping_lines,omitempty"`
	DiscountLines []DiscountLine  `json:"discount_lines,omitempty"`
	Charges       []ChargeRequest `json:"charges,omitempty"`
	CustomerInfo  *CustomerInfo   `json:"customer_info,omitempty"`
	Metadata      Metadata        `json:"metadata,omitempty"`
	PreAuthorize  bool            `json:"pre_authorize,omitempty"`
}

func (r OrderRequest) ResourceID() string { return r.ID }

// With* builders construct a new payload from an existing one plus
// overrides. Value receivers keep the originals untouched.

func (r OrderRequest) WithID(id string) OrderRequest {
	r.ID = id
	return r
}

func (r OrderRequest) WithCurrency(currency string) OrderRequest {
	r.Currency = currency
	return r
}

func (r OrderRequest) WithLineItems(items ...LineItem) OrderRequest {
	r.LineItems = items
	return r
}

func (r OrderRequest) WithCharges(charges ...ChargeRequest) OrderRequest {
	r.Charges = charges
	return r
}

func (r OrderRequest) WithCustomerInfo(info CustomerInfo) OrderRequest {
	r.CustomerInfo = &info
	return r
}

func (r OrderRequest) WithMetadata(md Metadata) OrderRequest {
	r.Metadata = md.Clone()
	return r
}

func (r OrderRequest) WithPreAuthorize(pre bool) OrderRequest {
	r.PreAuthorize = pre
	return r
}

// RefundInfo is the refund action payload. It is input only, never a
// persisted resource.
type RefundInfo struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason,omitempty"`
}
