package conekta

import "encoding/json"

// Payment method variants, keyed by PaymentMethod.Type.
const (
	PaymentMethodCard    = "card"
	PaymentMethodBanorte = "banorte"
	PaymentMethodOxxo    = "oxxo"
	PaymentMethodSpei    = "spei"
)

// PaymentMethod is a tagged variant: Type selects which of the remaining
// fields are meaningful (TokenID for card, ExpiresAt for bank reference
// methods). The server echoes extra descriptive fields (Last4, Reference)
// on responses.
type PaymentMethod struct {
	Type      string `json:"type"`
	Object    string `json:"object,omitempty"`
	TokenID   string `json:"token_id,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
	Reference string `json:"reference,omitempty"`
	Bank      string `json:"bank,omitempty"`
	Last4     string `json:"last4,omitempty"`
	Brand     string `json:"brand,omitempty"`
}

// Charge is a payment attempt against an order. It cannot exist without
// its parent order id. Unknown top-level response fields land in Extra,
// same as on Order.
type Charge struct {
	ID            string         `json:"id,omitempty"`
	Object        string         `json:"object,omitempty"`
	LiveMode      bool           `json:"livemode"`
	OrderID       string         `json:"order_id,omitempty"`
	Status        string         `json:"status,omitempty"`
	Currency      string         `json:"currency,omitempty"`
	Amount        int64          `json:"amount"`
	Fee           int64          `json:"fee,omitempty"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
	CreatedAt     int64          `json:"created_at,omitempty"`
	PaidAt        int64          `json:"paid_at,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (c *Charge) UnmarshalJSON(data []byte) error {
	type alias Charge
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*c = Charge(a)
	c.Extra = extra
	return nil
}

func (c Charge) MarshalJSON() ([]byte, error) {
	type alias Charge
	return encodeWithExtra(alias(c), c.Extra)
}

// ChargeRequest is the charge creation payload, used both inline on order
// creation and against the charges child endpoint.
type ChargeRequest struct {
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
	Amount        int64          `json:"amount,omitempty"`
}
