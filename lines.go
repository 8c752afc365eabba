package conekta

import "encoding/json"

// Child line resources of an order. Each gets a stable server-assigned id
// on creation and references its parent through parent_id. Like Order and
// Charge, each keeps unknown top-level response fields in Extra so a
// decode/encode round trip loses nothing.

type LineItem struct {
	ID          string   `json:"id,omitempty"`
	Object      string   `json:"object,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	UnitPrice   int64    `json:"unit_price,omitempty"`
	Quantity    int64    `json:"quantity,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (li *LineItem) UnmarshalJSON(data []byte) error {
	type alias LineItem
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*li = LineItem(a)
	li.Extra = extra
	return nil
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	type alias LineItem
	return encodeWithExtra(alias(li), li.Extra)
}

type TaxLine struct {
	ID          string `json:"id,omitempty"`
	Object      string `json:"object,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (tl *TaxLine) UnmarshalJSON(data []byte) error {
	type alias TaxLine
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*tl = TaxLine(a)
	tl.Extra = extra
	return nil
}

func (tl TaxLine) MarshalJSON() ([]byte, error) {
	type alias TaxLine
	return encodeWithExtra(alias(tl), tl.Extra)
}

type ShippingLine struct {
	ID             string   `json:"id,omitempty"`
	Object         string   `json:"object,omitempty"`
	ParentID       string   `json:"parent_id,omitempty"`
	Amount         int64    `json:"amount"`
	TrackingNumber string   `json:"tracking_number,omitempty"`
	Carrier        string   `json:"carrier,omitempty"`
	Method         string   `json:"method,omitempty"`
	Metadata       Metadata `json:"metadata,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (sl *ShippingLine) UnmarshalJSON(data []byte) error {
	type alias ShippingLine
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*sl = ShippingLine(a)
	sl.Extra = extra
	return nil
}

func (sl ShippingLine) MarshalJSON() ([]byte, error) {
	type alias ShippingLine
	return encodeWithExtra(alias(sl), sl.Extra)
}

type DiscountLine struct {
	ID       string `json:"id,omitempty"`
	Object   string `json:"object,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
	Code     string `json:"code,omitempty"`
	Type     string `json:"type,omitempty"`
	Amount   int64  `json:"amount"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (dl *DiscountLine) UnmarshalJSON(data []byte) error {
	type alias DiscountLine
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*dl = DiscountLine(a)
	dl.Extra = extra
	return nil
}

func (dl DiscountLine) MarshalJSON() ([]byte, error) {
	type alias DiscountLine
	return encodeWithExtra(alias(dl), dl.Extra)
}
