package conekta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, body string, v interface{}) map[string]json.RawMessage {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestLineItemRoundTripKeepsUnknownFields(t *testing.T) {
	var li LineItem
	m := roundTrip(t, `{"id":"line_item_1","name":"gear","unit_price":100,"antifraud_score":42}`, &li)

	assert.Equal(t, "line_item_1", li.ID)
	require.Contains(t, li.Extra, "antifraud_score")
	assert.JSONEq(t, `42`, string(m["antifraud_score"]))
}

func TestTaxLineRoundTripKeepsUnknownFields(t *testing.T) {
	var tl TaxLine
	m := roundTrip(t, `{"id":"tax_lin_1","description":"IVA","amount":60,"rate":0.16}`, &tl)

	assert.EqualValues(t, 60, tl.Amount)
	require.Contains(t, tl.Extra, "rate")
	assert.JSONEq(t, `0.16`, string(m["rate"]))
}

func TestShippingLineRoundTripKeepsUnknownFields(t *testing.T) {
	var sl ShippingLine
	m := roundTrip(t, `{"id":"ship_lin_1","carrier":"USPS","amount":0,"estimated_delivery":"2d"}`, &sl)

	assert.Equal(t, "USPS", sl.Carrier)
	require.Contains(t, sl.Extra, "estimated_delivery")
	assert.JSONEq(t, `"2d"`, string(m["estimated_delivery"]))
}

func TestDiscountLineRoundTripKeepsUnknownFields(t *testing.T) {
	var dl DiscountLine
	m := roundTrip(t, `{"id":"dis_lin_1","code":"loyalty-10","amount":5,"campaign_id":"cmp_1"}`, &dl)

	assert.Equal(t, "loyalty-10", dl.Code)
	require.Contains(t, dl.Extra, "campaign_id")
	assert.JSONEq(t, `"cmp_1"`, string(m["campaign_id"]))
}
