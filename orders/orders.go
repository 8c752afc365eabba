// Package orders is the typed operation surface for the order aggregate
// and its child resources. Everything here is a thin wrapper over the
// generic resource engine: the order-specific knowledge lives entirely in
// the descriptors below.
package orders

import (
	"context"

	"go.uber.org/zap"

	"github.com/gebv/conekta"
	"github.com/gebv/conekta/resource"
)

const (
	ActionCapture = "capture"
	ActionRefund  = "refund"
)

var (
	lineItems     = resource.Descriptor{Path: "line_items"}
	taxLines      = resource.Descriptor{Path: "tax_lines"}
	shippingLines = resource.Descriptor{Path: "shipping_lines"}
	discountLines = resource.Descriptor{Path: "discount_lines"}
	charges       = resource.Descriptor{Path: "charges"}
)

type OrderContext struct {
	rc *resource.Context[conekta.Order]
	l  *zap.Logger
}

func New(cfg conekta.Config) *OrderContext {
	return &OrderContext{
		rc: resource.NewContext[conekta.Order](cfg, resource.Descriptor{
			Path: "orders",
			Actions: map[string]resource.ActionSpec{
				ActionCapture: {},
				ActionRefund:  {Suffix: "refunds"},
			},
		}),
		l: zap.L().Named("orders"),
	}
}

func (c *OrderContext) Create(ctx context.Context, req conekta.OrderRequest) (*conekta.Order, error) {
	return c.rc.Create(ctx, req)
}

func (c *OrderContext) Update(ctx context.Context, req conekta.OrderRequest) (*conekta.Order, error) {
	return c.rc.Update(ctx, req)
}

func (c *OrderContext) Find(ctx context.Context, id string) (*conekta.Order, error) {
	return c.rc.Find(ctx, id)
}

func (c *OrderContext) Where(ctx context.Context, q conekta.Query) (*resource.Page[conekta.Order], error) {
	return c.rc.Where(ctx, q)
}

// Capture settles a pre-authorized order; its pending charge comes back
// paid.
func (c *OrderContext) Capture(ctx context.Context, id string) (*conekta.Order, error) {
	o, err := c.rc.Action(ctx, id, ActionCapture, nil)
	if err != nil {
		c.l.Warn(
			"capture order",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}

// CreateRefund refunds a captured order; the order comes back with
// payment status refunded.
func (c *OrderContext) CreateRefund(ctx context.Context, id string, info conekta.RefundInfo) (*conekta.Order, error) {
	o, err := c.rc.Action(ctx, id, ActionRefund, info)
	if err != nil {
		c.l.Warn(
			"create refund",
			zap.String("order_id", id),
			zap.Int64("amount", info.Amount),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}

func (c *OrderContext) CreateCharge(ctx context.Context, orderID string, req conekta.ChargeRequest) (*conekta.Charge, error) {
	return resource.CreateChild[conekta.Charge](ctx, c.rc, orderID, charges, req)
}

func (c *OrderContext) CreateLineItem(ctx context.Context, orderID string, item conekta.LineItem) (*conekta.LineItem, error) {
	return resource.CreateChild[conekta.LineItem](ctx, c.rc, orderID, lineItems, item)
}

func (c *OrderContext) CreateTaxLine(ctx context.Context, orderID string, line conekta.TaxLine) (*conekta.TaxLine, error) {
	return resource.CreateChild[conekta.TaxLine](ctx, c.rc, orderID, taxLines, line)
}

func (c *OrderContext) CreateShippingLine(ctx context.Context, orderID string, line conekta.ShippingLine) (*conekta.ShippingLine, error) {
	return resource.CreateChild[conekta.ShippingLine](ctx, c.rc, orderID, shippingLines, line)
}

func (c *OrderContext) CreateDiscountLine(ctx context.Context, orderID string, line conekta.DiscountLine) (*conekta.DiscountLine, error) {
	return resource.CreateChild[conekta.DiscountLine](ctx, c.rc, orderID, discountLines, line)
}
