// conekta-smoke drives a full order lifecycle against a live entrypoint:
// create with a pre-authorized card charge, attach children, capture,
// refund, then walk the collection. Configuration comes from
// CONEKTA_API_KEY and CONEKTA_ENTRYPOINT_URL.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gebv/conekta"
	"github.com/gebv/conekta/httputils"
	"github.com/gebv/conekta/orders"
)

var VERSION = "dev"

var (
	timeoutF   = flag.Duration("timeout", 30*time.Second, "Total run deadline.")
	limitF     = flag.String("limit", "10", "Page size for the listing walk.")
	pagesF     = flag.Int("pages", 3, "Max pages to walk.")
	debugAddrF = flag.String("debug-addr", "", "Address to expose /metrics on. Empty disables.")
)

func main() {
	flag.Parse()

	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zap.DebugLevel)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutF)
	defer cancel()

	if *debugAddrF != "" {
		go func() {
			l.Info("debug mux listening", zap.String("address", *debugAddrF))
			if err := http.ListenAndServe(*debugAddrF, httputils.RunDebugMux()); err != nil {
				l.Warn("debug mux stopped", zap.Error(err))
			}
		}()
	}

	cfg := conekta.FromEnv()
	if cfg.APIKey == "" {
		log.Panic("CONEKTA_API_KEY is not set")
	}

	oc := orders.New(cfg)

	order, err := oc.Create(ctx, conekta.OrderRequest{
		Currency:     "MXN",
		PreAuthorize: true,
		Metadata:     conekta.Metadata{"smoke": true, "version": VERSION},
		CustomerInfo: &conekta.CustomerInfo{
			Name:  "John Constantine",
			Phone: "+5213353319758",
			Email: "hola@hola.com",
		},
		LineItems: []conekta.LineItem{{
			Name:      "Box of Cohiba S1s",
			UnitPrice: 35000,
			Quantity:  1,
		}},
		Charges: []conekta.ChargeRequest{{
			Amount: 35000,
			PaymentMethod: &conekta.PaymentMethod{
				Type:    conekta.PaymentMethodCard,
				TokenID: "tok_test_visa_4242",
			},
		}},
	})
	if err != nil {
		log.Panic("Failed to create order: ", err)
	}
	l.Info("order created", zap.String("id", order.ID), zap.Int64("amount", order.Amount))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := oc.CreateTaxLine(gctx, order.ID, conekta.TaxLine{Description: "IVA", Amount: 60})
		return err
	})
	g.Go(func() error {
		_, err := oc.CreateShippingLine(gctx, order.ID, conekta.ShippingLine{
			Carrier:        "USPS",
			Method:         "Train",
			TrackingNumber: "TRACK123",
		})
		return err
	})
	g.Go(func() error {
		_, err := oc.CreateDiscountLine(gctx, order.ID, conekta.DiscountLine{
			Code:   "loyalty-10",
			Type:   "loyalty",
			Amount: 5,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		log.Panic("Failed to attach children: ", err)
	}

	captured, err := oc.Capture(ctx, order.ID)
	if err != nil {
		log.Panic("Failed to capture order: ", err)
	}
	l.Info("order captured", zap.String("payment_status", captured.PaymentStatus))

	refunded, err := oc.CreateRefund(ctx, order.ID, conekta.RefundInfo{
		Amount: captured.Amount,
		Reason: "requested_by_client",
	})
	if err != nil {
		log.Panic("Failed to refund order: ", err)
	}
	l.Info("order refunded", zap.String("payment_status", refunded.PaymentStatus))

	page, err := oc.Where(ctx, conekta.Query{"limit": *limitF})
	if err != nil {
		log.Panic("Failed to list orders: ", err)
	}
	for n := 1; ; n++ {
		l.Info("page", zap.Int("n", n), zap.Int("items", len(page.Data)), zap.Bool("has_more", page.HasMore))
		if n >= *pagesF || !page.HasMore {
			break
		}
		page, err = page.Next(ctx)
		if err != nil {
			log.Panic("Failed to walk pages: ", err)
		}
	}
}
