package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"shoply/app/models"
	"shoply/app/services"
)

type Config struct {
	APIKey     string
	SuccessURL string
	CancelURL  string
	Currency   string
}

// Client creates Stripe Checkout Sessions for pending orders. The whole
// payment flow is delegated to the provider; we only hold the session id.
type Client struct{ cfg Config }

func NewClient(cfg Config) *Client {
	stripe.Key = cfg.APIKey
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return &Client{cfg: cfg}
}

var _ services.PaymentProvider = (*Client)(nil)

func (c *Client) CreateSession(ctx context.Context, reference string, items []models.OrderItem) (*services.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(item.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(c.cfg.Currency),
				UnitAmount: stripe.Int64(item.UnitCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
		})
	}
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(reference),
		SuccessURL:        stripe.String(c.cfg.SuccessURL),
		CancelURL:         stripe.String(c.cfg.CancelURL),
		LineItems:         lineItems,
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, err
	}
	return &services.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
