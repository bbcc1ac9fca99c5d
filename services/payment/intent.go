// Package payment creates card payment intents with Stripe.
package payment

import (
	"context"
	"fmt"
	"math"

	"bookhouse/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentProvider creates a payment intent and returns its client secret.
type IntentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// IntentService turns a catalog price into a provider payment intent.
type IntentService struct {
	Provider IntentProvider
	Currency string
}

func NewIntentService(provider IntentProvider) *IntentService {
	return &IntentService{Provider: provider, Currency: string(stripe.CurrencyUSD)}
}

// CreateForPrice charges price in the smallest currency unit.
func (s *IntentService) CreateForPrice(ctx context.Context, price float64) (string, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return "", fmt.Errorf("%w: price must be positive", utils.ErrInvalidInput)
	}
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return "", fmt.Errorf("%w: price %v is below the smallest unit", utils.ErrInvalidInput, price)
	}

	secret, err := s.Provider.CreateIntent(ctx, amount, s.Currency)
	if err != nil {
		return "", fmt.Errorf("%w: create payment intent: %w", utils.ErrUpstream, err)
	}
	return secret, nil
}

// StripeProvider implements IntentProvider with the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider builds a provider for key. Pass nil backends for the
// default Stripe endpoints.
func NewStripeProvider(key string, backends *stripe.Backends) *StripeProvider {
	return &StripeProvider{api: client.New(key, backends)}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
