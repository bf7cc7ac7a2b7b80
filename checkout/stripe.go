package checkout

import (
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// SessionCreator abstracts hosted-checkout session creation so handlers can be
// tested without touching the Stripe API.
type SessionCreator interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeSessions struct {
	api *client.API
}

// NewStripeSessions returns a SessionCreator backed by the Stripe API. The key
// is scoped to this client; nothing touches the SDK's package-level state.
func NewStripeSessions(secretKey string) SessionCreator {
	return &stripeSessions{api: client.New(secretKey, nil)}
}

func (s *stripeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.New(params)
}
