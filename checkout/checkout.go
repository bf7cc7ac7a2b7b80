package checkout

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"sitewright/bookings"
	"sitewright/config"
	"sitewright/notify"
	"sitewright/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/stripe/stripe-go/v78"
)

// Deposit taken to secure a build slot: £100, charged in pence.
const (
	depositAmount   = 10000
	depositCurrency = string(stripe.CurrencyGBP)
)

type Service struct {
	cfg      *config.Config
	store    bookings.Store
	notifier notify.Notifier
	sessions SessionCreator
}

func NewService(cfg *config.Config, store bookings.Store, notifier notify.Notifier, sessions SessionCreator) *Service {
	return &Service{cfg: cfg, store: store, notifier: notifier, sessions: sessions}
}

// CreateCheckoutSession starts a hosted checkout for a deposit on the chosen
// date. The date rides along as session metadata; the webhook reads it back
// once payment completes. Nothing is reserved here.
func (s *Service) CreateCheckoutSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Date string `json:"date"`
	}
	// tolerate an empty or malformed body; date simply stays unset
	_ = json.NewDecoder(r.Body).Decode(&body)

	if s.cfg.StripeSecretKey == "" {
		utils.RespondWithError(w, http.StatusInternalServerError, "Stripe not configured")
		return
	}

	label := body.Date
	if label == "" {
		label = "TBD"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(depositCurrency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("Build Slot Deposit (%s)", label)),
				},
				UnitAmount: stripe.Int64(depositAmount),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(s.cfg.Domain + "/checkout/success?date=" + url.QueryEscape(body.Date)),
		CancelURL:  stripe.String(s.cfg.Domain + "/checkout/cancel"),
	}
	params.AddMetadata("date", body.Date)
	params.AddMetadata("booking_ref", uuid.NewString())

	sess, err := s.sessions.Create(params)
	if err != nil {
		log.Printf("checkout: session create failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "could not create checkout session")
		return
	}

	if body.Date != "" {
		s.notifier.Notify("Checkout started",
			fmt.Sprintf("Someone is checking out for %s.", body.Date))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"checkout_url": sess.URL})
}
