package checkout

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

const maxWebhookBody = 65536

// Webhook is the payment provider's server-to-server callback and the only
// authentication boundary on the reservation path. The signature check gates
// everything; after that the handler acks with 200 so Stripe stops retrying.
// Redelivery of the same event is safe: ReserveDate is idempotent.
func (s *Service) Webhook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "could not read payload", http.StatusBadRequest)
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		r.Header.Get("Stripe-Signature"),
		s.cfg.StripeWebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.Printf("webhook: verification failed: %v", err)
		http.Error(w, "verification failed", http.StatusBadRequest)
		return
	}

	if event.Type == stripe.EventTypeCheckoutSessionCompleted {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			http.Error(w, "malformed event object", http.StatusBadRequest)
			return
		}
		if date := session.Metadata["date"]; date != "" {
			if err := s.store.ReserveDate(date); err != nil {
				// 5xx makes Stripe redeliver, which is what we want here
				log.Printf("webhook: reserve %s failed: %v", date, err)
				http.Error(w, "could not record booking", http.StatusInternalServerError)
				return
			}
			s.notifier.Notify("Booked slot confirmed: "+date,
				fmt.Sprintf("A client successfully paid the deposit for %s.", date))
		}
	}

	w.WriteHeader(http.StatusOK)
}
