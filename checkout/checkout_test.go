package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"sitewright/config"

	"github.com/stripe/stripe-go/v78"
)

// memStore is an in-memory bookings.Store.
type memStore struct {
	dates map[string]bool
}

func newMemStore() *memStore {
	return &memStore{dates: make(map[string]bool)}
}

func (m *memStore) ListDates() []string {
	out := make([]string, 0, len(m.dates))
	for d := range m.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (m *memStore) ReserveDate(iso string) error {
	m.dates[iso] = true
	return nil
}

type recordingNotifier struct {
	subjects []string
}

func (n *recordingNotifier) Notify(subject, body string) bool {
	n.subjects = append(n.subjects, subject)
	return true
}

// fakeSessions records the params it was called with.
type fakeSessions struct {
	calls  int
	params *stripe.CheckoutSessionParams
	err    error
}

func (f *fakeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.calls++
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{URL: "https://checkout.stripe.com/pay/cs_test_123"}, nil
}

func newTestService(cfg *config.Config, sessions SessionCreator) (*Service, *memStore, *recordingNotifier) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	return NewService(cfg, store, notifier, sessions), store, notifier
}

func postCheckout(s *Service, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.CreateCheckoutSession(rec, req, nil)
	return rec
}

func TestCreateCheckoutSessionNoConfig(t *testing.T) {
	sessions := &fakeSessions{}
	svc, _, _ := newTestService(&config.Config{Domain: "http://localhost:8080"}, sessions)

	rec := postCheckout(svc, `{"date":"2025-03-01"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if sessions.calls != 0 {
		t.Fatal("session creation attempted without a secret key")
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}

func TestCreateCheckoutSessionSuccess(t *testing.T) {
	sessions := &fakeSessions{}
	cfg := &config.Config{StripeSecretKey: "sk_test_x", Domain: "https://sitewright.example"}
	svc, _, notifier := newTestService(cfg, sessions)

	rec := postCheckout(svc, `{"date":"2025-03-01"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["checkout_url"] != "https://checkout.stripe.com/pay/cs_test_123" {
		t.Fatalf("unexpected checkout_url %q", body["checkout_url"])
	}

	p := sessions.params
	if p.Metadata["date"] != "2025-03-01" {
		t.Fatalf("date missing from metadata: %v", p.Metadata)
	}
	if p.Metadata["booking_ref"] == "" {
		t.Fatal("booking_ref missing from metadata")
	}
	li := p.LineItems[0]
	if *li.PriceData.UnitAmount != depositAmount || *li.Quantity != 1 {
		t.Fatalf("unexpected line item %+v", li)
	}
	if !strings.Contains(*li.PriceData.ProductData.Name, "2025-03-01") {
		t.Fatalf("product name should carry the date, got %q", *li.PriceData.ProductData.Name)
	}
	if *p.SuccessURL != "https://sitewright.example/checkout/success?date=2025-03-01" {
		t.Fatalf("unexpected success url %q", *p.SuccessURL)
	}

	if len(notifier.subjects) != 1 || notifier.subjects[0] != "Checkout started" {
		t.Fatalf("expected a checkout-started notification, got %v", notifier.subjects)
	}
}

func TestCreateCheckoutSessionNoDate(t *testing.T) {
	sessions := &fakeSessions{}
	cfg := &config.Config{StripeSecretKey: "sk_test_x", Domain: "https://sitewright.example"}
	svc, _, notifier := newTestService(cfg, sessions)

	rec := postCheckout(svc, `{}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if name := *sessions.params.LineItems[0].PriceData.ProductData.Name; !strings.Contains(name, "TBD") {
		t.Fatalf("expected TBD placeholder, got %q", name)
	}
	// no date means nothing worth notifying about
	if len(notifier.subjects) != 0 {
		t.Fatalf("unexpected notifications %v", notifier.subjects)
	}
}

func TestCreateCheckoutSessionProviderError(t *testing.T) {
	sessions := &fakeSessions{err: errors.New("stripe is down")}
	cfg := &config.Config{StripeSecretKey: "sk_test_x", Domain: "https://sitewright.example"}
	svc, _, notifier := newTestService(cfg, sessions)

	rec := postCheckout(svc, `{"date":"2025-03-01"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if len(notifier.subjects) != 0 {
		t.Fatal("should not notify on a failed session")
	}
}
