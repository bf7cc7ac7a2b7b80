package routes

import (
	"net/http"

	"sitewright/bookings"
	"sitewright/checkout"
	"sitewright/contact"
	"sitewright/pages"
	"sitewright/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddPageRoutes(router *httprouter.Router, h *pages.Handler) {
	router.GET("/", h.Home)
	router.GET("/portfolio", h.Portfolio)
	router.GET("/templates", h.Templates)
	router.GET("/templates/:slug", h.TemplateDetail)
	router.GET("/pricing", h.Pricing)
	router.GET("/book", h.Book)
	router.GET("/privacy", h.Privacy)
	router.GET("/checkout/success", h.CheckoutSuccess)
	router.GET("/checkout/cancel", h.CheckoutCancel)
}

func AddBookingRoutes(router *httprouter.Router, h *bookings.Handler) {
	router.GET("/api/booked-dates", h.GetBookedDates)
}

func AddCheckoutRoutes(router *httprouter.Router, s *checkout.Service, rl *ratelim.RateLimiter) {
	router.POST("/create-checkout-session", rl.Limit(s.CreateCheckoutSession))
	// Stripe retries on failure; never rate limit the webhook
	router.POST("/webhook", s.Webhook)
}

func AddContactRoutes(router *httprouter.Router, h *contact.Handler, rl *ratelim.RateLimiter) {
	router.GET("/contact", h.ShowForm)
	router.POST("/contact", rl.Limit(h.Submit))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/*filepath", http.Dir("static"))
}
