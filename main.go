package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitewright/bookings"
	"sitewright/checkout"
	"sitewright/config"
	"sitewright/contact"
	"sitewright/notify"
	"sitewright/pages"
	"sitewright/ratelim"
	"sitewright/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func setupRouter(cfg *config.Config) (*httprouter.Router, error) {
	renderer, err := pages.NewRenderer("templates")
	if err != nil {
		return nil, err
	}

	store := bookings.NewFileStore(cfg.BookingsFile)
	leadLog := contact.NewCSVLog(cfg.ContactCSV)

	var notifier notify.Notifier = notify.Nop{}
	if cfg.MailConfigured() {
		notifier = notify.NewMailer(cfg)
	} else {
		log.Println("Mail not configured; notifications disabled")
	}

	var sessions checkout.SessionCreator
	if cfg.StripeSecretKey != "" {
		sessions = checkout.NewStripeSessions(cfg.StripeSecretKey)
	} else {
		log.Println("Stripe not configured; checkout disabled")
	}

	rateLimiter := ratelim.NewRateLimiter()

	router := httprouter.New()
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Write([]byte("200"))
	})

	routes.AddPageRoutes(router, pages.NewHandler(renderer))
	routes.AddBookingRoutes(router, bookings.NewHandler(store))
	routes.AddCheckoutRoutes(router, checkout.NewService(cfg, store, notifier, sessions), rateLimiter)
	routes.AddContactRoutes(router, contact.NewHandler(leadLog, notifier, renderer), rateLimiter)
	routes.AddStaticRoutes(router)

	return router, nil
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Load()

	port := cfg.Port
	if port[0] != ':' {
		port = ":" + port
	}

	router, err := setupRouter(cfg)
	if err != nil {
		log.Fatalf("❌ Startup failed: %v", err)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Stripe-Signature"},
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Graceful shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
