package config

import "os"

// Config carries every externally-supplied setting. It is filled once in main
// from the process environment and passed by reference; packages must not read
// env vars themselves.
type Config struct {
	Port   string
	Domain string

	StripeSecretKey     string
	StripeWebhookSecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	NotifyEmail  string

	BookingsFile string
	ContactCSV   string
}

func Load() *Config {
	return &Config{
		Port:   getenv("PORT", "8080"),
		Domain: getenv("YOUR_DOMAIN", "http://localhost:8080"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		NotifyEmail:  os.Getenv("NOTIFY_EMAIL"),

		BookingsFile: getenv("BOOKINGS_FILE", "bookings.json"),
		ContactCSV:   getenv("CONTACT_CSV", "contacts.csv"),
	}
}

// MailConfigured reports whether every value needed to send mail is present.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPUsername != "" &&
		c.SMTPPassword != "" && c.NotifyEmail != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
