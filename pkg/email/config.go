package email

import (
	"fmt"
	"time"
)

// Transport names the delivery backend chosen from the configuration.
type Transport string

const (
	TransportSMTP     Transport = "smtp"
	TransportPostmark Transport = "postmark"
	TransportDev      Transport = "dev"
)

// Config holds email service configuration.
//
// SMTP is used when SMTPHost and SMTPUser are set, Postmark when both of its
// tokens are set, and otherwise messages are written to DevDir for inspection.
type Config struct {
	SMTPHost    string        `env:"SMTP_HOST"`
	SMTPPort    int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure  bool          `env:"SMTP_SECURE" envDefault:"false"` // implicit TLS, usually port 465
	SMTPUser    string        `env:"SMTP_USER"`
	SMTPPass    string        `env:"SMTP_PASS"`
	SMTPTimeout time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SenderEmail  string `env:"FROM_EMAIL" envDefault:"no-reply@sagar.company"`
	SupportEmail string `env:"SUPPORT_EMAIL"` // Reply-To, optional

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// Transport reports which backend New will build.
func (c Config) Transport() Transport {
	switch {
	case c.SMTPHost != "" && c.SMTPUser != "":
		return TransportSMTP
	case c.PostmarkServerToken != "" && c.PostmarkAccountToken != "":
		return TransportPostmark
	default:
		return TransportDev
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if !IsValidAddress(c.SenderEmail) {
		return fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if c.SupportEmail != "" && !IsValidAddress(c.SupportEmail) {
		return fmt.Errorf("%w: SupportEmail must be a valid email address", ErrInvalidConfig)
	}
	if c.Transport() == TransportSMTP {
		if c.SMTPPass == "" {
			return fmt.Errorf("%w: SMTP_PASS is required when SMTP_USER is set", ErrInvalidConfig)
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			return fmt.Errorf("%w: SMTP_PORT must be between 1 and 65535", ErrInvalidConfig)
		}
	}
	return nil
}
