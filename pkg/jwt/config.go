package jwt

import "time"

// Config holds the signing settings for access tokens.
type Config struct {
	Secret string        `env:"JWT_SECRET,required"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return ErrMissingSigningKey
	}
	if c.TTL <= 0 {
		return ErrInvalidTTL
	}
	return nil
}
