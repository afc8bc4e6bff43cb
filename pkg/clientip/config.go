package clientip

// Config lists the proxy headers that may carry the client address.
// Only set headers your own proxy overwrites; clients can forge the rest.
type Config struct {
	TrustedHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:"," envDefault:"X-Forwarded-For,X-Real-IP"`
}
