package metrics

// Config holds the metrics exposition settings.
type Config struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"hrms"`
	// Addr is the worker's metrics listener; the api serves /metrics on its own port.
	Addr string `env:"METRICS_ADDR" envDefault:":9091"`
}
