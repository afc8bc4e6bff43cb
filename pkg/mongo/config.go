package mongo

import "time"

// Config represents the configuration for the HR database.
type Config struct {
	URI             string        `env:"MONGO_URI,required"`
	Database        string        `env:"MONGO_DATABASE" envDefault:"hrms"`
	ConnectTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGO_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGO_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"MONGO_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"MONGO_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"MONGO_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"MONGO_RETRY_INTERVAL" envDefault:"2s"`
}
