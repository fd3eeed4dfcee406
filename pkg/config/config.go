package config

import (
	"github.com/kelseyhightower/envconfig"

	pkgtls "github.com/invenhub/pos-service/pkg/tls"
)

type Config struct {
	Port           string   `envconfig:"PORT" default:"8080"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// none | redis | dynamo
	PersistenceMode string `envconfig:"PERSISTENCE_MODE" default:"none"`
	RedisAddr       string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	AWSRegion       string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	SalesTableName  string `envconfig:"SALES_TABLE_NAME" default:"pos-sales"`
	DynamoEndpoint  string `envconfig:"DYNAMO_ENDPOINT" default:""`

	// Empty disables event publishing
	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:""`

	JWTSecret    string  `envconfig:"JWT_SECRET" default:"dev-secret"`
	AuthRequired bool    `envconfig:"AUTH_REQUIRED" default:"false"`
	TaxRate      float64 `envconfig:"TAX_RATE" default:"0.08"`

	TLS pkgtls.TLSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
