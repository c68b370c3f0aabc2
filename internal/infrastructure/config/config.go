package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWKSURI is the identity provider endpoint publishing the RS256 keys
	// access tokens are verified against.
	JWKSURI string `env:"JWKS_URI, default=http://localhost:5501/.well-known/jwks.json"`

	CORS  CORSConfig
	Mongo MongoConfig
	Redis RedisConfig
	Kafka KafkaConfig
	S3    S3Config
}

type CORSConfig struct {
	Origins     []string `env:"CORS_ORIGINS,     default=http://localhost:3000"`
	Credentials bool     `env:"CORS_CREDENTIALS, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type KafkaConfig struct {
	Brokers      []string `env:"KAFKA_BROKERS,       default=localhost:9092"`
	ClientID     string   `env:"KAFKA_CLIENT_ID,     default=catalog-service"`
	ProductTopic string   `env:"KAFKA_PRODUCT_TOPIC, default=product"`
}

type S3Config struct {
	Region          string `env:"S3_REGION, default=us-east-1"`
	Bucket          string `env:"S3_BUCKET, default=catalog-assets"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
