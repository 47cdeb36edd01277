package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type (
	APP struct {
		Name string
		Host string
		Port string
		Env  string
	}
	Auth struct {
		JWTSecret      string
		TokenTTL       time.Duration
		HashIterations int
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	Storage struct {
		UploadDir     string
		PublicBaseURL string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App     APP
		Auth    Auth
		DB      DB
		Storage Storage
		MQ      MQ
	}
)

// Load reads the process environment into one Config value. Callers load
// .env beforehand (godotenv) so viper sees a flat environment either way.
func Load() Config {
	v := viper.New()

	v.SetDefault("service_name", "accountmanagerapi")
	v.SetDefault("service_host", "0.0.0.0")
	v.SetDefault("service_port", "8080")
	v.SetDefault("service_env", "dev")
	v.SetDefault("jwt_token_ttl", "1h")
	v.SetDefault("hash_iterations", 600_000)
	v.SetDefault("upload_dir", "./uploads")
	v.SetDefault("upload_public_base_url", "http://localhost:8080/uploads")
	v.SetDefault("postgres_port", "5432")
	v.SetDefault("rabbitmq_amqp_port", "5672")
	v.SetDefault("rabbitmq_exchange", "account.events")
	v.SetDefault("rabbitmq_exchange_type", "direct")
	v.SetDefault("rabbitmq_queue_name", "account.events.audit")

	v.AutomaticEnv()

	return Config{
		App: APP{
			Name: v.GetString("service_name"),
			Host: v.GetString("service_host"),
			Port: v.GetString("service_port"),
			Env:  v.GetString("service_env"),
		},
		Auth: Auth{
			JWTSecret:      v.GetString("service_jwt_secret"),
			TokenTTL:       v.GetDuration("jwt_token_ttl"),
			HashIterations: v.GetInt("hash_iterations"),
		},
		DB: DB{
			User:     v.GetString("postgres_user"),
			Password: v.GetString("postgres_password"),
			Name:     v.GetString("postgres_db"),
			Host:     v.GetString("postgres_host"),
			Port:     v.GetString("postgres_port"),
		},
		Storage: Storage{
			UploadDir:     v.GetString("upload_dir"),
			PublicBaseURL: v.GetString("upload_public_base_url"),
		},
		MQ: MQ{
			User:         v.GetString("rabbitmq_user"),
			Password:     v.GetString("rabbitmq_password"),
			Vhost:        v.GetString("rabbitmq_vhost"),
			Host:         v.GetString("rabbitmq_host"),
			AmqpPort:     v.GetString("rabbitmq_amqp_port"),
			Exchange:     v.GetString("rabbitmq_exchange"),
			ExchangeType: v.GetString("rabbitmq_exchange_type"),
			QueueName:    v.GetString("rabbitmq_queue_name"),
		},
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
