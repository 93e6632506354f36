package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"storefront.db"`

	Billing   Billing   `envPrefix:"BILLING_"`
	Registrar Registrar `envPrefix:"REGISTRAR_"`
	Checkout  Checkout  `envPrefix:"CHECKOUT_"`
}

type Billing struct {
	BaseAPIURL string        `env:"BASE_API_URL"`
	APIKey     string        `env:"API_KEY"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type Registrar struct {
	BaseAPIURL string        `env:"BASE_API_URL"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type Checkout struct {
	SuccessURL string `env:"SUCCESS_URL" envDefault:"/checkout/success"`
	CancelURL  string `env:"CANCEL_URL" envDefault:"/cart"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
