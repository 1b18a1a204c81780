// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Verify OTP modes accepted by App.VerifyOTPMode.
const (
	// VerifyOTPStrict opens the session only when the caller owns an account
	// bound to the verified email.
	VerifyOTPStrict = "strict"
	// VerifyOTPLegacy opens the session of the caller regardless of which
	// account the verified email belongs to.
	VerifyOTPLegacy = "legacy"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds security keys, token and OTP parameters and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the account database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the inbound HTTP transport settings.
	Server Server `envPrefix:"SERVER_"`

	// Mailer holds the outbound SMTP settings.
	Mailer Mailer `envPrefix:"MAILER_"`

	// Market holds the price provider endpoints and keys.
	Market Market `envPrefix:"MARKET_"`

	// Predict holds the return model training settings.
	Predict Predict `envPrefix:"PREDICT_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the terminal client's connection to the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// PasswordHashKey, when set, peppers password digests with HMAC-SHA256.
	// Leave empty to keep plain SHA-256 digests. Changing it invalidates
	// every stored password.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the HMAC secret shared with the chat gateway. Caller
	// tokens are verified with it.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of caller tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by the client.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// OTPTTL is the validity window of a one-time code. The default is the
	// fixed 300 s window of the login flow; any other value departs from it.
	// Env: APP_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`

	// VerifyOTPMode is VerifyOTPStrict or VerifyOTPLegacy.
	// Env: APP_VERIFY_OTP_MODE
	VerifyOTPMode string `env:"VERIFY_OTP_MODE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the account database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the account database.
type DB struct {
	// DSN selects the backend: a postgres:// or postgresql:// URL opens
	// PostgreSQL through pgx, anything else is a SQLite file path
	// (":memory:" included).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns bounds the PostgreSQL pool. SQLite always uses one
	// connection.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mailer holds SMTP settings. An empty Host selects the log-only mailer.
type Mailer struct {
	// Env: MAILER_HOST
	Host string `env:"HOST"`
	// Env: MAILER_PORT
	Port int `env:"PORT"`
	// Env: MAILER_USERNAME
	Username string `env:"USERNAME"`
	// Env: MAILER_PASSWORD
	Password string `env:"PASSWORD"`
	// From is the envelope and header sender. Defaults to Username.
	// Env: MAILER_FROM
	From string `env:"FROM"`
}

// Market holds price provider settings.
type Market struct {
	// Env: MARKET_COINGECKO_URL
	CoinGeckoURL string `env:"COINGECKO_URL"`
	// Env: MARKET_ALPHAVANTAGE_URL
	AlphaVantageURL string `env:"ALPHAVANTAGE_URL"`
	// Env: MARKET_ALPHAVANTAGE_KEY
	AlphaVantageKey string `env:"ALPHAVANTAGE_KEY"`
	// NewsAPIURL is the NewsAPI v2 base URL used by /finance_news.
	// Env: MARKET_NEWSAPI_URL
	NewsAPIURL string `env:"NEWSAPI_URL"`
	// Env: MARKET_NEWSAPI_KEY
	NewsAPIKey string `env:"NEWSAPI_KEY"`
	// Currency is the CoinGecko quote currency, e.g. "inr" or "usd".
	// Env: MARKET_CURRENCY
	Currency string `env:"CURRENCY"`
	// Env: MARKET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Predict holds the return model settings. An empty TrainingDataPath
// disables /predict.
type Predict struct {
	// TrainingDataPath is a CSV file with a Date,Open,High,Low,Close,Volume header.
	// Env: PREDICT_TRAINING_DATA_PATH
	TrainingDataPath string `env:"TRAINING_DATA_PATH"`
	// TestShare is the fraction of rows held out to report the test MSE.
	// Env: PREDICT_TEST_SHARE
	TestShare float64 `env:"TEST_SHARE"`
	// Seed makes the train/test split reproducible.
	// Env: PREDICT_SEED
	Seed uint64 `env:"SEED"`
}

// Workers holds background job intervals.
type Workers struct {
	// OTPPurgeInterval is how often expired challenges are swept. Zero or a
	// negative value disables the sweep.
	// Env: WORKERS_OTP_PURGE_INTERVAL
	OTPPurgeInterval time.Duration `env:"OTP_PURGE_INTERVAL"`
}

// Adapter holds the terminal client's view of the backend.
type Adapter struct {
	// HTTPAddress is the backend address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Identity is the caller identity the client signs its token for.
	// Env: ADAPTER_IDENTITY
	Identity int64 `env:"IDENTITY"`
}

// GetStructuredConfig loads, merges and validates the backend configuration.
// Sources, later ones overriding non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
