package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// accept either "1h30m" strings or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		OTPTTL          Duration `json:"otp_ttl"`
		VerifyOTPMode   string   `json:"verify_otp_mode"`
		LogLevel        string   `json:"log_level"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mailer struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"mailer,omitempty"`

	Market struct {
		CoinGeckoURL    string   `json:"coingecko_url"`
		AlphaVantageURL string   `json:"alphavantage_url"`
		AlphaVantageKey string   `json:"alphavantage_key"`
		NewsAPIURL      string   `json:"newsapi_url"`
		NewsAPIKey      string   `json:"newsapi_key"`
		Currency        string   `json:"currency"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"market,omitempty"`

	Predict struct {
		TrainingDataPath string  `json:"training_data_path"`
		TestShare        float64 `json:"test_share"`
		Seed             uint64  `json:"seed"`
	} `json:"predict,omitempty"`

	Workers struct {
		OTPPurgeInterval Duration `json:"otp_purge_interval"`
	} `json:"workers,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Identity       int64    `json:"identity"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			OTPTTL:          time.Duration(jsonCfg.App.OTPTTL),
			VerifyOTPMode:   jsonCfg.App.VerifyOTPMode,
			LogLevel:        jsonCfg.App.LogLevel,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mailer: Mailer{
			Host:     jsonCfg.Mailer.Host,
			Port:     jsonCfg.Mailer.Port,
			Username: jsonCfg.Mailer.Username,
			Password: jsonCfg.Mailer.Password,
			From:     jsonCfg.Mailer.From,
		},
		Market: Market{
			CoinGeckoURL:    jsonCfg.Market.CoinGeckoURL,
			AlphaVantageURL: jsonCfg.Market.AlphaVantageURL,
			AlphaVantageKey: jsonCfg.Market.AlphaVantageKey,
			NewsAPIURL:      jsonCfg.Market.NewsAPIURL,
			NewsAPIKey:      jsonCfg.Market.NewsAPIKey,
			Currency:        jsonCfg.Market.Currency,
			RequestTimeout:  time.Duration(jsonCfg.Market.RequestTimeout),
		},
		Predict: Predict{
			TrainingDataPath: jsonCfg.Predict.TrainingDataPath,
			TestShare:        jsonCfg.Predict.TestShare,
			Seed:             jsonCfg.Predict.Seed,
		},
		Workers: Workers{
			OTPPurgeInterval: time.Duration(jsonCfg.Workers.OTPPurgeInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Identity:       jsonCfg.Adapter.Identity,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
