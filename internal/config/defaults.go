package config

import (
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "defisensei",
			TokenDuration: 24 * time.Hour,
			OTPTTL:        models.DefaultOTPTTL,
			VerifyOTPMode: VerifyOTPStrict,
			LogLevel:      "debug",
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				DSN:          "defisensei.db",
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Mailer: Mailer{
			Port: 587,
		},
		Market: Market{
			CoinGeckoURL:    "https://api.coingecko.com/api/v3",
			AlphaVantageURL: "https://www.alphavantage.co",
			NewsAPIURL:      "https://newsapi.org/v2",
			Currency:        "inr",
			RequestTimeout:  10 * time.Second,
		},
		Predict: Predict{
			TestShare: 0.2,
			Seed:      42,
		},
		Workers: Workers{
			OTPPurgeInterval: time.Minute,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
	}
}
