// Package market fetches live prices and headlines for the chat commands
// /coin, /forex, /stock, /market, /finance_news and /predict. Failures are oops errors carrying one of the Code*
// constants so callers can pick a message without parsing text.
package market

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/samber/oops"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// Error codes attached to provider failures.
const (
	CodeNotFound    = "MARKET_NOT_FOUND"
	CodeUnavailable = "MARKET_UNAVAILABLE"
	CodeRateLimited = "MARKET_RATE_LIMITED"
)

//go:generate mockgen -source=market.go -destination=../mock/market_mock.go -package=mock

// Provider is the market data capability used by the bot.
type Provider interface {
	// CoinPrice returns the price of a CoinGecko coin id in the configured
	// quote currency.
	CoinPrice(ctx context.Context, coin string) (float64, error)
	// ExchangeRate returns how many units of to one unit of from buys.
	ExchangeRate(ctx context.Context, from, to string) (float64, error)
	// StockQuote returns the latest daily bar of symbol.
	StockQuote(ctx context.Context, symbol string) (models.Quote, error)
	// BusinessHeadlines returns the current top business headlines.
	BusinessHeadlines(ctx context.Context) ([]models.Article, error)
}

type provider struct {
	*coinGecko
	*alphaVantage
	*newsAPI
}

// NewProvider combines CoinGecko (coins), Alpha Vantage (forex, stocks) and
// NewsAPI (headlines).
func NewProvider(cfg config.Market, log *logger.Logger) Provider {
	log.Debug().Str("currency", cfg.Currency).Msg("creating market data provider")
	return &provider{
		coinGecko:    newCoinGecko(cfg),
		alphaVantage: newAlphaVantage(cfg),
		newsAPI:      newNewsAPI(cfg),
	}
}

// HasCode reports whether err carries the oops code.
func HasCode(err error, code string) bool {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}

	return oopsErr.Code() == code
}

// statusError classifies a non-2xx response.
func statusError(resp *resty.Response, provider string) error {
	builder := oops.
		In("market").
		With("provider", provider).
		With("status", resp.StatusCode())

	switch resp.StatusCode() {
	case http.StatusTooManyRequests:
		return builder.Code(CodeRateLimited).Errorf("%s rate limit reached", provider)
	case http.StatusNotFound:
		return builder.Code(CodeNotFound).Errorf("%s returned not found", provider)
	}

	return builder.Code(CodeUnavailable).Errorf("%s returned status %d", provider, resp.StatusCode())
}

// transportError wraps a failed round trip. Cancellation is passed through
// unchanged so callers can still match context errors.
func transportError(err error, provider string) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	return oops.
		In("market").
		Code(CodeUnavailable).
		With("provider", provider).
		Wrapf(err, "%s request failed", provider)
}
