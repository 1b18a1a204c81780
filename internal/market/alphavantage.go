package market

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

const providerAlphaVantage = "alphavantage"

// alphaVantageResponse covers both functions used here. Throttled calls
// answer 200 with a Note or Information message and no data.
type alphaVantageResponse struct {
	ExchangeRate map[string]string `json:"Realtime Currency Exchange Rate"`
	GlobalQuote  map[string]string `json:"Global Quote"`
	Note         string            `json:"Note"`
	Information  string            `json:"Information"`
	ErrorMessage string            `json:"Error Message"`
}

type alphaVantage struct {
	client *utils.HTTPClient
	apiKey string
}

func newAlphaVantage(cfg config.Market) *alphaVantage {
	return &alphaVantage{
		client: utils.NewHTTPClient(cfg.AlphaVantageURL, cfg.RequestTimeout),
		apiKey: cfg.AlphaVantageKey,
	}
}

func (a *alphaVantage) query(ctx context.Context, params map[string]string) (alphaVantageResponse, error) {
	var body alphaVantageResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("apikey", a.apiKey).
		SetResult(&body).
		Get("/query")
	if err != nil {
		return body, transportError(err, providerAlphaVantage)
	}
	if resp.IsError() {
		return body, statusError(resp, providerAlphaVantage)
	}

	if body.Note != "" || body.Information != "" {
		return body, oops.
			In("market").
			Code(CodeRateLimited).
			With("provider", providerAlphaVantage).
			Errorf("alphavantage throttled: %s%s", body.Note, body.Information)
	}

	return body, nil
}

// ExchangeRate calls the CURRENCY_EXCHANGE_RATE function.
func (a *alphaVantage) ExchangeRate(ctx context.Context, from, to string) (float64, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)

	body, err := a.query(ctx, map[string]string{
		"function":      "CURRENCY_EXCHANGE_RATE",
		"from_currency": from,
		"to_currency":   to,
	})
	if err != nil {
		return 0, err
	}

	rate, err := parseField(body.ExchangeRate, "5. Exchange Rate")
	if err != nil {
		return 0, oops.
			In("market").
			Code(CodeNotFound).
			With("provider", providerAlphaVantage).
			With("pair", from+"/"+to).
			Wrapf(err, "no exchange rate for %s/%s", from, to)
	}

	return rate, nil
}

// StockQuote calls the GLOBAL_QUOTE function. An unknown symbol yields an
// empty "Global Quote" object.
func (a *alphaVantage) StockQuote(ctx context.Context, symbol string) (models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	body, err := a.query(ctx, map[string]string{
		"function": "GLOBAL_QUOTE",
		"symbol":   symbol,
	})
	if err != nil {
		return models.Quote{}, err
	}

	quote := models.Quote{Symbol: symbol}
	fields := []struct {
		key string
		dst *float64
	}{
		{"02. open", &quote.Open},
		{"03. high", &quote.High},
		{"04. low", &quote.Low},
		{"05. price", &quote.Close},
		{"06. volume", &quote.Volume},
	}
	for _, f := range fields {
		v, parseErr := parseField(body.GlobalQuote, f.key)
		if parseErr != nil {
			return models.Quote{}, oops.
				In("market").
				Code(CodeNotFound).
				With("provider", providerAlphaVantage).
				With("symbol", symbol).
				Wrapf(parseErr, "no price data for %s", symbol)
		}
		*f.dst = v
	}

	return quote, nil
}

func parseField(values map[string]string, key string) (float64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}

	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}
