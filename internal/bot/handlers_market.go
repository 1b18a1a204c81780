package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/market"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/predict"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
)

type marketHandlers struct {
	provider  market.Provider
	predictor service.PredictService
	// sign is prefixed to prices, e.g. "₹".
	sign string
}

func (m *marketHandlers) coin(ctx context.Context, _ int64, args []string) (string, error) {
	coin := strings.ToLower(args[0])

	price, err := m.provider.CoinPrice(ctx, coin)
	if err != nil {
		if market.HasCode(err, market.CodeNotFound) {
			return coinNotFoundReply(coin), err
		}
		return replyFetchFailed, err
	}

	return coinPriceReply(coin, m.sign, price), nil
}

func (m *marketHandlers) forex(ctx context.Context, _ int64, args []string) (string, error) {
	from, to := strings.ToUpper(args[0]), strings.ToUpper(args[1])

	rate, err := m.provider.ExchangeRate(ctx, from, to)
	if err != nil {
		if market.HasCode(err, market.CodeNotFound) {
			return pairNotFoundReply(from, to), err
		}
		return replyFetchFailed, err
	}

	return exchangeRateReply(from, to, rate), nil
}

func (m *marketHandlers) stock(ctx context.Context, _ int64, args []string) (string, error) {
	symbol := strings.ToUpper(args[0])

	quote, err := m.provider.StockQuote(ctx, symbol)
	if err != nil {
		if market.HasCode(err, market.CodeNotFound) {
			return symbolNotFoundReply(symbol), err
		}
		return replyFetchFailed, err
	}

	return stockPriceReply(symbol, m.sign, quote.Close), nil
}

func (m *marketHandlers) predict(ctx context.Context, _ int64, args []string) (string, error) {
	symbol := strings.ToUpper(args[0])

	value, err := m.predictor.PredictReturn(ctx, symbol)
	switch {
	case errors.Is(err, predict.ErrModelUnavailable):
		return replyPredictionDisabled, err
	case market.HasCode(err, market.CodeNotFound):
		return symbolNotFoundReply(symbol), err
	case err != nil:
		return replyFetchFailed, err
	}

	return predictionReply(symbol, value), nil
}

// Symbols and pairs listed by /market.
var (
	worldwideSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}
	indiaSymbols     = []string{"RELIANCE.BSE", "TCS.BSE", "INFY.BSE", "HDFCBANK.BSE", "HINDUNILVR.BSE"}
	snapshotPairs    = [][2]string{{"USD", "INR"}, {"EUR", "INR"}, {"GBP", "INR"}}
)

// snapshot lists the latest price of a fixed set of stocks and forex
// pairs. Entries that fail are left out; a section with no entries gets a
// "no data" line instead.
func (m *marketHandlers) snapshot(ctx context.Context, _ int64, _ []string) (string, error) {
	log := logger.FromContext(ctx)

	quotes := func(symbols []string) []snapshotLine {
		var lines []snapshotLine
		for _, symbol := range symbols {
			if ctx.Err() != nil {
				break
			}
			quote, err := m.provider.StockQuote(ctx, symbol)
			if err != nil {
				log.Debug().Err(err).Str("symbol", symbol).Msg("market snapshot: quote skipped")
				continue
			}
			lines = append(lines, snapshotLine{label: symbol, sign: m.sign, value: quote.Close})
		}
		return lines
	}

	worldwide := quotes(worldwideSymbols)
	india := quotes(indiaSymbols)

	var forex []snapshotLine
	for _, pair := range snapshotPairs {
		if ctx.Err() != nil {
			break
		}
		rate, err := m.provider.ExchangeRate(ctx, pair[0], pair[1])
		if err != nil {
			log.Debug().Err(err).Str("pair", pair[0]+"/"+pair[1]).Msg("market snapshot: rate skipped")
			continue
		}
		forex = append(forex, snapshotLine{label: pair[0] + "/" + pair[1], sign: currencySign(pair[1]), value: rate})
	}

	if err := ctx.Err(); err != nil {
		return replyFetchFailed, err
	}

	return marketSnapshotReply(worldwide, india, forex), nil
}

func (m *marketHandlers) news(ctx context.Context, _ int64, _ []string) (string, error) {
	articles, err := m.provider.BusinessHeadlines(ctx)
	if err != nil {
		if market.HasCode(err, market.CodeNotFound) {
			return replyNoNews, err
		}
		return replyNewsFailed, err
	}

	return newsReply(articles), nil
}
