package market

import (
	"context"
	"strings"

	"github.com/samber/oops"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
)

const providerCoinGecko = "coingecko"

type coinGecko struct {
	client   *utils.HTTPClient
	currency string
}

func newCoinGecko(cfg config.Market) *coinGecko {
	currency := strings.ToLower(cfg.Currency)
	if currency == "" {
		currency = "inr"
	}

	return &coinGecko{
		client:   utils.NewHTTPClient(cfg.CoinGeckoURL, cfg.RequestTimeout),
		currency: currency,
	}
}

// CoinPrice calls GET /simple/price?ids=<coin>&vs_currencies=<currency>.
// An id CoinGecko does not know comes back as an empty object.
func (c *coinGecko) CoinPrice(ctx context.Context, coin string) (float64, error) {
	coin = strings.ToLower(strings.TrimSpace(coin))

	var prices map[string]map[string]float64
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("ids", coin).
		SetQueryParam("vs_currencies", c.currency).
		SetResult(&prices).
		Get("/simple/price")
	if err != nil {
		return 0, transportError(err, providerCoinGecko)
	}
	if resp.IsError() {
		return 0, statusError(resp, providerCoinGecko)
	}

	price, ok := prices[coin][c.currency]
	if !ok {
		return 0, oops.
			In("market").
			Code(CodeNotFound).
			With("provider", providerCoinGecko).
			With("coin", coin).
			Errorf("coin %q not found", coin)
	}

	return price, nil
}
