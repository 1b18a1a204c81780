package service

import (
	"context"
	"fmt"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/market"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/predict"
)

type predictService struct {
	provider  market.Provider
	predictor predict.ReturnPredictor

	logger *logger.Logger
}

// NewPredictService combines the quote provider with a trained model. A nil
// predictor makes every call fail with predict.ErrModelUnavailable.
func NewPredictService(provider market.Provider, predictor predict.ReturnPredictor, logger *logger.Logger) PredictService {
	return &predictService{
		provider:  provider,
		predictor: predictor,
		logger:    logger,
	}
}

func (p *predictService) PredictReturn(ctx context.Context, symbol string) (float64, error) {
	if p.predictor == nil {
		return 0, predict.ErrModelUnavailable
	}

	quote, err := p.provider.StockQuote(ctx, symbol)
	if err != nil {
		return 0, fmt.Errorf("error fetching quote for prediction: %w", err)
	}

	value, err := p.predictor.Predict(quote.Features())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("symbol", symbol).Msg("prediction failed")
		return 0, fmt.Errorf("error predicting return: %w", err)
	}

	return value, nil
}
