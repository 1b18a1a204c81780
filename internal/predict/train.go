package predict

import (
	"fmt"
	"os"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

// Train fits a model from the configured CSV. It returns (nil, nil) when no
// training data is configured; /predict then reports the model unavailable.
func Train(cfg config.Predict, log *logger.Logger) (ReturnPredictor, error) {
	if cfg.TrainingDataPath == "" {
		log.Info().Msg("no training data configured, /predict disabled")
		return nil, nil
	}

	f, err := os.Open(cfg.TrainingDataPath)
	if err != nil {
		return nil, fmt.Errorf("error opening training data: %w", err)
	}
	defer f.Close()

	ds, err := LoadCSV(f)
	if err != nil {
		return nil, err
	}

	train, test := ds.Split(cfg.TestShare, cfg.Seed)
	model, err := Fit(train.X, train.Y)
	if err != nil {
		return nil, fmt.Errorf("error fitting return model: %w", err)
	}

	event := log.Info().
		Int("rows", len(ds.X)).
		Int("train_rows", len(train.X)).
		Int("test_rows", len(test.X))
	if mse, mseErr := model.MeanSquaredError(test.X, test.Y); mseErr == nil {
		event = event.Float64("test_mse", mse)
	}
	event.Msg("return model trained")

	return model, nil
}
