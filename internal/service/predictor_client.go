package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"mediconnect/config"
	"mediconnect/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// ErrPredictorUnavailable is returned when the external diagnosis predictor
// is unreachable, times out, or responds with anything but a well-formed
// prediction. Callers must surface it instead of falling back to an
// unfiltered doctor list.
var ErrPredictorUnavailable = errors.New("diagnosis predictor unavailable")

// affirmativeMarker is what the predictor expects for each present symptom;
// absent symptoms are simply omitted from the request body.
const affirmativeMarker = "Yes"

// Predictor maps a symptom set to a predicted disease with recommended
// doctor specializations and a confidence score.
type Predictor interface {
	Predict(ctx context.Context, symptoms []string) (*entity.Prediction, error)
}

type predictorClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewPredictorClient creates a Predictor over the remote /predict endpoint.
// The configured timeout bounds the whole call; the predictor is the only
// network hop in the core and must never hang the caller.
func NewPredictorClient(cfg config.PredictorConfig, log *logrus.Logger) Predictor {
	return &predictorClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

func (c *predictorClient) Predict(ctx context.Context, symptoms []string) (*entity.Prediction, error) {
	payload := make(map[string]string, len(symptoms))
	for _, symptom := range symptoms {
		payload[symptom] = affirmativeMarker
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warnf("Predictor request failed: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrPredictorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnf("Predictor returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrPredictorUnavailable, resp.StatusCode)
	}

	var prediction entity.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		c.log.Warnf("Failed to decode predictor response: %+v", err)
		return nil, fmt.Errorf("%w: malformed response", ErrPredictorUnavailable)
	}

	if prediction.Disease == "" || len(prediction.Specializations) == 0 {
		return nil, fmt.Errorf("%w: incomplete response", ErrPredictorUnavailable)
	}

	return &prediction, nil
}
