package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the HTTP implementation of [ServerAdapter]
// against adapterCfg.HTTPAddress. A scheme-less address is taken as http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// SendCommand posts text to POST /api/commands. Rejected commands still
// come back as a reply; only transport failures are errors.
func (h *httpServerAdapter) SendCommand(ctx context.Context, text string) (string, error) {
	if h.token == "" {
		return "", ErrNoToken
	}

	var result models.CommandResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CommandRequest{Text: text}).
		SetResult(&result).
		Post("/api/commands")
	if err != nil {
		return "", fmt.Errorf("command request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Dur("duration", resp.Time()).
		Msg("command sent")

	return result.Reply, nil
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token)
}
