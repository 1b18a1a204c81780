package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client with baseURL and timeout
// applied. An empty baseURL or zero timeout leaves the resty default.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.coingecko.com/api/v3", 10*time.Second)
//	resp, err := client.R().Get("/ping")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
