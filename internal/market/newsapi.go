package market

import (
	"context"
	"strings"

	"github.com/samber/oops"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

const (
	providerNewsAPI = "newsapi"

	newsCategory = "business"
	newsCountry  = "in"
	newsPageSize = "10"
)

// newsAPIResponse is the top-headlines envelope. Errors come back with
// status "error" and a code such as "apiKeyInvalid" or "rateLimited".
type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

type newsAPI struct {
	client *utils.HTTPClient
	apiKey string
}

func newNewsAPI(cfg config.Market) *newsAPI {
	return &newsAPI{
		client: utils.NewHTTPClient(cfg.NewsAPIURL, cfg.RequestTimeout),
		apiKey: cfg.NewsAPIKey,
	}
}

// BusinessHeadlines calls GET /top-headlines?category=business&country=in
// and keeps at most ten articles.
// An empty article list is reported as CodeNotFound.
func (n *newsAPI) BusinessHeadlines(ctx context.Context) ([]models.Article, error) {
	var body newsAPIResponse

	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParam("category", newsCategory).
		SetQueryParam("country", newsCountry).
		SetQueryParam("pageSize", newsPageSize).
		SetQueryParam("apiKey", n.apiKey).
		SetResult(&body).
		SetError(&body).
		Get("/top-headlines")
	if err != nil {
		return nil, transportError(err, providerNewsAPI)
	}
	if resp.IsError() {
		return nil, statusError(resp, providerNewsAPI)
	}

	if body.Status != "ok" {
		code := CodeUnavailable
		if body.Code == "rateLimited" {
			code = CodeRateLimited
		}
		return nil, oops.
			In("market").
			Code(code).
			With("provider", providerNewsAPI).
			With("api_code", body.Code).
			Errorf("newsapi answered %q: %s", body.Status, body.Message)
	}

	articles := make([]models.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		if strings.TrimSpace(a.Title) == "" {
			continue
		}
		articles = append(articles, models.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
		})
	}

	if len(articles) == 0 {
		return nil, oops.
			In("market").
			Code(CodeNotFound).
			With("provider", providerNewsAPI).
			Errorf("no business headlines")
	}

	return articles, nil
}
