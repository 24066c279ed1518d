package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
)

const defaultBaseURL = "https://newsapi.org/v2"

// Client implements HeadlineProvider against the NewsAPI
// "everything" endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     ports.Logger
}

var _ ports.HeadlineProvider = (*Client)(nil)

// New creates a new NewsAPI client.
func New(apiKey string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// TopHeadlines searches for the exact topic phrase, English coverage
// only, sorted by publish date descending, capped at limit articles.
func (c *Client) TopHeadlines(ctx context.Context, topic string, limit int) ([]model.Article, error) {
	if limit <= 0 {
		return nil, nil
	}

	if c.apiKey == "" {
		return nil, fmt.Errorf("newsapi key is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", strconv.Quote(topic))
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var payload struct {
		Status   string `json:"status"`
		Code     string `json:"code"`
		Message  string `json:"message"`
		Articles []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Title       string `json:"title"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
		} `json:"articles"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi error %s: %s", payload.Code, payload.Message)
	}

	articles := make([]model.Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		if item.Title == "" || item.URL == "" {
			continue
		}

		// NewsAPI timestamps are RFC3339; a zero value is acceptable
		// when a source omits one.
		published, _ := time.Parse(time.RFC3339, item.PublishedAt)

		articles = append(articles, model.Article{
			Title:       item.Title,
			Source:      item.Source.Name,
			URL:         item.URL,
			PublishedAt: published,
		})

		if len(articles) >= limit {
			break
		}
	}

	return articles, nil
}
