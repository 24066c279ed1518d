package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
	"github.com/tumieblackace/The-Kop-AI/internal/domain/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1"

	// PlaceholderSummary stands in when there is nothing to summarize.
	// No generation call is made in that case.
	PlaceholderSummary = "Could not generate a summary because no articles were found."

	maxSummaryWords = 120
)

// Summarizer condenses headlines into a single briefing paragraph
// using the Gemini generateContent API.
type Summarizer struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     ports.Logger
}

var _ ports.Summarizer = (*Summarizer)(nil)

// New constructs a Gemini-backed Summarizer.
func New(apiKey, model string, timeout time.Duration, logger ports.Logger) *Summarizer {
	return &Summarizer{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

// Summarize requests a neutral single-paragraph summary of the given
// headlines. Failures surface as errors, never as sentinel text.
func (s *Summarizer) Summarize(ctx context.Context, topic string, articles []model.Article) (string, error) {
	if len(articles) == 0 {
		return PlaceholderSummary, nil
	}

	if s.apiKey == "" || s.model == "" {
		return "", fmt.Errorf("gemini summarizer not configured")
	}

	body, err := json.Marshal(map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": buildPrompt(topic, articles)},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.3,
			"topP":            0.8,
			"maxOutputTokens": 512,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if s.logger != nil {
		s.logger.Info(ctx, "calling gemini", "model", s.model, "articles", len(articles))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var payload struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			FinishReason string `json:"finishReason"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	text := extractCandidateText(payload.Candidates)
	if text == "" {
		if len(payload.Candidates) > 0 && payload.Candidates[0].FinishReason == "MAX_TOKENS" {
			return "", fmt.Errorf("gemini hit the output token limit before producing text")
		}
		return "", fmt.Errorf("gemini returned empty text (candidates: %d)", len(payload.Candidates))
	}

	return text, nil
}

func buildPrompt(topic string, articles []model.Article) string {
	var builder strings.Builder
	builder.WriteString("You are a world-class sports news analyst preparing an executive briefing.\n")
	fmt.Fprintf(&builder, "Provide a clear, concise, and neutral summary of the key events related to %s, based on the following news headlines.\n", topic)
	fmt.Fprintf(&builder, "Synthesize the information into a single, cohesive paragraph of no more than %d words.\n", maxSummaryWords)
	builder.WriteString("Focus only on verifiable facts and key developments mentioned in the titles.\n\n")
	builder.WriteString("--- NEWS ARTICLES ---\n")

	for i, article := range articles {
		source := article.Source
		if source == "" {
			source = "Unknown"
		}
		fmt.Fprintf(&builder, "Article %d: %q (Source: %s)\n", i+1, article.Title, source)
	}

	return builder.String()
}

func extractCandidateText(candidates []struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
	FinishReason string `json:"finishReason"`
}) string {
	for _, candidate := range candidates {
		for _, part := range candidate.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return strings.TrimSpace(part.Text)
			}
		}
	}
	return ""
}
