package headlines

import (
	"context"
	"errors"
	"testing"

	"github.com/tumieblackace/The-Kop-AI/internal/domain/model"
)

type fakeProvider struct {
	articles []model.Article
	err      error
	calls    int
}

func (f *fakeProvider) TopHeadlines(ctx context.Context, topic string, limit int) ([]model.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.articles) > limit {
		return f.articles[:limit], nil
	}
	return f.articles, nil
}

func article(title, url string) model.Article {
	return model.Article{Title: title, Source: "BBC Sport", URL: url}
}

func TestCompositeSkipsFallbackWhenSatisfied(t *testing.T) {
	primary := &fakeProvider{articles: []model.Article{
		article("a", "https://example.com/a"),
		article("b", "https://example.com/b"),
	}}
	fallback := &fakeProvider{articles: []model.Article{article("c", "https://example.com/c")}}

	c := NewCompositeProvider(nil, primary, fallback)
	articles, err := c.TopHeadlines(context.Background(), "Liverpool FC", 2)
	if err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if fallback.calls != 0 {
		t.Errorf("expected fallback untouched, got %d calls", fallback.calls)
	}
}

func TestCompositeFallsBackOnError(t *testing.T) {
	primary := &fakeProvider{err: errors.New("quota exhausted")}
	fallback := &fakeProvider{articles: []model.Article{article("c", "https://example.com/c")}}

	c := NewCompositeProvider(nil, primary, fallback)
	articles, err := c.TopHeadlines(context.Background(), "Liverpool FC", 5)
	if err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}

	if len(articles) != 1 || articles[0].URL != "https://example.com/c" {
		t.Fatalf("expected fallback article, got %v", articles)
	}
}

func TestCompositeDeduplicates(t *testing.T) {
	primary := &fakeProvider{articles: []model.Article{article("a", "https://example.com/a")}}
	fallback := &fakeProvider{articles: []model.Article{
		article("a again", "https://example.com/a"),
		article("b", "https://example.com/b"),
	}}

	c := NewCompositeProvider(nil, primary, fallback)
	articles, err := c.TopHeadlines(context.Background(), "Liverpool FC", 5)
	if err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 deduplicated articles, got %d", len(articles))
	}
	if articles[0].Title != "a" || articles[1].Title != "b" {
		t.Errorf("unexpected ordering: %v", articles)
	}
}

func TestCompositeNeverExceedsLimit(t *testing.T) {
	primary := &fakeProvider{articles: []model.Article{
		article("a", "https://example.com/a"),
		article("b", "https://example.com/b"),
		article("c", "https://example.com/c"),
	}}
	fallback := &fakeProvider{articles: []model.Article{
		article("d", "https://example.com/d"),
		article("e", "https://example.com/e"),
	}}

	for _, limit := range []int{1, 2, 3, 5} {
		c := NewCompositeProvider(nil, primary, fallback)
		articles, err := c.TopHeadlines(context.Background(), "Liverpool FC", limit)
		if err != nil {
			t.Fatalf("limit %d: %v", limit, err)
		}
		if len(articles) > limit {
			t.Errorf("limit %d: got %d articles", limit, len(articles))
		}
	}
}

func TestCompositeAllProvidersFail(t *testing.T) {
	wantErr := errors.New("first failure")
	primary := &fakeProvider{err: wantErr}
	fallback := &fakeProvider{err: errors.New("second failure")}

	c := NewCompositeProvider(nil, primary, fallback)
	_, err := c.TopHeadlines(context.Background(), "Liverpool FC", 5)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected first error to surface, got %v", err)
	}
}
