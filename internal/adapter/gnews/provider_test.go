package gnews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const searchFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>"Liverpool FC" - Google News</title>
<item>
  <title>Anfield expansion approved - Sky Sports</title>
  <link>https://example.com/older</link>
  <pubDate>Wed, 26 Aug 2026 08:00:00 GMT</pubDate>
</item>
<item>
  <title>Liverpool win the derby - BBC Sport</title>
  <link>https://example.com/newest</link>
  <pubDate>Fri, 28 Aug 2026 10:00:00 GMT</pubDate>
</item>
<item>
  <title>Salah signs new deal - The Athletic</title>
  <link>https://example.com/mid</link>
  <pubDate>Thu, 27 Aug 2026 18:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

func newTestProvider(t *testing.T, body string) *Provider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	p := New(5*time.Second, nil)
	p.feedURL = server.URL + "/rss/search?q=%s"
	return p
}

func TestTopHeadlinesParsesAndSorts(t *testing.T) {
	p := newTestProvider(t, searchFeed)

	articles, err := p.TopHeadlines(context.Background(), "Liverpool FC", 5)
	if err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}

	if len(articles) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(articles))
	}
	if articles[0].URL != "https://example.com/newest" {
		t.Errorf("expected most recent article first, got %q", articles[0].URL)
	}
	if articles[0].Title != "Liverpool win the derby" {
		t.Errorf("expected publisher stripped from title, got %q", articles[0].Title)
	}
	if articles[0].Source != "BBC Sport" {
		t.Errorf("expected publisher as source, got %q", articles[0].Source)
	}
}

func TestTopHeadlinesRespectsLimit(t *testing.T) {
	p := newTestProvider(t, searchFeed)

	articles, err := p.TopHeadlines(context.Background(), "Liverpool FC", 2)
	if err != nil {
		t.Fatalf("TopHeadlines: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
}

func TestTopHeadlinesEmptyFeed(t *testing.T) {
	p := newTestProvider(t, `<?xml version="1.0"?><rss version="2.0"><channel><title>empty</title></channel></rss>`)

	if _, err := p.TopHeadlines(context.Background(), "Liverpool FC", 5); err == nil {
		t.Fatal("expected error for an empty feed")
	}
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		raw        string
		wantTitle  string
		wantSource string
	}{
		{"Liverpool win the derby - BBC Sport", "Liverpool win the derby", "BBC Sport"},
		{"Win-win deal agreed - The Athletic", "Win-win deal agreed", "The Athletic"},
		{"No publisher suffix", "No publisher suffix", ""},
	}

	for _, tt := range tests {
		title, source := splitTitle(tt.raw)
		if title != tt.wantTitle || source != tt.wantSource {
			t.Errorf("splitTitle(%q) = (%q, %q), want (%q, %q)",
				tt.raw, title, source, tt.wantTitle, tt.wantSource)
		}
	}
}
