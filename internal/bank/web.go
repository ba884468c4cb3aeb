package bank

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/go-shiori/go-readability"
)

// AddPage fetches a web page, strips navigation and ads, and stores the
// readable article as a text material titled after the page.
func (s *Store) AddPage(ctx context.Context, pageURL string, category Category) (Material, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return Material{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CybersecurityTutor/1.0)")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Material{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Material{}, fmt.Errorf("HTTP %d fetching page", resp.StatusCode)
	}

	parsed, _ := url.Parse(pageURL)
	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return Material{}, fmt.Errorf("extract article: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	body, err := converter.ConvertString(article.Content)
	if err != nil {
		// Markdown conversion is best-effort; the plain text still grounds.
		body = article.TextContent
	}

	name := article.Title
	if name == "" {
		name = pageURL
	}
	return s.addText(name, fmt.Sprintf("# %s\n\nSource: %s\n\n%s", article.Title, pageURL, body), category)
}
