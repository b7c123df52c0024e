// Package research pulls the main content of a reference web page and hands
// it to the draft prompt as extra context.
package research

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

const maxContextRunes = 6000

type Fetcher struct {
	client   *http.Client
	conv     *md.Converter
	allow    map[string]bool
	maxBytes int
}

// New builds a fetcher restricted to a comma-separated domain allowlist.
// An empty allowlist denies every host.
func New(allowedDomains string, maxBytes int) *Fetcher {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(strings.ToLower(h))
		if h != "" {
			allow[h] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &Fetcher{
		client:   &http.Client{Timeout: 20 * time.Second},
		conv:     md.NewConverter("", true, nil),
		allow:    allow,
		maxBytes: maxBytes,
	}
}

// Fetch downloads the page and returns its main content as Markdown plus the
// page title.
func (f *Fetcher) Fetch(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("bad url: %w", err)
	}
	host := strings.ToLower(u.Host)
	if !f.allow[host] {
		return "", "", fmt.Errorf("domain not allowed: %s", host)
	}

	resp, err := f.client.Get(rawURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	if resp.ContentLength > 0 && resp.ContentLength > int64(f.maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}

	limited := io.LimitedReader{R: resp.Body, N: int64(f.maxBytes)}
	return f.extract(&limited)
}

// extract keeps main/article when present and falls back to the whole
// document, converted to Markdown and capped at a prompt-friendly size.
func (f *Fetcher) extract(r io.Reader) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	text := strings.TrimSpace(f.conv.Convert(sel))
	return truncateRunes(text, maxContextRunes), title, nil
}

func truncateRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
