package research

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html><head><title>Distrato Imobiliário — Guia</title></head>
<body>
<nav>menu que deve ser ignorado</nav>
<main>
<h1>Distrato Imobiliário</h1>
<p>O comprador pode desistir do contrato.</p>
<ul><li>Ponto um</li><li>Ponto dois</li></ul>
</main>
</body></html>`

func serve(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Fetcher) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return srv, New(u.Host, 0)
}

func TestFetchExtractsMainContentAsMarkdown(t *testing.T) {
	srv, f := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	})

	text, title, err := f.Fetch(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if title != "Distrato Imobiliário — Guia" {
		t.Errorf("title = %q", title)
	}
	if !strings.Contains(text, "# Distrato Imobiliário") {
		t.Errorf("heading not converted to markdown:\n%s", text)
	}
	if !strings.Contains(text, "Ponto um") {
		t.Errorf("list content missing:\n%s", text)
	}
	if strings.Contains(text, "menu que deve ser ignorado") {
		t.Errorf("nav content leaked into extraction:\n%s", text)
	}
}

func TestFetchRejectsUnlistedDomain(t *testing.T) {
	f := New("example.com", 0)
	if _, _, err := f.Fetch("https://evil.test/page"); err == nil {
		t.Error("unlisted domain should be rejected")
	}
}

func TestEmptyAllowlistDeniesEverything(t *testing.T) {
	srv, _ := serve(t, func(w http.ResponseWriter, r *http.Request) {})
	f := New("", 0)
	if _, _, err := f.Fetch(srv.URL); err == nil {
		t.Error("empty allowlist should deny all hosts")
	}
}

func TestFetchRejectsNonHTML(t *testing.T) {
	srv, f := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	})
	if _, _, err := f.Fetch(srv.URL); err == nil {
		t.Error("non-HTML content should be rejected")
	}
}

func TestFetchPropagatesHTTPErrors(t *testing.T) {
	srv, f := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	if _, _, err := f.Fetch(srv.URL); err == nil {
		t.Error("404 should surface as an error")
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("ação", 3); got != "açã" {
		t.Errorf("truncateRunes = %q", got)
	}
	if got := truncateRunes("ok", 10); got != "ok" {
		t.Errorf("truncateRunes = %q", got)
	}
}
