package controllerImp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"lmp/pkg/ai"
	"lmp/pkg/research"
)

type stubLLM struct {
	content string
	err     error
	gotCtx  string
}

func (s *stubLLM) Draft(title, context string) (string, error) {
	s.gotCtx = context
	return s.content, s.err
}

func post(t *testing.T, h *DraftCtrl, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/draft", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Generate(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestGenerateReturnsDraft(t *testing.T) {
	llm := &stubLLM{content: "# Pronto"}
	h := New(llm, research.New("", 0))

	rec := post(t, h, `{"title":"Distrato 2026","context":"Categoria: Imobiliário"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Content != "# Pronto" {
		t.Errorf("content %q", resp.Content)
	}
	if llm.gotCtx != "Categoria: Imobiliário" {
		t.Errorf("context %q", llm.gotCtx)
	}
}

func TestGenerateRequiresTitle(t *testing.T) {
	h := New(&stubLLM{}, research.New("", 0))
	rec := post(t, h, `{"context":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestGenerateSubstitutesErrorContent(t *testing.T) {
	h := New(&stubLLM{err: errors.New("boom")}, research.New("", 0))
	rec := post(t, h, `{"title":"T"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: failures must not fail the request", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ai.ErrorContent) {
		t.Errorf("error content missing: %s", rec.Body.String())
	}
}

func TestGenerateAppendsPageContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Ref</title></head><body><main><p>texto de referência</p></main></body></html>`))
	}))
	defer srv.Close()
	u, _ := url.Parse(srv.URL)

	llm := &stubLLM{content: "ok"}
	h := New(llm, research.New(u.Host, 0))

	rec := post(t, h, `{"title":"T","context":"base","source_url":"`+srv.URL+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(llm.gotCtx, "texto de referência") {
		t.Errorf("page text not appended to context: %q", llm.gotCtx)
	}
	if !strings.Contains(llm.gotCtx, "base") {
		t.Errorf("original context dropped: %q", llm.gotCtx)
	}
}

func TestGenerateFailsOnDisallowedSource(t *testing.T) {
	h := New(&stubLLM{content: "ok"}, research.New("example.com", 0))
	rec := post(t, h, `{"title":"T","source_url":"https://evil.test/x"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status %d, want 502", rec.Code)
	}
}
