package controllerImp

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"lmp/pkg/ai"
	"lmp/pkg/research"
)

type DraftCtrl struct {
	llm     ai.Client
	fetcher *research.Fetcher
}

func New(llm ai.Client, fetcher *research.Fetcher) *DraftCtrl {
	return &DraftCtrl{llm: llm, fetcher: fetcher}
}

type draftReq struct {
	Title     string `json:"title"`
	Context   string `json:"context"`
	SourceURL string `json:"source_url"`
}

type draftResp struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
}

// Generate builds draft copy for one planned item. A failed model call is
// substituted by a fixed error message in the content field; the request
// itself still succeeds.
func (h *DraftCtrl) Generate(c echo.Context) error {
	var req draftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}

	ctx := req.Context
	source := ""
	if req.SourceURL != "" {
		text, pageTitle, err := h.fetcher.Fetch(req.SourceURL)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		ctx = ctx + "\n\nREFERÊNCIA (" + pageTitle + "):\n" + text
		source = req.SourceURL
	}

	content, err := h.llm.Draft(req.Title, ctx)
	if err != nil {
		log.Printf("[draft] generation failed: %v", err)
		content = ai.ErrorContent
	}
	return c.JSON(http.StatusOK, draftResp{Title: req.Title, Content: content, Source: source})
}
