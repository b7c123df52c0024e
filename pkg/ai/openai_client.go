package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *openAI) Draft(title, context string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a senior legal marketing specialist. You write persuasive, OAB-compliant content in Brazilian Portuguese, always in Markdown."},
			{"role": "user", "content": renderDraftPrompt(title, context)},
		},
		"temperature": 0.2,
	}

	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty content")
	}
	return content, nil
}

func renderDraftPrompt(title, context string) string {
	if strings.TrimSpace(context) == "" {
		context = "Marketing Ético OAB"
	}
	return fmt.Sprintf(`Atue como um Especialista em Marketing Jurídico Sênior. Crie um conteúdo completo e persuasivo em Markdown para: "%s".
Contexto: "%s".
Estruture com Título, Dor do cliente, 3 Pontos explicativos e CTA.`, title, context)
}
