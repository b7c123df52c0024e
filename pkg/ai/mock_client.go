package ai

import "fmt"

type mockClient struct{}

// NewMock is used when no LLM endpoint/key is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Draft(title, context string) (string, error) {
	return fmt.Sprintf(`# %s

*(rascunho mock — configure LLM_ENDPOINT e LLM_API_KEY)*

**Dor do cliente:** descreva aqui o problema que o leitor enfrenta.

1. Ponto explicativo um
2. Ponto explicativo dois
3. Ponto explicativo três

**CTA:** Fale com nossa equipe.

Contexto: %s`, title, context), nil
}
