package ai

// Client asks a generative text model for draft marketing copy. Draft
// returns Markdown or an error; it never touches the plan store.
type Client interface {
	Draft(title, context string) (string, error)
}

// ErrorContent is shown in place of a draft when the call fails.
const ErrorContent = "Erro na conexão. Verifique sua chave API."
