package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
// Guarda el ultimo prompt recibido para poder inspeccionarlo.
type MockClient struct {
	Response   string
	Err        error
	LastPrompt string
}

func (m *MockClient) Generate(_ context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	return m.Response, m.Err
}
