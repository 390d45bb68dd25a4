package llm

import (
	"context"
	"sync"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	mu      sync.Mutex
	calls   int
	lastReq CompletionRequest
}

func (m *MockClient) Complete(_ context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastReq = req
	return m.Response, m.Err
}

// SetResult cambia la respuesta de forma segura mientras hay requests concurrentes.
func (m *MockClient) SetResult(response string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Response = response
	m.Err = err
}

// Calls devuelve cuantas veces se invoco Complete.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastRequest devuelve el ultimo pedido recibido.
func (m *MockClient) LastRequest() CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReq
}
