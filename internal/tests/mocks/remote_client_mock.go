package mocks

import (
	"context"
	"sync"

	"sceneloom/internal/models"
)

type RemoteClientMock struct {
	EnabledValue bool
	FetchFunc    func(ctx context.Context) (map[string]any, error)
	PushFunc     func(ctx context.Context, settings models.Settings) error

	mu     sync.Mutex
	pushed []models.Settings
}

func (m *RemoteClientMock) Enabled() bool {
	return m.EnabledValue
}

func (m *RemoteClientMock) Fetch(ctx context.Context) (map[string]any, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

func (m *RemoteClientMock) Push(ctx context.Context, settings models.Settings) error {
	m.mu.Lock()
	m.pushed = append(m.pushed, settings)
	m.mu.Unlock()
	if m.PushFunc != nil {
		return m.PushFunc(ctx, settings)
	}
	return nil
}

// Pushed returns a snapshot of everything pushed so far.
func (m *RemoteClientMock) Pushed() []models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Settings(nil), m.pushed...)
}
