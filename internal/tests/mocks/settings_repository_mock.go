package mocks

import "context"

type SettingsRepositoryMock struct {
	LoadFunc func(ctx context.Context) ([]byte, error)
	SaveFunc func(ctx context.Context, payload []byte, version int) error

	Saved        [][]byte
	SavedVersion int
}

func (m *SettingsRepositoryMock) Load(ctx context.Context) ([]byte, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, nil
}

func (m *SettingsRepositoryMock) Save(ctx context.Context, payload []byte, version int) error {
	m.Saved = append(m.Saved, payload)
	m.SavedVersion = version
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, payload, version)
	}
	return nil
}
