package state

import "database/sql"

// Mock is a test double for Manager. Saves take effect immediately with
// no debounce.
type Mock struct {
	progress map[string]WatchProgress
	settings *Settings
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{progress: make(map[string]WatchProgress)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) Progress(videoID string) (*WatchProgress, error) {
	p, ok := m.progress[videoID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *Mock) SaveProgress(p WatchProgress) {
	m.progress[p.VideoID] = p
}

func (m *Mock) Settings() (*Settings, error) {
	if m.settings == nil {
		return &Settings{Volume: 1.0, Rate: 1.0, Quality: "Auto"}, nil
	}
	return m.settings, nil
}

func (m *Mock) SaveSettings(s Settings) error {
	m.settings = &s
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

var _ Interface = (*Mock)(nil)
