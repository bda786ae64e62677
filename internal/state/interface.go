package state

import "database/sql"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	Progress(videoID string) (*WatchProgress, error)
	SaveProgress(p WatchProgress)
	Settings() (*Settings, error)
	SaveSettings(s Settings) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
