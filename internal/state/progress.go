package state

import (
	"database/sql"
	"time"
)

// WatchProgress is the saved playhead for one video.
type WatchProgress struct {
	VideoID  string
	Position time.Duration
	Duration time.Duration
}

// Progress returns the saved playhead for a video, or nil if the video
// has never been watched.
func (m *Manager) Progress(videoID string) (*WatchProgress, error) {
	m.saveMu.Lock()
	if m.pending != nil && m.pending.VideoID == videoID {
		p := *m.pending
		m.saveMu.Unlock()
		return &p, nil
	}
	m.saveMu.Unlock()

	return getProgress(m.db, videoID)
}

func getProgress(db *sql.DB, videoID string) (*WatchProgress, error) {
	var positionMs, durationMs int64

	row := db.QueryRow(`
		SELECT position_ms, duration_ms FROM watch_progress WHERE video_id = ?
	`, videoID)
	err := row.Scan(&positionMs, &durationMs)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &WatchProgress{
		VideoID:  videoID,
		Position: time.Duration(positionMs) * time.Millisecond,
		Duration: time.Duration(durationMs) * time.Millisecond,
	}, nil
}

func saveProgress(db *sql.DB, p WatchProgress) error {
	_, err := db.Exec(`
		INSERT INTO watch_progress (video_id, position_ms, duration_ms, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			position_ms = excluded.position_ms,
			duration_ms = excluded.duration_ms,
			updated_at = excluded.updated_at
	`, p.VideoID, p.Position.Milliseconds(), p.Duration.Milliseconds(), time.Now().Unix())
	return err
}
