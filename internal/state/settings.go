package state

import "database/sql"

// Settings are the player preferences restored on startup.
type Settings struct {
	Volume  float64
	Muted   bool
	Rate    float64
	Quality string
}

// Settings returns the saved player settings, or defaults if nothing
// has been saved yet.
func (m *Manager) Settings() (*Settings, error) {
	var s Settings

	row := m.db.QueryRow(`SELECT volume, muted, rate, quality FROM player_settings WHERE id = 1`)
	err := row.Scan(&s.Volume, &s.Muted, &s.Rate, &s.Quality)
	if err == sql.ErrNoRows {
		return &Settings{Volume: 1.0, Rate: 1.0, Quality: "Auto"}, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// SaveSettings persists the player settings.
func (m *Manager) SaveSettings(s Settings) error {
	_, err := m.db.Exec(`
		INSERT INTO player_settings (id, volume, muted, rate, quality)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volume = excluded.volume,
			muted = excluded.muted,
			rate = excluded.rate,
			quality = excluded.quality
	`, s.Volume, s.Muted, s.Rate, s.Quality)
	return err
}
