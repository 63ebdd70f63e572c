package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/pipctl/internal/pip"
)

// Session is a finished floating window session.
type Session struct {
	ID        int64
	PlayerID  int
	StartedAt time.Time
	EndedAt   time.Time
	PlayTime  float32
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// SaveActive records cfg as the running session. Saving again while a session
// is recorded replaces its configuration and keeps its start time.
func (m *Manager) SaveActive(cfg *pip.Configuration) error {
	blob, err := cfg.MarshalBinary()
	if err != nil {
		return err
	}
	now := m.now().Unix()
	_, err = m.db.Exec(`
		INSERT INTO active_session (id, player_id, config, started_at, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			player_id = excluded.player_id,
			config = excluded.config,
			updated_at = excluded.updated_at
	`, cfg.PlayerID(), blob, now, now)
	return err
}

// Active returns the recorded running session, or nil when there is none.
func (m *Manager) Active() (*pip.Configuration, error) {
	var blob []byte
	err := m.db.QueryRow(`SELECT config FROM active_session WHERE id = 1`).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return pip.DecodeConfiguration(blob)
}

// FinishActive moves the running session into the history with the given
// final play time. It does nothing when no session is recorded.
func (m *Manager) FinishActive(playTime float32) error {
	return withTx(m.db, func(tx *sql.Tx) error {
		var playerID int
		var startedAt int64
		err := tx.QueryRow(`
			SELECT player_id, started_at FROM active_session WHERE id = 1
		`).Scan(&playerID, &startedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO session_history (player_id, started_at, ended_at, play_time)
			VALUES (?, ?, ?, ?)
		`, playerID, startedAt, m.now().Unix(), playTime)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`DELETE FROM active_session`)
		return err
	})
}

// History returns up to limit finished sessions, most recent first.
func (m *Manager) History(limit int) ([]Session, error) {
	rows, err := m.db.Query(`
		SELECT id, player_id, started_at, ended_at, play_time
		FROM session_history
		ORDER BY ended_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAt, endedAt int64
		var playTime float64
		if err := rows.Scan(&s.ID, &s.PlayerID, &startedAt, &endedAt, &playTime); err != nil {
			return nil, err
		}
		s.StartedAt = time.Unix(startedAt, 0)
		s.EndedAt = time.Unix(endedAt, 0)
		s.PlayTime = float32(playTime)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Recover closes a session left running by a previous process, which means
// its exit confirmation never arrived. It returns the stale configuration,
// or nil when the last run ended cleanly.
func (m *Manager) Recover() (*pip.Configuration, error) {
	cfg, err := m.Active()
	if err != nil || cfg == nil {
		return nil, err
	}
	if err := m.FinishActive(cfg.PlayTime()); err != nil {
		return nil, err
	}
	return cfg, nil
}
