// SQLite-backed session store. State columns are JSON blobs: sessions are
// read and written whole, one row per player world, so the schema stays
// stable while the state structs evolve.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists sessions in a single SQLite file.
type SQLiteStore struct {
	conn *sqlx.DB
}

// OpenSQLite opens or creates the database at path and runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &SQLiteStore{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (st *SQLiteStore) Close() error {
	return st.conn.Close()
}

func (st *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		profile_json TEXT NOT NULL,
		graph_json TEXT NOT NULL,
		world_json TEXT NOT NULL,
		proposals_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at);
	`
	_, err := st.conn.Exec(schema)
	return err
}

type sessionRow struct {
	ID            string `db:"id"`
	PlayerID      string `db:"player_id"`
	CreatedAt     int64  `db:"created_at"`
	UpdatedAt     int64  `db:"updated_at"`
	ProfileJSON   string `db:"profile_json"`
	GraphJSON     string `db:"graph_json"`
	WorldJSON     string `db:"world_json"`
	ProposalsJSON string `db:"proposals_json"`
}

func (st *SQLiteStore) Get(id string) (*Session, error) {
	var row sessionRow
	err := st.conn.Get(&row, "SELECT * FROM sessions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        row.ID,
		PlayerID:  row.PlayerID,
		CreatedAt: time.Unix(row.CreatedAt, 0),
		UpdatedAt: time.Unix(row.UpdatedAt, 0),
	}
	if err := json.Unmarshal([]byte(row.ProfileJSON), &s.Profile); err != nil {
		return nil, fmt.Errorf("session %s: profile: %w", id, err)
	}
	if err := json.Unmarshal([]byte(row.GraphJSON), &s.Graph); err != nil {
		return nil, fmt.Errorf("session %s: graph: %w", id, err)
	}
	if err := json.Unmarshal([]byte(row.WorldJSON), &s.World); err != nil {
		return nil, fmt.Errorf("session %s: world: %w", id, err)
	}
	if err := json.Unmarshal([]byte(row.ProposalsJSON), &s.Proposals); err != nil {
		return nil, fmt.Errorf("session %s: proposals: %w", id, err)
	}
	return s, nil
}

func (st *SQLiteStore) Put(s *Session) error {
	s.UpdatedAt = time.Now()

	profile, err := json.Marshal(s.Profile)
	if err != nil {
		return err
	}
	graph, err := json.Marshal(s.Graph)
	if err != nil {
		return err
	}
	worldJSON, err := json.Marshal(s.World)
	if err != nil {
		return err
	}
	proposals, err := json.Marshal(s.Proposals)
	if err != nil {
		return err
	}

	_, err = st.conn.Exec(`
		INSERT INTO sessions (id, player_id, created_at, updated_at, profile_json, graph_json, world_json, proposals_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			updated_at = excluded.updated_at,
			profile_json = excluded.profile_json,
			graph_json = excluded.graph_json,
			world_json = excluded.world_json,
			proposals_json = excluded.proposals_json`,
		s.ID, s.PlayerID, s.CreatedAt.Unix(), s.UpdatedAt.Unix(),
		string(profile), string(graph), string(worldJSON), string(proposals))
	return err
}

func (st *SQLiteStore) Delete(id string) error {
	_, err := st.conn.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}

func (st *SQLiteStore) Sweep(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := st.conn.Exec("DELETE FROM sessions WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
