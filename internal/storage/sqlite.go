// Package storage provides SQLite-based persistence for settings, rankings
// and play statistics. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// RankingSize is the number of entries kept on the local leaderboard.
const RankingSize = 10

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Settings holds the player-facing preferences. Stored as a single row;
// a missing or unreadable row falls back to DefaultSettings.
type Settings struct {
	Sound        bool
	Haptics      bool
	ShowTutorial bool
	Language     string
	Volume       float64
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		Sound:        true,
		Haptics:      true,
		ShowTutorial: true,
		Language:     "en",
		Volume:       0.7,
	}
}

// RankingEntry is one row of the local top-10 leaderboard.
type RankingEntry struct {
	Rank      int
	Player    string
	Score     int
	Stage     int // highest stage reached in that session
	CreatedAt time.Time
}

// PlayStats aggregates play history across all sessions.
type PlayStats struct {
	TotalPlays    int
	TotalScore    int64
	BestStage     int
	TotalPlayTime int // seconds
	HighScore     int
}

// MiniGameStats aggregates per-mini-game history.
type MiniGameStats struct {
	GameID     int
	Plays      int
	Clears     int
	BestScore  int
	TotalScore int64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			sound INTEGER NOT NULL DEFAULT 1,
			haptics INTEGER NOT NULL DEFAULT 1,
			show_tutorial INTEGER NOT NULL DEFAULT 1,
			language TEXT NOT NULL DEFAULT 'en',
			volume REAL NOT NULL DEFAULT 0.7
		);

		CREATE TABLE IF NOT EXISTS rankings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			stage INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rankings_score ON rankings(score DESC);

		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			player TEXT NOT NULL DEFAULT 'Player'
		);

		CREATE TABLE IF NOT EXISTS play_stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_plays INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			best_stage INTEGER NOT NULL DEFAULT 0,
			total_play_time INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS minigame_stats (
			game_id INTEGER PRIMARY KEY,
			plays INTEGER NOT NULL DEFAULT 0,
			clears INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Settings loads the stored preferences. A missing or unreadable row
// yields DefaultSettings rather than an error; only the connection
// failing surfaces one.
func (s *Store) Settings() (Settings, error) {
	var (
		sound, haptics, tutorial int
		language                 string
		volume                   float64
	)
	err := s.db.QueryRow(
		"SELECT sound, haptics, show_tutorial, language, volume FROM settings WHERE id = 1",
	).Scan(&sound, &haptics, &tutorial, &language, &volume)
	if err == sql.ErrNoRows {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("storage: cannot load settings: %w", err)
	}

	out := Settings{
		Sound:        sound != 0,
		Haptics:      haptics != 0,
		ShowTutorial: tutorial != 0,
		Language:     language,
		Volume:       volume,
	}
	if out.Language == "" || out.Volume < 0 || out.Volume > 1 {
		return DefaultSettings(), nil
	}
	return out, nil
}

// SaveSettings persists the preferences, overwriting the previous row.
func (s *Store) SaveSettings(set Settings) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (id, sound, haptics, show_tutorial, language, volume)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			sound = excluded.sound,
			haptics = excluded.haptics,
			show_tutorial = excluded.show_tutorial,
			language = excluded.language,
			volume = excluded.volume`,
		boolInt(set.Sound), boolInt(set.Haptics), boolInt(set.ShowTutorial),
		set.Language, set.Volume,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SaveRanking inserts a finished session onto the leaderboard, trims it
// to the top RankingSize entries by score and returns the assigned rank.
// A rank of 0 means the score did not make the board.
func (s *Store) SaveRanking(player string, score, stage int) (int, error) {
	if player == "" {
		player = "Player"
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO rankings (player, score, stage) VALUES (?, ?, ?)",
		player, score, stage,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save ranking: %w", err)
	}
	inserted, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	// Keep only the top entries; ties resolve to the earlier insert.
	_, err = tx.Exec(
		`DELETE FROM rankings WHERE id NOT IN (
			SELECT id FROM rankings ORDER BY score DESC, id ASC LIMIT ?
		)`, RankingSize,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot trim rankings: %w", err)
	}

	// The entry may have been trimmed straight away; rank 0 means it
	// missed the board.
	var rank int
	var exists int
	if err := tx.QueryRow("SELECT COUNT(*) FROM rankings WHERE id = ?", inserted).Scan(&exists); err != nil {
		return 0, fmt.Errorf("storage: cannot check ranking: %w", err)
	}
	if exists > 0 {
		err = tx.QueryRow(
			`SELECT COUNT(*) + 1 FROM rankings r
			 WHERE r.score > (SELECT score FROM rankings WHERE id = ?1)
				OR (r.score = (SELECT score FROM rankings WHERE id = ?1) AND r.id < ?1)`,
			inserted,
		).Scan(&rank)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot rank entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit ranking: %w", err)
	}
	return rank, nil
}

// Rankings returns the leaderboard in score-descending order with ranks
// assigned 1..n.
func (s *Store) Rankings() ([]RankingEntry, error) {
	rows, err := s.db.Query(
		`SELECT player, score, stage, created_at
		 FROM rankings
		 ORDER BY score DESC, id ASC
		 LIMIT ?`, RankingSize,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rankings: %w", err)
	}
	defer rows.Close()

	var entries []RankingEntry
	for rows.Next() {
		var e RankingEntry
		var createdAt any
		if err := rows.Scan(&e.Player, &e.Score, &e.Stage, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearRankings wipes the leaderboard.
func (s *Store) ClearRankings() error {
	if _, err := s.db.Exec("DELETE FROM rankings"); err != nil {
		return fmt.Errorf("storage: cannot clear rankings: %w", err)
	}
	return nil
}

// PlayerName loads the stored profile name, defaulting to "Player".
func (s *Store) PlayerName() (string, error) {
	var name string
	err := s.db.QueryRow("SELECT player FROM profile WHERE id = 1").Scan(&name)
	if err == sql.ErrNoRows || (err == nil && name == "") {
		return "Player", nil
	}
	if err != nil {
		return "Player", fmt.Errorf("storage: cannot load profile: %w", err)
	}
	return name, nil
}

// SavePlayerName persists the profile name.
func (s *Store) SavePlayerName(name string) error {
	_, err := s.db.Exec(
		`INSERT INTO profile (id, player) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET player = excluded.player`,
		name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// RecordSession folds a finished session into the aggregate statistics:
// play count, total score, best stage, play time and the high score.
func (s *Store) RecordSession(score, stageReached, playTimeSecs int) error {
	_, err := s.db.Exec(
		`INSERT INTO play_stats (id, total_plays, total_score, best_stage, total_play_time, high_score)
		 VALUES (1, 1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			total_plays = total_plays + 1,
			total_score = total_score + excluded.total_score,
			best_stage = MAX(best_stage, excluded.best_stage),
			total_play_time = total_play_time + excluded.total_play_time,
			high_score = MAX(high_score, excluded.high_score)`,
		score, stageReached, playTimeSecs, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record session: %w", err)
	}
	return nil
}

// Stats loads the aggregate play statistics, zeroed when nothing has
// been recorded yet.
func (s *Store) Stats() (PlayStats, error) {
	var st PlayStats
	err := s.db.QueryRow(
		`SELECT total_plays, total_score, best_stage, total_play_time, high_score
		 FROM play_stats WHERE id = 1`,
	).Scan(&st.TotalPlays, &st.TotalScore, &st.BestStage, &st.TotalPlayTime, &st.HighScore)
	if err == sql.ErrNoRows {
		return PlayStats{}, nil
	}
	if err != nil {
		return PlayStats{}, fmt.Errorf("storage: cannot load stats: %w", err)
	}
	return st, nil
}

// HighScore returns the best session score ever recorded.
func (s *Store) HighScore() (int, error) {
	st, err := s.Stats()
	if err != nil {
		return 0, err
	}
	return st.HighScore, nil
}

// RecordMiniGame folds one stage outcome into that mini-game's history.
func (s *Store) RecordMiniGame(gameID, score int, cleared bool) error {
	_, err := s.db.Exec(
		`INSERT INTO minigame_stats (game_id, plays, clears, best_score, total_score)
		 VALUES (?, 1, ?, ?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
			plays = plays + 1,
			clears = clears + excluded.clears,
			best_score = MAX(best_score, excluded.best_score),
			total_score = total_score + excluded.total_score`,
		gameID, boolInt(cleared), score, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record mini-game: %w", err)
	}
	return nil
}

// MiniGameStatsByID loads per-mini-game statistics, zeroed if unplayed.
func (s *Store) MiniGameStatsByID(gameID int) (MiniGameStats, error) {
	st := MiniGameStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT plays, clears, best_score, total_score
		 FROM minigame_stats WHERE game_id = ?`, gameID,
	).Scan(&st.Plays, &st.Clears, &st.BestScore, &st.TotalScore)
	if err == sql.ErrNoRows {
		return MiniGameStats{GameID: gameID}, nil
	}
	if err != nil {
		return MiniGameStats{}, fmt.Errorf("storage: cannot load mini-game stats: %w", err)
	}
	return st, nil
}

// AllMiniGameStats loads the history of every played mini-game, keyed
// by catalog id.
func (s *Store) AllMiniGameStats() (map[int]MiniGameStats, error) {
	rows, err := s.db.Query(
		"SELECT game_id, plays, clears, best_score, total_score FROM minigame_stats",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mini-game stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]MiniGameStats)
	for rows.Next() {
		var st MiniGameStats
		if err := rows.Scan(&st.GameID, &st.Plays, &st.Clears, &st.BestScore, &st.TotalScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.GameID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite text form.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
