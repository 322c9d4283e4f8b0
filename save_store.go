package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SaveStore はペットのステータスとトレーニング履歴を永続化します。
// CGO不要のmodernc.org/sqliteを使います。書き込みはトレーニングシーンが
// セッション完了時に行うだけで、フレームごとのI/Oはありません。
type SaveStore struct {
	db *sql.DB
}

// TrainingLogEntry はトレーニング履歴の1行です。
type TrainingLogEntry struct {
	ID        int64
	PetID     string
	Kind      string
	Score     int
	CreatedAt time.Time
}

// OpenSaveStore は指定パスにデータベースを作成または開きます。
// 親ディレクトリが無ければ作り、スキーマを整えます。
func OpenSaveStore(dbPath string) (*SaveStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("save: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: cannot connect to database: %w", err)
	}

	store := &SaveStore{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SaveStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS pets (
			id TEXT PRIMARY KEY,
			strength INTEGER NOT NULL,
			stamina INTEGER NOT NULL,
			excitement INTEGER NOT NULL,
			discipline INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS training_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pet_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_training_log_pet ON training_log(pet_id, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SavePetStats はペットのステータススナップショットを上書き保存します。
func (s *SaveStore) SavePetStats(petID string, stats PetStats) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO pets (id, strength, stamina, excitement, discipline, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			strength = excluded.strength,
			stamina = excluded.stamina,
			excitement = excluded.excitement,
			discipline = excluded.discipline,
			updated_at = CURRENT_TIMESTAMP
	`, petID, stats.Strength, stats.Stamina, stats.Excitement, stats.Discipline)
	if err != nil {
		return fmt.Errorf("save: cannot save pet %s: %w", petID, err)
	}
	return nil
}

// LoadPetStats は保存済みステータスを返します。無ければ found=false です。
func (s *SaveStore) LoadPetStats(petID string) (stats PetStats, found bool, err error) {
	if s == nil {
		return PetStats{}, false, nil
	}
	row := s.db.QueryRow(`
		SELECT strength, stamina, excitement, discipline FROM pets WHERE id = ?
	`, petID)
	err = row.Scan(&stats.Strength, &stats.Stamina, &stats.Excitement, &stats.Discipline)
	if err == sql.ErrNoRows {
		return PetStats{}, false, nil
	}
	if err != nil {
		return PetStats{}, false, fmt.Errorf("save: cannot load pet %s: %w", petID, err)
	}
	return stats, true, nil
}

// RecordTraining はトレーニング履歴を1行追記します。
func (s *SaveStore) RecordTraining(petID string, kind string, score int) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO training_log (pet_id, kind, score) VALUES (?, ?, ?)
	`, petID, kind, score)
	if err != nil {
		return fmt.Errorf("save: cannot record training for %s: %w", petID, err)
	}
	return nil
}

// RecentTraining は新しい順にトレーニング履歴を返します。
func (s *SaveStore) RecentTraining(petID string, limit int) ([]TrainingLogEntry, error) {
	if s == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`
		SELECT id, pet_id, kind, score, created_at
		FROM training_log
		WHERE pet_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, petID, limit)
	if err != nil {
		return nil, fmt.Errorf("save: cannot query training log: %w", err)
	}
	defer rows.Close()

	var entries []TrainingLogEntry
	for rows.Next() {
		var e TrainingLogEntry
		if err := rows.Scan(&e.ID, &e.PetID, &e.Kind, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("save: cannot scan training log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *SaveStore) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}
