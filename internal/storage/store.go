// Package storage persists the mission collection and user profile as
// versioned named records in an embedded sqlite file, the durable-state
// analog of the original per-key local storage. The engine never touches
// this package; it receives and returns plain values.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/glebarez/go-sqlite"

	"ecoaliados/internal/mission"
	"ecoaliados/pkg/logger"
	"ecoaliados/pkg/models"
)

// Record keys. The version suffix is part of the key's record payload, not
// the key itself, matching the original storage layout.
const (
	missionsKey = "ecoaliados.missions.v1"
	profileKey  = "ecoaliados.profile.v1"

	recordVersion = 1
)

type missionsRecord struct {
	V        int              `json:"v"`
	Missions []models.Mission `json:"missions"`
}

type profileRecord struct {
	V       int             `json:"v"`
	Profile *models.Profile `json:"profile"`
}

// Store loads and saves the app's two durable records. Loads never fail on
// bad payloads; they fall back to seed data so the app always starts.
type Store interface {
	LoadMissions(ctx context.Context) ([]models.Mission, error)
	SaveMissions(ctx context.Context, missions []models.Mission) error
	LoadProfile(ctx context.Context) (models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
	Close() error
}

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at the given file path.
func Open(path string) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			key        TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

// LoadMissions returns the stored collection, or the built-in seed when the
// record is missing, malformed, or carries an unknown version.
func (s *sqliteStore) LoadMissions(ctx context.Context) ([]models.Mission, error) {
	payload, err := s.get(ctx, missionsKey)
	if errors.Is(err, sql.ErrNoRows) {
		return mission.Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load missions: %w", err)
	}

	var record missionsRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil || record.V != recordVersion || record.Missions == nil {
		logger.Warnf("missions record unreadable, using seed collection (v=%d)", record.V)
		return mission.Seed(), nil
	}
	return record.Missions, nil
}

// SaveMissions writes the full collection record.
func (s *sqliteStore) SaveMissions(ctx context.Context, missions []models.Mission) error {
	payload, err := json.Marshal(missionsRecord{V: recordVersion, Missions: missions})
	if err != nil {
		return fmt.Errorf("failed to encode missions: %w", err)
	}
	return s.put(ctx, missionsKey, string(payload))
}

// LoadProfile returns the stored profile, creating and persisting a default
// one when the record is missing or unreadable.
func (s *sqliteStore) LoadProfile(ctx context.Context) (models.Profile, error) {
	payload, err := s.get(ctx, profileKey)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	if err == nil {
		var record profileRecord
		if jsonErr := json.Unmarshal([]byte(payload), &record); jsonErr == nil && record.V == recordVersion && record.Profile != nil {
			return *record.Profile, nil
		}
		logger.Warn("profile record unreadable, creating a default profile")
	}

	profile := models.DefaultProfile()
	if saveErr := s.SaveProfile(ctx, profile); saveErr != nil {
		logger.Warnf("failed to persist default profile: %v", saveErr)
	}
	return profile, nil
}

// SaveProfile writes the profile record.
func (s *sqliteStore) SaveProfile(ctx context.Context, profile models.Profile) error {
	payload, err := json.Marshal(profileRecord{V: recordVersion, Profile: &profile})
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.put(ctx, profileKey, string(payload))
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) get(ctx context.Context, key string) (string, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM records WHERE key = ?`, key).Scan(&payload)
	return payload, err
}

func (s *sqliteStore) put(ctx context.Context, key, payload string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`, key, payload)
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}
