package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	defaultCurrency      = "TWD"
	defaultWetPercentage = 50
)

// Settings are the runtime display settings kept in the settings singleton.
type Settings struct {
	Currency             string
	DefaultWetPercentage int
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureSettings(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

// LoadSettings reads the settings singleton.
func LoadSettings(ctx context.Context, db *sql.DB) (Settings, error) {
	var s Settings
	err := db.QueryRowContext(ctx, `
		SELECT currency, default_wet_percentage
		FROM settings
		WHERE id = 1
	`).Scan(&s.Currency, &s.DefaultWetPercentage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Settings{}, fmt.Errorf("settings singleton not found")
		}
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return s, nil
}

func ensureSettings(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check settings existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO settings (id, currency, default_wet_percentage)
		VALUES (1, ?, ?)
	`, defaultCurrency, defaultWetPercentage); err != nil {
		return fmt.Errorf("insert settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
