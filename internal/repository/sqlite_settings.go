package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forgeos/forgeplan/internal/db"
	"github.com/forgeos/forgeplan/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database. The
// settings table holds a single 'default' row seeded by the migrations.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.PlannerSettings, error) {
	query := `SELECT workday_start, workday_end, prime_hours, downtime_hours, meeting_blocks
		FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.PlannerSettings
	err := row.Scan(
		&s.WorkdayStart,
		&s.WorkdayEnd,
		&s.PrimeHours,
		&s.DowntimeHours,
		&s.MeetingBlocks,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.PlannerSettings) error {
	query := `INSERT OR REPLACE INTO settings
		(id, workday_start, workday_end, prime_hours, downtime_hours, meeting_blocks)
		VALUES ('default', ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.WorkdayStart,
		s.WorkdayEnd,
		s.PrimeHours,
		s.DowntimeHours,
		s.MeetingBlocks,
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
