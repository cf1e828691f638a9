package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/db"
	"github.com/forgeos/forgeplan/internal/domain"
)

const fixedEventColumns = `id, weekday, start_time, end_time, title, created_at`

// SQLiteFixedEventRepo implements FixedEventRepo using a SQLite database.
type SQLiteFixedEventRepo struct {
	db db.DBTX
}

// NewSQLiteFixedEventRepo creates a new SQLiteFixedEventRepo.
func NewSQLiteFixedEventRepo(conn db.DBTX) *SQLiteFixedEventRepo {
	return &SQLiteFixedEventRepo{db: conn}
}

func (r *SQLiteFixedEventRepo) Create(ctx context.Context, e *domain.FixedEvent) error {
	query := `INSERT INTO fixed_events (` + fixedEventColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		int(e.Weekday),
		e.Start,
		e.End,
		e.Title,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting fixed event: %w", err)
	}
	return nil
}

func (r *SQLiteFixedEventRepo) List(ctx context.Context) ([]*domain.FixedEvent, error) {
	query := `SELECT ` + fixedEventColumns + ` FROM fixed_events ORDER BY weekday, start_time, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fixed events: %w", err)
	}
	defer rows.Close()

	var events []*domain.FixedEvent
	for rows.Next() {
		var e domain.FixedEvent
		var weekday int
		var createdAtStr string
		if err := rows.Scan(&e.ID, &weekday, &e.Start, &e.End, &e.Title, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning fixed event: %w", err)
		}
		e.Weekday = time.Weekday(weekday)
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fixed events: %w", err)
	}
	return events, nil
}

func (r *SQLiteFixedEventRepo) ReplaceAll(ctx context.Context, events []*domain.FixedEvent) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fixed_events`); err != nil {
		return fmt.Errorf("clearing fixed events: %w", err)
	}
	for _, e := range events {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteFixedEventRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM fixed_events WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting fixed event: %w", err)
	}
	return nil
}
