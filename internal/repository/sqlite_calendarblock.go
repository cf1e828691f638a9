package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/db"
	"github.com/forgeos/forgeplan/internal/domain"
)

const calendarBlockColumns = `id, date, start_time, end_time, title, type, task_id, locked, completed`

// SQLiteCalendarBlockRepo implements CalendarBlockRepo using a SQLite database.
type SQLiteCalendarBlockRepo struct {
	db db.DBTX
}

// NewSQLiteCalendarBlockRepo creates a new SQLiteCalendarBlockRepo.
func NewSQLiteCalendarBlockRepo(conn db.DBTX) *SQLiteCalendarBlockRepo {
	return &SQLiteCalendarBlockRepo{db: conn}
}

// weekBounds returns the [from, to) ISO date strings for the seven days
// starting at weekStart.
func weekBounds(weekStart time.Time) (string, string) {
	return weekStart.Format(dateLayout), weekStart.AddDate(0, 0, 7).Format(dateLayout)
}

func (r *SQLiteCalendarBlockRepo) ReplaceWeek(ctx context.Context, weekStart time.Time, blocks []contract.CalendarBlock) error {
	from, to := weekBounds(weekStart)
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM calendar_blocks WHERE date >= ? AND date < ?`, from, to); err != nil {
		return fmt.Errorf("clearing week %s: %w", from, err)
	}

	query := `INSERT INTO calendar_blocks (` + calendarBlockColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, b := range blocks {
		_, err := r.db.ExecContext(ctx, query,
			b.ID,
			b.Date,
			b.Start,
			b.End,
			b.Title,
			string(b.Type),
			b.TaskID,
			boolToInt(b.Locked),
			boolToInt(b.Completed),
		)
		if err != nil {
			return fmt.Errorf("inserting calendar block: %w", err)
		}
	}
	return nil
}

func (r *SQLiteCalendarBlockRepo) ListWeek(ctx context.Context, weekStart time.Time) ([]contract.CalendarBlock, error) {
	from, to := weekBounds(weekStart)
	query := `SELECT ` + calendarBlockColumns + ` FROM calendar_blocks
		WHERE date >= ? AND date < ? ORDER BY date, start_time, id`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing calendar blocks: %w", err)
	}
	defer rows.Close()

	var blocks []contract.CalendarBlock
	for rows.Next() {
		b, err := scanCalendarBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar blocks: %w", err)
	}
	return blocks, nil
}

func (r *SQLiteCalendarBlockRepo) GetByID(ctx context.Context, id string) (*contract.CalendarBlock, error) {
	query := `SELECT ` + calendarBlockColumns + ` FROM calendar_blocks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	b, err := scanCalendarBlock(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("calendar block %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (r *SQLiteCalendarBlockRepo) Update(ctx context.Context, b *contract.CalendarBlock) error {
	query := `UPDATE calendar_blocks SET date = ?, start_time = ?, end_time = ?, title = ?,
		type = ?, task_id = ?, locked = ?, completed = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Date,
		b.Start,
		b.End,
		b.Title,
		string(b.Type),
		b.TaskID,
		boolToInt(b.Locked),
		boolToInt(b.Completed),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating calendar block: %w", err)
	}
	return requireRowAffected(res, "calendar block", b.ID)
}

func scanCalendarBlock(row rowScanner) (*contract.CalendarBlock, error) {
	var b contract.CalendarBlock
	var typeStr string
	var locked, completed int

	err := row.Scan(&b.ID, &b.Date, &b.Start, &b.End, &b.Title, &typeStr, &b.TaskID, &locked, &completed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning calendar block: %w", err)
	}

	b.Type = domain.BlockType(typeStr)
	b.Locked = intToBool(locked)
	b.Completed = intToBool(completed)
	return &b, nil
}
