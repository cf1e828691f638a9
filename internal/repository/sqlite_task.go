package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/db"
	"github.com/forgeos/forgeplan/internal/domain"
)

const dateLayout = "2006-01-02"

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, title, description, estimate_min, status, priority,
		urgency, impact, type, deal_id, due_date, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.EstimateMin,
		string(t.Status),
		string(t.Priority),
		t.Urgency,
		t.Impact,
		string(t.Type),
		emptyToNull(t.DealID),
		nullableTimeToString(t.DueDate, dateLayout),
		t.CreatedAt.Format(time.RFC3339Nano),
		t.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	if !includeCompleted {
		query += ` WHERE status != 'completed'`
	}
	query += ` ORDER BY created_at, id`

	return r.queryTasks(ctx, query)
}

func (r *SQLiteTaskRepo) ListPending(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE status != 'completed' ORDER BY created_at, id`
	return r.queryTasks(ctx, query)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, estimate_min = ?, status = ?,
		priority = ?, urgency = ?, impact = ?, type = ?, deal_id = ?, due_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		t.EstimateMin,
		string(t.Status),
		string(t.Priority),
		t.Urgency,
		t.Impact,
		string(t.Type),
		emptyToNull(t.DealID),
		nullableTimeToString(t.DueDate, dateLayout),
		t.UpdatedAt.Format(time.RFC3339Nano),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRowAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	query := `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(status), time.Now().UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return fmt.Errorf("setting task status: %w", err)
	}
	return requireRowAffected(res, "task", id)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var statusStr, priorityStr, typeStr, createdAtStr, updatedAtStr string
	var dealID, dueDateStr sql.NullString

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.EstimateMin,
		&statusStr, &priorityStr, &t.Urgency, &t.Impact, &typeStr,
		&dealID, &dueDateStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Status = domain.TaskStatus(statusStr)
	t.Priority = domain.Priority(priorityStr)
	t.Type = domain.TaskType(typeStr)
	if dealID.Valid {
		t.DealID = dealID.String
	}
	t.DueDate = parseNullableTime(dueDateStr, dateLayout)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339Nano, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339Nano, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}

// requireRowAffected turns a zero-row UPDATE into ErrNotFound.
func requireRowAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
