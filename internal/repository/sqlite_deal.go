package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/db"
	"github.com/forgeos/forgeplan/internal/domain"
)

const dealColumns = `id, name, company, value_cents, stage, created_at, updated_at`

// SQLiteDealRepo implements DealRepo using a SQLite database.
type SQLiteDealRepo struct {
	db db.DBTX
}

// NewSQLiteDealRepo creates a new SQLiteDealRepo.
func NewSQLiteDealRepo(conn db.DBTX) *SQLiteDealRepo {
	return &SQLiteDealRepo{db: conn}
}

func (r *SQLiteDealRepo) Create(ctx context.Context, d *domain.Deal) error {
	query := `INSERT INTO deals (` + dealColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.Company,
		d.ValueCents,
		d.Stage,
		d.CreatedAt.Format(time.RFC3339Nano),
		d.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting deal: %w", err)
	}
	return nil
}

func (r *SQLiteDealRepo) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	d, err := scanDeal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("deal %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDealRepo) List(ctx context.Context) ([]*domain.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY value_cents DESC, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing deals: %w", err)
	}
	defer rows.Close()

	var deals []*domain.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deals: %w", err)
	}
	return deals, nil
}

func (r *SQLiteDealRepo) Update(ctx context.Context, d *domain.Deal) error {
	query := `UPDATE deals SET name = ?, company = ?, value_cents = ?, stage = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.Name,
		d.Company,
		d.ValueCents,
		d.Stage,
		d.UpdatedAt.Format(time.RFC3339Nano),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating deal: %w", err)
	}
	return requireRowAffected(res, "deal", d.ID)
}

func (r *SQLiteDealRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM deals WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting deal: %w", err)
	}
	return nil
}

func scanDeal(row rowScanner) (*domain.Deal, error) {
	var d domain.Deal
	var createdAtStr, updatedAtStr string

	err := row.Scan(&d.ID, &d.Name, &d.Company, &d.ValueCents, &d.Stage, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning deal: %w", err)
	}

	var parseErr error
	d.CreatedAt, parseErr = time.Parse(time.RFC3339Nano, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	d.UpdatedAt, parseErr = time.Parse(time.RFC3339Nano, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &d, nil
}
