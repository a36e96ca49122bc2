package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// ErrCenterNotFound is returned when a center cannot be found.
var ErrCenterNotFound = errors.New("center not found")

// CenterRepo encapsulates all database queries related to centers.
type CenterRepo struct {
	db *sql.DB
}

// NewCenterRepo constructs a CenterRepo with the provided DB handle.
func NewCenterRepo(db *sql.DB) *CenterRepo {
	return &CenterRepo{db: db}
}

const centerColumns = "id, name, address, description, created_at, updated_at"

// Create inserts a new center. On success the ID and timestamp fields are
// populated from the freshly inserted row.
func (r *CenterRepo) Create(ctx context.Context, c *model.Center) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO centers (name, address, description) VALUES (?, ?, ?)",
		c.Name, c.Address, c.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return r.db.QueryRowContext(ctx, "SELECT "+centerColumns+" FROM centers WHERE id = ?", c.ID).
		Scan(&c.ID, &c.Name, &c.Address, &c.Description, &c.CreatedAt, &c.UpdatedAt)
}

// GetByID fetches a center by its ID. It returns ErrCenterNotFound if no
// row matches.
func (r *CenterRepo) GetByID(ctx context.Context, id uint64) (*model.Center, error) {
	var c model.Center
	err := r.db.QueryRowContext(ctx, "SELECT "+centerColumns+" FROM centers WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Address, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCenterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll returns every center ordered by id. Used by the public browse
// endpoints.
func (r *CenterRepo) ListAll(ctx context.Context) ([]*model.Center, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+centerColumns+" FROM centers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Center
	for rows.Next() {
		c := new(model.Center)
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the mutable fields of a center. It returns
// ErrCenterNotFound when no row is affected.
func (r *CenterRepo) Update(ctx context.Context, c *model.Center) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE centers SET name = ?, address = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		c.Name, c.Address, c.Description, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCenterNotFound
	}
	return nil
}

// Delete removes a center and cascades over its dependent records: access
// grants, requests and schedules of its halls, then the halls themselves.
// The deletion runs in a transaction to maintain integrity.
func (r *CenterRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var exists uint64
	if err = tx.QueryRowContext(ctx, "SELECT id FROM centers WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrCenterNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE s FROM schedules s JOIN halls h ON h.id = s.hall_id WHERE h.center_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE q FROM requests q JOIN halls h ON h.id = q.hall_id WHERE h.center_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE a FROM hall_access a JOIN halls h ON h.id = a.hall_id WHERE h.center_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM hall_access WHERE center_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM halls WHERE center_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM centers WHERE id = ?`, id)
	return err
}
