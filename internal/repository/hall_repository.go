package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// ErrHallNotFound is returned when a hall lookup fails.
var ErrHallNotFound = errors.New("hall not found")

// HallRepo provides create, lookup and delete operations for halls.
type HallRepo struct {
	db *sql.DB
}

// NewHallRepo constructs a HallRepo with the given DB handle.
func NewHallRepo(db *sql.DB) *HallRepo {
	return &HallRepo{db: db}
}

const hallColumns = "id, center_id, name, capacity, address, description, image_url, created_at, updated_at"

func scanHall(row interface{ Scan(...any) error }) (*model.Hall, error) {
	var h model.Hall
	err := row.Scan(&h.ID, &h.CenterID, &h.Name, &h.Capacity, &h.Address, &h.Description, &h.ImageURL, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserts a new hall. CenterID and Name must be set. After insert the
// row is re-read so timestamps come back populated.
func (r *HallRepo) Create(ctx context.Context, h *model.Hall) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO halls (center_id, name, capacity, address, description, image_url)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		h.CenterID, h.Name, h.Capacity, h.Address, h.Description, h.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	fresh, err := scanHall(r.db.QueryRowContext(ctx, "SELECT "+hallColumns+" FROM halls WHERE id = ?", h.ID))
	if err != nil {
		return err
	}
	*h = *fresh
	return nil
}

// GetByID retrieves a hall by its ID. It returns ErrHallNotFound when no
// row matches.
func (r *HallRepo) GetByID(ctx context.Context, id uint64) (*model.Hall, error) {
	h, err := scanHall(r.db.QueryRowContext(ctx, "SELECT "+hallColumns+" FROM halls WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	return h, err
}

// ListByCenter returns all halls belonging to one center ordered by id.
func (r *HallRepo) ListByCenter(ctx context.Context, centerID uint64) ([]*model.Hall, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+hallColumns+" FROM halls WHERE center_id = ? ORDER BY id", centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Hall
	for rows.Next() {
		h, err := scanHall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the mutable fields of a hall. The owning center is
// fixed at creation and cannot be moved. Returns ErrHallNotFound when no
// row is affected.
func (r *HallRepo) Update(ctx context.Context, h *model.Hall) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE halls SET name = ?, capacity = ?, address = ?, description = ?, image_url = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		h.Name, h.Capacity, h.Address, h.Description, h.ImageURL, h.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHallNotFound
	}
	return nil
}

// Delete removes a hall together with its schedules, requests and access
// grants inside one transaction.
func (r *HallRepo) Delete(ctx context.Context, id uint64) (err error) {
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
	if err = tx.QueryRowContext(ctx, "SELECT id FROM halls WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrHallNotFound
		}
		return err
	}
	for _, q := range []string{
		"DELETE FROM schedules WHERE hall_id = ?",
		"DELETE FROM requests WHERE hall_id = ?",
		"DELETE FROM hall_access WHERE hall_id = ?",
		"DELETE FROM halls WHERE id = ?",
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	return nil
}
