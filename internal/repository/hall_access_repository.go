package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// ErrGrantExists is returned when an identical access grant already exists.
var ErrGrantExists = errors.New("access grant already exists")

// ErrGrantNotFound is returned when a grant lookup or revoke matches no row.
var ErrGrantNotFound = errors.New("access grant not found")

// HallAccessRepo persists the first-class editor allow-list relation. A row
// names either a hall or a center; center rows apply to every hall under it.
type HallAccessRepo struct {
	db *sql.DB
}

func NewHallAccessRepo(db *sql.DB) *HallAccessRepo {
	return &HallAccessRepo{db: db}
}

// GrantHall gives an editor access to one hall.
func (r *HallAccessRepo) GrantHall(ctx context.Context, hallID, userID uint64) (*model.HallAccess, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO hall_access (hall_id, user_id) VALUES (?, ?)", hallID, userID)
	if err != nil {
		if isDuplicateErr(err) {
			return nil, ErrGrantExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.getByID(ctx, uint64(id))
}

// GrantCenter gives an editor access to every hall of a center.
func (r *HallAccessRepo) GrantCenter(ctx context.Context, centerID, userID uint64) (*model.HallAccess, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO hall_access (center_id, user_id) VALUES (?, ?)", centerID, userID)
	if err != nil {
		if isDuplicateErr(err) {
			return nil, ErrGrantExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.getByID(ctx, uint64(id))
}

// Revoke deletes one grant row by id.
func (r *HallAccessRepo) Revoke(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM hall_access WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrGrantNotFound
	}
	return nil
}

// ListForHall returns all grants that apply to a hall: rows naming the hall
// directly plus rows naming its owning center.
func (r *HallAccessRepo) ListForHall(ctx context.Context, hallID uint64) ([]*model.HallAccess, error) {
	const q = `SELECT a.id, a.hall_id, a.center_id, a.user_id, a.created_at
	           FROM hall_access a
	           LEFT JOIN halls h ON h.id = ?
	           WHERE a.hall_id = ? OR (a.center_id IS NOT NULL AND a.center_id = h.center_id)
	           ORDER BY a.id`
	rows, err := r.db.QueryContext(ctx, q, hallID, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.HallAccess
	for rows.Next() {
		a := new(model.HallAccess)
		var hall, center sql.NullInt64
		if err := rows.Scan(&a.ID, &hall, &center, &a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		if hall.Valid {
			v := uint64(hall.Int64)
			a.HallID = &v
		}
		if center.Valid {
			v := uint64(center.Int64)
			a.CenterID = &v
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GrantsFor resolves the allow-list state of one hall for one user in a
// single query: whether any grant is configured for the hall or its center,
// and whether one of those grants names the user.
func (r *HallAccessRepo) GrantsFor(ctx context.Context, hallID, centerID, userID uint64) (model.HallGrants, error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(user_id = ?), 0)
	           FROM hall_access
	           WHERE hall_id = ? OR center_id = ?`
	var total, mine int64
	if err := r.db.QueryRowContext(ctx, q, userID, hallID, centerID).Scan(&total, &mine); err != nil {
		return model.HallGrants{}, err
	}
	return model.HallGrants{Configured: total > 0, Granted: mine > 0}, nil
}

func (r *HallAccessRepo) getByID(ctx context.Context, id uint64) (*model.HallAccess, error) {
	a := new(model.HallAccess)
	var hall, center sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT id, hall_id, center_id, user_id, created_at FROM hall_access WHERE id = ?", id).
		Scan(&a.ID, &hall, &center, &a.UserID, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGrantNotFound
	}
	if err != nil {
		return nil, err
	}
	if hall.Valid {
		v := uint64(hall.Int64)
		a.HallID = &v
	}
	if center.Valid {
		v := uint64(center.Int64)
		a.CenterID = &v
	}
	return a, nil
}
