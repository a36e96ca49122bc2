package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/timeslot"
)

// ErrRequestNotFound is returned when a reservation request lookup fails.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepo persists viewer reservation requests.
type RequestRepo struct {
	db *sql.DB
}

func NewRequestRepo(db *sql.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

const requestColumns = `id, hall_id, created_by, message, status, event_type, event_name, event_owner,
	DATE_FORMAT(event_date, '%Y-%m-%d'), TIME_FORMAT(event_time, '%H:%i'), created_at`

func scanRequest(row rowScanner) (*model.Request, error) {
	var (
		q         model.Request
		status    string
		eventType int32
	)
	err := row.Scan(&q.ID, &q.HallID, &q.CreatedBy, &q.Message, &status, &eventType,
		&q.EventName, &q.EventOwner, &q.EventDate, &q.EventTime, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	q.Status = model.RequestStatus(status)
	q.EventType = model.EventType(eventType)
	return &q, nil
}

// Create inserts a request with status PENDING and re-reads the row.
func (r *RequestRepo) Create(ctx context.Context, q *model.Request) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO requests (hall_id, created_by, message, status, event_type, event_name, event_owner, event_date, event_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.HallID, q.CreatedBy, q.Message, string(model.RequestPending), int32(q.EventType),
		q.EventName, q.EventOwner, timeslot.NormalizeDate(q.EventDate), q.EventTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = uint64(id)
	fresh, err := r.GetByID(ctx, q.ID)
	if err != nil {
		return err
	}
	*q = *fresh
	return nil
}

// GetByID retrieves one request, returning ErrRequestNotFound when absent.
func (r *RequestRepo) GetByID(ctx context.Context, id uint64) (*model.Request, error) {
	q, err := scanRequest(r.db.QueryRowContext(ctx,
		"SELECT "+requestColumns+" FROM requests WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	return q, err
}

// UpdateStatus transitions a request to the given status. Returns
// ErrRequestNotFound when the id does not exist.
func (r *RequestRepo) UpdateStatus(ctx context.Context, id uint64, status model.RequestStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE requests SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if scanErr := r.db.QueryRowContext(ctx, "SELECT 1 FROM requests WHERE id = ?", id).Scan(&one); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return ErrRequestNotFound
			}
			return scanErr
		}
	}
	return nil
}

// ListByHall returns all requests targeting one hall, newest first.
func (r *RequestRepo) ListByHall(ctx context.Context, hallID uint64) ([]model.Request, error) {
	return r.list(ctx,
		"SELECT "+requestColumns+" FROM requests WHERE hall_id = ? ORDER BY created_at DESC", hallID)
}

// ListByUser returns the requests one viewer has submitted, newest first.
func (r *RequestRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Request, error) {
	return r.list(ctx,
		"SELECT "+requestColumns+" FROM requests WHERE created_by = ? ORDER BY created_at DESC", userID)
}

// ListAnsweredByHall returns the answered requests for one hall ordered by
// id, the order reconciliation scans for a first match.
func (r *RequestRepo) ListAnsweredByHall(ctx context.Context, hallID uint64) ([]model.Request, error) {
	return r.list(ctx,
		"SELECT "+requestColumns+" FROM requests WHERE hall_id = ? AND status = ? ORDER BY id",
		hallID, string(model.RequestAnswered))
}

func (r *RequestRepo) list(ctx context.Context, q string, args ...any) ([]model.Request, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
