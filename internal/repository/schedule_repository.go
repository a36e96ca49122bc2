package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/timeslot"
)

// ErrScheduleNotFound is returned when a schedule entry lookup fails.
var ErrScheduleNotFound = errors.New("schedule entry not found")

// ScheduleRepo persists schedule entries. Create and Update run their
// overlap check and the subsequent write inside one serializable
// transaction that locks the hall+date rows with SELECT ... FOR UPDATE, so
// two racing writers proposing overlapping intervals cannot both commit:
// one wins, the other gets the conflicting entry back.
type ScheduleRepo struct {
	db *sql.DB
}

func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// scheduleColumns formats dates and times back to the normalized string
// forms used across the engine ("2006-01-02" and "HH:MM").
const scheduleColumns = `id, hall_id, DATE_FORMAT(slot_date, '%Y-%m-%d'), TIME_FORMAT(start_time, '%H:%i'),
	TIME_FORMAT(end_time, '%H:%i'), status, created_by, event_type, event_name, event_owner, created_at, updated_at`

type rowScanner interface{ Scan(...any) error }

func scanSchedule(row rowScanner) (*model.ScheduleEntry, error) {
	var (
		e         model.ScheduleEntry
		status    string
		createdBy sql.NullInt64
		eventType sql.NullInt32
	)
	err := row.Scan(&e.ID, &e.HallID, &e.Date, &e.StartTime, &e.EndTime, &status,
		&createdBy, &eventType, &e.EventName, &e.EventOwner, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Status = model.ScheduleStatus(status)
	if createdBy.Valid {
		v := uint64(createdBy.Int64)
		e.CreatedBy = &v
	}
	if eventType.Valid {
		et := model.EventType(eventType.Int32)
		e.EventType = &et
	}
	return &e, nil
}

// GetByID retrieves one entry, returning ErrScheduleNotFound when absent.
func (r *ScheduleRepo) GetByID(ctx context.Context, id uint64) (*model.ScheduleEntry, error) {
	e, err := scanSchedule(r.db.QueryRowContext(ctx,
		"SELECT "+scheduleColumns+" FROM schedules WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	return e, err
}

// ListByHall returns every entry of one hall ordered by date and start time.
// Reads are served from the default snapshot view without locking.
func (r *ScheduleRepo) ListByHall(ctx context.Context, hallID uint64) ([]model.ScheduleEntry, error) {
	return r.list(ctx,
		"SELECT "+scheduleColumns+" FROM schedules WHERE hall_id = ? ORDER BY slot_date, start_time", hallID)
}

// ListByHallAndDate narrows ListByHall to one calendar date.
func (r *ScheduleRepo) ListByHallAndDate(ctx context.Context, hallID uint64, date string) ([]model.ScheduleEntry, error) {
	return r.list(ctx,
		"SELECT "+scheduleColumns+" FROM schedules WHERE hall_id = ? AND slot_date = ? ORDER BY start_time",
		hallID, timeslot.NormalizeDate(date))
}

func (r *ScheduleRepo) list(ctx context.Context, q string, args ...any) ([]model.ScheduleEntry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.ScheduleEntry
	for rows.Next() {
		e, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIfFree inserts the entry unless its interval overlaps an existing
// entry for the same hall and date. On conflict it returns the first
// conflicting entry and no error; the caller decides how to surface it.
func (r *ScheduleRepo) CreateIfFree(ctx context.Context, e *model.ScheduleEntry) (conflict *model.ScheduleEntry, err error) {
	candidate, err := timeslot.NewRange(e.StartTime, e.EndTime)
	if err != nil {
		return nil, err
	}
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	conflict, err = r.lockAndCheck(ctx, tx, e.HallID, e.Date, candidate, 0)
	if err != nil || conflict != nil {
		return conflict, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO schedules (hall_id, slot_date, start_time, end_time, status, created_by, event_type, event_name, event_owner)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.HallID, timeslot.NormalizeDate(e.Date), e.StartTime, e.EndTime, string(e.Status),
		nullUint(e.CreatedBy), nullEventType(e.EventType), e.EventName, e.EventOwner)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	e.ID = uint64(id)
	fresh, err := scanSchedule(tx.QueryRowContext(ctx,
		"SELECT "+scheduleColumns+" FROM schedules WHERE id = ?", e.ID))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	*e = *fresh
	return nil, nil
}

// UpdateIfFree overwrites all mutable fields of an existing entry unless the
// proposed interval overlaps another entry for the target hall and date. The
// entry's own row is excluded from the overlap check. Returns
// ErrScheduleNotFound when the id does not exist.
func (r *ScheduleRepo) UpdateIfFree(ctx context.Context, e *model.ScheduleEntry) (conflict *model.ScheduleEntry, err error) {
	candidate, err := timeslot.NewRange(e.StartTime, e.EndTime)
	if err != nil {
		return nil, err
	}
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	conflict, err = r.lockAndCheck(ctx, tx, e.HallID, e.Date, candidate, e.ID)
	if err != nil || conflict != nil {
		return conflict, err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE schedules SET slot_date = ?, start_time = ?, end_time = ?, status = ?,
		 event_type = ?, event_name = ?, event_owner = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		timeslot.NormalizeDate(e.Date), e.StartTime, e.EndTime, string(e.Status),
		nullEventType(e.EventType), e.EventName, e.EventOwner, e.ID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is zero both for a missing row and for a no-op write,
		// so re-check existence before reporting not found.
		var one int
		if scanErr := tx.QueryRowContext(ctx, "SELECT 1 FROM schedules WHERE id = ?", e.ID).Scan(&one); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return nil, ErrScheduleNotFound
			}
			return nil, scanErr
		}
	}
	fresh, err := scanSchedule(tx.QueryRowContext(ctx,
		"SELECT "+scheduleColumns+" FROM schedules WHERE id = ?", e.ID))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	*e = *fresh
	return nil, nil
}

// lockAndCheck reads all rows for the hall and date under FOR UPDATE and
// runs the overlap test over them. Locking the whole hall+date scope keeps
// the conflict decision and the subsequent write atomic.
func (r *ScheduleRepo) lockAndCheck(ctx context.Context, tx *sql.Tx, hallID uint64, date string, candidate timeslot.Range, excludeID uint64) (*model.ScheduleEntry, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT "+scheduleColumns+" FROM schedules WHERE hall_id = ? AND slot_date = ? FOR UPDATE",
		hallID, timeslot.NormalizeDate(date))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var existing []model.ScheduleEntry
	for rows.Next() {
		e, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		existing = append(existing, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return timeslot.FindConflict(existing, hallID, date, candidate, excludeID), nil
}

// Delete removes one entry, returning ErrScheduleNotFound when absent.
func (r *ScheduleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM schedules WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

// DeleteAll removes every schedule entry across all halls and returns the
// number of rows removed. Used by the superadmin bulk reset.
func (r *ScheduleRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM schedules")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullUint(v *uint64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullEventType(v *model.EventType) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
