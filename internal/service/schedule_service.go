package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/policy"
	"github.com/iliyamo/hall-reservation/internal/repository"
	"github.com/iliyamo/hall-reservation/internal/timeslot"
)

// ScheduleStore captures the persistence interactions the lifecycle manager
// needs. The concrete implementation locks the hall+date scope inside one
// transaction for CreateIfFree and UpdateIfFree; the returned entry is the
// conflicting one when the write was refused.
type ScheduleStore interface {
	GetByID(ctx context.Context, id uint64) (*model.ScheduleEntry, error)
	ListByHall(ctx context.Context, hallID uint64) ([]model.ScheduleEntry, error)
	ListByHallAndDate(ctx context.Context, hallID uint64, date string) ([]model.ScheduleEntry, error)
	CreateIfFree(ctx context.Context, e *model.ScheduleEntry) (*model.ScheduleEntry, error)
	UpdateIfFree(ctx context.Context, e *model.ScheduleEntry) (*model.ScheduleEntry, error)
	Delete(ctx context.Context, id uint64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// HallCatalog exposes hall lookups.
type HallCatalog interface {
	GetByID(ctx context.Context, id uint64) (*model.Hall, error)
}

// AccessDirectory resolves the allow-list state of a hall for an editor.
type AccessDirectory interface {
	GrantsFor(ctx context.Context, hallID, centerID, userID uint64) (model.HallGrants, error)
}

// ScheduleService orchestrates validation, authorization and conflict
// detection for schedule entries.
type ScheduleService struct {
	schedules ScheduleStore
	halls     HallCatalog
	access    AccessDirectory
	now       func() time.Time
}

// NewScheduleService wires dependencies for schedule operations. A nil now
// falls back to time.Now; tests supply fixed clocks.
func NewScheduleService(schedules ScheduleStore, halls HallCatalog, access AccessDirectory, now func() time.Time) *ScheduleService {
	if now == nil {
		now = time.Now
	}
	return &ScheduleService{schedules: schedules, halls: halls, access: access, now: now}
}

// ScheduleInput carries the caller-supplied fields of a create or update.
// EndTime may be empty, in which case it is inferred from the standard slot
// boundaries. EventType is honored for superadmins only; editors always get
// their own department stamped.
type ScheduleInput struct {
	HallID     uint64
	Date       string
	StartTime  string
	EndTime    string
	Status     model.ScheduleStatus
	EventType  *model.EventType
	EventName  string
	EventOwner string
}

// Create validates and persists a new schedule entry for the acting user.
// It returns a *ValidationError, policy denial, *ConflictError or
// ErrNotFound (unknown hall) on failure.
func (s *ScheduleService) Create(ctx context.Context, in ScheduleInput, actor model.Actor) (*model.ScheduleEntry, error) {
	hall, err := s.halls.GetByID(ctx, in.HallID)
	if err != nil {
		return nil, mapHallErr(err)
	}
	grants, err := s.grantsFor(ctx, hall, actor)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeSchedule(actor, policy.OpCreate, policy.ScheduleTarget{Grants: grants}); err != nil {
		return nil, err
	}

	entry, vErr := s.buildEntry(in, actor)
	if vErr.HasErrors() {
		return nil, vErr
	}
	entry.HallID = hall.ID
	entry.CreatedBy = &actor.UserID

	conflict, err := s.schedules.CreateIfFree(ctx, entry)
	if err != nil {
		return nil, mapRangeErr(err)
	}
	if conflict != nil {
		return nil, &ConflictError{Entry: *conflict}
	}
	return entry, nil
}

// Update loads the stored entry, authorizes the mutation against it as
// currently stored, re-validates the proposed values and rewrites all
// mutable fields. The entry's own interval is excluded from the overlap
// check. The owning hall of an entry never changes.
func (s *ScheduleService) Update(ctx context.Context, id uint64, in ScheduleInput, actor model.Actor) (*model.ScheduleEntry, error) {
	existing, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, mapScheduleErr(err)
	}
	hall, err := s.halls.GetByID(ctx, existing.HallID)
	if err != nil {
		return nil, mapHallErr(err)
	}
	grants, err := s.grantsFor(ctx, hall, actor)
	if err != nil {
		return nil, err
	}
	if err := policy.AuthorizeSchedule(actor, policy.OpUpdate, policy.ScheduleTarget{Grants: grants, Entry: existing}); err != nil {
		return nil, err
	}

	entry, vErr := s.buildEntry(in, actor)
	if vErr.HasErrors() {
		return nil, vErr
	}
	entry.ID = existing.ID
	entry.HallID = existing.HallID
	entry.CreatedBy = existing.CreatedBy

	conflict, err := s.schedules.UpdateIfFree(ctx, entry)
	if err != nil {
		return nil, mapRangeErr(mapScheduleErr(err))
	}
	if conflict != nil {
		return nil, &ConflictError{Entry: *conflict}
	}
	return entry, nil
}

// Delete removes one entry after authorizing against the stored row. A
// missing id reports ErrNotFound, distinct from a policy denial.
func (s *ScheduleService) Delete(ctx context.Context, id uint64, actor model.Actor) error {
	existing, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return mapScheduleErr(err)
	}
	hall, err := s.halls.GetByID(ctx, existing.HallID)
	if err != nil {
		return mapHallErr(err)
	}
	grants, err := s.grantsFor(ctx, hall, actor)
	if err != nil {
		return err
	}
	if err := policy.AuthorizeSchedule(actor, policy.OpDelete, policy.ScheduleTarget{Grants: grants, Entry: existing}); err != nil {
		return err
	}
	return mapScheduleErr(s.schedules.Delete(ctx, id))
}

// DeleteAll is the superadmin-only bulk reset. It removes every schedule
// entry across all halls and returns the count.
func (s *ScheduleService) DeleteAll(ctx context.Context, actor model.Actor) (int64, error) {
	if err := policy.AuthorizeBulkReset(actor); err != nil {
		return 0, err
	}
	return s.schedules.DeleteAll(ctx)
}

// ListForHall returns every entry of a hall. Reads are unrestricted by
// department or ownership: anyone who can see the hall sees all entries.
func (s *ScheduleService) ListForHall(ctx context.Context, hallID uint64) ([]model.ScheduleEntry, error) {
	if _, err := s.halls.GetByID(ctx, hallID); err != nil {
		return nil, mapHallErr(err)
	}
	return s.schedules.ListByHall(ctx, hallID)
}

// ListForHallOn returns a hall's entries for a single calendar date.
func (s *ScheduleService) ListForHallOn(ctx context.Context, hallID uint64, date string) ([]model.ScheduleEntry, error) {
	if _, err := s.halls.GetByID(ctx, hallID); err != nil {
		return nil, mapHallErr(err)
	}
	date = timeslot.NormalizeDate(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		vErr := &ValidationError{}
		vErr.add("date", "must be a calendar date in 2006-01-02 form")
		return nil, vErr
	}
	return s.schedules.ListByHallAndDate(ctx, hallID, date)
}

// buildEntry validates the input and assembles the entry to persist,
// stamping the effective event type per role.
func (s *ScheduleService) buildEntry(in ScheduleInput, actor model.Actor) (*model.ScheduleEntry, *ValidationError) {
	vErr := &ValidationError{}

	date := timeslot.NormalizeDate(in.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		vErr.add("date", "must be a calendar date in 2006-01-02 form")
	}

	start := timeslot.NormalizeClock(in.StartTime)
	if _, err := timeslot.ParseClock(start); err != nil {
		vErr.add("start_time", "must be a clock value in HH:mm form")
	}

	end := strings.TrimSpace(in.EndTime)
	if end == "" {
		// No explicit end: infer the next standard boundary after start.
		inferred, err := timeslot.DefaultEnd(start)
		if err == nil {
			end = inferred
		}
	} else {
		end = timeslot.NormalizeClock(end)
	}
	if _, err := timeslot.NewRange(start, end); err != nil {
		if errors.Is(err, timeslot.ErrEmptyRange) {
			vErr.add("end_time", "must be after start_time")
		} else if !vErr.HasErrors() {
			vErr.add("end_time", "must be a clock value in HH:mm form")
		}
	}

	if in.Status != model.StatusAvailable && in.Status != model.StatusReserved {
		vErr.add("status", "must be AVAILABLE or RESERVED")
	}

	// Editors never choose the classification; their department is the
	// event type. Superadmins state it explicitly.
	effectiveType := in.EventType
	if actor.IsEditor() {
		effectiveType = actor.Department
	}

	entry := &model.ScheduleEntry{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    in.Status,
	}
	if in.Status == model.StatusReserved {
		if strings.TrimSpace(in.EventName) == "" {
			vErr.add("event_name", "required for a reserved slot")
		}
		if strings.TrimSpace(in.EventOwner) == "" {
			vErr.add("event_owner", "required for a reserved slot")
		}
		if effectiveType == nil {
			vErr.add("event_type", "required for a reserved slot")
		} else if !effectiveType.Valid() {
			vErr.add("event_type", "unknown event type code")
		}
		entry.EventType = effectiveType
		entry.EventName = strings.TrimSpace(in.EventName)
		entry.EventOwner = strings.TrimSpace(in.EventOwner)
	}
	// An AVAILABLE slot carries no event fields; they are logically cleared.

	return entry, vErr
}

// grantsFor fetches the allow-list state for editors. Other roles skip the
// lookup: the policy decides on role alone for them.
func (s *ScheduleService) grantsFor(ctx context.Context, hall *model.Hall, actor model.Actor) (model.HallGrants, error) {
	if !actor.IsEditor() {
		return model.HallGrants{}, nil
	}
	return s.access.GrantsFor(ctx, hall.ID, hall.CenterID, actor.UserID)
}

func mapScheduleErr(err error) error {
	if errors.Is(err, repository.ErrScheduleNotFound) {
		return ErrNotFound
	}
	return err
}

func mapHallErr(err error) error {
	if errors.Is(err, repository.ErrHallNotFound) {
		return ErrNotFound
	}
	return err
}

// mapRangeErr converts a range error escaping the store into the engine's
// validation shape. The service validates before writing, so this only
// fires for stores fed through other paths.
func mapRangeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, timeslot.ErrEmptyRange) || errors.Is(err, timeslot.ErrBadClock) {
		vErr := &ValidationError{}
		vErr.add("time", err.Error())
		return vErr
	}
	return err
}
