package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/repository"
	"github.com/iliyamo/hall-reservation/internal/timeslot"
)

// In-memory fakes backing the service tests. The schedule store runs the
// same overlap predicate the real repository runs inside its transaction,
// so conflict behavior is exercised end to end.

var errBoom = errors.New("store exploded")

type stubScheduleStore struct {
	entries []model.ScheduleEntry
	nextID  uint64
	deleted []uint64
	failOn  string // non-empty start time that forces an insert error
}

func (s *stubScheduleStore) GetByID(_ context.Context, id uint64) (*model.ScheduleEntry, error) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			e := s.entries[i]
			return &e, nil
		}
	}
	return nil, repository.ErrScheduleNotFound
}

func (s *stubScheduleStore) ListByHall(_ context.Context, hallID uint64) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range s.entries {
		if e.HallID == hallID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubScheduleStore) ListByHallAndDate(_ context.Context, hallID uint64, date string) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range s.entries {
		if e.HallID == hallID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubScheduleStore) CreateIfFree(_ context.Context, e *model.ScheduleEntry) (*model.ScheduleEntry, error) {
	if s.failOn != "" && e.StartTime == s.failOn {
		return nil, errBoom
	}
	cand, err := timeslot.NewRange(e.StartTime, e.EndTime)
	if err != nil {
		return nil, err
	}
	if c := timeslot.FindConflict(s.entries, e.HallID, e.Date, cand, 0); c != nil {
		return c, nil
	}
	s.nextID++
	e.ID = s.nextID
	s.entries = append(s.entries, *e)
	return nil, nil
}

func (s *stubScheduleStore) UpdateIfFree(_ context.Context, e *model.ScheduleEntry) (*model.ScheduleEntry, error) {
	cand, err := timeslot.NewRange(e.StartTime, e.EndTime)
	if err != nil {
		return nil, err
	}
	if c := timeslot.FindConflict(s.entries, e.HallID, e.Date, cand, e.ID); c != nil {
		return c, nil
	}
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			s.entries[i] = *e
			return nil, nil
		}
	}
	return nil, repository.ErrScheduleNotFound
}

func (s *stubScheduleStore) Delete(_ context.Context, id uint64) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return repository.ErrScheduleNotFound
}

func (s *stubScheduleStore) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(s.entries))
	s.entries = nil
	return n, nil
}

type stubHallCatalog struct {
	halls map[uint64]*model.Hall
}

func (s *stubHallCatalog) GetByID(_ context.Context, id uint64) (*model.Hall, error) {
	if h, ok := s.halls[id]; ok {
		return h, nil
	}
	return nil, repository.ErrHallNotFound
}

type stubAccessDirectory struct {
	grants map[uint64]model.HallGrants // keyed by user id
}

func (s *stubAccessDirectory) GrantsFor(_ context.Context, _, _, userID uint64) (model.HallGrants, error) {
	return s.grants[userID], nil
}

type stubRequestStore struct {
	requests []model.Request
	nextID   uint64
}

func (s *stubRequestStore) Create(_ context.Context, q *model.Request) error {
	s.nextID++
	q.ID = s.nextID
	s.requests = append(s.requests, *q)
	return nil
}

func (s *stubRequestStore) GetByID(_ context.Context, id uint64) (*model.Request, error) {
	for i := range s.requests {
		if s.requests[i].ID == id {
			q := s.requests[i]
			return &q, nil
		}
	}
	return nil, repository.ErrRequestNotFound
}

func (s *stubRequestStore) UpdateStatus(_ context.Context, id uint64, status model.RequestStatus) error {
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests[i].Status = status
			return nil
		}
	}
	return repository.ErrRequestNotFound
}

func (s *stubRequestStore) ListByHall(_ context.Context, hallID uint64) ([]model.Request, error) {
	var out []model.Request
	for _, q := range s.requests {
		if q.HallID == hallID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubRequestStore) ListByUser(_ context.Context, userID uint64) ([]model.Request, error) {
	var out []model.Request
	for _, q := range s.requests {
		if q.CreatedBy == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubRequestStore) ListAnsweredByHall(_ context.Context, hallID uint64) ([]model.Request, error) {
	var out []model.Request
	for _, q := range s.requests {
		if q.HallID == hallID && q.Status == model.RequestAnswered {
			out = append(out, q)
		}
	}
	return out, nil
}

func fixedClock(value string) func() time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func deptPtr(t model.EventType) *model.EventType { return &t }
