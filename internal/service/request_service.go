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

// RequestStore captures the persistence interactions of the request
// workflow.
type RequestStore interface {
	Create(ctx context.Context, q *model.Request) error
	GetByID(ctx context.Context, id uint64) (*model.Request, error)
	UpdateStatus(ctx context.Context, id uint64, status model.RequestStatus) error
	ListByHall(ctx context.Context, hallID uint64) ([]model.Request, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Request, error)
	ListAnsweredByHall(ctx context.Context, hallID uint64) ([]model.Request, error)
}

// RequestService manages the viewer request workflow: submission by
// viewers, answer/reject transitions by staff with hall access. Answering
// never creates a schedule entry; staff books the slot separately and the
// reconciler ties the two together read-side.
type RequestService struct {
	requests RequestStore
	halls    HallCatalog
	access   AccessDirectory
}

func NewRequestService(requests RequestStore, halls HallCatalog, access AccessDirectory) *RequestService {
	return &RequestService{requests: requests, halls: halls, access: access}
}

// RequestInput carries the caller-supplied fields of a new request.
type RequestInput struct {
	HallID     uint64
	EventType  model.EventType
	EventName  string
	EventOwner string
	EventDate  string
	EventTime  string
	Message    string
}

// CreateRequest validates and stores a viewer's reservation proposal.
func (s *RequestService) CreateRequest(ctx context.Context, in RequestInput, actor model.Actor) (*model.Request, error) {
	if err := policy.AuthorizeRequestCreate(actor); err != nil {
		return nil, err
	}
	if _, err := s.halls.GetByID(ctx, in.HallID); err != nil {
		return nil, mapHallErr(err)
	}

	vErr := &ValidationError{}
	if !in.EventType.Valid() {
		vErr.add("event_type", "unknown event type code")
	}
	if strings.TrimSpace(in.EventName) == "" {
		vErr.add("event_name", "required")
	}
	if strings.TrimSpace(in.EventOwner) == "" {
		vErr.add("event_owner", "required")
	}
	date := timeslot.NormalizeDate(in.EventDate)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		vErr.add("event_date", "must be a calendar date in 2006-01-02 form")
	}
	clock := timeslot.NormalizeClock(in.EventTime)
	if _, err := timeslot.ParseClock(clock); err != nil {
		vErr.add("event_time", "must be a clock value in HH:mm form")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	req := &model.Request{
		HallID:     in.HallID,
		CreatedBy:  actor.UserID,
		Message:    strings.TrimSpace(in.Message),
		Status:     model.RequestPending,
		EventType:  in.EventType,
		EventName:  strings.TrimSpace(in.EventName),
		EventOwner: strings.TrimSpace(in.EventOwner),
		EventDate:  date,
		EventTime:  clock,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AnswerRequest transitions a pending request to ANSWERED.
func (s *RequestService) AnswerRequest(ctx context.Context, id uint64, actor model.Actor) (*model.Request, error) {
	return s.transition(ctx, id, model.RequestAnswered, actor)
}

// RejectRequest transitions a pending request to REJECTED.
func (s *RequestService) RejectRequest(ctx context.Context, id uint64, actor model.Actor) (*model.Request, error) {
	return s.transition(ctx, id, model.RequestRejected, actor)
}

func (s *RequestService) transition(ctx context.Context, id uint64, status model.RequestStatus, actor model.Actor) (*model.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, mapRequestErr(err)
	}
	if err := s.authorizeAnswer(ctx, req.HallID, actor); err != nil {
		return nil, err
	}
	if err := s.requests.UpdateStatus(ctx, id, status); err != nil {
		return nil, mapRequestErr(err)
	}
	req.Status = status
	return req, nil
}

// ListForHall returns the requests targeting a hall, for staff that can
// answer them. A non-empty status narrows the listing (typically PENDING,
// the staff work queue).
func (s *RequestService) ListForHall(ctx context.Context, hallID uint64, status model.RequestStatus, actor model.Actor) ([]model.Request, error) {
	if err := s.authorizeAnswer(ctx, hallID, actor); err != nil {
		return nil, err
	}
	all, err := s.requests.ListByHall(ctx, hallID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	filtered := make([]model.Request, 0, len(all))
	for _, q := range all {
		if q.Status == status {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

// ListMine returns the acting viewer's own requests.
func (s *RequestService) ListMine(ctx context.Context, actor model.Actor) ([]model.Request, error) {
	return s.requests.ListByUser(ctx, actor.UserID)
}

// ListAnsweredForHall feeds the reconciler with the answered requests of a
// hall. Read-only, no role gate: the result only ever decorates timetables.
func (s *RequestService) ListAnsweredForHall(ctx context.Context, hallID uint64) ([]model.Request, error) {
	return s.requests.ListAnsweredByHall(ctx, hallID)
}

func (s *RequestService) authorizeAnswer(ctx context.Context, hallID uint64, actor model.Actor) error {
	hall, err := s.halls.GetByID(ctx, hallID)
	if err != nil {
		return mapHallErr(err)
	}
	grants := model.HallGrants{}
	if actor.IsEditor() {
		grants, err = s.access.GrantsFor(ctx, hall.ID, hall.CenterID, actor.UserID)
		if err != nil {
			return err
		}
	}
	return policy.AuthorizeRequestAnswer(actor, grants)
}

func mapRequestErr(err error) error {
	if errors.Is(err, repository.ErrRequestNotFound) {
		return ErrNotFound
	}
	return err
}
