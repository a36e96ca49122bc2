package service

import (
	"reflect"
	"testing"

	"github.com/iliyamo/hall-reservation/internal/model"
)

func TestReconcileScheduleView(t *testing.T) {
	nikah := model.EventNikah
	schedules := []model.ScheduleEntry{
		// Reserved with empty metadata: the matching answered request
		// fills it in.
		{ID: 1, HallID: 1, Date: "2026-04-10", StartTime: "13:30", EndTime: "15:00",
			Status: model.StatusReserved},
		// Reserved with its own metadata: stored values stay authoritative.
		{ID: 2, HallID: 1, Date: "2026-04-11", StartTime: "09:00", EndTime: "10:30",
			Status: model.StatusReserved, EventType: &nikah,
			EventName: "Booked directly", EventOwner: "Demir family"},
		// Available entries are never decorated.
		{ID: 3, HallID: 1, Date: "2026-04-10", StartTime: "15:00", EndTime: "16:30",
			Status: model.StatusAvailable},
	}
	requests := []model.Request{
		{ID: 10, HallID: 1, Status: model.RequestAnswered, EventType: model.EventNisan,
			EventName: "Engagement party", EventOwner: "Aydin family",
			EventDate: "2026-04-10T00:00:00Z", EventTime: "13:30:00"},
		{ID: 11, HallID: 1, Status: model.RequestAnswered, EventType: model.EventKonser,
			EventName: "Should not win", EventOwner: "n/a",
			EventDate: "2026-04-11", EventTime: "09:00"},
		// Pending and foreign-hall requests never match.
		{ID: 12, HallID: 1, Status: model.RequestPending,
			EventDate: "2026-04-10", EventTime: "15:00"},
		{ID: 13, HallID: 2, Status: model.RequestAnswered,
			EventDate: "2026-04-10", EventTime: "13:30"},
	}

	out := ReconcileScheduleView(1, schedules, requests)
	if len(out) != 3 {
		t.Fatalf("got %d entries, want 3", len(out))
	}

	bare := out[0]
	if bare.MatchedRequestID == nil || *bare.MatchedRequestID != 10 {
		t.Fatalf("entry 1 matched %v, want request 10", bare.MatchedRequestID)
	}
	if bare.EventName != "Engagement party" || bare.EventOwner != "Aydin family" {
		t.Errorf("entry 1 metadata not filled: %+v", bare)
	}
	if bare.EventType == nil || *bare.EventType != model.EventNisan {
		t.Errorf("entry 1 event type = %v, want NISAN", bare.EventType)
	}

	stored := out[1]
	if stored.MatchedRequestID == nil || *stored.MatchedRequestID != 11 {
		t.Fatalf("entry 2 matched %v, want request 11", stored.MatchedRequestID)
	}
	if stored.EventName != "Booked directly" || stored.EventOwner != "Demir family" {
		t.Errorf("entry 2 stored metadata was overwritten: %+v", stored)
	}
	if *stored.EventType != model.EventNikah {
		t.Errorf("entry 2 event type overwritten: %v", stored.EventType)
	}

	if out[2].MatchedRequestID != nil {
		t.Errorf("available entry decorated: %+v", out[2])
	}
}

func TestReconcileScheduleViewIsPure(t *testing.T) {
	schedules := []model.ScheduleEntry{
		{ID: 1, HallID: 1, Date: "2026-04-10", StartTime: "13:30", EndTime: "15:00",
			Status: model.StatusReserved},
	}
	requests := []model.Request{
		{ID: 10, HallID: 1, Status: model.RequestAnswered, EventType: model.EventNisan,
			EventName: "Engagement party", EventOwner: "Aydin family",
			EventDate: "2026-04-10", EventTime: "13:30"},
	}
	before := make([]model.ScheduleEntry, len(schedules))
	copy(before, schedules)

	first := ReconcileScheduleView(1, schedules, requests)
	second := ReconcileScheduleView(1, schedules, requests)

	if !reflect.DeepEqual(schedules, before) {
		t.Errorf("input schedules mutated: %+v", schedules)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated reconciliation differs: %+v vs %+v", first, second)
	}
}
