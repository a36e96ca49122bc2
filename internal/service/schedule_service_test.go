package service

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/policy"
)

func newScheduleFixture() (*ScheduleService, *stubScheduleStore) {
	store := &stubScheduleStore{}
	halls := &stubHallCatalog{halls: map[uint64]*model.Hall{
		1: {ID: 1, CenterID: 10, Name: "Main Hall"},
		2: {ID: 2, CenterID: 10, Name: "Side Hall"},
	}}
	access := &stubAccessDirectory{grants: map[uint64]model.HallGrants{
		100: {Configured: true, Granted: true},  // granted editor
		200: {Configured: true, Granted: false}, // editor shut out by the allow-list
	}}
	svc := NewScheduleService(store, halls, access, fixedClock("2026-03-01"))
	return svc, store
}

var (
	grantedEditor = model.Actor{UserID: 100, Role: model.RoleEditor, Department: deptPtr(model.EventNikah)}
	deniedEditor  = model.Actor{UserID: 200, Role: model.RoleEditor, Department: deptPtr(model.EventNikah)}
	superAdmin    = model.Actor{UserID: 1, Role: model.RoleSuperAdmin}
	viewer        = model.Actor{UserID: 300, Role: model.RoleViewer}
)

func TestCreateStampsEditorDepartmentAndCreator(t *testing.T) {
	svc, store := newScheduleFixture()

	konser := model.EventKonser
	entry, err := svc.Create(context.Background(), ScheduleInput{
		HallID:     1,
		Date:       "2026-03-05",
		StartTime:  "09:00",
		Status:     model.StatusReserved,
		EventType:  &konser, // must be ignored for editors
		EventName:  "Spring Wedding",
		EventOwner: "Yilmaz family",
	}, grantedEditor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.EventType == nil || *entry.EventType != model.EventNikah {
		t.Errorf("event type = %v, want editor department NIKAH", entry.EventType)
	}
	if entry.CreatedBy == nil || *entry.CreatedBy != grantedEditor.UserID {
		t.Errorf("created_by = %v, want %d", entry.CreatedBy, grantedEditor.UserID)
	}
	if entry.EndTime != "10:30" {
		t.Errorf("inferred end = %q, want next standard boundary 10:30", entry.EndTime)
	}
	if len(store.entries) != 1 {
		t.Fatalf("stored %d entries, want 1", len(store.entries))
	}
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc, _ := newScheduleFixture()
	ctx := context.Background()

	first := ScheduleInput{
		HallID: 1, Date: "2026-03-05", StartTime: "09:00", EndTime: "11:00",
		Status: model.StatusReserved, EventName: "Morning Nikah", EventOwner: "Kaya family",
	}
	if _, err := svc.Create(ctx, first, grantedEditor); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second := first
	second.StartTime = "10:00"
	second.EndTime = "12:00"
	second.EventName = "Clashing Nikah"
	_, err := svc.Create(ctx, second, grantedEditor)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want *ConflictError", err)
	}
	if conflict.Entry.EventName != "Morning Nikah" {
		t.Errorf("conflicting entry = %q, want the first booking", conflict.Entry.EventName)
	}

	// Touching intervals do not conflict.
	third := first
	third.StartTime = "11:00"
	third.EndTime = "12:30"
	third.EventName = "Back to back"
	if _, err := svc.Create(ctx, third, grantedEditor); err != nil {
		t.Errorf("adjacent Create: %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newScheduleFixture()
	ctx := context.Background()

	tests := []struct {
		name  string
		in    ScheduleInput
		field string
	}{
		{
			name:  "reserved without event name",
			in:    ScheduleInput{HallID: 1, Date: "2026-03-05", StartTime: "09:00", Status: model.StatusReserved, EventOwner: "x"},
			field: "event_name",
		},
		{
			name:  "reserved without event owner",
			in:    ScheduleInput{HallID: 1, Date: "2026-03-05", StartTime: "09:00", Status: model.StatusReserved, EventName: "x"},
			field: "event_owner",
		},
		{
			name:  "bad date",
			in:    ScheduleInput{HallID: 1, Date: "05.03.2026", StartTime: "09:00", Status: model.StatusAvailable},
			field: "date",
		},
		{
			name:  "bad start time",
			in:    ScheduleInput{HallID: 1, Date: "2026-03-05", StartTime: "9am", Status: model.StatusAvailable},
			field: "start_time",
		},
		{
			name:  "end before start",
			in:    ScheduleInput{HallID: 1, Date: "2026-03-05", StartTime: "12:00", EndTime: "11:00", Status: model.StatusAvailable},
			field: "end_time",
		},
		{
			name:  "unknown status",
			in:    ScheduleInput{HallID: 1, Date: "2026-03-05", StartTime: "09:00", Status: "MAYBE"},
			field: "status",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in, grantedEditor)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if _, ok := vErr.FieldErrors[tc.field]; !ok {
				t.Errorf("FieldErrors = %v, want key %q", vErr.FieldErrors, tc.field)
			}
		})
	}
}

func TestCreateAuthorization(t *testing.T) {
	svc, _ := newScheduleFixture()
	ctx := context.Background()
	in := ScheduleInput{HallID: 1, Date: "2026-03-05", StartTime: "09:00", Status: model.StatusAvailable}

	if _, err := svc.Create(ctx, in, viewer); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("viewer create err = %v, want policy.ErrDenied", err)
	}
	if _, err := svc.Create(ctx, in, deniedEditor); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("ungranted editor create err = %v, want policy.ErrDenied", err)
	}
	if _, err := svc.Create(ctx, in, superAdmin); err != nil {
		t.Errorf("superadmin create err = %v", err)
	}

	in.HallID = 99
	if _, err := svc.Create(ctx, in, superAdmin); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown hall err = %v, want ErrNotFound", err)
	}
}

func TestUpdateAuthorizesAgainstStoredEntry(t *testing.T) {
	svc, store := newScheduleFixture()
	ctx := context.Background()

	otherEditor := uint64(777)
	konser := model.EventKonser
	store.entries = []model.ScheduleEntry{
		{ID: 1, HallID: 1, Date: "2026-03-05", StartTime: "09:00", EndTime: "10:30",
			Status: model.StatusReserved, EventType: &konser, EventName: "Recital", EventOwner: "City orchestra",
			CreatedBy: &otherEditor},
	}
	store.nextID = 1

	// A NIKAH editor cannot touch a KONSER entry even on the hall it is
	// granted, regardless of the values it proposes.
	in := ScheduleInput{Date: "2026-03-05", StartTime: "09:00", Status: model.StatusAvailable}
	if _, err := svc.Update(ctx, 1, in, grantedEditor); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("cross-department update err = %v, want policy.ErrDenied", err)
	}

	// Same department but another creator is still denied.
	nikah := model.EventNikah
	store.entries[0].EventType = &nikah
	if _, err := svc.Update(ctx, 1, in, grantedEditor); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("foreign-creator update err = %v, want policy.ErrDenied", err)
	}

	// Superadmins bypass both scopes.
	updated, err := svc.Update(ctx, 1, in, superAdmin)
	if err != nil {
		t.Fatalf("superadmin update: %v", err)
	}
	if updated.Status != model.StatusAvailable {
		t.Errorf("status = %q, want AVAILABLE", updated.Status)
	}
	if updated.EventType != nil || updated.EventName != "" || updated.EventOwner != "" {
		t.Errorf("event fields not cleared on release: %+v", updated)
	}
	if updated.HallID != 1 {
		t.Errorf("hall changed to %d on update", updated.HallID)
	}
	if updated.CreatedBy == nil || *updated.CreatedBy != otherEditor {
		t.Errorf("created_by rewritten: %v", updated.CreatedBy)
	}
}

func TestUpdateExcludesOwnInterval(t *testing.T) {
	svc, store := newScheduleFixture()
	ctx := context.Background()

	me := grantedEditor.UserID
	nikah := model.EventNikah
	store.entries = []model.ScheduleEntry{
		{ID: 1, HallID: 1, Date: "2026-03-05", StartTime: "09:00", EndTime: "10:30",
			Status: model.StatusReserved, EventType: &nikah, EventName: "Nikah", EventOwner: "Demir family",
			CreatedBy: &me},
	}
	store.nextID = 1

	// Extending the same entry over its own old interval must not
	// self-conflict.
	in := ScheduleInput{Date: "2026-03-05", StartTime: "09:00", EndTime: "12:00",
		Status: model.StatusReserved, EventName: "Nikah", EventOwner: "Demir family"}
	if _, err := svc.Update(ctx, 1, in, grantedEditor); err != nil {
		t.Fatalf("self-overlapping update: %v", err)
	}
	if store.entries[0].EndTime != "12:00" {
		t.Errorf("end = %q, want 12:00", store.entries[0].EndTime)
	}
}

func TestDelete(t *testing.T) {
	svc, store := newScheduleFixture()
	ctx := context.Background()

	me := grantedEditor.UserID
	nikah := model.EventNikah
	store.entries = []model.ScheduleEntry{
		{ID: 1, HallID: 1, Date: "2026-03-05", StartTime: "09:00", EndTime: "10:30",
			Status: model.StatusReserved, EventType: &nikah, EventName: "Nikah", EventOwner: "Demir family",
			CreatedBy: &me},
	}
	store.nextID = 1

	if err := svc.Delete(ctx, 1, viewer); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("viewer delete err = %v, want policy.ErrDenied", err)
	}
	if err := svc.Delete(ctx, 99, grantedEditor); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 1, grantedEditor); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(store.entries) != 0 {
		t.Errorf("entry survived delete")
	}
}

func TestDeleteAllIsSuperAdminOnly(t *testing.T) {
	svc, store := newScheduleFixture()
	ctx := context.Background()
	store.entries = []model.ScheduleEntry{
		{ID: 1, HallID: 1, Date: "2026-03-05", StartTime: "09:00", EndTime: "10:30", Status: model.StatusAvailable},
		{ID: 2, HallID: 2, Date: "2026-03-06", StartTime: "12:00", EndTime: "13:30", Status: model.StatusAvailable},
	}

	if _, err := svc.DeleteAll(ctx, grantedEditor); !errors.Is(err, policy.ErrDenied) {
		t.Errorf("editor bulk reset err = %v, want policy.ErrDenied", err)
	}
	n, err := svc.DeleteAll(ctx, superAdmin)
	if err != nil {
		t.Fatalf("bulk reset: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d rows, want 2", n)
	}
}

func TestSeedDefaultSchedules(t *testing.T) {
	svc, store := newScheduleFixture()
	ctx := context.Background()

	// Pre-book one standard slot on day one: seeding must skip it,
	// not fail.
	nikah := model.EventNikah
	store.entries = []model.ScheduleEntry{
		{ID: 1, HallID: 1, Date: "2026-03-01", StartTime: "10:30", EndTime: "12:00",
			Status: model.StatusReserved, EventType: &nikah, EventName: "Nikah", EventOwner: "Demir family"},
	}
	store.nextID = 1

	res, err := svc.SeedDefaultSchedules(ctx, 1, 2)
	if err != nil {
		t.Fatalf("SeedDefaultSchedules: %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", res.Skipped)
	}
	if res.Created != 17 { // 2 days x 9 slots minus the occupied one
		t.Errorf("created = %d, want 17", res.Created)
	}
	for _, e := range store.entries[1:] {
		if e.Status != model.StatusAvailable {
			t.Fatalf("seeded row has status %q", e.Status)
		}
		if e.CreatedBy != nil {
			t.Fatalf("seeded row carries a creator: %v", *e.CreatedBy)
		}
	}
	if store.entries[1].Date != "2026-03-01" {
		t.Errorf("first seeded date = %q, want the clock's day", store.entries[1].Date)
	}

	if _, err := svc.SeedDefaultSchedules(ctx, 99, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown hall err = %v, want ErrNotFound", err)
	}
}

func TestSeedDefaultSchedulesCountsFailures(t *testing.T) {
	svc, store := newScheduleFixture()
	store.failOn = "15:00"

	res, err := svc.SeedDefaultSchedules(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("SeedDefaultSchedules: %v", err)
	}
	if res.Failed != 1 || res.Created != 8 {
		t.Errorf("result = %+v, want 8 created and 1 failed", res)
	}
}
