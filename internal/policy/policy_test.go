package policy

import (
	"errors"
	"testing"

	"github.com/iliyamo/hall-reservation/internal/model"
)

func dept(e model.EventType) *model.EventType { return &e }

func uid(u uint64) *uint64 { return &u }

func TestAuthorizeSchedule(t *testing.T) {
	superadmin := model.Actor{UserID: 1, Role: model.RoleSuperAdmin}
	viewer := model.Actor{UserID: 2, Role: model.RoleViewer}
	nikahEditor := model.Actor{UserID: 3, Role: model.RoleEditor, Department: dept(model.EventNikah)}
	konserEditor := model.Actor{UserID: 4, Role: model.RoleEditor, Department: dept(model.EventKonser)}
	lostEditor := model.Actor{UserID: 5, Role: model.RoleEditor} // no department

	open := model.HallGrants{}
	granted := model.HallGrants{Configured: true, Granted: true}
	locked := model.HallGrants{Configured: true, Granted: false}

	nikahEntry := &model.ScheduleEntry{ID: 10, EventType: dept(model.EventNikah), CreatedBy: uid(3)}
	foreignEntry := &model.ScheduleEntry{ID: 11, EventType: dept(model.EventNikah), CreatedBy: uid(99)}
	konserEntry := &model.ScheduleEntry{ID: 12, EventType: dept(model.EventKonser), CreatedBy: uid(4)}
	blankEntry := &model.ScheduleEntry{ID: 13} // seeded availability, no type or creator

	cases := []struct {
		name   string
		actor  model.Actor
		op     Operation
		target ScheduleTarget
		deny   bool
	}{
		{name: "superadmin may do anything", actor: superadmin, op: OpDelete, target: ScheduleTarget{Grants: locked, Entry: foreignEntry}},
		{name: "any role may read", actor: viewer, op: OpRead, target: ScheduleTarget{Grants: locked}},
		{name: "viewer cannot create", actor: viewer, op: OpCreate, target: ScheduleTarget{Grants: open}, deny: true},
		{name: "viewer cannot delete", actor: viewer, op: OpDelete, target: ScheduleTarget{Grants: open, Entry: blankEntry}, deny: true},
		{name: "editor creates on open hall", actor: nikahEditor, op: OpCreate, target: ScheduleTarget{Grants: open}},
		{name: "editor creates on granted hall", actor: nikahEditor, op: OpCreate, target: ScheduleTarget{Grants: granted}},
		{name: "editor blocked by allow-list", actor: nikahEditor, op: OpCreate, target: ScheduleTarget{Grants: locked}, deny: true},
		{name: "editor without department cannot create", actor: lostEditor, op: OpCreate, target: ScheduleTarget{Grants: open}, deny: true},
		{name: "editor updates own entry", actor: nikahEditor, op: OpUpdate, target: ScheduleTarget{Grants: open, Entry: nikahEntry}},
		{name: "cross-department update denied", actor: konserEditor, op: OpUpdate, target: ScheduleTarget{Grants: open, Entry: nikahEntry}, deny: true},
		{name: "cross-department delete denied even with grant", actor: konserEditor, op: OpDelete, target: ScheduleTarget{Grants: granted, Entry: nikahEntry}, deny: true},
		{name: "other creator denied within department", actor: nikahEditor, op: OpUpdate, target: ScheduleTarget{Grants: open, Entry: foreignEntry}, deny: true},
		{name: "editor manages untyped seeded entry", actor: konserEditor, op: OpUpdate, target: ScheduleTarget{Grants: open, Entry: blankEntry}},
		{name: "editor deletes own konser entry", actor: konserEditor, op: OpDelete, target: ScheduleTarget{Grants: open, Entry: konserEntry}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := AuthorizeSchedule(tc.actor, tc.op, tc.target)
			if tc.deny && !errors.Is(err, ErrDenied) {
				t.Fatalf("AuthorizeSchedule = %v, want ErrDenied", err)
			}
			if !tc.deny && err != nil {
				t.Fatalf("AuthorizeSchedule = %v, want nil", err)
			}
		})
	}
}

func TestAuthorizeRequestCreate(t *testing.T) {
	if err := AuthorizeRequestCreate(model.Actor{Role: model.RoleViewer}); err != nil {
		t.Fatalf("viewer should create requests: %v", err)
	}
	if err := AuthorizeRequestCreate(model.Actor{Role: model.RoleEditor}); !errors.Is(err, ErrDenied) {
		t.Fatalf("editor request create = %v, want ErrDenied", err)
	}
	if err := AuthorizeRequestCreate(model.Actor{Role: model.RoleSuperAdmin}); err != nil {
		t.Fatalf("superadmin should pass every gate: %v", err)
	}
}

func TestAuthorizeRequestAnswer(t *testing.T) {
	editor := model.Actor{UserID: 3, Role: model.RoleEditor, Department: dept(model.EventNikah)}
	if err := AuthorizeRequestAnswer(editor, model.HallGrants{}); err != nil {
		t.Fatalf("open hall should be answerable: %v", err)
	}
	if err := AuthorizeRequestAnswer(editor, model.HallGrants{Configured: true}); !errors.Is(err, ErrDenied) {
		t.Fatalf("locked hall answer = %v, want ErrDenied", err)
	}
	if err := AuthorizeRequestAnswer(model.Actor{Role: model.RoleViewer}, model.HallGrants{}); !errors.Is(err, ErrDenied) {
		t.Fatalf("viewer answer = %v, want ErrDenied", err)
	}
}

func TestAuthorizeBulkReset(t *testing.T) {
	if err := AuthorizeBulkReset(model.Actor{Role: model.RoleSuperAdmin}); err != nil {
		t.Fatalf("superadmin bulk reset: %v", err)
	}
	for _, role := range []model.Role{model.RoleEditor, model.RoleViewer} {
		if err := AuthorizeBulkReset(model.Actor{Role: role}); !errors.Is(err, ErrDenied) {
			t.Fatalf("bulk reset as %s = %v, want ErrDenied", role, err)
		}
	}
}
