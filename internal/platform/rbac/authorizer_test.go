package rbac

import (
	"context"
	"testing"

	userdomain "event-hub/backend/internal/user/domain"
)

func TestAuthorizer_Allow(t *testing.T) {
	ctx := context.Background()
	a, err := NewAuthorizer(ctx)
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}

	cases := []struct {
		role     userdomain.Role
		action   string
		resource string
		want     bool
	}{
		{userdomain.RoleAttendee, "read", "event", true},
		{userdomain.RoleAttendee, "create", "event", false},
		{userdomain.RoleAttendee, "update", "event", false},
		{userdomain.RoleAttendee, "delete", "event", false},
		{userdomain.RoleOrganizer, "create", "event", true},
		{userdomain.RoleOrganizer, "update", "event", true},
		{userdomain.RoleOrganizer, "delete", "event", true},
		{userdomain.RoleAdmin, "create", "event", true},
		{userdomain.RoleAdmin, "delete", "event", true},
		{userdomain.RoleAttendee, "create", "ticket", true},
		{userdomain.RoleAttendee, "delete", "ticket", false},
		{userdomain.RoleOrganizer, "delete", "ticket", true},
		{userdomain.RoleAdmin, "delete", "ticket", true},
		{userdomain.RoleAttendee, "create", "review", true},
		{userdomain.RoleAttendee, "read", "review", true},
	}
	for _, tc := range cases {
		got, err := a.Allow(ctx, tc.role, tc.action, tc.resource)
		if err != nil {
			t.Fatalf("Allow(%s, %s, %s): %v", tc.role, tc.action, tc.resource, err)
		}
		if got != tc.want {
			t.Errorf("Allow(%s, %s, %s) = %v, want %v", tc.role, tc.action, tc.resource, got, tc.want)
		}
	}
}

func TestAuthorizer_UnknownRoleDenied(t *testing.T) {
	ctx := context.Background()
	a, err := NewAuthorizer(ctx)
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}
	got, err := a.Allow(ctx, "intruder", "delete", "event")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if got {
		t.Error("unknown role must be denied")
	}
}
