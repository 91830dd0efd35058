package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"attendee", RoleAttendee, false},
		{"organizer", RoleOrganizer, false},
		{"admin", RoleAdmin, false},
		{"ADMIN", RoleAdmin, false},
		{" attendee ", RoleAttendee, false},
		{"superadmin", "", true},
		{"", "", true},
		{"attendees", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): want error, got %q", tc.in, got)
			}
			if err != nil && !errors.Is(err, ErrInvalidRole) {
				t.Errorf("ParseRole(%q): error %v is not ErrInvalidRole", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUserValidate(t *testing.T) {
	u := &User{ID: "u1", Email: "a@x.com", Name: "A", Role: RoleAttendee}
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	noEmail := &User{ID: "u1", Name: "A", Role: RoleAttendee}
	if err := noEmail.Validate(); err == nil {
		t.Error("Validate without email should fail")
	}

	noName := &User{ID: "u1", Email: "a@x.com", Role: RoleAttendee}
	if err := noName.Validate(); err == nil {
		t.Error("Validate without name should fail")
	}

	badRole := &User{ID: "u1", Email: "a@x.com", Name: "A", Role: "root"}
	if err := badRole.Validate(); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("Validate with bad role: got %v, want ErrInvalidRole", err)
	}
}
