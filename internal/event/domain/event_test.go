package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"upcoming", StatusUpcoming, false},
		{"ONGOING", StatusOngoing, false},
		{"completed", StatusCompleted, false},
		{"", StatusUpcoming, false},
		{"cancelled", "", true},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("ParseStatus(%q): got %v, want ErrInvalidStatus", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseStatus(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestEventValidate(t *testing.T) {
	now := time.Now()
	ok := &Event{Name: "GopherCon", Location: "Berlin", StartTime: now, EndTime: now.Add(time.Hour), Status: StatusUpcoming}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	backwards := &Event{Name: "X", Location: "Y", StartTime: now, EndTime: now.Add(-time.Hour), Status: StatusUpcoming}
	if err := backwards.Validate(); err == nil {
		t.Error("Validate with end before start should fail")
	}

	noName := &Event{Location: "Y", Status: StatusUpcoming}
	if err := noName.Validate(); err == nil {
		t.Error("Validate without name should fail")
	}
}
