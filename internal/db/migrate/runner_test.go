package migrate

import (
	"strings"
	"testing"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run("", "up")
	if err == nil {
		t.Fatal("Run with empty DSN should return error")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error = %q, should mention DATABASE_URL", err.Error())
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	for _, direction := range []string{"", "sideways", "UP", "Down"} {
		err := Run("postgres://localhost/eventhub", direction)
		if err == nil {
			t.Errorf("Run with direction %q should return error", direction)
			continue
		}
		if !strings.Contains(err.Error(), "direction") && !strings.Contains(err.Error(), "DATABASE_URL") {
			t.Errorf("unexpected error for direction %q: %v", direction, err)
		}
	}
}
