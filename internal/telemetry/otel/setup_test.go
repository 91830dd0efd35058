package otel

import (
	"context"
	"testing"
)

func TestNewProviders_EmptyEndpointIsNoop(t *testing.T) {
	p, err := NewProviders(context.Background(), "", "event-hub", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}
	if p.TracerProvider == nil {
		t.Fatal("TracerProvider should not be nil")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNewProviders_InvalidEndpoint(t *testing.T) {
	testCases := []struct {
		name     string
		endpoint string
	}{
		{"missing host", "http://"},
		{"bad url", "http://bad url with spaces:4317"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewProviders(context.Background(), tc.endpoint, "event-hub", false); err == nil {
				t.Errorf("NewProviders(%q) should return an error", tc.endpoint)
			}
		})
	}
}
