package domain

import (
	"strings"
	"testing"
	"time"
)

func validReview() *Review {
	return &Review{
		ID:        "r1",
		EventID:   "e1",
		UserID:    "u1",
		Rating:    4,
		Comment:   "solid talks",
		CreatedAt: time.Now().UTC(),
	}
}

func TestReviewValidate(t *testing.T) {
	if err := validReview().Validate(); err != nil {
		t.Fatalf("valid review rejected: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*Review)
	}{
		{"missing id", func(r *Review) { r.ID = "" }},
		{"missing event", func(r *Review) { r.EventID = "" }},
		{"missing user", func(r *Review) { r.UserID = "" }},
		{"rating too low", func(r *Review) { r.Rating = 0 }},
		{"rating too high", func(r *Review) { r.Rating = 6 }},
		{"comment too long", func(r *Review) { r.Comment = strings.Repeat("x", 501) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := validReview()
			tc.mutate(r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestReviewValidate_RatingBounds(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		r := validReview()
		r.Rating = rating
		if err := r.Validate(); err != nil {
			t.Errorf("rating %d should be valid: %v", rating, err)
		}
	}
}
