package domain

import (
	"strings"
	"testing"
	"time"
)

func validTicket() *Ticket {
	return &Ticket{
		ID:          "t1",
		EventID:     "e1",
		UserID:      "u1",
		TicketType:  "general",
		Price:       25,
		PurchasedAt: time.Now().UTC(),
	}
}

func TestTicketValidate(t *testing.T) {
	if err := validTicket().Validate(); err != nil {
		t.Fatalf("valid ticket rejected: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*Ticket)
	}{
		{"missing id", func(tk *Ticket) { tk.ID = "" }},
		{"missing event", func(tk *Ticket) { tk.EventID = "" }},
		{"missing user", func(tk *Ticket) { tk.UserID = "" }},
		{"missing type", func(tk *Ticket) { tk.TicketType = "" }},
		{"type too long", func(tk *Ticket) { tk.TicketType = strings.Repeat("x", 101) }},
		{"negative price", func(tk *Ticket) { tk.Price = -1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tk := validTicket()
			tc.mutate(tk)
			if err := tk.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
