package models

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseHouseholdType(t *testing.T) {
	tests := []struct {
		in      string
		want    HouseholdType
		wantErr bool
	}{
		{in: "individual", want: Individual},
		{in: "", want: Individual},
		{in: "Couple", want: Couple},
		{in: "casal", want: Couple},
		{in: "family", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHouseholdType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHouseholdType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHouseholdType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdultUnits(t *testing.T) {
	if Individual.AdultUnits() != 1 {
		t.Errorf("Individual.AdultUnits() = %d, want 1", Individual.AdultUnits())
	}
	if Couple.AdultUnits() != 2 {
		t.Errorf("Couple.AdultUnits() = %d, want 2", Couple.AdultUnits())
	}
}

func TestNewExpense(t *testing.T) {
	date := time.Date(2026, 2, 14, 18, 30, 0, 0, time.Local)

	t.Run("defaults category and truncates date", func(t *testing.T) {
		e, err := NewExpense("ev", " Rent ", decimal.NewFromInt(300), "", date, "alice")
		if err != nil {
			t.Fatalf("NewExpense failed: %v", err)
		}
		if e.Description != "Rent" {
			t.Errorf("Description = %q, want Rent", e.Description)
		}
		if e.Category != DefaultCategory {
			t.Errorf("Category = %q, want %q", e.Category, DefaultCategory)
		}
		if got := e.Date.Format(DateLayout); got != "2026-02-14" {
			t.Errorf("Date = %s, want 2026-02-14", got)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewExpense("ev", "Rent", decimal.Zero, "Rent", date, "alice")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("rejects missing payer", func(t *testing.T) {
		_, err := NewExpense("ev", "Rent", decimal.NewFromInt(1), "Rent", date, "")
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestNewExpenseShare(t *testing.T) {
	if _, err := NewExpenseShare("e1", "p1", decimal.Zero); err != nil {
		t.Errorf("zero share should be accepted, got %v", err)
	}
	if _, err := NewExpenseShare("e1", "p1", decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for negative share, got %v", err)
	}
}

func TestNewPayment(t *testing.T) {
	if _, err := NewPayment("ev", "bob", "bob", decimal.NewFromInt(10), ""); !errors.Is(err, ErrSelfPayment) {
		t.Errorf("expected ErrSelfPayment, got %v", err)
	}
	if _, err := NewPayment("ev", "bob", "alice", decimal.NewFromInt(-10), ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	p, err := NewPayment("ev", "bob", "alice", decimal.NewFromInt(10), "  cash ")
	if err != nil {
		t.Fatalf("NewPayment failed: %v", err)
	}
	if p.Note != "cash" {
		t.Errorf("Note = %q, want cash", p.Note)
	}
}

func TestNewEvent(t *testing.T) {
	start := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)

	ev, err := NewEvent("Carnival", 0, start, end)
	if err != nil {
		t.Fatalf("NewEvent failed: %v", err)
	}
	if ev.Year != 2026 {
		t.Errorf("Year = %d, want 2026", ev.Year)
	}
	if ev.Status != EventPlanning {
		t.Errorf("Status = %q, want planning", ev.Status)
	}

	if _, err := NewEvent("Carnival", 2026, end, start); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseEventStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    EventStatus
		wantErr bool
	}{
		{in: "", want: EventPlanning},
		{in: "Active", want: EventActive},
		{in: " completed ", want: EventCompleted},
		{in: "cancelled", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEventStatus(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEventStatus(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseEventStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2026-02")
	if err != nil {
		t.Fatalf("ParseMonth failed: %v", err)
	}
	if got.Format(MonthLayout) != "2026-02" || got.Day() != 1 {
		t.Errorf("ParseMonth = %s, want first of 2026-02", got)
	}

	got, err = ParseMonth("2026-02-17")
	if err != nil {
		t.Fatalf("ParseMonth with a full date failed: %v", err)
	}
	if got.Format(MonthLayout) != "2026-02" {
		t.Errorf("ParseMonth(full date) = %s, want 2026-02", got.Format(MonthLayout))
	}

	if _, err := ParseMonth("February"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestNewContribution(t *testing.T) {
	month := time.Date(2026, 1, 20, 15, 0, 0, 0, time.Local)
	c, err := NewContribution("ev", "alice", decimal.NewFromInt(200), month, "  January ")
	if err != nil {
		t.Fatalf("NewContribution failed: %v", err)
	}
	if c.Month.Format(DateLayout) != "2026-01-01" {
		t.Errorf("Month = %s, want 2026-01-01", c.Month.Format(DateLayout))
	}
	if c.Notes != "January" {
		t.Errorf("Notes = %q, want January", c.Notes)
	}

	if _, err := NewContribution("ev", "alice", decimal.Zero, month, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := NewContribution("ev", "", decimal.NewFromInt(1), month, ""); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}
