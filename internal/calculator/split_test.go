package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

func TestEqualSplit(t *testing.T) {
	alice := models.Participant{ID: "alice", Name: "Alice", Type: models.Individual}
	dan := models.Participant{ID: "dan", Name: "Dan", Type: models.Individual}
	erin := models.Participant{ID: "erin", Name: "Erin", Type: models.Individual}
	frank := models.Participant{ID: "frank", Name: "Frank", Type: models.Individual}
	bobCarol := models.Participant{ID: "bob-carol", Name: "Bob & Carol", Type: models.Couple}
	gusHelen := models.Participant{ID: "gus-helen", Name: "Gus & Helen", Type: models.Couple}

	tests := []struct {
		name     string
		amount   string
		selected []models.Participant
		wantErr  error
		want     map[string]string
		wantSum  string
	}{
		{
			name:     "four individuals split evenly",
			amount:   "400.00",
			selected: []models.Participant{alice, dan, erin, frank},
			want:     map[string]string{"alice": "100", "dan": "100", "erin": "100", "frank": "100"},
			wantSum:  "400",
		},
		{
			name:     "two couples and two individuals weigh by adult units",
			amount:   "400.00",
			selected: []models.Participant{bobCarol, gusHelen, alice, dan},
			// 6 adult units: 66.666... per unit
			want:    map[string]string{"bob-carol": "133.33", "gus-helen": "133.33", "alice": "66.67", "dan": "66.67"},
			wantSum: "400.00",
		},
		{
			name:     "individual and couple",
			amount:   "300",
			selected: []models.Participant{alice, bobCarol},
			want:     map[string]string{"alice": "100", "bob-carol": "200"},
			wantSum:  "300",
		},
		{
			name:     "rounding drift is kept",
			amount:   "100",
			selected: []models.Participant{alice, dan, erin},
			want:     map[string]string{"alice": "33.33", "dan": "33.33", "erin": "33.33"},
			wantSum:  "99.99",
		},
		{
			name:     "repeated participant counted once",
			amount:   "90",
			selected: []models.Participant{alice, alice, dan},
			want:     map[string]string{"alice": "45", "dan": "45"},
			wantSum:  "90",
		},
		{
			name:     "no participants selected",
			amount:   "10",
			selected: nil,
			wantErr:  ErrNoAdultUnits,
		},
		{
			name:     "negative amount",
			amount:   "-10",
			selected: []models.Participant{alice},
			wantErr:  ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Split(DivisionEqual, decimal.RequireFromString(tt.amount), tt.selected)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Split() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split() unexpected error: %v", err)
			}
			if len(shares) != len(tt.want) {
				t.Fatalf("Split() returned %d shares, want %d", len(shares), len(tt.want))
			}

			sum := decimal.Zero
			for _, s := range shares {
				want, ok := tt.want[s.ParticipantID]
				if !ok {
					t.Errorf("unexpected share for %s", s.ParticipantID)
					continue
				}
				if !s.Amount.Equal(decimal.RequireFromString(want)) {
					t.Errorf("%s share = %s, want %s", s.ParticipantID, s.Amount, want)
				}
				sum = sum.Add(s.Amount)
			}
			if !sum.Equal(decimal.RequireFromString(tt.wantSum)) {
				t.Errorf("sum of shares = %s, want %s", sum, tt.wantSum)
			}
		})
	}
}

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		division DivisionType
		wantErr  error
	}{
		{division: DivisionEqual},
		{division: ""},
		{division: DivisionExact, wantErr: ErrUnsupportedDivision},
		{division: DivisionPercentage, wantErr: ErrUnsupportedDivision},
		{division: "lottery", wantErr: ErrUnknownDivision},
	}

	for _, tt := range tests {
		t.Run(string(tt.division), func(t *testing.T) {
			s, err := StrategyFor(tt.division)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("StrategyFor(%q) error = %v, want %v", tt.division, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("StrategyFor(%q) unexpected error: %v", tt.division, err)
			}
			if s.Type() != DivisionEqual {
				t.Errorf("Type() = %q, want %q", s.Type(), DivisionEqual)
			}
		})
	}
}
