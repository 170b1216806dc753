package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/carnival/internal/models"
)

func month(t *testing.T, s string) time.Time {
	t.Helper()
	m, err := models.ParseMonth(s)
	require.NoError(t, err)
	return m
}

func TestContributionTotals(t *testing.T) {
	roster := NewRoster([]models.Participant{
		{ID: "a", Name: "Bruno"},
		{ID: "b", Name: "álvaro"},
		{ID: "c", Name: "Carla"},
	})
	contributions := []models.Contribution{
		{ID: "1", ParticipantID: "a", Amount: dec("100"), Month: month(t, "2026-01")},
		{ID: "2", ParticipantID: "c", Amount: dec("50"), Month: month(t, "2026-01")},
		{ID: "3", ParticipantID: "b", Amount: dec("70"), Month: month(t, "2026-02")},
		{ID: "4", ParticipantID: "c", Amount: dec("20"), Month: month(t, "2026-02")},
		{ID: "5", ParticipantID: "b", Amount: dec("30"), Month: month(t, "2026-03")},
		{ID: "6", ParticipantID: "gone", Amount: dec("5"), Month: month(t, "2026-03")},
	}

	totals := ContributionTotals(roster, contributions)
	require.Len(t, totals, 4)

	// álvaro and Bruno tie on 100: collated name decides
	assert.Equal(t, "b", totals[0].ParticipantID)
	assert.Equal(t, 2, totals[0].Count)
	requireDec(t, "100", totals[0].Amount)
	assert.Equal(t, "a", totals[1].ParticipantID)
	assert.Equal(t, "c", totals[2].ParticipantID)
	requireDec(t, "70", totals[2].Amount)

	assert.Equal(t, "gone", totals[3].ParticipantID)
	assert.Empty(t, totals[3].ParticipantName)
}

func TestContributionsByMonth(t *testing.T) {
	contributions := []models.Contribution{
		{ID: "1", Amount: dec("10"), Month: month(t, "2025-12")},
		{ID: "2", Amount: dec("20"), Month: month(t, "2026-02")},
		{ID: "3", Amount: dec("5.5"), Month: month(t, "2025-12-20")},
	}

	groups := ContributionsByMonth(contributions)
	require.Len(t, groups, 2)

	assert.Equal(t, "2026-02", groups[0].Month.Format(models.MonthLayout))
	requireDec(t, "20", groups[0].Total)

	assert.Equal(t, "2025-12", groups[1].Month.Format(models.MonthLayout))
	requireDec(t, "15.5", groups[1].Total)
	require.Len(t, groups[1].Contributions, 2)
	assert.Equal(t, "1", groups[1].Contributions[0].ID)
	assert.Equal(t, "3", groups[1].Contributions[1].ID)
}

func TestContributionsByMonth_Empty(t *testing.T) {
	assert.Empty(t, ContributionsByMonth(nil))
}

func TestComputeOverview(t *testing.T) {
	participants := []models.Participant{
		{ID: "alice", Name: "Alice", Type: models.Individual},
		{ID: "bob-carol", Name: "Bob & Carol", Type: models.Couple, Children: 2},
		{ID: "dan", Name: "Dan", Type: models.Individual, Children: 1},
	}
	expenses := []models.Expense{
		{ID: "rent", Amount: dec("700")},
		{ID: "food", Amount: dec("300")},
	}
	contributions := []models.Contribution{
		{ID: "c1", ParticipantID: "alice", Amount: dec("250")},
	}

	o := ComputeOverview(participants, expenses, contributions)
	assert.Equal(t, int64(4), o.Adults)
	assert.Equal(t, 3, o.Children)
	requireDec(t, "1000", o.TotalSpent)
	requireDec(t, "250", o.CostPerAdult)
	requireDec(t, "500", o.CostPerCouple)
	requireDec(t, "250", o.TotalContributed)

	t.Run("rounds per head", func(t *testing.T) {
		o := ComputeOverview(participants[:2], []models.Expense{{ID: "x", Amount: dec("100")}}, nil)
		assert.Equal(t, int64(3), o.Adults)
		requireDec(t, "33.33", o.CostPerAdult)
		requireDec(t, "66.67", o.CostPerCouple)
	})

	t.Run("no adults", func(t *testing.T) {
		o := ComputeOverview(nil, expenses, nil)
		assert.Zero(t, o.Adults)
		requireDec(t, "1000", o.TotalSpent)
		requireDec(t, "0", o.CostPerAdult)
		requireDec(t, "0", o.CostPerCouple)
	})
}

func TestSortByName(t *testing.T) {
	participants := []models.Participant{
		{ID: "1", Name: "Bruno"},
		{ID: "2", Name: "álvaro"},
		{ID: "3", Name: "Ana"},
	}
	SortByName(participants)
	assert.Equal(t, []string{"álvaro", "Ana", "Bruno"}, []string{participants[0].Name, participants[1].Name, participants[2].Name})
}
