package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/hockey-scraper/pkg/models"
)

var mockTeamData = []models.TeamRecord{
	{TeamName: "Team A", Year: "1990", Wins: 10, Losses: 5, OTLosses: 2, WinPercentage: "60%", GoalsFor: 50, GoalsAgainst: 40, Differential: "+10"},
	{TeamName: "Team B", Year: "1990", Wins: 12, Losses: 3, OTLosses: 1, WinPercentage: "75%", GoalsFor: 60, GoalsAgainst: 30, Differential: "+30"},
	{TeamName: "Team C", Year: "1991", Wins: 20, Losses: 10, OTLosses: 5, WinPercentage: "60%", GoalsFor: 70, GoalsAgainst: 50, Differential: "+20"},
	{TeamName: "Team D", Year: "1991", Wins: 15, Losses: 12, OTLosses: 3, WinPercentage: "55%", GoalsFor: 65, GoalsAgainst: 60, Differential: "+5"},
}

func TestProcessTeamData(t *testing.T) {
	cols := ProcessTeamData(mockTeamData)

	require.Equal(t, 4, cols.Len())
	assert.Equal(t, "Team A", cols.TeamName[0])
	assert.Equal(t, "1990", cols.Year[1])
	assert.Equal(t, 20, cols.Wins[2])
	assert.Equal(t, 65, cols.GoalsFor[3])
	assert.Equal(t, "+30", cols.Differential[1])

	if diff := cmp.Diff(mockTeamData, cols.Records()); diff != "" {
		t.Fatalf("columns do not rebuild the records (-want +got):\n%s", diff)
	}
}

func TestProcessTeamDataEmpty(t *testing.T) {
	cols := ProcessTeamData(nil)
	assert.Equal(t, 0, cols.Len())
	assert.Empty(t, cols.Records())
}

func TestCalculateWinnersLosers(t *testing.T) {
	got := CalculateWinnersLosers(mockTeamData)

	want := map[string]models.YearSummary{
		"1990": {
			Winner: models.TeamResult{Team: "Team B", Count: 12},
			Loser:  models.TeamResult{Team: "Team A", Count: 5},
		},
		"1991": {
			Winner: models.TeamResult{Team: "Team C", Count: 20},
			Loser:  models.TeamResult{Team: "Team D", Count: 12},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

func TestCalculateWinnersLosersTiesKeepFirst(t *testing.T) {
	records := []models.TeamRecord{
		{TeamName: "First", Year: "2000", Wins: 30, Losses: 20},
		{TeamName: "Second", Year: "2000", Wins: 30, Losses: 20},
		{TeamName: "Third", Year: "2000", Wins: 29, Losses: 19},
	}

	got := CalculateWinnersLosers(records)["2000"]
	assert.Equal(t, "First", got.Winner.Team)
	assert.Equal(t, "First", got.Loser.Team)
}

func TestCalculateWinnersLosersSingleTeam(t *testing.T) {
	records := []models.TeamRecord{
		{TeamName: "Lonely", Year: "1995", Wins: 2, Losses: 40},
	}

	got := CalculateWinnersLosers(records)["1995"]
	assert.Equal(t, models.TeamResult{Team: "Lonely", Count: 2}, got.Winner)
	assert.Equal(t, models.TeamResult{Team: "Lonely", Count: 40}, got.Loser)
}

func TestCalculateWinnersLosersIndependentMaxima(t *testing.T) {
	records := []models.TeamRecord{
		{TeamName: "A", Year: "2001", Wins: 5, Losses: 5},
		{TeamName: "B", Year: "2001", Wins: 3, Losses: 9},
		{TeamName: "C", Year: "2001", Wins: 8, Losses: 1},
	}

	got := CalculateWinnersLosers(records)["2001"]
	assert.Equal(t, "C", got.Winner.Team)
	assert.Equal(t, "B", got.Loser.Team)
}

func TestEveryYearAppearsOnce(t *testing.T) {
	records := append([]models.TeamRecord{}, mockTeamData...)
	records = append(records,
		models.TeamRecord{TeamName: "Team E", Year: "1992"},
		models.TeamRecord{TeamName: "Team F", Year: "1990", Wins: 1},
	)

	summary := CalculateWinnersLosers(records)
	years := Years(records)

	assert.Equal(t, []string{"1990", "1991", "1992"}, years)
	assert.Len(t, summary, len(years))
	for _, y := range years {
		assert.Contains(t, summary, y)
	}
}

func TestCalculateWinnersLosersEmpty(t *testing.T) {
	assert.Empty(t, CalculateWinnersLosers(nil))
	assert.Empty(t, Years(nil))
}
