// Package stats summarizes parsed team records
package stats

import (
	"github.com/myusername/hockey-scraper/pkg/models"
)

// ProcessTeamData lays the records out column by column, keeping record order
func ProcessTeamData(records []models.TeamRecord) models.TeamColumns {
	n := len(records)
	cols := models.TeamColumns{
		TeamName:      make([]string, 0, n),
		Year:          make([]string, 0, n),
		Wins:          make([]int, 0, n),
		Losses:        make([]int, 0, n),
		OTLosses:      make([]int, 0, n),
		WinPercentage: make([]string, 0, n),
		GoalsFor:      make([]int, 0, n),
		GoalsAgainst:  make([]int, 0, n),
		Differential:  make([]string, 0, n),
	}
	for _, r := range records {
		cols.TeamName = append(cols.TeamName, r.TeamName)
		cols.Year = append(cols.Year, r.Year)
		cols.Wins = append(cols.Wins, r.Wins)
		cols.Losses = append(cols.Losses, r.Losses)
		cols.OTLosses = append(cols.OTLosses, r.OTLosses)
		cols.WinPercentage = append(cols.WinPercentage, r.WinPercentage)
		cols.GoalsFor = append(cols.GoalsFor, r.GoalsFor)
		cols.GoalsAgainst = append(cols.GoalsAgainst, r.GoalsAgainst)
		cols.Differential = append(cols.Differential, r.Differential)
	}
	return cols
}

// CalculateWinnersLosers finds, for each year, the team with the most wins and
// the team with the most losses. The first team seen for a year seeds both, and
// later teams only replace them with a strictly greater count.
func CalculateWinnersLosers(records []models.TeamRecord) map[string]models.YearSummary {
	summary := make(map[string]models.YearSummary)
	for _, r := range records {
		s, ok := summary[r.Year]
		if !ok {
			summary[r.Year] = models.YearSummary{
				Winner: models.TeamResult{Team: r.TeamName, Count: r.Wins},
				Loser:  models.TeamResult{Team: r.TeamName, Count: r.Losses},
			}
			continue
		}
		if r.Wins > s.Winner.Count {
			s.Winner = models.TeamResult{Team: r.TeamName, Count: r.Wins}
		}
		if r.Losses > s.Loser.Count {
			s.Loser = models.TeamResult{Team: r.TeamName, Count: r.Losses}
		}
		summary[r.Year] = s
	}
	return summary
}

// Years returns each distinct year in the order it first appears in records
func Years(records []models.TeamRecord) []string {
	seen := make(map[string]struct{})
	var years []string
	for _, r := range records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	return years
}
