// Package models contains data structures for hockey team statistics
package models

// TeamRecord holds one team's statistics for one season
type TeamRecord struct {
	TeamName      string
	Year          string
	Wins          int
	Losses        int
	OTLosses      int
	WinPercentage string
	GoalsFor      int
	GoalsAgainst  int
	Differential  string
}

// TeamColumns holds the team records laid out column by column, one slice per field.
// Index i across every slice describes the same team.
type TeamColumns struct {
	TeamName      []string
	Year          []string
	Wins          []int
	Losses        []int
	OTLosses      []int
	WinPercentage []string
	GoalsFor      []int
	GoalsAgainst  []int
	Differential  []string
}

// Len returns the number of teams in the columns
func (c TeamColumns) Len() int {
	return len(c.TeamName)
}

// Records rebuilds the row-oriented records from the columns
func (c TeamColumns) Records() []TeamRecord {
	records := make([]TeamRecord, c.Len())
	for i := range records {
		records[i] = TeamRecord{
			TeamName:      c.TeamName[i],
			Year:          c.Year[i],
			Wins:          c.Wins[i],
			Losses:        c.Losses[i],
			OTLosses:      c.OTLosses[i],
			WinPercentage: c.WinPercentage[i],
			GoalsFor:      c.GoalsFor[i],
			GoalsAgainst:  c.GoalsAgainst[i],
			Differential:  c.Differential[i],
		}
	}
	return records
}

// TeamResult names a team and the count that made it stand out in its season
type TeamResult struct {
	Team  string
	Count int
}

// YearSummary holds the team with the most wins (Winner) and the team with
// the most losses (Loser) for a single season. Loser.Count is a loss count.
type YearSummary struct {
	Winner TeamResult
	Loser  TeamResult
}
