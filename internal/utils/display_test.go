package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/myusername/hockey-scraper/pkg/models"
)

func TestDisplayWinnersLosers(t *testing.T) {
	summary := map[string]models.YearSummary{
		"1990": {Winner: models.TeamResult{Team: "Team B", Count: 12}, Loser: models.TeamResult{Team: "Team A", Count: 5}},
		"1991": {Winner: models.TeamResult{Team: "Team C", Count: 20}, Loser: models.TeamResult{Team: "Team D", Count: 12}},
	}

	var buf bytes.Buffer
	DisplayWinnersLosers(&buf, summary, []string{"1991", "1990"})
	out := buf.String()

	assert.Contains(t, out, "Team C")
	assert.Contains(t, out, "Team D")
	assert.Less(t, strings.Index(out, "1991"), strings.Index(out, "1990"))
}
