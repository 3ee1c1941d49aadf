package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/forge/internal/models"
)

func init() {
	pterm.DisableColor()
}

func TestSessionRows(t *testing.T) {
	rows := SessionRows([]*models.Session{
		{ID: 9, Date: "2024-03-15", StartTime: "08:00:00", EndTime: models.String("09:30:00"), Duration: models.Int64(5400)},
		{ID: 4, Date: "2024-03-15", StartTime: "10:00:00"},
	})

	assert.Equal(t, [][]string{
		{"#", "DATE", "START", "END", "DURATION"},
		{"1", "2024-03-15", "08:00:00", "09:30:00", "01:30:00"},
		{"2", "2024-03-15", "10:00:00", "running", "N/A"},
	}, rows)
}

func TestSummaryRows(t *testing.T) {
	rows := SummaryRows([]models.DaySummary{
		{Date: "2024-03-15", Status: models.Passed, Count: 2, Average: 16200, Total: 32400},
	})

	assert.Equal(t, []string{"2024-03-15", "2", "04:30:00", "09:00:00", "Passed"}, rows[1])
}

func TestLeaderboardRows(t *testing.T) {
	rows := LeaderboardRows([]models.LeaderboardEntry{
		{Name: "Ivy", Duration: 30000},
		{Name: "Sam", Duration: 100},
	}, "Sam")

	assert.Equal(t, []string{"2", "Sam", "00:01:40"}, rows[2])
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	PrintTable([][]string{{"A", "B"}, {"1", "2"}}, &buf)

	assert.Contains(t, buf.String(), "A")
	assert.Contains(t, buf.String(), "2")
}
