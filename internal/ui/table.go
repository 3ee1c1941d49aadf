package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/forge/internal/models"
	"github.com/ayoisaiah/forge/internal/timeutil"
)

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// SessionRows builds a listing table. The first column is the serial number
// accepted by edit and delete.
func SessionRows(sessions []*models.Session) [][]string {
	rows := [][]string{
		{"#", "DATE", "START", "END", "DURATION"},
	}

	for i, s := range sessions {
		end := Cyan("running")
		if s.EndTime != nil {
			end = *s.EndTime
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Date,
			s.StartTime,
			end,
			timeutil.FormatSeconds(s.Duration),
		})
	}

	return rows
}

// SummaryRows builds a table with one row per day.
func SummaryRows(days []models.DaySummary) [][]string {
	rows := [][]string{
		{"DATE", "SESSIONS", "AVERAGE", "TOTAL", "STATUS"},
	}

	for i := range days {
		d := days[i]

		status := Red(string(d.Status))
		if d.Status == models.Passed {
			status = Green(string(d.Status))
		}

		rows = append(rows, []string{
			d.Date,
			strconv.Itoa(d.Count),
			timeutil.FormatSeconds(&d.Average),
			timeutil.FormatSeconds(&d.Total),
			status,
		})
	}

	return rows
}

// LeaderboardRows builds a ranking table, highlighting the row for name.
func LeaderboardRows(entries []models.LeaderboardEntry, name string) [][]string {
	rows := [][]string{
		{"RANK", "NAME", "DURATION"},
	}

	for i := range entries {
		e := entries[i]

		row := []string{
			strconv.Itoa(i + 1),
			e.Name,
			timeutil.FormatSeconds(&e.Duration),
		}

		if e.Name == name {
			for j := range row {
				row[j] = Highlight(row[j])
			}
		}

		rows = append(rows, row)
	}

	return rows
}
