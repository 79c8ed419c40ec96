package cmd

import (
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/quickx/foundation/utils/datex"
	"github.com/msto63/quickx/foundation/utils/timex"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

const cellWidth = 4

type calendarStyles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	day     lipgloss.Style
	weekend lipgloss.Style
	marked  lipgloss.Style
}

func newCalendarStyles(r *lipgloss.Renderer) calendarStyles {
	cell := r.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	return calendarStyles{
		title:   r.NewStyle().Bold(true).Foreground(ColorPrimary),
		header:  cell.Bold(true),
		day:     cell.Foreground(ColorText),
		weekend: cell.Foreground(ColorMuted).Faint(true),
		marked:  cell.Bold(true).Reverse(true),
	}
}

// renderWeekHeader renders two-letter weekday names starting at start
func renderWeekHeader(st calendarStyles, start time.Weekday) string {
	cells := make([]string, 7)
	for i := range cells {
		wd := time.Weekday((int(start) + i) % 7)
		style := st.header
		if timex.IsWeekendDay(wd) {
			style = st.weekend
		}
		cells[i] = style.Render(wd.String()[:2])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderWeek renders the seven days from first. mark is highlighted. When
// month is set, days outside it are left blank.
func renderWeek(st calendarStyles, first, mark civil.Date, month *time.Month) string {
	cells := make([]string, 7)
	for i := range cells {
		d := first.AddDays(i)
		style := st.day
		switch {
		case d == mark:
			style = st.marked
		case datex.IsWeekend(d):
			style = st.weekend
		}

		label := strconv.Itoa(d.Day)
		if month != nil && d.Month != *month {
			label = ""
		}
		cells[i] = style.Render(label)
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " ")
}
