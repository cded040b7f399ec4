// Package stats renders Lumii study statistics
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/internal/timeutil"
	"github.com/lumii-app/lumii/internal/ui"
	"github.com/lumii-app/lumii/tracker"
)

const barChartChar = "▇"

const daysInWeek = 7

// Report renders a tracker view for the terminal.
type Report struct {
	View      *tracker.View
	User      *models.User
	CertNames map[string]string
	Stdout    io.Writer
}

// weekdayLabels follow the GitHub contribution-graph convention of
// labelling alternate rows only.
var weekdayLabels = [daysInWeek]string{
	"", "Mon", "", "Wed", "", "Fri", "",
}

func formatMinutes(total int) string {
	hrs, mins := timeutil.MinsToHoursAndMins(total)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// heatmap renders the bucket sequence as a week-per-column activity grid.
func heatmap(buckets []tracker.DayBucket) string {
	if len(buckets) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(ui.Blue("Activity") + "\n")

	rows := make([][]string, daysInWeek)

	// pad the first column so every row holds the same number of weeks
	firstWeekday := int(buckets[0].Date.Weekday())
	for i := 0; i < firstWeekday; i++ {
		rows[i] = append(rows[i], " ")
	}

	for i := range buckets {
		weekday := int(buckets[i].Date.Weekday())
		rows[weekday] = append(rows[weekday], ui.IntensityCell(buckets[i].Intensity))
	}

	for i, row := range rows {
		builder.WriteString(fmt.Sprintf("%-4s", weekdayLabels[i]))
		builder.WriteString(strings.Join(row, " "))
		builder.WriteString("\n")
	}

	builder.WriteString("\n    Less ")

	for tier := 0; tier <= 4; tier++ {
		builder.WriteString(ui.IntensityCell(tier) + " ")
	}

	builder.WriteString("More\n")

	return builder.String()
}

// summary reports the totals and streaks for the reporting period.
func (r *Report) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	var sessionCount int
	for i := range r.View.Buckets {
		sessionCount += r.View.Buckets[i].SessionCount
	}

	timeLogged := fmt.Sprintf(
		"Time logged: %s\n",
		ui.Green(formatMinutes(r.View.TotalMinutes)),
	)

	sessions := fmt.Sprintln("Sessions:", ui.Green(sessionCount))

	currentStreak := fmt.Sprintln(
		"Current streak:",
		ui.Green(fmt.Sprintf("%d days", r.View.CurrentStreak)),
	)

	longestStreak := fmt.Sprintln(
		"Longest streak:",
		ui.Green(fmt.Sprintf("%d days", r.View.LongestStreak)),
	)

	return header + timeLogged + sessions + currentStreak + longestStreak
}

// goals reports progress against the configured daily and weekly targets.
func (r *Report) goals() string {
	if r.User == nil || r.User.StudyGoals.DailyMinutes <= 0 {
		return ""
	}

	header := fmt.Sprintf("\n%s\n", ui.Blue("Goals"))

	today := r.View.Today().TotalMinutes
	daily := r.User.StudyGoals.DailyMinutes

	dailyLine := fmt.Sprintf(
		"Today: %s of %s (%d%%)\n",
		ui.Green(formatMinutes(today)),
		formatMinutes(daily),
		today*100/daily,
	)

	weekly := r.User.StudyGoals.WeeklyMinutes
	if weekly <= 0 {
		return header + dailyLine
	}

	var week int

	buckets := r.View.Buckets
	for i := max(0, len(buckets)-daysInWeek); i < len(buckets); i++ {
		week += buckets[i].TotalMinutes
	}

	weeklyLine := fmt.Sprintf(
		"Last 7 days: %s of %s (%d%%)\n",
		ui.Green(formatMinutes(week)),
		formatMinutes(weekly),
		week*100/weekly,
	)

	return header + dailyLine + weeklyLine
}

func barChart(title string, data map[string]int) string {
	if len(data) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (minutes)", title))

	type keyValue struct {
		key   string
		value int
	}

	kv := make([]keyValue, 0, len(data))
	for k, v := range data {
		kv = append(kv, keyValue{k, v})
	}

	sort.SliceStable(kv, func(i, j int) bool {
		return kv[i].value > kv[j].value
	})

	var bars pterm.Bars

	for _, v := range kv {
		bars = append(bars, pterm.Bar{
			Value: v.value,
			Label: v.key,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// techniqueBreakdown charts minutes per study technique.
func (r *Report) techniqueBreakdown() string {
	data := make(map[string]int, len(r.View.Techniques))
	for k, v := range r.View.Techniques {
		data[string(k)] = v
	}

	return barChart("Technique", data)
}

// certificateBreakdown charts minutes per certification, substituting
// display names for IDs where the registry knows them.
func (r *Report) certificateBreakdown() string {
	data := make(map[string]int, len(r.View.Certificates))

	for id, v := range r.View.Certificates {
		label := id
		if name, ok := r.CertNames[id]; ok && name != "" {
			label = name
		}

		data[label] += v
	}

	return barChart("Certification", data)
}

// Show writes the full dashboard to the report's output.
func (r *Report) Show() error {
	buckets := r.View.Buckets
	if len(buckets) == 0 {
		pterm.Info.Println("No activity found for the specified time range")
		return nil
	}

	reportingStart := buckets[0].Date.Time(time.UTC).Format("January 02, 2006")
	reportingEnd := buckets[len(buckets)-1].Date.Time(time.UTC).
		Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(timePeriod)

	output := fmt.Sprint(
		header,
		heatmap(buckets),
		"\n",
		r.summary(),
		r.goals(),
		r.techniqueBreakdown(),
		r.certificateBreakdown(),
	)

	_, err := fmt.Fprintln(r.Stdout, strings.TrimSpace(output))

	return err
}
