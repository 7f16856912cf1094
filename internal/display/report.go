package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/gauthierbraillon/reportmix/internal/aggregator"
	"github.com/gauthierbraillon/reportmix/internal/social"
	"github.com/gauthierbraillon/reportmix/internal/timestamp"
)

const periodLayout = "Monday, January 2, 2006"

var metricsHeader = []string{"Platform", "Posts", "Likes/Reactions", "Comments/Replies", "Shares/Retweets", "Views", "Avg Engagement"}

// FormatPeriod renders a date range as "Saturday, January 4, 2025 to Friday,
// January 10, 2025". Bounds that are not calendar dates are shown as given.
func FormatPeriod(dr *social.DateRange) string {
	if !dr.Complete() {
		return "all time"
	}
	return formatDay(dr.StartDate) + " to " + formatDay(dr.EndDate)
}

func formatDay(day string) string {
	t, err := time.Parse(timestamp.DayLayout, day)
	if err != nil {
		return day
	}
	return t.Format(periodLayout)
}

// RenderReport writes the report heading, the per-platform metrics table,
// totals, top posts and a line for every platform whose data was unusable.
func (f *TerminalFormatter) RenderReport(w io.Writer, report *aggregator.Report, failed []*social.Summary) error {
	var b strings.Builder

	fmt.Fprintln(&b, f.paint("Social media report", color.Bold, color.FgCyan))
	fmt.Fprintf(&b, "Period: %s\n\n", FormatPeriod(report.DateRange))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	highlights := aggregator.BuildHighlights(report)
	if len(highlights.Platforms) > 0 {
		rows := make([][]string, 0, len(highlights.Platforms))
		for _, h := range highlights.Platforms {
			rows = append(rows, metricsRow(report.PlatformData[h.Platform], h))
		}
		if err := renderTable(w, metricsHeader, rows); err != nil {
			return err
		}
	} else {
		b.Reset()
		fmt.Fprintln(&b, "No platform data available.")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	b.Reset()
	fmt.Fprintf(&b, "\nTotal posts: %d\n", report.TotalPosts)
	fmt.Fprintf(&b, "Total engagement: %d (%d excluding views)\n", report.TotalEngagement, report.EngagementExcludingViews)

	if len(highlights.TopPosts) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, f.paint("Top posts", color.Bold))
		for i, p := range highlights.TopPosts {
			text := f.TruncateText(strings.Join(strings.Fields(p.Post.Text), " "), textPreviewLen)
			fmt.Fprintf(&b, "%d. [%s] %q - %d engagements\n", i+1, p.Platform, text, p.Engagement)
		}
	}

	if len(failed) > 0 {
		fmt.Fprintln(&b)
		for _, s := range failed {
			if !s.Failed() {
				continue
			}
			fmt.Fprintln(&b, f.paint(fmt.Sprintf("%s data unavailable: %s", s.Platform, s.Error), color.FgRed))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func metricsRow(s *social.Summary, h aggregator.PlatformHighlights) []string {
	return []string{
		s.Platform,
		strconv.Itoa(s.TotalPosts),
		firstTotal(s, social.Likes, social.Reactions),
		firstTotal(s, social.Comments, social.Replies),
		firstTotal(s, social.Shares, social.Retweets),
		firstTotal(s, social.Views),
		strconv.FormatFloat(h.AverageEngagement, 'f', 1, 64),
	}
}

// firstTotal returns the first metric the platform reports, or "N/A".
func firstTotal(s *social.Summary, metrics ...social.Metric) string {
	for _, m := range metrics {
		if v, ok := s.Total(m); ok {
			return strconv.FormatInt(v, 10)
		}
	}
	return "N/A"
}
