// Package display provides terminal output formatting for reportmix.
//
// This package enables reportmix to:
// - Render a combined report as a table with totals and top posts
// - Render the chronological feed of cleaned posts
// - Encode reports as JSON or YAML for other tools
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/gauthierbraillon/reportmix/internal/aggregator"
	"github.com/gauthierbraillon/reportmix/internal/social"
)

const separator = " • "

// textPreviewLen is how much post text a feed or top post line shows.
const textPreviewLen = 80

// TerminalFormatter formats reports and feed items for terminal display.
type TerminalFormatter struct {
	useColors bool
	now       func() time.Time
}

// FormatterOption configures a TerminalFormatter.
type FormatterOption func(*TerminalFormatter)

// WithColors turns ANSI colors on or off.
func WithColors(enabled bool) FormatterOption {
	return func(f *TerminalFormatter) {
		f.useColors = enabled
	}
}

// WithClock sets the reference time for relative timestamps.
func WithClock(now func() time.Time) FormatterOption {
	return func(f *TerminalFormatter) {
		f.now = now
	}
}

// NewTerminalFormatter creates a new terminal formatter. Colors are off
// unless enabled.
func NewTerminalFormatter(opts ...FormatterOption) *TerminalFormatter {
	f := &TerminalFormatter{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FormatItem formats a single feed item for display.
func (f *TerminalFormatter) FormatItem(item aggregator.FeedItem) string {
	var lines []string

	// Header: [PLATFORM] text
	text := f.TruncateText(strings.Join(strings.Fields(item.Post.Text), " "), textPreviewLen)
	if text == "" {
		text = "(no text)"
	}
	header := fmt.Sprintf("[%s] %s", strings.ToUpper(item.Platform), text)
	lines = append(lines, f.paint(header, color.Bold))

	// Publish time
	when := "date unknown"
	if !item.PublishedAt.IsZero() {
		when = f.FormatTimestamp(item.PublishedAt)
	}
	lines = append(lines, "  "+when)

	// Engagement stats (if any)
	if engagement := f.formatEngagement(item.Post); engagement != "" {
		lines = append(lines, "  "+engagement)
	}

	// URL
	if item.Post.URL != "" {
		lines = append(lines, "  "+item.Post.URL)
	}

	return strings.Join(lines, "\n") + "\n"
}

// formatEngagement formats engagement stats into a single line.
func (f *TerminalFormatter) formatEngagement(p social.Post) string {
	var parts []string

	if p.Views > 0 {
		parts = append(parts, fmt.Sprintf("%d views", p.Views))
	}
	if p.Likes > 0 {
		parts = append(parts, fmt.Sprintf("%d likes", p.Likes))
	}
	if p.Comments > 0 {
		parts = append(parts, fmt.Sprintf("%d comments", p.Comments))
	}
	if p.Shares > 0 {
		parts = append(parts, fmt.Sprintf("%d shares", p.Shares))
	}

	return strings.Join(parts, separator)
}

// FormatFeed formats multiple feed items for display.
func (f *TerminalFormatter) FormatFeed(items []aggregator.FeedItem) string {
	if len(items) == 0 {
		return "No posts to display.\n"
	}

	var formatted []string
	for _, item := range items {
		formatted = append(formatted, f.FormatItem(item))
	}

	return strings.Join(formatted, "\n---\n\n")
}

// FormatTimestamp formats a timestamp as relative time.
func (f *TerminalFormatter) FormatTimestamp(t time.Time) string {
	diff := f.now().Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// pluralize returns "N unit ago" or "N units ago" based on count.
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// TruncateText truncates text to maxLen characters, adding "..." if
// truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	r := []rune(text)
	if len(r) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(r[:maxLen-3]) + "..."
}

func (f *TerminalFormatter) paint(s string, attrs ...color.Attribute) string {
	if !f.useColors {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
