// Package openinghours evaluates OpenStreetMap opening_hours values.
//
// It supports the subset of the grammar that covers the overwhelming
// majority of shop tagging in practice: "24/7", semicolon-separated rule
// groups, weekday ranges and lists, comma-separated time ranges including
// overnight spans, and "off"/"closed" rules. Anything outside that subset
// is a parse error; callers are expected to degrade gracefully.
package openinghours

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupported is returned for values outside the supported grammar subset.
var ErrUnsupported = errors.New("unsupported opening_hours expression")

const minutesPerDay = 24 * 60

// weekday abbreviations in OSM order, Monday first.
var weekdayNames = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// span is a time range in minutes from midnight. End may exceed 24h for
// overnight ranges (22:00-02:00 becomes 1320-1560).
type span struct {
	start int
	end   int
}

// rule applies a set of spans (or a closure) to a set of weekdays.
type rule struct {
	days  [7]bool
	spans []span
	off   bool
}

// Hours is a parsed opening_hours value.
type Hours struct {
	always bool
	rules  []rule
}

// Parse parses a raw opening_hours value.
func Parse(raw string) (*Hours, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrUnsupported)
	}
	if value == "24/7" {
		return &Hours{always: true}, nil
	}

	var rules []rule
	for _, group := range strings.Split(value, ";") {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		r, err := parseRule(group)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, raw)
	}
	return &Hours{rules: rules}, nil
}

// parseRule parses one rule group like "Mo-Fr 09:00-17:00" or "Su off".
func parseRule(group string) (rule, error) {
	var r rule

	rest := group
	if days, after, ok := parseDays(group); ok {
		r.days = days
		rest = strings.TrimSpace(after)
	} else {
		// No day selector applies the rule to every day.
		for i := range r.days {
			r.days[i] = true
		}
	}

	switch strings.ToLower(rest) {
	case "off", "closed":
		r.off = true
		return r, nil
	case "":
		return r, fmt.Errorf("%w: missing time ranges in %q", ErrUnsupported, group)
	}

	for _, part := range strings.Split(rest, ",") {
		s, err := parseSpan(strings.TrimSpace(part))
		if err != nil {
			return r, err
		}
		r.spans = append(r.spans, s)
	}
	return r, nil
}

// parseDays parses a leading weekday selector ("Mo-Fr", "Sa,Su", "Mo-We,Fr").
// Returns ok=false when the group does not start with a weekday token.
func parseDays(group string) (days [7]bool, rest string, ok bool) {
	selector := group
	if idx := strings.IndexByte(group, ' '); idx >= 0 {
		selector, rest = group[:idx], group[idx+1:]
	} else {
		rest = ""
	}

	for _, token := range strings.Split(selector, ",") {
		from, to, found := strings.Cut(token, "-")
		start, okStart := weekdayIndex(from)
		if !okStart {
			return days, group, false
		}
		end := start
		if found {
			var okEnd bool
			end, okEnd = weekdayIndex(to)
			if !okEnd {
				return days, group, false
			}
		}
		// Ranges may wrap the week boundary (Sa-Mo).
		for d := start; ; d = (d + 1) % 7 {
			days[d] = true
			if d == end {
				break
			}
		}
	}
	return days, rest, true
}

func weekdayIndex(token string) (int, bool) {
	for i, name := range weekdayNames {
		if token == name {
			return i, true
		}
	}
	return 0, false
}

// parseSpan parses "HH:MM-HH:MM". Overnight ranges carry past midnight.
func parseSpan(part string) (span, error) {
	from, to, found := strings.Cut(part, "-")
	if !found {
		return span{}, fmt.Errorf("%w: time range %q", ErrUnsupported, part)
	}
	start, err := parseClock(from)
	if err != nil {
		return span{}, err
	}
	end, err := parseClock(to)
	if err != nil {
		return span{}, err
	}
	if end <= start {
		end += minutesPerDay
	}
	return span{start: start, end: end}, nil
}

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: clock value %q", ErrUnsupported, s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: clock value %q", ErrUnsupported, s)
	}
	return h*60 + m, nil
}

// IsOpen reports whether the schedule is open at the given instant.
func (h *Hours) IsOpen(at time.Time) bool {
	if h.always {
		return true
	}

	day := osmWeekday(at.Weekday())
	minutes := at.Hour()*60 + at.Minute()

	if r, ok := h.effectiveRule(day); ok {
		if !r.off && withinAny(r.spans, minutes) {
			return true
		}
	}
	// Overnight spill from the previous day's schedule.
	prev := (day + 6) % 7
	if r, ok := h.effectiveRule(prev); ok {
		if !r.off && withinAny(r.spans, minutes+minutesPerDay) {
			return true
		}
	}
	return false
}

// effectiveRule returns the schedule governing the given weekday. Later rule
// groups override earlier ones, matching OSM semantics.
func (h *Hours) effectiveRule(day int) (rule, bool) {
	for i := len(h.rules) - 1; i >= 0; i-- {
		if h.rules[i].days[day] {
			return h.rules[i], true
		}
	}
	return rule{}, false
}

func withinAny(spans []span, minutes int) bool {
	for _, s := range spans {
		if minutes >= s.start && minutes < s.end {
			return true
		}
	}
	return false
}

// osmWeekday maps time.Weekday (Sunday=0) to OSM order (Monday=0).
func osmWeekday(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Prettify renders a normalized human-readable form of the schedule.
func (h *Hours) Prettify() string {
	if h.always {
		return "24/7"
	}

	parts := make([]string, 0, len(h.rules))
	for _, r := range h.rules {
		var b strings.Builder
		b.WriteString(formatDays(r.days))
		if r.off {
			b.WriteString(" off")
		} else {
			for i, s := range r.spans {
				if i == 0 {
					b.WriteByte(' ')
				} else {
					b.WriteByte(',')
				}
				b.WriteString(formatSpan(s))
			}
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "; ")
}

// formatDays renders a day set back into compact range notation.
func formatDays(days [7]bool) string {
	all := true
	for _, d := range days {
		if !d {
			all = false
			break
		}
	}
	if all {
		return "Mo-Su"
	}

	var parts []string
	for i := 0; i < 7; {
		if !days[i] {
			i++
			continue
		}
		j := i
		for j+1 < 7 && days[j+1] {
			j++
		}
		switch {
		case i == j:
			parts = append(parts, weekdayNames[i])
		case j == i+1:
			parts = append(parts, weekdayNames[i]+","+weekdayNames[j])
		default:
			parts = append(parts, weekdayNames[i]+"-"+weekdayNames[j])
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}

func formatSpan(s span) string {
	end := s.end
	if end > minutesPerDay {
		end -= minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.start/60, s.start%60, end/60, end%60)
}
