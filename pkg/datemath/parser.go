package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	durationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	agoPattern      = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative date string to midnight of the resolved day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.Join(strings.Fields(relative), " "))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if m := durationPattern.FindStringSubmatch(relative); len(m) == 3 {
		return p.shift(baseTime, m[1], m[2], 1)
	}
	if m := agoPattern.FindStringSubmatch(relative); len(m) == 3 {
		return p.shift(baseTime, m[1], m[2], -1)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unsupported relative date: %q", relative)
}

// Format renders t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// ExpandLiteral replaces a literal of the form "{{today}}" with the resolved
// date. Literals without delimiters, or with an unsupported phrase, are
// returned unchanged with ok false.
func (p *Parser) ExpandLiteral(literal string, baseTime time.Time) (string, bool) {
	trimmed := strings.TrimSpace(literal)
	if !strings.HasPrefix(trimmed, PlaceholderOpen) || !strings.HasSuffix(trimmed, PlaceholderClose) {
		return literal, false
	}

	phrase := strings.TrimSuffix(strings.TrimPrefix(trimmed, PlaceholderOpen), PlaceholderClose)
	t, err := p.Parse(phrase, baseTime)
	if err != nil {
		return literal, false
	}
	return p.Format(t), true
}

// shift moves baseTime by amount units; sign is +1 or -1.
func (p *Parser) shift(baseTime time.Time, amount, unit string, sign int) (time.Time, error) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		return baseTime, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	n *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, n)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, n*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, n, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
