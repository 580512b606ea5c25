package checklist

import (
	"regexp"

	"task-metadata-sync/internal/model"
)

// Marker glyphs recognized inside task content.
const (
	GlyphDue        = "📅"
	GlyphScheduled  = "⏳"
	GlyphStart      = "🛫"
	GlyphCreated    = "➕"
	GlyphDone       = "✅"
	GlyphRecurrence = "🔁"

	GlyphPriorityHighest = "🔺"
	GlyphPriorityHigh    = "⏫"
	GlyphPriorityMedium  = "🔼"
	GlyphPriorityLow     = "🔽"
	GlyphPriorityLowest  = "⏬"
)

const (
	// TaskLinePattern captures the status character and the content after the bracket.
	// Example: "  - [x] Ship it ⏫" → groups: ["x", " Ship it ⏫"]
	TaskLinePattern = `^\s*[-*]\s+\[(.)\](.*)$`

	datePattern = `\s*(\d{4}-\d{2}-\d{2})`
)

// dateMarkers is ordered; order has no effect on extraction.
var dateMarkers = []dateMarker{
	{glyph: GlyphDue, set: func(f *taskFields, v string) { f.due = v }},
	{glyph: GlyphScheduled, set: func(f *taskFields, v string) { f.scheduled = v }},
	{glyph: GlyphStart, set: func(f *taskFields, v string) { f.start = v }},
	{glyph: GlyphCreated, set: func(f *taskFields, v string) { f.created = v }},
	{glyph: GlyphDone, set: func(f *taskFields, v string) { f.done = v }},
}

// priorityMarkers is checked in this exact order; the first glyph present wins
// regardless of where it sits in the line.
var priorityMarkers = []priorityMarker{
	{glyph: GlyphPriorityHighest, priority: string(model.PriorityHighest)},
	{glyph: GlyphPriorityHigh, priority: string(model.PriorityHigh)},
	{glyph: GlyphPriorityMedium, priority: string(model.PriorityMedium)},
	{glyph: GlyphPriorityLow, priority: string(model.PriorityLow)},
	{glyph: GlyphPriorityLowest, priority: string(model.PriorityLowest)},
}

// recurrencePattern stops at the next date or priority glyph.
func recurrencePattern() string {
	stops := ""
	for _, m := range dateMarkers {
		stops += m.glyph
	}
	for _, m := range priorityMarkers {
		stops += m.glyph
	}
	return GlyphRecurrence + `([^` + stops + `]*)`
}

type compiledMarkers struct {
	taskLine   *regexp.Regexp
	dates      []*regexp.Regexp
	recurrence *regexp.Regexp
	whitespace *regexp.Regexp
}

func compileMarkers() compiledMarkers {
	dates := make([]*regexp.Regexp, 0, len(dateMarkers))
	for _, m := range dateMarkers {
		dates = append(dates, regexp.MustCompile(regexp.QuoteMeta(m.glyph)+datePattern))
	}
	return compiledMarkers{
		taskLine:   regexp.MustCompile(TaskLinePattern),
		dates:      dates,
		recurrence: regexp.MustCompile(recurrencePattern()),
		whitespace: regexp.MustCompile(`\s+`),
	}
}
