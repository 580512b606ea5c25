package checklist

import (
	"math"
	"strings"

	"task-metadata-sync/internal/model"
)

type Service interface {
	// ParseDocument extracts every task line from a document, in line order
	ParseDocument(content string) []model.Task

	// ParseLine decodes a single line; ok is false when the line is not a task
	ParseLine(line string, index int) (task model.Task, ok bool)

	// Stats calculates completion statistics for parsed tasks
	Stats(tasks []model.Task) Stats
}

type service struct {
	markers compiledMarkers
}

func New() Service {
	return &service{
		markers: compileMarkers(),
	}
}

// ParseDocument extracts all task lines from the document. Lines that are not
// tasks are skipped; parsing never fails.
func (s *service) ParseDocument(content string) []model.Task {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	tasks := make([]model.Task, 0)
	for i, line := range lines {
		task, ok := s.ParseLine(strings.TrimSuffix(line, "\r"), i)
		if !ok {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// ParseLine decodes one checkbox line.
func (s *service) ParseLine(line string, index int) (model.Task, bool) {
	match := s.markers.taskLine.FindStringSubmatch(line)
	if len(match) != 3 {
		return model.Task{}, false
	}

	status := match[1]
	content := strings.TrimSpace(match[2])

	var fields taskFields
	for i, re := range s.markers.dates {
		if m := re.FindStringSubmatch(content); len(m) == 2 {
			dateMarkers[i].set(&fields, m[1])
		}
	}

	return model.Task{
		RawLine:     line,
		LineIndex:   index,
		IsDone:      status == "x" || status == "X",
		StatusChar:  status,
		Description: s.description(content),
		Due:         fields.due,
		Scheduled:   fields.scheduled,
		Start:       fields.start,
		Created:     fields.created,
		Done:        fields.done,
		Recurrence:  s.recurrence(content),
		Priority:    model.Priority(priority(content)),
	}, true
}

// recurrence returns the trimmed text after the recurrence glyph, "" when absent or blank.
func (s *service) recurrence(content string) string {
	m := s.markers.recurrence.FindStringSubmatch(content)
	if len(m) != 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// priority uses fixed precedence, not position.
func priority(content string) string {
	for _, m := range priorityMarkers {
		if strings.Contains(content, m.glyph) {
			return m.priority
		}
	}
	return ""
}

// description strips every recognized marker. Recurrence spans go first so
// that their boundary is still the next glyph of the original content.
func (s *service) description(content string) string {
	out := s.markers.recurrence.ReplaceAllString(content, "")
	for _, re := range s.markers.dates {
		out = re.ReplaceAllString(out, "")
	}
	for _, m := range priorityMarkers {
		out = strings.ReplaceAll(out, m.glyph, "")
	}
	out = s.markers.whitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Stats calculates completion statistics.
func (s *service) Stats(tasks []model.Task) Stats {
	return ComputeStats(tasks)
}

// ComputeStats counts done and open tasks and derives the rounded percentage.
func ComputeStats(tasks []model.Task) Stats {
	total := len(tasks)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, t := range tasks {
		if t.IsDone {
			completed++
		}
	}

	return Stats{
		Total:      total,
		Completed:  completed,
		Pending:    total - completed,
		Percentage: int(math.Round(float64(100*completed) / float64(total))),
	}
}
