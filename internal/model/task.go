package model

// Priority is the decoded priority marker of a task. Empty means no marker.
type Priority string

const (
	PriorityHighest Priority = "highest"
	PriorityHigh    Priority = "high"
	PriorityMedium  Priority = "medium"
	PriorityLow     Priority = "low"
	PriorityLowest  Priority = "lowest"
)

// Task is one decoded checkbox line. Optional fields use "" for absent;
// the parser never stores an empty value as present.
type Task struct {
	RawLine   string // Original line, untouched
	LineIndex int    // Zero-based line number in the document

	IsDone      bool   // StatusChar is x or X
	StatusChar  string // Single character between the brackets
	Description string // Content with every recognized marker removed

	Due       string // YYYY-MM-DD
	Scheduled string
	Start     string
	Created   string
	Done      string

	Recurrence string
	Priority   Priority
}
