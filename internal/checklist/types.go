package checklist

// Stats summarizes completion over a set of tasks.
type Stats struct {
	Total      int // Total tasks
	Completed  int // Tasks with status x or X
	Pending    int // Every other status
	Percentage int // round(100 * Completed / Total), 0 when Total is 0
}

// dateMarker binds a glyph to the task field it fills.
type dateMarker struct {
	glyph string
	set   func(*taskFields, string)
}

// priorityMarker binds a glyph to its priority value.
type priorityMarker struct {
	glyph    string
	priority string
}

type taskFields struct {
	due, scheduled, start, created, done string
}
