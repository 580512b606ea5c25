package query

import "task-metadata-sync/internal/model"

var accessors = map[model.PropertyName]func(model.Task) string{
	model.PropertyStatus:        func(t model.Task) string { return t.StatusChar },
	model.PropertyDescription:   func(t model.Task) string { return t.Description },
	model.PropertyDueDate:       func(t model.Task) string { return t.Due },
	model.PropertyScheduledDate: func(t model.Task) string { return t.Scheduled },
	model.PropertyStartDate:     func(t model.Task) string { return t.Start },
	model.PropertyCreatedDate:   func(t model.Task) string { return t.Created },
	model.PropertyDoneDate:      func(t model.Task) string { return t.Done },
	model.PropertyRecurrence:    func(t model.Task) string { return t.Recurrence },
	model.PropertyPriority:      func(t model.Task) string { return string(t.Priority) },
}

// Value returns the task's value for property. ok is false for unknown
// properties and for optional fields the parser left absent.
func Value(task model.Task, property model.PropertyName) (string, bool) {
	get, known := accessors[property]
	if !known {
		return "", false
	}
	v := get(task)
	switch property {
	case model.PropertyStatus, model.PropertyDescription:
		return v, true
	}
	return v, v != ""
}

// nonEmpty is the value used by aggregation: present and not "".
func nonEmpty(task model.Task, property model.PropertyName) (string, bool) {
	v, ok := Value(task, property)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
