package model

// PropertyName identifies a readable task field.
type PropertyName string

const (
	PropertyStatus        PropertyName = "status"
	PropertyDescription   PropertyName = "description"
	PropertyDueDate       PropertyName = "due_date"
	PropertyScheduledDate PropertyName = "scheduled_date"
	PropertyStartDate     PropertyName = "start_date"
	PropertyCreatedDate   PropertyName = "created_date"
	PropertyDoneDate      PropertyName = "done_date"
	PropertyRecurrence    PropertyName = "recurrence"
	PropertyPriority      PropertyName = "priority"
)

// Properties lists every known property in a stable order.
var Properties = []PropertyName{
	PropertyStatus,
	PropertyDescription,
	PropertyDueDate,
	PropertyScheduledDate,
	PropertyStartDate,
	PropertyCreatedDate,
	PropertyDoneDate,
	PropertyRecurrence,
	PropertyPriority,
}

// IsValid reports whether p is one of the fixed property names.
func (p PropertyName) IsValid() bool {
	for _, known := range Properties {
		if p == known {
			return true
		}
	}
	return false
}
