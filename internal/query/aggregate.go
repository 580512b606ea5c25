package query

import (
	"sort"
	"strings"

	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/model"
)

// ListSeparator joins values for the list operation.
const ListSeparator = ", "

// Aggregate reduces tasks (already filtered) to one value. ok is false when
// there is no result: empty input for non-counting operations, no non-empty
// values, or an unknown operation.
func Aggregate(tasks []model.Task, property model.PropertyName, operation model.Operation) (model.Value, bool) {
	if operation.IsCounting() {
		return count(tasks, operation), true
	}
	if len(tasks) == 0 {
		return model.Value{}, false
	}

	switch operation {
	case model.OperationMin, model.OperationMax:
		values := collect(tasks, property)
		if len(values) == 0 {
			return model.Value{}, false
		}
		sort.Strings(values)
		if operation == model.OperationMin {
			return model.TextValue(values[0]), true
		}
		return model.TextValue(values[len(values)-1]), true

	case model.OperationCount:
		return model.NumberValue(len(collect(tasks, property))), true

	case model.OperationList:
		values := collect(tasks, property)
		if len(values) == 0 {
			return model.Value{}, false
		}
		return model.TextValue(strings.Join(values, ListSeparator)), true

	case model.OperationFirst:
		for _, t := range tasks {
			if v, ok := nonEmpty(t, property); ok {
				return model.TextValue(v), true
			}
		}
		return model.Value{}, false

	case model.OperationLast:
		for i := len(tasks) - 1; i >= 0; i-- {
			if v, ok := nonEmpty(tasks[i], property); ok {
				return model.TextValue(v), true
			}
		}
		return model.Value{}, false
	}

	return model.Value{}, false
}

// collect gathers non-empty values of property in task order.
func collect(tasks []model.Task, property model.PropertyName) []string {
	values := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if v, ok := nonEmpty(t, property); ok {
			values = append(values, v)
		}
	}
	return values
}

func count(tasks []model.Task, operation model.Operation) model.Value {
	stats := checklist.ComputeStats(tasks)
	switch operation {
	case model.OperationCountDone:
		return model.NumberValue(stats.Completed)
	case model.OperationCountOpen:
		return model.NumberValue(stats.Pending)
	case model.OperationPercentageDone:
		return model.NumberValue(stats.Percentage)
	}
	return model.NumberValue(stats.Total)
}
