package query

import (
	"strings"

	"task-metadata-sync/internal/model"
)

// Evaluate reports whether task satisfies cond. Comparison is case-sensitive
// text comparison; an unknown operator never matches.
func Evaluate(task model.Task, cond model.Condition) bool {
	v, ok := Value(task, cond.Property)

	switch cond.Operator {
	case model.OperatorEquals:
		return ok && v == cond.Value
	case model.OperatorNotEquals:
		return !ok || v != cond.Value
	case model.OperatorContains:
		return ok && strings.Contains(v, cond.Value)
	case model.OperatorNotContains:
		return !ok || !strings.Contains(v, cond.Value)
	case model.OperatorIsEmpty:
		return !ok || v == ""
	case model.OperatorIsNotEmpty:
		return ok && v != ""
	case model.OperatorGreaterThan:
		return ok && v > cond.Value
	case model.OperatorLessThan:
		return ok && v < cond.Value
	case model.OperatorGreaterOrEqual:
		return ok && v >= cond.Value
	case model.OperatorLessOrEqual:
		return ok && v <= cond.Value
	}
	return false
}

// Filter returns the tasks that satisfy conds joined by combination, in
// their original order. No conditions means no filtering. Anything other
// than OR is treated as AND.
func Filter(tasks []model.Task, conds []model.Condition, combination model.Combination) []model.Task {
	if len(conds) == 0 {
		return tasks
	}

	matches := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, conds, combination) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Matches applies conds to a single task.
func Matches(task model.Task, conds []model.Condition, combination model.Combination) bool {
	if IsOr(combination) {
		for _, c := range conds {
			if Evaluate(task, c) {
				return true
			}
		}
		return false
	}

	for _, c := range conds {
		if !Evaluate(task, c) {
			return false
		}
	}
	return true
}

// IsOr reports whether combination selects disjunction. Case-insensitive.
func IsOr(combination model.Combination) bool {
	return strings.EqualFold(string(combination), string(model.CombinationOr))
}
