package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/model"
	"task-metadata-sync/internal/query"
)

func parse(t *testing.T, doc string) []model.Task {
	t.Helper()
	return checklist.New().ParseDocument(doc)
}

func TestValue(t *testing.T) {
	task := model.Task{
		StatusChar:  "x",
		Description: "Ship",
		Due:         "2025-05-01",
		Scheduled:   "2025-04-20",
		Start:       "2025-04-01",
		Created:     "2025-03-01",
		Done:        "2025-04-30",
		Recurrence:  "every week",
		Priority:    model.PriorityHigh,
	}

	tests := []struct {
		property model.PropertyName
		want     string
		wantOK   bool
	}{
		{model.PropertyStatus, "x", true},
		{model.PropertyDescription, "Ship", true},
		{model.PropertyDueDate, "2025-05-01", true},
		{model.PropertyScheduledDate, "2025-04-20", true},
		{model.PropertyStartDate, "2025-04-01", true},
		{model.PropertyCreatedDate, "2025-03-01", true},
		{model.PropertyDoneDate, "2025-04-30", true},
		{model.PropertyRecurrence, "every week", true},
		{model.PropertyPriority, "high", true},
		{"tags", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.property), func(t *testing.T) {
			got, ok := query.Value(task, tt.property)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := query.Value(model.Task{StatusChar: " "}, model.PropertyDueDate)
	assert.False(t, ok, "absent optional field")
	status, ok := query.Value(model.Task{StatusChar: " "}, model.PropertyStatus)
	assert.True(t, ok)
	assert.Equal(t, " ", status)
}

func TestEvaluate(t *testing.T) {
	withDue := model.Task{StatusChar: " ", Description: "Write report", Due: "2025-05-01"}
	noDue := model.Task{StatusChar: "x", Description: "Call"}

	cond := func(p model.PropertyName, op model.Operator, v string) model.Condition {
		return model.Condition{Property: p, Operator: op, Value: v}
	}

	tests := []struct {
		name string
		task model.Task
		cond model.Condition
		want bool
	}{
		{"equals match", withDue, cond(model.PropertyDueDate, model.OperatorEquals, "2025-05-01"), true},
		{"equals mismatch", withDue, cond(model.PropertyDueDate, model.OperatorEquals, "2025-05-02"), false},
		{"equals absent", noDue, cond(model.PropertyDueDate, model.OperatorEquals, ""), false},
		{"equals case sensitive", withDue, cond(model.PropertyDescription, model.OperatorEquals, "write report"), false},
		{"not_equals absent", noDue, cond(model.PropertyDueDate, model.OperatorNotEquals, "2025-05-01"), true},
		{"not_equals same", withDue, cond(model.PropertyDueDate, model.OperatorNotEquals, "2025-05-01"), false},
		{"not_equals status", noDue, cond(model.PropertyStatus, model.OperatorNotEquals, "x"), false},
		{"contains", withDue, cond(model.PropertyDescription, model.OperatorContains, "report"), true},
		{"contains absent", noDue, cond(model.PropertyRecurrence, model.OperatorContains, ""), false},
		{"not_contains", withDue, cond(model.PropertyDescription, model.OperatorNotContains, "report"), false},
		{"not_contains absent", noDue, cond(model.PropertyRecurrence, model.OperatorNotContains, "week"), true},
		{"is_empty absent", noDue, cond(model.PropertyDueDate, model.OperatorIsEmpty, "ignored"), true},
		{"is_empty present", withDue, cond(model.PropertyDueDate, model.OperatorIsEmpty, ""), false},
		{"is_not_empty present", withDue, cond(model.PropertyDueDate, model.OperatorIsNotEmpty, "ignored"), true},
		{"is_not_empty absent", noDue, cond(model.PropertyDueDate, model.OperatorIsNotEmpty, ""), false},
		{"greater_than", withDue, cond(model.PropertyDueDate, model.OperatorGreaterThan, "2025-04-30"), true},
		{"greater_than equal", withDue, cond(model.PropertyDueDate, model.OperatorGreaterThan, "2025-05-01"), false},
		{"greater_than absent", noDue, cond(model.PropertyDueDate, model.OperatorGreaterThan, ""), false},
		{"less_than", withDue, cond(model.PropertyDueDate, model.OperatorLessThan, "2025-06-01"), true},
		{"less_than absent", noDue, cond(model.PropertyDueDate, model.OperatorLessThan, "9999-12-31"), false},
		{"greater_or_equal", withDue, cond(model.PropertyDueDate, model.OperatorGreaterOrEqual, "2025-05-01"), true},
		{"less_or_equal", withDue, cond(model.PropertyDueDate, model.OperatorLessOrEqual, "2025-05-01"), true},
		{"lexicographic on text", withDue, cond(model.PropertyDescription, model.OperatorGreaterThan, "Call"), true},
		{"unknown operator", withDue, cond(model.PropertyDueDate, "between", "2025"), false},
		{"unknown property equals", withDue, cond("tags", model.OperatorEquals, ""), false},
		{"unknown property not_equals", withDue, cond("tags", model.OperatorNotEquals, "x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.Evaluate(tt.task, tt.cond))
		})
	}
}

func TestFilter(t *testing.T) {
	tasks := parse(t, "- [ ] a 📅 2025-01-01\n- [x] b 📅 2025-02-01\n- [-] c\n- [ ] d ⏫")

	t.Run("no conditions is identity", func(t *testing.T) {
		got := query.Filter(tasks, nil, model.CombinationAnd)
		assert.Equal(t, tasks, got)
	})

	notDone := []model.Condition{
		{Property: model.PropertyStatus, Operator: model.OperatorNotEquals, Value: "x"},
		{Property: model.PropertyStatus, Operator: model.OperatorNotEquals, Value: "-"},
	}

	t.Run("AND", func(t *testing.T) {
		got := query.Filter(tasks, notDone, model.CombinationAnd)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].Description)
		assert.Equal(t, "d", got[1].Description)
	})

	t.Run("OR", func(t *testing.T) {
		conds := []model.Condition{
			{Property: model.PropertyDueDate, Operator: model.OperatorIsNotEmpty},
			{Property: model.PropertyPriority, Operator: model.OperatorEquals, Value: "high"},
		}
		got := query.Filter(tasks, conds, model.CombinationOr)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"a", "b", "d"}, descriptions(got))
	})

	t.Run("lowercase or", func(t *testing.T) {
		conds := []model.Condition{
			{Property: model.PropertyStatus, Operator: model.OperatorEquals, Value: "x"},
			{Property: model.PropertyStatus, Operator: model.OperatorEquals, Value: "-"},
		}
		got := query.Filter(tasks, conds, "or")
		assert.Equal(t, []string{"b", "c"}, descriptions(got))
	})

	t.Run("unknown combination is AND", func(t *testing.T) {
		got := query.Filter(tasks, notDone, "XOR")
		assert.Equal(t, []string{"a", "d"}, descriptions(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := query.Filter(tasks, notDone, model.CombinationAnd)
		twice := query.Filter(once, notDone, model.CombinationAnd)
		assert.Equal(t, once, twice)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := append([]model.Task(nil), tasks...)
		_ = query.Filter(tasks, notDone, model.CombinationAnd)
		assert.Equal(t, before, tasks)
	})
}

func TestAggregate(t *testing.T) {
	tasks := parse(t, "- [ ] Draft ⏳ 2025-04-10 🔽\n- [x] Research ⏳ 2025-03-28 ✅ 2025-03-28\n- [ ] Review\n- [-] Old ⏳ 2025-03-01 ⏫")

	tests := []struct {
		name      string
		property  model.PropertyName
		operation model.Operation
		want      string
		wantOK    bool
		wantNum   bool
	}{
		{"min", model.PropertyScheduledDate, model.OperationMin, "2025-03-01", true, false},
		{"max", model.PropertyScheduledDate, model.OperationMax, "2025-04-10", true, false},
		{"count skips absent", model.PropertyScheduledDate, model.OperationCount, "3", true, true},
		{"count none present", model.PropertyRecurrence, model.OperationCount, "0", true, true},
		{"count_all", model.PropertyScheduledDate, model.OperationCountAll, "4", true, true},
		{"count_done", "", model.OperationCountDone, "1", true, true},
		{"count_open", "", model.OperationCountOpen, "3", true, true},
		{"percentage_done", "", model.OperationPercentageDone, "25", true, true},
		{"list", model.PropertyScheduledDate, model.OperationList, "2025-04-10, 2025-03-28, 2025-03-01", true, false},
		{"list priority", model.PropertyPriority, model.OperationList, "low, high", true, false},
		{"first", model.PropertyPriority, model.OperationFirst, "low", true, false},
		{"last", model.PropertyPriority, model.OperationLast, "high", true, false},
		{"first status", model.PropertyStatus, model.OperationFirst, " ", true, false},
		{"min no values", model.PropertyRecurrence, model.OperationMin, "", false, false},
		{"list no values", model.PropertyDueDate, model.OperationList, "", false, false},
		{"first no values", model.PropertyDueDate, model.OperationFirst, "", false, false},
		{"last no values", model.PropertyDueDate, model.OperationLast, "", false, false},
		{"unknown operation", model.PropertyDueDate, "median", "", false, false},
		{"unknown property", "tags", model.OperationList, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := query.Aggregate(tasks, tt.property, tt.operation)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantNum, got.IsNumber())
		})
	}
}

func TestAggregate_MinMaxAreLexicographic(t *testing.T) {
	tasks := []model.Task{
		{Description: "9"},
		{Description: "10"},
		{Description: "100"},
	}

	minV, ok := query.Aggregate(tasks, model.PropertyDescription, model.OperationMin)
	require.True(t, ok)
	assert.Equal(t, "10", minV.String())

	maxV, ok := query.Aggregate(tasks, model.PropertyDescription, model.OperationMax)
	require.True(t, ok)
	assert.Equal(t, "9", maxV.String())
}

func TestAggregate_Empty(t *testing.T) {
	for _, op := range []model.Operation{
		model.OperationMin, model.OperationMax, model.OperationCount,
		model.OperationList, model.OperationFirst, model.OperationLast,
	} {
		_, ok := query.Aggregate(nil, model.PropertyDueDate, op)
		assert.False(t, ok, op)
	}

	for _, op := range []model.Operation{
		model.OperationCountAll, model.OperationCountDone,
		model.OperationCountOpen, model.OperationPercentageDone,
	} {
		got, ok := query.Aggregate(nil, model.PropertyDueDate, op)
		require.True(t, ok, op)
		assert.Equal(t, "0", got.String(), op)
		assert.True(t, got.IsNumber())
	}
}

func TestAggregate_Scenarios(t *testing.T) {
	t.Run("5 tasks 3 done", func(t *testing.T) {
		tasks := parse(t, "- [x] a\n- [x] b\n- [x] c\n- [ ] d\n- [ ] e")
		got, ok := query.Aggregate(tasks, "", model.OperationPercentageDone)
		require.True(t, ok)
		assert.Equal(t, "60", got.String())
	})

	t.Run("8 tasks 3 done", func(t *testing.T) {
		tasks := parse(t, "- [x] a\n- [x] b\n- [x] c\n- [ ] d\n- [ ] e\n- [/] f\n- [-] g\n- [ ] h")
		got, ok := query.Aggregate(tasks, "", model.OperationCountOpen)
		require.True(t, ok)
		assert.Equal(t, "5", got.String())
	})
}

func descriptions(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Description)
	}
	return out
}
