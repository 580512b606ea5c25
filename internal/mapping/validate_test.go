package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-metadata-sync/internal/mapping"
	"task-metadata-sync/internal/model"
)

func TestValidate(t *testing.T) {
	valid := mapping.Rules{
		DirectMappings: []model.DirectMapping{{Property: model.PropertyPriority, Key: "priority", Enabled: true}},
		OperationMappings: []model.OperationMapping{
			{Operation: model.OperationPercentageDone, Key: "progress", Enabled: true},
			{
				Property:    model.PropertyDueDate,
				Operation:   model.OperationMin,
				Key:         "next_due",
				Combination: "or",
				Conditions: []model.Condition{
					{Property: model.PropertyStatus, Operator: model.OperatorIsEmpty},
				},
			},
		},
	}
	require.NoError(t, mapping.Validate(valid))

	tests := []struct {
		name  string
		rules mapping.Rules
		want  error
	}{
		{
			name:  "direct empty key",
			rules: mapping.Rules{DirectMappings: []model.DirectMapping{{Property: model.PropertyStatus}}},
			want:  mapping.ErrEmptyKey,
		},
		{
			name:  "direct unknown property",
			rules: mapping.Rules{DirectMappings: []model.DirectMapping{{Property: "tags", Key: "t"}}},
			want:  mapping.ErrUnknownProperty,
		},
		{
			name:  "unknown operation",
			rules: mapping.Rules{OperationMappings: []model.OperationMapping{{Property: model.PropertyDueDate, Operation: "avg", Key: "k"}}},
			want:  mapping.ErrUnknownOperation,
		},
		{
			name:  "missing property for min",
			rules: mapping.Rules{OperationMappings: []model.OperationMapping{{Operation: model.OperationMin, Key: "k"}}},
			want:  mapping.ErrUnknownProperty,
		},
		{
			name:  "unknown combination",
			rules: mapping.Rules{OperationMappings: []model.OperationMapping{{Operation: model.OperationCountAll, Key: "k", Combination: "XOR"}}},
			want:  mapping.ErrUnknownCombination,
		},
		{
			name: "unknown operator",
			rules: mapping.Rules{OperationMappings: []model.OperationMapping{{
				Operation:  model.OperationCountAll,
				Key:        "k",
				Conditions: []model.Condition{{Property: model.PropertyStatus, Operator: "like"}},
			}}},
			want: mapping.ErrUnknownOperator,
		},
		{
			name: "unknown condition property",
			rules: mapping.Rules{OperationMappings: []model.OperationMapping{{
				Operation:  model.OperationCountAll,
				Key:        "k",
				Conditions: []model.Condition{{Property: "owner", Operator: model.OperatorEquals}},
			}}},
			want: mapping.ErrUnknownProperty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapping.Validate(tt.rules)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	rules := mapping.Rules{
		DirectMappings:    []model.DirectMapping{{Property: "x"}},
		OperationMappings: []model.OperationMapping{{Property: model.PropertyDueDate, Operation: "y", Key: "k"}},
	}

	err := mapping.Validate(rules)
	require.Error(t, err)
	assert.ErrorIs(t, err, mapping.ErrEmptyKey)
	assert.ErrorIs(t, err, mapping.ErrUnknownProperty)
	assert.ErrorIs(t, err, mapping.ErrUnknownOperation)
	assert.Contains(t, err.Error(), "direct_mappings[0]")
	assert.Contains(t, err.Error(), "operation_mappings[0]")
}
