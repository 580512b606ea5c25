package model

// Operator is a condition comparison operator.
type Operator string

const (
	OperatorEquals         Operator = "equals"
	OperatorNotEquals      Operator = "not_equals"
	OperatorContains       Operator = "contains"
	OperatorNotContains    Operator = "not_contains"
	OperatorIsEmpty        Operator = "is_empty"
	OperatorIsNotEmpty     Operator = "is_not_empty"
	OperatorGreaterThan    Operator = "greater_than"
	OperatorLessThan       Operator = "less_than"
	OperatorGreaterOrEqual Operator = "greater_or_equal"
	OperatorLessOrEqual    Operator = "less_or_equal"
)

// Operators lists every known operator.
var Operators = []Operator{
	OperatorEquals, OperatorNotEquals,
	OperatorContains, OperatorNotContains,
	OperatorIsEmpty, OperatorIsNotEmpty,
	OperatorGreaterThan, OperatorLessThan,
	OperatorGreaterOrEqual, OperatorLessOrEqual,
}

// IsValid reports whether o is one of the fixed operator names.
func (o Operator) IsValid() bool {
	for _, known := range Operators {
		if o == known {
			return true
		}
	}
	return false
}

// Operation is an aggregation operation name.
type Operation string

const (
	OperationMin            Operation = "min"
	OperationMax            Operation = "max"
	OperationCount          Operation = "count"
	OperationCountAll       Operation = "count_all"
	OperationCountDone      Operation = "count_done"
	OperationCountOpen      Operation = "count_open"
	OperationPercentageDone Operation = "percentage_done"
	OperationList           Operation = "list"
	OperationFirst          Operation = "first"
	OperationLast           Operation = "last"
)

// Operations lists every known operation.
var Operations = []Operation{
	OperationMin, OperationMax, OperationCount,
	OperationCountAll, OperationCountDone, OperationCountOpen, OperationPercentageDone,
	OperationList, OperationFirst, OperationLast,
}

// IsValid reports whether o is one of the fixed operation names.
func (o Operation) IsValid() bool {
	for _, known := range Operations {
		if o == known {
			return true
		}
	}
	return false
}

// IsCounting reports whether o yields a result even over zero tasks.
func (o Operation) IsCounting() bool {
	switch o {
	case OperationCountAll, OperationCountDone, OperationCountOpen, OperationPercentageDone:
		return true
	}
	return false
}

// Combination decides how multiple conditions are joined.
type Combination string

const (
	CombinationAnd Combination = "AND"
	CombinationOr  Combination = "OR"
)

// Condition is a single filter predicate. Value is ignored by the emptiness operators.
type Condition struct {
	Property PropertyName `json:"property" yaml:"property" mapstructure:"property"`
	Operator Operator     `json:"operator" yaml:"operator" mapstructure:"operator"`
	Value    string       `json:"value" yaml:"value" mapstructure:"value"`
}

// DirectMapping copies the first non-empty value of Property into Key.
type DirectMapping struct {
	Property  PropertyName `json:"property" yaml:"property" mapstructure:"property"`
	Key       string       `json:"key" yaml:"key" mapstructure:"key"`
	Overwrite bool         `json:"overwrite" yaml:"overwrite" mapstructure:"overwrite"`
	Enabled   bool         `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
}

// OperationMapping aggregates Property over the filtered tasks into Key.
type OperationMapping struct {
	Property    PropertyName `json:"property" yaml:"property" mapstructure:"property"`
	Operation   Operation    `json:"operation" yaml:"operation" mapstructure:"operation"`
	Key         string       `json:"key" yaml:"key" mapstructure:"key"`
	Overwrite   bool         `json:"overwrite" yaml:"overwrite" mapstructure:"overwrite"`
	Enabled     bool         `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Conditions  []Condition  `json:"conditions" yaml:"conditions" mapstructure:"conditions"`
	Combination Combination  `json:"combination" yaml:"combination" mapstructure:"combination"`
}
