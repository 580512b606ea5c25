package mapping

import (
	"task-metadata-sync/internal/checklist"
	"task-metadata-sync/internal/model"
)

// Rules is an immutable snapshot of the configured mappings. Direct mappings
// always resolve before operation mappings, each in slice order.
type Rules struct {
	DirectMappings     []model.DirectMapping    `json:"direct_mappings" mapstructure:"direct_mappings"`
	OperationMappings  []model.OperationMapping `json:"operation_mappings" mapstructure:"operation_mappings"`
	ExpandDateLiterals bool                     `json:"expand_date_literals" mapstructure:"expand_date_literals"`
}

// Clone deep-copies r so callers can hand out snapshots safely.
func (r Rules) Clone() Rules {
	out := Rules{ExpandDateLiterals: r.ExpandDateLiterals}
	if r.DirectMappings != nil {
		out.DirectMappings = append([]model.DirectMapping(nil), r.DirectMappings...)
	}
	if r.OperationMappings != nil {
		out.OperationMappings = make([]model.OperationMapping, len(r.OperationMappings))
		for i, m := range r.OperationMappings {
			if m.Conditions != nil {
				m.Conditions = append([]model.Condition(nil), m.Conditions...)
			}
			out.OperationMappings[i] = m
		}
	}
	return out
}

// IsEmpty reports whether no mapping is enabled.
func (r Rules) IsEmpty() bool {
	for _, m := range r.DirectMappings {
		if m.Enabled {
			return false
		}
	}
	for _, m := range r.OperationMappings {
		if m.Enabled {
			return false
		}
	}
	return true
}

// needsEmptyResolution reports whether a document without tasks can still
// produce updates, which only counting operations do.
func (r Rules) needsEmptyResolution() bool {
	for _, m := range r.OperationMappings {
		if m.Enabled && m.Operation.IsCounting() {
			return true
		}
	}
	return false
}

// ResolveOutput is the result of resolving a whole document.
type ResolveOutput struct {
	Tasks   []model.Task
	Stats   checklist.Stats
	Updates []model.Update
}
