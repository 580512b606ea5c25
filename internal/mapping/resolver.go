package mapping

import (
	"context"
	"time"

	"task-metadata-sync/internal/model"
	"task-metadata-sync/internal/query"
)

// Resolve produces the ordered update list for tasks under rules. Direct
// mappings take the first non-empty value; operation mappings filter then
// aggregate. Mappings with no result emit nothing. Updates targeting the same
// key are all emitted, in order.
func (r *implResolver) Resolve(ctx context.Context, tasks []model.Task, rules Rules) []model.Update {
	updates := make([]model.Update, 0)
	if len(tasks) == 0 && !rules.needsEmptyResolution() {
		return updates
	}

	for _, m := range rules.DirectMappings {
		if !m.Enabled {
			continue
		}
		v, ok := query.Aggregate(tasks, m.Property, model.OperationFirst)
		if !ok {
			continue
		}
		r.l.Debugf(ctx, "mapping.Resolve: direct %s -> %s = %q", m.Property, m.Key, v.String())
		updates = append(updates, model.Update{Key: m.Key, Value: v, Overwrite: m.Overwrite})
	}

	now := r.now()
	for _, m := range rules.OperationMappings {
		if !m.Enabled {
			continue
		}
		conds := m.Conditions
		if rules.ExpandDateLiterals {
			conds = r.expandConditions(conds, now)
		}
		filtered := query.Filter(tasks, conds, m.Combination)
		v, ok := query.Aggregate(filtered, m.Property, m.Operation)
		if !ok {
			continue
		}
		r.l.Debugf(ctx, "mapping.Resolve: %s(%s) over %d/%d tasks -> %s = %q",
			m.Operation, m.Property, len(filtered), len(tasks), m.Key, v.String())
		updates = append(updates, model.Update{Key: m.Key, Value: v, Overwrite: m.Overwrite})
	}

	return updates
}

// ResolveDocument parses content and resolves its tasks.
func (r *implResolver) ResolveDocument(ctx context.Context, content string, rules Rules) ResolveOutput {
	tasks := r.checklist.ParseDocument(content)
	return ResolveOutput{
		Tasks:   tasks,
		Stats:   r.checklist.Stats(tasks),
		Updates: r.Resolve(ctx, tasks, rules),
	}
}

// expandConditions returns a copy of conds with date placeholders resolved.
// The input slice is never modified.
func (r *implResolver) expandConditions(conds []model.Condition, now time.Time) []model.Condition {
	if r.dates == nil || len(conds) == 0 {
		return conds
	}
	out := make([]model.Condition, len(conds))
	for i, c := range conds {
		if expanded, ok := r.dates.ExpandLiteral(c.Value, now); ok {
			c.Value = expanded
		}
		out[i] = c
	}
	return out
}
