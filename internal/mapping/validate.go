package mapping

import (
	"errors"
	"fmt"
	"strings"

	"task-metadata-sync/internal/model"
)

// Validate checks every name in rules against the fixed vocabularies. It
// reports all problems at once. Resolve itself never fails on bad names, so
// configuration surfaces should call this before accepting rules.
func Validate(rules Rules) error {
	var errs []error

	for i, m := range rules.DirectMappings {
		prefix := fmt.Sprintf("direct_mappings[%d]", i)
		if strings.TrimSpace(m.Key) == "" {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, ErrEmptyKey))
		}
		if !m.Property.IsValid() {
			errs = append(errs, fmt.Errorf("%s: %w %q", prefix, ErrUnknownProperty, m.Property))
		}
	}

	for i, m := range rules.OperationMappings {
		prefix := fmt.Sprintf("operation_mappings[%d]", i)
		if strings.TrimSpace(m.Key) == "" {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, ErrEmptyKey))
		}
		if !m.Operation.IsValid() {
			errs = append(errs, fmt.Errorf("%s: %w %q", prefix, ErrUnknownOperation, m.Operation))
		}
		// Counting operations ignore the property, so it may be left blank.
		if !(m.Operation.IsCounting() && m.Property == "") && !m.Property.IsValid() {
			errs = append(errs, fmt.Errorf("%s: %w %q", prefix, ErrUnknownProperty, m.Property))
		}
		if !isValidCombination(m.Combination) {
			errs = append(errs, fmt.Errorf("%s: %w %q", prefix, ErrUnknownCombination, m.Combination))
		}
		for j, c := range m.Conditions {
			cprefix := fmt.Sprintf("%s.conditions[%d]", prefix, j)
			if !c.Property.IsValid() {
				errs = append(errs, fmt.Errorf("%s: %w %q", cprefix, ErrUnknownProperty, c.Property))
			}
			if !c.Operator.IsValid() {
				errs = append(errs, fmt.Errorf("%s: %w %q", cprefix, ErrUnknownOperator, c.Operator))
			}
		}
	}

	return errors.Join(errs...)
}

// isValidCombination accepts AND / OR in any case; empty means AND.
func isValidCombination(c model.Combination) bool {
	if c == "" {
		return true
	}
	return strings.EqualFold(string(c), string(model.CombinationAnd)) ||
		strings.EqualFold(string(c), string(model.CombinationOr))
}
