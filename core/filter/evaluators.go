package filter

import "strings"

// Predicate reports whether a value passes a filter. Predicates hold no mutable
// state and may be called from multiple goroutines.
type Predicate[V any] func(value V) bool

// Factory turns one filter rule into a predicate over a single field value. The
// rule is copied when the predicate is built.
type Factory[R Rule, V any] func(rule R) Predicate[V]

// Constructor creates the Factory for one filter kind. The registry maps each Kind
// to one Constructor.
type Constructor[R Rule, V any] func() Factory[R, V]

// Filter returns the records that satisfy p, preserving their order.
func Filter[E any](records []E, p Predicate[E]) []E {
	var matched []E
	for _, record := range records {
		if p(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

// NewIdFilter returns the factory for identifier rules. Not is evaluated first and
// shadows Equals on the same rule; a rule with neither matches every identifier.
func NewIdFilter() Factory[IdFilter, string] {
	var check func(rule *IdFilter, value string) bool
	check = func(rule *IdFilter, value string) bool {
		if rule.Not != nil {
			return !check(rule.Not, value)
		}
		if rule.Equals != nil {
			return value == *rule.Equals
		}
		return true
	}

	return func(rule IdFilter) Predicate[string] {
		return func(value string) bool { return check(&rule, value) }
	}
}

// NewStringFilter returns the factory for text rules. Matching is case sensitive
// and exact: no trimming or normalization is applied.
func NewStringFilter() Factory[StringFilter, string] {
	var check func(rule *StringFilter, value string) bool
	check = func(rule *StringFilter, value string) bool {
		if rule.Not != nil {
			return !check(rule.Not, value)
		}
		ok, matched := matchText(rule.Equals, rule.StartsWith, rule.EndsWith, rule.Contains, value)
		if ok {
			return matched
		}
		return true
	}

	return func(rule StringFilter) Predicate[string] {
		return func(value string) bool { return check(&rule, value) }
	}
}

// NewStringNullableFilter returns the factory for nullable text rules. A nil
// value is null.
func NewStringNullableFilter() Factory[StringNullableFilter, *string] {
	var check func(rule *StringNullableFilter, value *string) bool
	check = func(rule *StringNullableFilter, value *string) bool {
		if rule.Not != nil {
			return !check(rule.Not, value)
		}
		if rule.Equals != nil {
			return rule.Equals.matches(value)
		}
		if rule.StartsWith == nil && rule.EndsWith == nil && rule.Contains == nil {
			return true
		}
		if value == nil {
			return false
		}
		_, matched := matchText(nil, rule.StartsWith, rule.EndsWith, rule.Contains, *value)
		return matched
	}

	return func(rule StringNullableFilter) Predicate[*string] {
		return func(value *string) bool { return check(&rule, value) }
	}
}

// NewNumberFilter returns the factory for numeric rules. Only the first of Equals,
// Gt, Gte, Lt and Lte that is set is compared, so {Gt: 1, Lt: 3} is just "> 1".
func NewNumberFilter() Factory[NumberFilter, float64] {
	var check func(rule *NumberFilter, value float64) bool
	check = func(rule *NumberFilter, value float64) bool {
		if rule.Not != nil {
			return !check(rule.Not, value)
		}
		ok, matched := matchNumber(rule.Equals, rule.Gt, rule.Gte, rule.Lt, rule.Lte, value)
		if ok {
			return matched
		}
		return true
	}

	return func(rule NumberFilter) Predicate[float64] {
		return func(value float64) bool { return check(&rule, value) }
	}
}

// NewNumberNullableFilter returns the factory for nullable numeric rules. A nil
// value is null.
func NewNumberNullableFilter() Factory[NumberNullableFilter, *float64] {
	var check func(rule *NumberNullableFilter, value *float64) bool
	check = func(rule *NumberNullableFilter, value *float64) bool {
		if rule.Not != nil {
			return !check(rule.Not, value)
		}
		if rule.Equals != nil {
			return rule.Equals.matches(value)
		}
		if rule.Gt == nil && rule.Gte == nil && rule.Lt == nil && rule.Lte == nil {
			return true
		}
		if value == nil {
			return false
		}
		_, matched := matchNumber(nil, rule.Gt, rule.Gte, rule.Lt, rule.Lte, *value)
		return matched
	}

	return func(rule NumberNullableFilter) Predicate[*float64] {
		return func(value *float64) bool { return check(&rule, value) }
	}
}

// matchText applies the first present text attribute in the order equals,
// startsWith, endsWith, contains. ok is false when none is set, in which case the
// caller decides the result.
func matchText(equals, startsWith, endsWith, contains *string, value string) (ok, matched bool) {
	switch {
	case equals != nil:
		return true, value == *equals
	case startsWith != nil:
		return true, strings.HasPrefix(value, *startsWith)
	case endsWith != nil:
		return true, strings.HasSuffix(value, *endsWith)
	case contains != nil:
		return true, strings.Contains(value, *contains)
	}
	return false, false
}

// matchNumber applies the first present numeric attribute in the order equals,
// gt, gte, lt, lte. ok is false when none is set.
func matchNumber(equals, gt, gte, lt, lte *float64, value float64) (ok, matched bool) {
	switch {
	case equals != nil:
		return true, value == *equals
	case gt != nil:
		return true, value > *gt
	case gte != nil:
		return true, value >= *gte
	case lt != nil:
		return true, value < *lt
	case lte != nil:
		return true, value <= *lte
	}
	return false, false
}
