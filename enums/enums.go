// Package enums validates and introspects ordered integer enumerations:
// named constant sets whose values must be unique and consecutive from zero.
// The check runs once, where the enumeration is defined; a failure there is a
// programming error, not a runtime condition.
package enums

import (
	"fmt"
	"sort"
	"strings"
)

// Member is one named value of an enumeration, in definition order.
type Member struct {
	Name  string
	Value int
}

// ValidationKind distinguishes the ways an enumeration can fail validation.
type ValidationKind int

const (
	// BadStart means the minimum value is not zero.
	BadStart ValidationKind = iota

	// Duplicate means two names share one value.
	Duplicate

	// Gap means the sorted values are not consecutive.
	Gap
)

// ValidationError reports an enumeration that is not unique and consecutive
// from zero.
type ValidationError struct {
	// Enum is the name of the offending enumeration.
	Enum string

	// Kind is the category of failure.
	Kind ValidationKind

	msg string
}

// Error returns the failure message.
func (e *ValidationError) Error() string {
	return e.msg
}

// Validate checks that the members of the named enumeration are unique and
// consecutive starting from zero. Member order does not matter for
// acceptance: the members sorted by value must be exactly 0..n-1.
//
// Failure precedence follows the contract: a non-zero minimum is reported
// immediately and exclusively; otherwise duplicates are collected first and,
// when any exist, gap reporting is skipped for this pass. Duplicate and gap
// messages each name every offender, in definition order, joined into one
// message.
func Validate(name string, members []Member) error {
	if len(members) == 0 {
		return &ValidationError{
			Enum: name,
			Kind: BadStart,
			msg:  fmt.Sprintf("No values defined in %s", name),
		}
	}

	min := members[0].Value
	for _, m := range members[1:] {
		if m.Value < min {
			min = m.Value
		}
	}
	if min != 0 {
		return &ValidationError{
			Enum: name,
			Kind: BadStart,
			msg:  fmt.Sprintf("Bad starting value (should be zero): %d", min),
		}
	}

	// The first name defined for a value is canonical; later names for the
	// same value are aliases.
	canonical := make(map[int]string, len(members))
	var aliases []string
	for _, m := range members {
		if first, ok := canonical[m.Value]; ok {
			aliases = append(aliases, fmt.Sprintf("%s -> %s", m.Name, first))
			continue
		}
		canonical[m.Value] = m.Name
	}
	if len(aliases) > 0 {
		return &ValidationError{
			Enum: name,
			Kind: Duplicate,
			msg: fmt.Sprintf("Duplicate values found in %s: %s",
				name, strings.Join(aliases, ", ")),
		}
	}

	// Values are unique here, so sorting and comparing against the index
	// finds every out-of-sequence member.
	sorted := make([]Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })
	offending := make(map[string]bool)
	for i, m := range sorted {
		if m.Value != i {
			offending[m.Name] = true
		}
	}
	if len(offending) > 0 {
		var parts []string
		for _, m := range members {
			if offending[m.Name] {
				parts = append(parts, fmt.Sprintf("%s: %d", m.Name, m.Value))
			}
		}
		return &ValidationError{
			Enum: name,
			Kind: Gap,
			msg: fmt.Sprintf("Non-consecutive values found in %s: %s",
				name, strings.Join(parts, ", ")),
		}
	}

	return nil
}

// Enum is a validated ordered enumeration: an explicit mapping from name to
// integer value, with plain-method introspection.
type Enum struct {
	name    string
	members []Member
	byName  map[string]int
}

// New validates the members and returns the enumeration.
func New(name string, members ...Member) (*Enum, error) {
	if err := Validate(name, members); err != nil {
		return nil, err
	}
	byName := make(map[string]int, len(members))
	for _, m := range members {
		byName[m.Name] = m.Value
	}
	return &Enum{name: name, members: members, byName: byName}, nil
}

// MustNew is like New but panics on validation failure. Intended for
// package-level enumeration definitions, where a failure is a programming
// error caught at first load.
func MustNew(name string, members ...Member) *Enum {
	e, err := New(name, members...)
	if err != nil {
		panic(err)
	}
	return e
}

// Name returns the enumeration's name.
func (e *Enum) Name() string {
	return e.name
}

// Names returns the member names in definition order.
func (e *Enum) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Values returns the member values in definition order.
func (e *Enum) Values() []int {
	values := make([]int, len(e.members))
	for i, m := range e.members {
		values[i] = m.Value
	}
	return values
}

// NumValues returns the number of members.
func (e *Enum) NumValues() int {
	return len(e.members)
}

// MinValue returns the smallest member value.
func (e *Enum) MinValue() int {
	min := e.members[0].Value
	for _, m := range e.members[1:] {
		if m.Value < min {
			min = m.Value
		}
	}
	return min
}

// MaxValue returns the largest member value.
func (e *Enum) MaxValue() int {
	max := e.members[0].Value
	for _, m := range e.members[1:] {
		if m.Value > max {
			max = m.Value
		}
	}
	return max
}

// Value returns the value of the named member. The error names both the
// enumeration and the missing member.
func (e *Enum) Value(name string) (int, error) {
	v, ok := e.byName[name]
	if !ok {
		return 0, fmt.Errorf("%q does not have an attribute of %q", e.name, name)
	}
	return v, nil
}

// String lists every member, one per line, in definition order.
func (e *Enum) String() string {
	var sb strings.Builder
	for i, m := range e.members {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s.%s: %d", e.name, m.Name, m.Value)
	}
	return sb.String()
}
