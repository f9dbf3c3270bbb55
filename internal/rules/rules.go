// Package rules implements the typed named-rule registry games and engine
// parts read their parameters from. Each rule carries a value tag; writing
// a value of the wrong shape is a configuration error, never a coercion.
package rules

import (
	"fmt"
	"sort"
)

// Type tags the shape of a rule value. The set is closed: rule values are
// one of a handful of plain shapes rather than arbitrary interfaces.
type Type int

const (
	TypeInt Type = iota
	TypeBool
	TypeString
	TypeBytes
	TypeIntPair
)

// String returns the tag name used in error messages.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeBytes:
		return "bytes"
	case TypeIntPair:
		return "int pair"
	default:
		return "unknown"
	}
}

// Rule is a single named parameter with a type tag, a default and a
// current value.
type Rule struct {
	Name    string
	Type    Type
	Default any

	value any
}

// NewRule builds a rule, validating the default against the type tag.
func NewRule(name string, t Type, def any) (Rule, error) {
	if !matches(t, def) {
		return Rule{}, fmt.Errorf("rules: default for %q has wrong type, want %s", name, t)
	}
	return Rule{Name: name, Type: t, Default: def, value: def}, nil
}

// Must is the panicking form of NewRule for statically known rule
// declarations.
func Must(name string, t Type, def any) Rule {
	r, err := NewRule(name, t, def)
	if err != nil {
		panic(err)
	}
	return r
}

func matches(t Type, v any) bool {
	if v == nil {
		// Only byte rules may be unset; they fall back at the consumer.
		return t == TypeBytes
	}
	switch t {
	case TypeInt:
		_, ok := v.(int)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeBytes:
		_, ok := v.([]byte)
		return ok
	case TypeIntPair:
		_, ok := v.([2]int)
		return ok
	}
	return false
}

// Ruleset is a registry of rules. A Ruleset may carry a name, in which
// case registering it into a parent prefixes all its rule names with
// "<name>_".
type Ruleset struct {
	name  string
	rules map[string]*Rule
}

// New builds a ruleset from the given rules. Duplicate names are a
// configuration error.
func New(rules ...Rule) (*Ruleset, error) {
	return Named("", rules...)
}

// Named builds a named ruleset, as declared by an engine part that owns a
// sub-namespace of rules.
func Named(name string, rules ...Rule) (*Ruleset, error) {
	rs := &Ruleset{name: name, rules: make(map[string]*Rule, len(rules))}
	for _, r := range rules {
		if _, ok := rs.rules[r.Name]; ok {
			return nil, fmt.Errorf("rules: duplicate rule %q", r.Name)
		}
		dup := r
		rs.rules[r.Name] = &dup
	}
	return rs, nil
}

// Register merges a named sub-ruleset into this one, prefixing its rule
// names. The registered rules are shared, not copied: the owning part
// keeps observing later overrides.
func (rs *Ruleset) Register(sub *Ruleset) error {
	if sub.name == "" {
		return fmt.Errorf("rules: cannot register unnamed ruleset")
	}
	prefix := sub.name + "_"
	for name, rule := range sub.rules {
		full := prefix + name
		if _, ok := rs.rules[full]; ok {
			return fmt.Errorf("rules: conflicting rule name %q", full)
		}
		rs.rules[full] = rule
	}
	return nil
}

// Set assigns a rule value, failing on unknown names or mismatched types.
func (rs *Ruleset) Set(name string, v any) error {
	rule, ok := rs.rules[name]
	if !ok {
		return fmt.Errorf("rules: unknown rule %q", name)
	}
	if !matches(rule.Type, v) {
		return fmt.Errorf("rules: %v has incompatible type for rule %q (want %s)", v, name, rule.Type)
	}
	rule.value = v
	return nil
}

// Override applies a batch of value assignments. Unknown names are
// ignored (parts may target rules another part never declared); wrong
// types still fail.
func (rs *Ruleset) Override(values map[string]any) error {
	for name, v := range values {
		rule, ok := rs.rules[name]
		if !ok {
			continue
		}
		if !matches(rule.Type, v) {
			return fmt.Errorf("rules: %v has incompatible type for rule %q (want %s)", v, name, rule.Type)
		}
		rule.value = v
	}
	return nil
}

// Has reports whether a rule with the given name exists.
func (rs *Ruleset) Has(name string) bool {
	_, ok := rs.rules[name]
	return ok
}

// Names returns all rule names, sorted.
func (rs *Ruleset) Names() []string {
	names := make([]string, 0, len(rs.rules))
	for name := range rs.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (rs *Ruleset) lookup(name string, t Type) *Rule {
	rule, ok := rs.rules[name]
	if !ok {
		panic(fmt.Sprintf("rules: unknown rule %q", name))
	}
	if rule.Type != t {
		panic(fmt.Sprintf("rules: rule %q is %s, read as %s", name, rule.Type, t))
	}
	return rule
}

// Int returns an int rule's current value. Unknown names panic: reading a
// rule nobody declared is a programming error, not a runtime condition.
func (rs *Ruleset) Int(name string) int {
	return rs.lookup(name, TypeInt).value.(int)
}

// Bool returns a bool rule's current value.
func (rs *Ruleset) Bool(name string) bool {
	return rs.lookup(name, TypeBool).value.(bool)
}

// String returns a string rule's current value.
func (rs *Ruleset) String(name string) string {
	return rs.lookup(name, TypeString).value.(string)
}

// Bytes returns a bytes rule's current value, which may be nil.
func (rs *Ruleset) Bytes(name string) []byte {
	v := rs.lookup(name, TypeBytes).value
	if v == nil {
		return nil
	}
	return v.([]byte)
}

// IntPair returns an int-pair rule's current value.
func (rs *Ruleset) IntPair(name string) [2]int {
	return rs.lookup(name, TypeIntPair).value.([2]int)
}
