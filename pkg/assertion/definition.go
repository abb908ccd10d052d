// Package assertion builds matchers from declarative definitions
// so checks can be written in YAML or JSON suites and evaluated
// against arbitrary values or JSON documents.
package assertion

import (
	"fmt"
	"strings"
)

// Definition describes a single assertion to evaluate against a
// target value.
type Definition struct {
	// Type is the registered factory name (e.g. "contains",
	// "min_count", "all_of").
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Target names the value to check. In documents it is a
	// gjson path; "@this" selects the whole document.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Value is the expected value for single-value assertions.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Values holds expected values for multi-value assertions
	// (e.g. "contains_any").
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Params carries type-specific options such as "ignore_case"
	// or "min"/"max".
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`

	// Not inverts the assertion.
	Not bool `json:"not,omitempty" yaml:"not,omitempty"`

	// Message prefixes the failure message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// AllOf and AnyOf hold the children of composite assertions.
	AllOf []Definition `json:"all_of,omitempty" yaml:"all_of,omitempty"`
	AnyOf []Definition `json:"any_of,omitempty" yaml:"any_of,omitempty"`
}

// Kind returns the factory name, inferring "all_of" or "any_of"
// when Type is empty and children are present.
func (d Definition) Kind() string {
	switch {
	case d.Type != "":
		return d.Type
	case len(d.AllOf) > 0:
		return "all_of"
	case len(d.AnyOf) > 0:
		return "any_of"
	default:
		return ""
	}
}

// Expected returns Value, or Values when Value is unset.
func (d Definition) Expected() any {
	if d.Value != nil {
		return d.Value
	}
	if len(d.Values) > 0 {
		return d.Values
	}
	return nil
}

// String renders the definition compactly, e.g.
// `not contains "beta"`.
func (d Definition) String() string {
	var b strings.Builder
	if d.Not {
		b.WriteString("not ")
	}
	b.WriteString(d.Kind())
	switch kind := d.Kind(); {
	case kind == "all_of" || kind == "any_of":
		children := d.AllOf
		if kind == "any_of" {
			children = d.AnyOf
		}
		parts := make([]string, len(children))
		for i, c := range children {
			parts[i] = c.String()
		}
		fmt.Fprintf(&b, "(%s)", strings.Join(parts, ", "))
	case d.Expected() != nil:
		fmt.Fprintf(&b, " %s", formatValue(d.Expected()))
	}
	return b.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Result captures the outcome of evaluating a single assertion.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the value the assertion expected.
	Expected any `json:"expected,omitempty"`

	// Actual is the value that was observed.
	Actual any `json:"actual,omitempty"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message explains a failure. It is empty for passing
	// assertions.
	Message string `json:"message,omitempty"`
}
