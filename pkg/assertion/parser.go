package assertion

import "strings"

// ParseAssertionString parses a compact assertion string of the
// form "type:value" into its components. If no colon is present
// the entire string is treated as the type and value is nil.
//
// Examples:
//
//	"contains:func"  -> ("contains", "func")
//	"not_empty"      -> ("not_empty", nil)
//	"min_count:3"    -> ("min_count", "3")
func ParseAssertionString(
	s string,
) (assertionType string, value any) {
	parts := strings.SplitN(s, ":", 2)
	assertionType = parts[0]

	if len(parts) > 1 {
		value = parts[1]
	}

	return
}

// ParseDefinition builds a Definition for target from the compact
// form accepted by ParseAssertionString. A leading "!" negates it
// and a comma separated value of contains_all or contains_any is
// split into Values.
//
//	"!contains:beta"        -> not contains "beta"
//	"contains_any:go,rust"  -> contains_any ["go" "rust"]
func ParseDefinition(target, s string) Definition {
	def := Definition{Target: target}
	if rest, ok := strings.CutPrefix(s, "!"); ok {
		def.Not = true
		s = rest
	}

	def.Type, def.Value = ParseAssertionString(s)
	if raw, ok := def.Value.(string); ok {
		switch def.Type {
		case "contains_all", "contains_any", "in_range", "in_exclusive_range":
			for _, v := range strings.Split(raw, ",") {
				def.Values = append(def.Values, strings.TrimSpace(v))
			}
			def.Value = nil
		}
	}
	return def
}
