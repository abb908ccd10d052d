// Package text provides matchers for string values.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"digital.vasic.matchers/pkg/matcher"
)

func predicate(
	test func(string) bool, format string, args ...any,
) matcher.Matcher[string] {
	return matcher.Func[string](func(value string) matcher.Result {
		all := append([]any{value}, args...)
		return matcher.Formatted(
			test(value),
			"%q should "+format,
			"%q should not "+format,
			all...,
		)
	})
}

func BeEmpty() matcher.Matcher[string] {
	return predicate(func(s string) bool { return s == "" }, "be empty")
}

// BeBlank matches strings that are empty or only whitespace.
func BeBlank() matcher.Matcher[string] {
	return predicate(
		func(s string) bool { return strings.TrimSpace(s) == "" },
		"be blank",
	)
}

func Contain(substr string) matcher.Matcher[string] {
	return predicate(
		func(s string) bool { return strings.Contains(s, substr) },
		"contain %q", substr,
	)
}

func ContainIgnoringCase(substr string) matcher.Matcher[string] {
	return predicate(
		func(s string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
		},
		"contain %q ignoring case", substr,
	)
}

// ContainAllOf matches strings that contain every substring.
func ContainAllOf(substrs ...string) matcher.Matcher[string] {
	return predicate(
		func(s string) bool {
			for _, sub := range substrs {
				if !strings.Contains(s, sub) {
					return false
				}
			}
			return true
		},
		"contain all of %q", substrs,
	)
}

// ContainAnyOf matches strings that contain at least one
// substring. With no substrings it never passes.
func ContainAnyOf(substrs ...string) matcher.Matcher[string] {
	return predicate(
		func(s string) bool {
			for _, sub := range substrs {
				if strings.Contains(s, sub) {
					return true
				}
			}
			return false
		},
		"contain any of %q", substrs,
	)
}

func HavePrefix(prefix string) matcher.Matcher[string] {
	return predicate(
		func(s string) bool { return strings.HasPrefix(s, prefix) },
		"have prefix %q", prefix,
	)
}

func HaveSuffix(suffix string) matcher.Matcher[string] {
	return predicate(
		func(s string) bool { return strings.HasSuffix(s, suffix) },
		"have suffix %q", suffix,
	)
}

// HaveLength matches strings of length runes.
func HaveLength(length int) matcher.Matcher[string] {
	return predicate(
		func(s string) bool { return utf8.RuneCountInString(s) == length },
		"have length %d", length,
	)
}

func BeEqualIgnoringCase(other string) matcher.Matcher[string] {
	return predicate(
		func(s string) bool { return strings.EqualFold(s, other) },
		"be equal to %q ignoring case", other,
	)
}

// MatchRegex matches strings containing a match of pattern. An
// invalid pattern yields a matcher that never passes and reports
// the compile error.
func MatchRegex(pattern string) matcher.Matcher[string] {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return matcher.Func[string](func(value string) matcher.Result {
			return matcher.Formatted(
				false,
				"%q should match %q but the pattern is invalid: %v",
				"%q should not match %q but the pattern is invalid: %v",
				value, pattern, err,
			)
		})
	}
	return predicate(re.MatchString, "match %q", pattern)
}
