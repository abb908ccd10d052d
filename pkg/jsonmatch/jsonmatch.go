package jsonmatch

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"digital.vasic.matchers/pkg/matcher"
)

const previewLen = 80

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// Path converts bracket notation to gjson dot notation, e.g.
// "items[0].tags[1]" -> "items.0.tags.1".
func Path(path string) string {
	return strings.TrimPrefix(bracketIndex.ReplaceAllString(path, ".$1"), ".")
}

// Get looks up path in doc.
func Get(doc []byte, path string) gjson.Result {
	return gjson.GetBytes(doc, Path(path))
}

// BeValidJSON matches syntactically valid JSON documents.
func BeValidJSON() matcher.Matcher[[]byte] {
	return matcher.Func[[]byte](func(doc []byte) matcher.Result {
		return matcher.Formatted(
			gjson.ValidBytes(doc),
			"%s should be valid JSON",
			"%s should not be valid JSON",
			preview(doc),
		)
	})
}

// HavePath matches documents in which path resolves to a value,
// including an explicit null.
func HavePath(path string) matcher.Matcher[[]byte] {
	return matcher.Func[[]byte](func(doc []byte) matcher.Result {
		return matcher.Formatted(
			Get(doc, path).Exists(),
			"%s should have path %q",
			"%s should not have path %q",
			preview(doc), path,
		)
	})
}

// HaveValueAt matches documents whose value at path equals
// expected once expected is encoded as JSON, so 1 and 1.0 are
// equal and structs compare by their JSON form.
func HaveValueAt(path string, expected any) matcher.Matcher[[]byte] {
	want, err := Normalize(expected)
	return matcher.Func[[]byte](func(doc []byte) matcher.Result {
		if err != nil {
			return matcher.Formatted(
				false,
				"%s should have %v at %q but it cannot be encoded: %v",
				"%s should not have %v at %q but it cannot be encoded: %v",
				preview(doc), expected, path, err,
			)
		}

		got := Get(doc, path)
		actual := got.Value()
		failure := fmt.Sprintf(
			"%s should have %v at %q", preview(doc), expected, path,
		)
		if got.Exists() {
			failure += fmt.Sprintf(" but was %v", actual)
		} else {
			failure += " but the path is missing"
		}

		return matcher.NewResult(
			got.Exists() && cmp.Equal(want, actual),
			failure,
			fmt.Sprintf(
				"%s should not have %v at %q",
				preview(doc), expected, path,
			),
		)
	})
}

// HavePathMatching resolves path and tests the decoded value with
// m. Numbers decode as float64, objects as map[string]any and
// arrays as []any. A missing path fails both polarities' checks of
// m, so it is reported as a mismatch.
func HavePathMatching(
	path string, m matcher.Matcher[any],
) matcher.Matcher[[]byte] {
	return matcher.Func[[]byte](func(doc []byte) matcher.Result {
		got := Get(doc, path)
		if !got.Exists() {
			return matcher.Formatted(
				false,
				"%s should have path %q",
				"%s should not have path %q",
				preview(doc), path,
			)
		}

		r := m.Test(got.Value())
		return matcher.NewResult(
			r.Passed(),
			fmt.Sprintf("at %q: %s", path, r.FailureMessage()),
			fmt.Sprintf("at %q: %s", path, r.NegatedFailureMessage()),
		)
	})
}

// Normalize returns v in the shape gjson decodes JSON into: numbers
// become float64, objects map[string]any and arrays []any.
func Normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return gjson.ParseBytes(data).Value(), nil
}

func preview(doc []byte) string {
	s := strings.Join(strings.Fields(string(doc)), " ")
	if len(s) > previewLen {
		return s[:previewLen] + "..."
	}
	return s
}
