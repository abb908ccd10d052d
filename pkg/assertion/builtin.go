package assertion

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"

	"digital.vasic.matchers/pkg/collection"
	"digital.vasic.matchers/pkg/equal"
	"digital.vasic.matchers/pkg/jsonmatch"
	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/ordered"
	"digital.vasic.matchers/pkg/text"
)

func builtins() map[string]Factory {
	return map[string]Factory{
		"empty":              newEmpty,
		"not_empty":          newNotEmpty,
		"equal":              newEqual,
		"contains":           newContains,
		"contains_all":       newContainsAll,
		"contains_any":       newContainsAny,
		"min_count":          countFactory(sizeAtLeast),
		"max_count":          countFactory(sizeAtMost),
		"exact_count":        countFactory(sizeExact),
		"greater_than":       comparisonFactory(ordered.GreaterThan),
		"greater_than_equal": comparisonFactory(ordered.GreaterThanEqualTo),
		"less_than":          comparisonFactory(ordered.LessThan),
		"less_than_equal":    comparisonFactory(ordered.LessThanEqualTo),
		"in_range":           rangeFactory(true),
		"in_exclusive_range": rangeFactory(false),
		"matches":            newMatches,
		"prefix":             stringFactory(text.HavePrefix),
		"suffix":             stringFactory(text.HaveSuffix),
		"type":               newType,
		"schema":             newSchema,
		"upper_bound":        boundFactory(collection.HaveUpperBound[float64]),
		"lower_bound":        boundFactory(collection.HaveLowerBound[float64]),
		"sorted":             newSorted,
		"unique":             newUnique,
	}
}

// newEmpty matches null, "", [] and {}. Numbers and booleans are
// never empty.
func newEmpty(Definition) (matcher.Matcher[any], error) {
	containers := byKind{
		str: text.BeEmpty(),
		arr: collection.BeEmpty[any](),
		obj: collection.HaveMapSize[string, any](0),
	}.matcher()
	return matcher.Func[any](func(value any) matcher.Result {
		switch value.(type) {
		case string, []any, map[string]any:
			return containers.Test(value)
		}
		return matcher.NewResult(
			value == nil,
			fmt.Sprintf("%s should be empty", formatValue(value)),
			fmt.Sprintf("%s should not be empty", formatValue(value)),
		)
	}), nil
}

func newNotEmpty(def Definition) (matcher.Matcher[any], error) {
	m, err := newEmpty(def)
	if err != nil {
		return nil, err
	}
	return matcher.Not(m), nil
}

type caseParams struct {
	IgnoreCase bool `mapstructure:"ignore_case"`
}

func newEqual(def Definition) (matcher.Matcher[any], error) {
	var p caseParams
	if err := decodeParams(def, &p); err != nil {
		return nil, err
	}
	want := canonical(def.Value)
	if s, ok := want.(string); ok && p.IgnoreCase {
		return byKind{str: text.BeEqualIgnoringCase(s), want: "a string"}.matcher(), nil
	}
	return equal.Equal(want), nil
}

func newContains(def Definition) (matcher.Matcher[any], error) {
	if def.Value == nil {
		return nil, invalid("contains requires a value")
	}
	var p caseParams
	if err := decodeParams(def, &p); err != nil {
		return nil, err
	}

	needle := canonical(def.Value)
	str := text.Contain(fmt.Sprint(needle))
	if p.IgnoreCase {
		str = text.ContainIgnoringCase(fmt.Sprint(needle))
	}
	return byKind{
		str:  str,
		arr:  matcher.Map[[]any, []string](encodeAll, collection.Contain(encode(needle))),
		obj:  matcher.Map[map[string]any, []string](keysOf, collection.Contain(fmt.Sprint(needle))),
		want: "a string, array or object",
	}.matcher(), nil
}

func newContainsAll(def Definition) (matcher.Matcher[any], error) {
	values := expectedList(def)
	if len(values) == 0 {
		return nil, invalid("contains_all requires values")
	}
	return byKind{
		str:  text.ContainAllOf(stringsOf(values)...),
		arr:  matcher.Map[[]any, []string](encodeAll, collection.ContainAll(encodeAll(values)...)),
		obj:  matcher.Map[map[string]any, []string](keysOf, collection.ContainAll(stringsOf(values)...)),
		want: "a string, array or object",
	}.matcher(), nil
}

func newContainsAny(def Definition) (matcher.Matcher[any], error) {
	values := expectedList(def)
	if len(values) == 0 {
		return nil, invalid("contains_any requires values")
	}
	return byKind{
		str:  text.ContainAnyOf(stringsOf(values)...),
		arr:  matcher.Map[[]any, []string](encodeAll, collection.ContainAny(encodeAll(values)...)),
		obj:  matcher.Map[map[string]any, []string](keysOf, collection.ContainAny(stringsOf(values)...)),
		want: "a string, array or object",
	}.matcher(), nil
}

type sizeKind int

const (
	sizeExact sizeKind = iota
	sizeAtLeast
	sizeAtMost
)

// countFactory checks element counts of arrays, key counts of
// objects and rune counts of strings.
func countFactory(kind sizeKind) Factory {
	return func(def Definition) (matcher.Matcher[any], error) {
		n, ok := toInt(def.Value)
		if !ok || n < 0 {
			return nil, invalid("count must be a non-negative integer, got %v", def.Value)
		}

		var size *collection.SizeMatcher[any]
		var relation string
		switch kind {
		case sizeAtLeast:
			size = collection.HaveAtLeastSize[any](n)
			relation = "at least "
		case sizeAtMost:
			size = collection.HaveAtMostSize[any](n)
			relation = "at most "
		default:
			size = collection.HaveSize[any](n)
		}

		length := matcher.Func[string](func(s string) matcher.Result {
			count := utf8.RuneCountInString(s)
			var passed bool
			switch kind {
			case sizeAtLeast:
				passed = count >= n
			case sizeAtMost:
				passed = count <= n
			default:
				passed = count == n
			}
			return matcher.Formatted(
				passed,
				"%q should have length %s%d but was %d",
				"%q should not have length %s%d but was %d",
				s, relation, n, count,
			)
		})

		return byKind{
			str:  length,
			arr:  size,
			obj:  matcher.Map[map[string]any, []any](keysAsAny, size),
			want: "a string, array or object",
		}.matcher(), nil
	}
}

func comparisonFactory(c ordered.Comparison) Factory {
	return func(def Definition) (matcher.Matcher[any], error) {
		if s, ok := def.Value.(string); ok {
			if _, numeric := toFloat(s); !numeric {
				return byKind{
					str:  &ordered.ComparisonMatcher[string]{Comparison: c, Other: s},
					want: "a string",
				}.matcher(), nil
			}
		}
		f, ok := toFloat(def.Value)
		if !ok {
			return nil, invalid("%s requires a number or string, got %v", c, def.Value)
		}
		return byKind{
			num:  &ordered.ComparisonMatcher[float64]{Comparison: c, Other: f},
			want: "a number",
		}.matcher(), nil
	}
}

type rangeParams struct {
	Min *float64 `mapstructure:"min"`
	Max *float64 `mapstructure:"max"`
}

// rangeFactory reads the bounds from a two-element Values list or
// from params min and max.
func rangeFactory(inclusive bool) Factory {
	return func(def Definition) (matcher.Matcher[any], error) {
		var low, high float64
		if len(def.Values) > 0 {
			if len(def.Values) != 2 {
				return nil, invalid("range requires exactly two values, got %d", len(def.Values))
			}
			var okLow, okHigh bool
			low, okLow = toFloat(def.Values[0])
			high, okHigh = toFloat(def.Values[1])
			if !okLow || !okHigh {
				return nil, invalid("range bounds must be numbers, got %v", def.Values)
			}
		} else {
			var p rangeParams
			if err := decodeParams(def, &p); err != nil {
				return nil, err
			}
			if p.Min == nil || p.Max == nil {
				return nil, invalid("range requires params min and max")
			}
			low, high = *p.Min, *p.Max
		}

		r := ordered.Exclusive(low, high)
		if inclusive {
			r = ordered.Inclusive(low, high)
		}
		return byKind{num: ordered.BeInRange(r), want: "a number"}.matcher(), nil
	}
}

func newMatches(def Definition) (matcher.Matcher[any], error) {
	pattern, ok := def.Value.(string)
	if !ok {
		return nil, invalid("matches requires a pattern string, got %v", def.Value)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, invalid("bad pattern: %v", err)
	}
	return byKind{str: text.MatchRegex(pattern), want: "a string"}.matcher(), nil
}

func stringFactory(build func(string) matcher.Matcher[string]) Factory {
	return func(def Definition) (matcher.Matcher[any], error) {
		s, ok := def.Value.(string)
		if !ok {
			return nil, invalid("requires a string value, got %v", def.Value)
		}
		return byKind{str: build(s), want: "a string"}.matcher(), nil
	}
}

var jsonTypes = []string{"array", "boolean", "null", "number", "object", "string"}

func newType(def Definition) (matcher.Matcher[any], error) {
	name, ok := def.Value.(string)
	if !ok || !slices.Contains(jsonTypes, name) {
		return nil, invalid("type must be one of %v, got %v", jsonTypes, def.Value)
	}
	return matcher.Func[any](func(value any) matcher.Result {
		got := jsonType(value)
		return matcher.NewResult(
			got == name,
			fmt.Sprintf("%s should be of type %s but was %s", formatValue(value), name, got),
			fmt.Sprintf("%s should not be of type %s", formatValue(value), name),
		)
	}), nil
}

type schemaParams struct {
	Schema any    `mapstructure:"schema"`
	File   string `mapstructure:"file"`
}

// newSchema validates values against a JSON Schema given inline
// as Value or params.schema, or by params.file.
func newSchema(def Definition) (matcher.Matcher[any], error) {
	var p schemaParams
	if err := decodeParams(def, &p); err != nil {
		return nil, err
	}
	if p.Schema == nil {
		p.Schema = def.Value
	}

	var doc matcher.Matcher[[]byte]
	switch {
	case p.File != "":
		doc = jsonmatch.MatchSchemaFile(p.File)
	case p.Schema != nil:
		src, ok := p.Schema.(string)
		if !ok {
			data, err := json.Marshal(canonical(p.Schema))
			if err != nil {
				return nil, invalid("schema: %v", err)
			}
			src = string(data)
		}
		doc = jsonmatch.MatchSchema(src)
	default:
		return nil, invalid("schema requires a value or params schema or file")
	}
	return matcher.Map(encodeJSON, doc), nil
}

func boundFactory(bound func(float64) *collection.BoundMatcher[float64]) Factory {
	return func(def Definition) (matcher.Matcher[any], error) {
		f, ok := toFloat(def.Value)
		if !ok {
			return nil, invalid("bound must be a number, got %v", def.Value)
		}
		return byKind{arr: onNumbers(bound(f)), want: "an array"}.matcher(), nil
	}
}

type sortedParams struct {
	Order string `mapstructure:"order"`
}

// newSorted checks arrays of numbers or of strings for ascending
// order, or descending order when Value or params.order is "desc".
func newSorted(def Definition) (matcher.Matcher[any], error) {
	var p sortedParams
	if err := decodeParams(def, &p); err != nil {
		return nil, err
	}
	if s, ok := def.Value.(string); ok && p.Order == "" {
		p.Order = s
	}

	var nums matcher.Matcher[[]float64]
	var strs matcher.Matcher[[]string]
	switch p.Order {
	case "", "asc":
		nums = collection.BeSortedAscending[float64]()
		strs = collection.BeSortedAscending[string]()
	case "desc":
		nums = collection.BeSortedDescending[float64]()
		strs = collection.BeSortedDescending[string]()
	default:
		return nil, invalid("order must be asc or desc, got %q", p.Order)
	}

	arr := matcher.Func[[]any](func(values []any) matcher.Result {
		if s, ok := allStrings(values); ok {
			return strs.Test(s)
		}
		return onNumbers(nums).Test(values)
	})
	return byKind{arr: arr, want: "an array"}.matcher(), nil
}

func newUnique(Definition) (matcher.Matcher[any], error) {
	return byKind{
		arr:  matcher.Map[[]any, []string](encodeAll, matcher.Not(collection.HaveDuplicates[string]())),
		want: "an array",
	}.matcher(), nil
}
