package assertion

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/go-viper/mapstructure/v2"

	"digital.vasic.matchers/pkg/matcher"
)

// byKind dispatches a JSON-shaped value to the matcher for its
// kind. Kinds without a matcher are a type mismatch.
type byKind struct {
	str  matcher.Matcher[string]
	num  matcher.Matcher[float64]
	arr  matcher.Matcher[[]any]
	obj  matcher.Matcher[map[string]any]
	want string
}

// kindGuard is implemented by matchers that only accept some JSON
// kinds. A value of another kind fails under both polarities.
type kindGuard interface {
	mismatch(value any) (matcher.Result, bool)
}

type kindMatcher struct {
	byKind
}

func (k byKind) matcher() matcher.Matcher[any] {
	return kindMatcher{k}
}

func (k kindMatcher) mismatch(value any) (matcher.Result, bool) {
	switch value.(type) {
	case string:
		if k.str != nil {
			return matcher.Result{}, false
		}
	case float64:
		if k.num != nil {
			return matcher.Result{}, false
		}
	case []any:
		if k.arr != nil {
			return matcher.Result{}, false
		}
	case map[string]any:
		if k.obj != nil {
			return matcher.Result{}, false
		}
	}
	return wrongType(value, k.want), true
}

func (k kindMatcher) Test(value any) matcher.Result {
	if r, bad := k.mismatch(value); bad {
		return r
	}
	switch v := value.(type) {
	case string:
		return k.str.Test(v)
	case float64:
		return k.num.Test(v)
	case []any:
		return k.arr.Test(v)
	case map[string]any:
		return k.obj.Test(v)
	}
	return wrongType(value, k.want)
}

// wrongType fails with the same message whichever polarity reads
// it.
func wrongType(value any, want string) matcher.Result {
	msg := fmt.Sprintf("%s should be %s but was %s", formatValue(value), want, jsonType(value))
	return matcher.NewResult(false, msg, msg)
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func decodeParams(def Definition, out any) error {
	if len(def.Params) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(def.Params); err != nil {
		return invalid("params: %v", err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}

// toFloat converts numbers and numeric strings.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil, bool, []any, map[string]any:
		return 0, false
	case string:
		if n == "" {
			return 0, false
		}
	}
	var f float64
	if err := mapstructure.WeakDecode(v, &f); err != nil {
		return 0, false
	}
	return f, true
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || f > math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}

// expectedList returns Values, or Value when it is a list or a
// single item.
func expectedList(def Definition) []any {
	if len(def.Values) > 0 {
		return def.Values
	}
	switch v := canonical(def.Value).(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

func stringsOf(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(canonical(v))
	}
	return out
}

// encode renders v as compact JSON so elements of any kind can be
// compared as strings.
func encode(v any) string {
	data, err := json.Marshal(canonical(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

func encodeAll(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = encode(v)
	}
	return out
}

func encodeJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}

func keysOf(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

func keysAsAny(m map[string]any) []any {
	keys := keysOf(m)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}

func onNumbers(m matcher.Matcher[[]float64]) matcher.Matcher[[]any] {
	return matcher.Func[[]any](func(values []any) matcher.Result {
		nums := make([]float64, 0, len(values))
		for _, v := range values {
			f, ok := v.(float64)
			if !ok {
				return wrongType(v, "a number")
			}
			nums = append(nums, f)
		}
		return m.Test(nums)
	})
}

func allStrings(values []any) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
