package assertion

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

func (e *DefaultEngine) allOf(def Definition) (matcher.Matcher[any], error) {
	children, err := e.children(def.AllOf)
	if err != nil {
		return nil, err
	}
	return &composite{Matcher: matcher.All(boxAll(children)...), children: children, all: true}, nil
}

func (e *DefaultEngine) anyOf(def Definition) (matcher.Matcher[any], error) {
	children, err := e.children(def.AnyOf)
	if err != nil {
		return nil, err
	}
	return &composite{Matcher: matcher.Any(boxAll(children)...), children: children}, nil
}

func (e *DefaultEngine) children(defs []Definition) ([]*guarded, error) {
	gs := make([]*guarded, 0, len(defs))
	for i, d := range defs {
		m, err := e.Build(d)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		gs = append(gs, m.(*guarded))
	}
	return gs, nil
}

func boxAll(gs []*guarded) []matcher.Matcher[any] {
	ms := make([]matcher.Matcher[any], len(gs))
	for i, g := range gs {
		ms[i] = g
	}
	return ms
}

// composite is an all_of or any_of group. An all_of is a type
// mismatch when any child is; an any_of only when every child is.
type composite struct {
	matcher.Matcher[any]
	children []*guarded
	all      bool
}

func (c *composite) mismatch(value any) (matcher.Result, bool) {
	if len(c.children) == 0 {
		return matcher.Result{}, false
	}
	var first matcher.Result
	for i, child := range c.children {
		r, bad := child.mismatch(value)
		if bad && c.all {
			return r, true
		}
		if !bad && !c.all {
			return matcher.Result{}, false
		}
		if i == 0 {
			first = r
		}
	}
	if c.all {
		return matcher.Result{}, false
	}
	return first, true
}

// AllPassComposite evaluates assertions against values and folds
// the results into one that passes only if every assertion passed.
func AllPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if !r.Passed {
			return Result{
				Type:   "all_pass",
				Passed: false,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' failed: %s",
					r.Type, r.Target, r.Message,
				),
			}
		}
	}

	return Result{Type: "all_pass", Passed: true}
}

// AnyPassComposite evaluates assertions against values and passes
// if at least one of them passed.
func AnyPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if r.Passed {
			return Result{Type: "any_pass", Passed: true}
		}
	}

	return Result{
		Type:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d assertions passed", len(results),
		),
	}
}
