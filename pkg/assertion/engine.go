package assertion

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"digital.vasic.matchers/pkg/jsonmatch"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/matcher"
)

// Factory builds the matcher for one assertion type. It returns
// an error wrapping ErrInvalidDefinition when the definition's
// value or params are unusable.
type Factory func(def Definition) (matcher.Matcher[any], error)

// Engine defines the interface for assertion engines.
type Engine interface {
	// Build turns a definition into a boxed matcher, applying
	// Not when set.
	Build(def Definition) (matcher.Matcher[any], error)

	// Evaluate checks a single assertion against the given
	// value.
	Evaluate(def Definition, value any) Result

	// EvaluateAll checks multiple assertions against a map of
	// named values. Each assertion's Target field is used as
	// the key into the values map.
	EvaluateAll(defs []Definition, values map[string]any) []Result

	// Register adds a factory for the given assertion type.
	// Returns an error if the type is already registered.
	Register(assertionType string, factory Factory) error
}

// Option configures a DefaultEngine.
type Option func(*DefaultEngine)

// WithLogger sets the logger used for registration and build
// diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(e *DefaultEngine) {
		e.logger = l
	}
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    logging.Logger
}

// NewEngine creates a DefaultEngine with the built-in factories
// pre-registered.
func NewEngine(opts ...Option) *DefaultEngine {
	e := &DefaultEngine{
		factories: make(map[string]Factory),
		logger:    logging.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerDefaults()
	return e
}

func (e *DefaultEngine) registerDefaults() {
	for name, f := range builtins() {
		e.factories[name] = f
	}
	e.factories["all_of"] = e.allOf
	e.factories["any_of"] = e.anyOf
}

// Register adds a factory for the given assertion type.
func (e *DefaultEngine) Register(
	assertionType string,
	factory Factory,
) error {
	if assertionType == "" {
		return ErrMissingType
	}
	if factory == nil {
		return fmt.Errorf("nil factory for assertion type %s", assertionType)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.factories[assertionType]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, assertionType)
	}

	e.factories[assertionType] = factory
	e.logger.Debug("registered assertion type",
		logging.StringField("type", assertionType),
	)
	return nil
}

// HasFactory returns true if the given assertion type has a
// registered factory.
func (e *DefaultEngine) HasFactory(assertionType string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.factories[assertionType]
	return exists
}

// Types returns the registered assertion types in sorted order.
func (e *DefaultEngine) Types() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	types := make([]string, 0, len(e.factories))
	for name := range e.factories {
		types = append(types, name)
	}
	slices.Sort(types)
	return types
}

// Build turns def into a matcher over JSON-shaped values. Inputs
// are normalized first, so an int 3 and a float64 3 compare equal.
// A value of a kind the assertion cannot test fails even when the
// definition is negated.
func (e *DefaultEngine) Build(def Definition) (matcher.Matcher[any], error) {
	g, err := e.build(def)
	if err != nil {
		return nil, err
	}
	if def.Not {
		g.name = def.String()
		g.not = true
	}
	return g, nil
}

func (e *DefaultEngine) build(def Definition) (*guarded, error) {
	kind := def.Kind()
	if kind == "" {
		return nil, ErrMissingType
	}

	e.mu.RLock()
	factory, exists := e.factories[kind]
	e.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, kind)
	}

	m, err := factory(def)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	plain := def
	plain.Not = false

	g := &guarded{name: plain.String(), m: m}
	g.guard, _ = m.(kindGuard)
	return g, nil
}

// guarded is a built assertion. Values are normalized before
// testing, and values its matcher cannot test fail whatever the
// polarity.
type guarded struct {
	name  string
	m     matcher.Matcher[any]
	guard kindGuard
	not   bool
}

func (g *guarded) String() string { return g.name }

func (g *guarded) mismatch(value any) (matcher.Result, bool) {
	if g.guard == nil {
		return matcher.Result{}, false
	}
	return g.guard.mismatch(canonical(value))
}

func (g *guarded) Test(value any) matcher.Result {
	value = canonical(value)
	if g.guard != nil {
		if r, bad := g.guard.mismatch(value); bad {
			return r
		}
	}
	r := g.m.Test(value)
	if g.not {
		return r.Negate()
	}
	return r
}

// Evaluate runs a single assertion against the provided value.
// A definition that cannot be built yields a failed Result.
func (e *DefaultEngine) Evaluate(def Definition, value any) Result {
	result := Result{
		Type:     def.Kind(),
		Target:   def.Target,
		Expected: def.Expected(),
		Actual:   value,
	}

	m, err := e.Build(def)
	if err != nil {
		e.logger.Warn("failed to build assertion",
			logging.StringField("type", def.Kind()),
			logging.StringField("target", def.Target),
			logging.ErrorField(err),
		)
		result.Message = err.Error()
		return result
	}

	r := m.Test(value)
	result.Passed = r.Passed()
	if !result.Passed {
		result.Message = r.FailureMessage()
		if def.Message != "" {
			result.Message = def.Message + ": " + result.Message
		}
	}

	e.logger.Debug("assertion evaluated",
		logging.StringField("assertion", def.String()),
		logging.StringField("target", def.Target),
		logging.BoolField("passed", result.Passed),
	)
	return result
}

// EvaluateAll runs multiple assertions against a map of named
// values. If a target is missing, the assertion fails.
func (e *DefaultEngine) EvaluateAll(
	defs []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, def := range defs {
		value, exists := values[def.Target]
		if !exists {
			results = append(results, missingTarget(def))
			continue
		}
		results = append(results, e.Evaluate(def, value))
	}

	return results
}

func missingTarget(def Definition) Result {
	return Result{
		Type:     def.Kind(),
		Target:   def.Target,
		Expected: def.Expected(),
		Message:  fmt.Sprintf("%s: %s", ErrTargetNotFound, def.Target),
	}
}

// canonical reshapes v the way decoded JSON looks. Values that
// cannot be encoded are passed through unchanged.
func canonical(v any) any {
	n, err := jsonmatch.Normalize(v)
	if err != nil {
		return v
	}
	return n
}

// IsUnknownType reports whether err was caused by an unregistered
// assertion type.
func IsUnknownType(err error) bool {
	return errors.Is(err, ErrUnknownType)
}
