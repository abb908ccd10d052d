package assertion

import (
	"github.com/tidwall/gjson"

	"digital.vasic.matchers/pkg/jsonmatch"
)

// EvaluateDocument runs every assertion of suite against a JSON
// document, resolving each Target as a gjson path. Bracket indexes
// such as "items[0]" are accepted. An invalid document fails every
// assertion.
func EvaluateDocument(engine Engine, suite *Suite, doc []byte) []Result {
	results := make([]Result, 0, len(suite.Assertions))

	if !gjson.ValidBytes(doc) {
		for _, def := range suite.Assertions {
			results = append(results, Result{
				Type:     def.Kind(),
				Target:   def.Target,
				Expected: def.Expected(),
				Message:  "document is not valid JSON",
			})
		}
		return results
	}

	for _, def := range suite.Assertions {
		value := jsonmatch.Get(doc, def.Target)
		if !value.Exists() {
			results = append(results, missingTarget(def))
			continue
		}
		results = append(results, engine.Evaluate(def, value.Value()))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
