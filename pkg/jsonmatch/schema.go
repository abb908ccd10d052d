package jsonmatch

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"digital.vasic.matchers/pkg/matcher"
)

// MatchSchema matches documents valid against the JSON schema
// schemaJSON. A schema that fails to load yields a matcher that
// never passes and reports the load error.
func MatchSchema(schemaJSON string) matcher.Matcher[[]byte] {
	schema, err := gojsonschema.NewSchema(
		gojsonschema.NewStringLoader(schemaJSON),
	)
	if err != nil {
		return invalidSchema(fmt.Errorf("load schema: %w", err))
	}
	return schemaMatcher(schema)
}

// MatchSchemaFile is MatchSchema with the schema read from path.
func MatchSchemaFile(path string) matcher.Matcher[[]byte] {
	schema, err := gojsonschema.NewSchema(
		gojsonschema.NewReferenceLoader("file://" + path),
	)
	if err != nil {
		return invalidSchema(fmt.Errorf("load schema %s: %w", path, err))
	}
	return schemaMatcher(schema)
}

func schemaMatcher(schema *gojsonschema.Schema) matcher.Matcher[[]byte] {
	return matcher.Func[[]byte](func(doc []byte) matcher.Result {
		result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
		if err != nil {
			return matcher.Formatted(
				false,
				"%s should match schema but could not be validated: %v",
				"%s should not match schema but could not be validated: %v",
				preview(doc), err,
			)
		}

		failure := fmt.Sprintf("%s should match schema", preview(doc))
		if !result.Valid() {
			problems := make([]string, 0, len(result.Errors()))
			for _, e := range result.Errors() {
				problems = append(problems, e.String())
			}
			failure += ": " + strings.Join(problems, "; ")
		}

		return matcher.NewResult(
			result.Valid(),
			failure,
			fmt.Sprintf("%s should not match schema", preview(doc)),
		)
	})
}

func invalidSchema(err error) matcher.Matcher[[]byte] {
	return matcher.Func[[]byte](func(doc []byte) matcher.Result {
		return matcher.Formatted(
			false,
			"%s should match schema but %v",
			"%s should not match schema but %v",
			preview(doc), err,
		)
	})
}
