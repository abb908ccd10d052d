// Package jsonmatch provides matchers over raw JSON documents.
//
// Paths use gjson syntax; bracket indexes are accepted as well, so
// "items[0].id" and "items.0.id" are the same path. Schemas are
// validated with gojsonschema.
package jsonmatch
