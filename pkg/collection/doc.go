// Package collection provides matchers over slices and maps:
// bounds, membership, size, ordering and map entries.
//
// Every matcher is implemented once over []T. Arrays are tested
// by slicing them (a[:]), so all shapes share one predicate.
//
// Matchers whose element type cannot be inferred from their
// arguments take it explicitly:
//
//	matcher.Should(t, names, collection.HaveSize[string](3))
//
// The fluent forms avoid that:
//
//	collection.That(t, names).ShouldHaveSize(3).ShouldContain("junit")
package collection
