// Package container implements the ACD container model: the typed object
// graph that annotators read and edit while a request is being processed.
//
// A request body is a ContainerGroup holding unstructured containers (text
// plus an annotation data bag) and structured containers (free-form data).
// Every record except ContainerGroup embeds Extensible, so fields the model
// does not declare survive a Parse/ToRaw cycle unchanged, and new fields can
// be declared at startup with RegisterField.
//
// Validation happens in three places:
//
//   - Validator.Parse and Validator.Decode check types and invariants while
//     building the graph from a raw JSON-like map.
//   - Span setters (SetBegin, SetEnd, SetSpan, SetCoveredText) and
//     Validator.Set re-check the record on every edit. A rejected edit leaves
//     the record untouched.
//   - Validator.Validate re-checks a whole graph, which catches records that
//     were assembled with struct literals.
//
// All span offsets in this package count Unicode code points, not bytes and
// not UTF-16 units. Package offsets converts between code point offsets and
// the UTF-16 offsets used on the wire.
package container
