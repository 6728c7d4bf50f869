// Package pass models TKET compiler pass descriptor trees and their exact
// JSON wire encoding, following the compiler_pass_v1 schema.
//
// A pass document uses a hybrid tagging discipline: an adjacent
// "pass_class" field names the variant, and the variant payload lives in a
// sibling field whose key is that same discriminant string. The inner
// standard-pass catalog uses plain adjacent tagging via a "name" field with
// the payload flattened alongside it.
//
// Key design constraints:
//   - Decode and Encode are pure transforms; no I/O, no shared state.
//   - Optional fields are omitted when absent, never encoded as null.
//   - Sequence order is semantically meaningful and always preserved.
//   - Circuit, Architecture, Placement, Predicate, and ElementID payloads
//     are opaque and pass through byte-identical.
//   - The outer Pass union is closed (unknown pass_class is an error);
//     the StandardPass catalog is open (unknown names decode into
//     UnrecognizedPass and re-encode losslessly).
package pass
