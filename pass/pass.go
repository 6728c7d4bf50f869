package pass

import "encoding/json"

// Opaque blob types carried through the codec unmodified. Their schemas
// (architecture_v1, placement_v1, predicate_v1, circuit_v1) are owned by
// the external compiler and are never introspected here.
type (
	// Architecture is a serialized architecture blob.
	Architecture = json.RawMessage
	// Placement is a serialized placement blob.
	Placement = json.RawMessage
	// Predicate is a serialized predicate blob.
	Predicate = json.RawMessage
	// Circuit is a serialized circuit document.
	Circuit = json.RawMessage
	// ElementID is a serialized qubit or bit reference.
	ElementID = json.RawMessage
)

// Class identifies one of the five outer pass variants. The string values
// are the wire-level pass_class discriminants and are fixed by the schema.
type Class string

const (
	ClassStandard             Class = "StandardPass"
	ClassSequence             Class = "SequencePass"
	ClassRepeat               Class = "RepeatPass"
	ClassRepeatWithMetric     Class = "RepeatWithMetricPass"
	ClassRepeatUntilSatisfied Class = "RepeatUntilSatisfiedPass"
)

// validClasses is the closed set of outer discriminants. Unlike the
// standard-pass catalog, this set is not extensible: an unknown pass_class
// is a hard decode error.
var validClasses = map[Class]bool{
	ClassStandard:             true,
	ClassSequence:             true,
	ClassRepeat:               true,
	ClassRepeatWithMetric:     true,
	ClassRepeatUntilSatisfied: true,
}

// Pass is one node in a compilation pipeline description tree.
//
// This is a sealed interface - only Standard, Sequence, Repeat,
// RepeatWithMetric, and RepeatUntilSatisfied implement it. The marker
// method prevents external implementations so the codec's variant dispatch
// stays exhaustive.
//
// Pass values are immutable trees: each node exclusively owns its children
// (no sharing, no cycles) and is safe to share across goroutines once
// constructed.
type Pass interface {
	// Class returns the wire discriminant for this variant.
	Class() Class

	passNode() // Marker method - seals interface to this package
}

// Standard wraps a single catalog pass.
type Standard struct {
	// Pass is the standard pass payload.
	Pass StandardPass
}

// Sequence executes a sequence of passes in order. Element order is part
// of the contract and is never reordered.
type Sequence struct {
	// Sequence holds the passes to be executed in order.
	Sequence []Pass
}

// Repeat iterates an internal pass until no further change.
type Repeat struct {
	// Body is the loop body.
	Body Pass
}

// RepeatWithMetric iterates an internal pass while some metric decreases.
type RepeatWithMetric struct {
	// Body is the loop body.
	Body Pass
	// Metric conditions the loop. It is an externally-interpreted function
	// encoding (a dill string in the producing ecosystem) and is carried as
	// an opaque string.
	Metric string
}

// RepeatUntilSatisfied iterates an internal pass until a predicate holds.
type RepeatUntilSatisfied struct {
	// Body is the loop body.
	Body Pass
	// Predicate conditions the loop; the loop terminates when it returns
	// true. Carried as an opaque blob.
	Predicate Predicate
}

func (Standard) Class() Class             { return ClassStandard }
func (Sequence) Class() Class             { return ClassSequence }
func (Repeat) Class() Class               { return ClassRepeat }
func (RepeatWithMetric) Class() Class     { return ClassRepeatWithMetric }
func (RepeatUntilSatisfied) Class() Class { return ClassRepeatUntilSatisfied }

func (Standard) passNode()             {}
func (Sequence) passNode()             {}
func (Repeat) passNode()               {}
func (RepeatWithMetric) passNode()     {}
func (RepeatUntilSatisfied) passNode() {}
