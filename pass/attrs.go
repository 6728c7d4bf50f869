package pass

import (
	"encoding/json"
)

// RotationAxis selects the axis of a single-qubit rotation during Euler
// angle reduction.
type RotationAxis string

const (
	AxisRx RotationAxis = "Rx"
	AxisRy RotationAxis = "Ry"
	AxisRz RotationAxis = "Rz"
)

var validRotationAxes = map[RotationAxis]bool{
	AxisRx: true,
	AxisRy: true,
	AxisRz: true,
}

// UnmarshalJSON validates the axis against the fixed wire values.
func (a *RotationAxis) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(a), "RotationAxis", func(s string) bool {
		return validRotationAxes[RotationAxis(s)]
	})
}

// TargetTwoQubitGate is the native two-qubit gate targeted by an
// optimisation pass. "TK2" is the literal wire spelling.
type TargetTwoQubitGate string

const (
	TargetCX  TargetTwoQubitGate = "CX"
	TargetTK2 TargetTwoQubitGate = "TK2"
)

var validTargetGates = map[TargetTwoQubitGate]bool{
	TargetCX:  true,
	TargetTK2: true,
}

// UnmarshalJSON validates the gate against the fixed wire values.
func (g *TargetTwoQubitGate) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(g), "TargetTwoQubitGate", func(s string) bool {
		return validTargetGates[TargetTwoQubitGate(s)]
	})
}

// CxConfig is the preferred CX arrangement for gadget construction.
type CxConfig string

const (
	CxConfigSnake CxConfig = "Snake"
	CxConfigTree  CxConfig = "Tree"
	CxConfigStar  CxConfig = "Star"
)

var validCxConfigs = map[CxConfig]bool{
	CxConfigSnake: true,
	CxConfigTree:  true,
	CxConfigStar:  true,
}

// UnmarshalJSON validates the configuration against the fixed wire values.
func (c *CxConfig) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(c), "CxConfig", func(s string) bool {
		return validCxConfigs[CxConfig(s)]
	})
}

// PauliSynthStrategy selects how Pauli gadgets are synthesised.
type PauliSynthStrategy string

const (
	PauliSynthIndividual PauliSynthStrategy = "Individual"
	PauliSynthPairwise   PauliSynthStrategy = "Pairwise"
	PauliSynthSets       PauliSynthStrategy = "Sets"
)

var validPauliSynthStrategies = map[PauliSynthStrategy]bool{
	PauliSynthIndividual: true,
	PauliSynthPairwise:   true,
	PauliSynthSets:       true,
}

// UnmarshalJSON validates the strategy against the fixed wire values.
func (s *PauliSynthStrategy) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, (*string)(s), "PauliSynthStrategy", func(v string) bool {
		return validPauliSynthStrategies[PauliSynthStrategy(v)]
	})
}

// unmarshalEnum decodes a JSON string and checks membership in a closed
// enum. Violations surface as TYPE_MISMATCH: the value does not inhabit
// the declared semantic type.
func unmarshalEnum(data []byte, dst *string, typeName string, valid func(string) bool) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newDecodeError(ErrCodeTypeMismatch, nil, "%s must be a string", typeName)
	}
	if !valid(s) {
		return newDecodeError(ErrCodeTypeMismatch, nil, "%q is not a valid %s", s, typeName)
	}
	*dst = s
	return nil
}

// RoutingMethod names one routing method in a routing configuration.
type RoutingMethod struct {
	Name string `json:"name"`
}

// RoutingConfig is an ordered list of routing method descriptors. Order
// expresses precedence and is preserved verbatim.
type RoutingConfig = []RoutingMethod

// QubitMapping is an ordered pair of element identifiers, encoded on the
// wire as a two-element JSON array. The endpoints are opaque.
type QubitMapping struct {
	From ElementID
	To   ElementID
}

// MarshalJSON encodes the mapping as [from, to].
func (m QubitMapping) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]json.RawMessage{m.From, m.To})
}

// UnmarshalJSON decodes a two-element array into the pair.
func (m *QubitMapping) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return newDecodeError(ErrCodeTypeMismatch, nil, "qubit mapping must be an array")
	}
	if len(pair) != 2 {
		return newDecodeError(ErrCodeTypeMismatch, nil, "qubit mapping must have exactly 2 elements, got %d", len(pair))
	}
	m.From = pair[0]
	m.To = pair[1]
	return nil
}

// DecomposeTK2Fidelities carries optional per-gate fidelity hints. The
// field keys CX, ZZMax and ZZPhase are literal wire names; absent
// fidelities are omitted, never null.
type DecomposeTK2Fidelities struct {
	CX      *float64 `json:"CX,omitempty"`
	ZZMax   *float64 `json:"ZZMax,omitempty"`
	ZZPhase *float64 `json:"ZZPhase,omitempty"`
}
